// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argot

import (
	"errors"
	"fmt"
	"slices"
)

// Result is the outcome of one Parse invocation: an insertion-ordered
// mapping from argument name to the values it matched. It is populated
// exclusively by Parse and is query-only afterward.
type Result struct {
	completed bool
	order     []string
	entries   map[string][]Value
}

func newResult() *Result {
	return &Result{entries: make(map[string][]Value)}
}

// set inserts an entry. The mapping is write-once per key: a name that
// already has an entry keeps its first values.
func (r *Result) set(name string, vals []Value) {
	if _, ok := r.entries[name]; ok {
		return
	}
	r.entries[name] = vals
	r.order = append(r.order, name)
}

// Completed reports whether a Parse call has fully succeeded. It stays
// false on every failure path.
func (r *Result) Completed() bool { return r.completed }

// Has reports whether an entry exists for name. Unlike the typed
// lookups, Has does not require a completed parse.
func (r *Result) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Names returns the entry names in insertion order.
func (r *Result) Names() []string { return slices.Clone(r.order) }

// Values returns the raw typed values stored under name.
func (r *Result) Values(name string) ([]Value, bool) {
	vals, ok := r.entries[name]
	return slices.Clone(vals), ok
}

// GetAll converts every value stored under name into T. It fails with
// ErrNotParsed before a successful parse, with UnknownArgumentError when
// the name has no entry, and propagates any conversion failure.
func GetAll[T Native](r *Result, name string) ([]T, error) {
	if !r.completed {
		return nil, ErrNotParsed
	}
	vals, ok := r.entries[name]
	if !ok {
		return nil, &UnknownArgumentError{Name: name}
	}
	out := make([]T, 0, len(vals))
	for _, v := range vals {
		t, err := As[T](v)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", name, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// Get converts and returns the first value stored under name. Failure
// modes match GetAll; an entry that holds no values is also an error.
func Get[T Native](r *Result, name string) (T, error) {
	var zero T
	all, err := GetAll[T](r, name)
	if err != nil {
		return zero, err
	}
	if len(all) == 0 {
		return zero, fmt.Errorf("argument %q holds no values", name)
	}
	return all[0], nil
}

// GetOr is Get, except that an unparsed result or a missing entry yields
// def instead of an error. Conversion failures on an existing entry
// still propagate: defaults cover absence, not type mismatch.
func GetOr[T Native](r *Result, name string, def T) (T, error) {
	v, err := Get[T](r, name)
	if absent(err) {
		return def, nil
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// GetAllOr is GetAll, except that an unparsed result or a missing entry
// yields a one-element sequence containing def.
func GetAllOr[T Native](r *Result, name string, def T) ([]T, error) {
	all, err := GetAll[T](r, name)
	if absent(err) {
		return []T{def}, nil
	}
	if err != nil {
		return nil, err
	}
	return all, nil
}

func absent(err error) bool {
	if errors.Is(err, ErrNotParsed) {
		return true
	}
	var unknown *UnknownArgumentError
	return errors.As(err, &unknown)
}
