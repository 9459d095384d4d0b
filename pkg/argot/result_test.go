// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argot

import (
	"errors"
	"reflect"
	"testing"
)

func parsedResult(t *testing.T) *Result {
	t.Helper()
	p := New([]string{"prog", "-n", "3", "4", "hello"}, "")
	if err := p.AddOptional([]string{"-n"}, "nums", Integer, 2, ""); err != nil {
		t.Fatal(err)
	}
	if err := p.AddPositional("tag", String, 1, ""); err != nil {
		t.Fatal(err)
	}
	if err := p.Parse(); err != nil {
		t.Fatal(err)
	}
	return p.Result()
}

func TestQueriesBeforeParse(t *testing.T) {
	p := New([]string{"prog", "alice"}, "")
	if err := p.AddPositional("name", String, 1, ""); err != nil {
		t.Fatal(err)
	}

	if _, err := Get[string](p.Result(), "name"); !errors.Is(err, ErrNotParsed) {
		t.Errorf("Get before parse error = %v, want ErrNotParsed", err)
	}
	if _, err := GetAll[string](p.Result(), "name"); !errors.Is(err, ErrNotParsed) {
		t.Errorf("GetAll before parse error = %v, want ErrNotParsed", err)
	}
	if p.Result().Completed() {
		t.Error("Completed() = true before parse")
	}
}

func TestGetFirstOfMultiValueEntry(t *testing.T) {
	r := parsedResult(t)
	first, err := Get[int64](r, "nums")
	if err != nil || first != 3 {
		t.Errorf("Get[int64](nums) = %d, %v, want 3, nil", first, err)
	}
}

func TestGetUnknownArgument(t *testing.T) {
	r := parsedResult(t)
	_, err := Get[string](r, "nope")
	var unknown *UnknownArgumentError
	if !errors.As(err, &unknown) {
		t.Fatalf("Get(nope) error = %v, want UnknownArgumentError", err)
	}
	if unknown.Name != "nope" {
		t.Errorf("unknown.Name = %q, want %q", unknown.Name, "nope")
	}
}

func TestDefaultsCoverAbsence(t *testing.T) {
	r := parsedResult(t)

	got, err := GetOr[string](r, "nope", "fallback")
	if err != nil || got != "fallback" {
		t.Errorf("GetOr(nope) = %q, %v, want %q, nil", got, err, "fallback")
	}

	all, err := GetAllOr[int64](r, "nope", 7)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int64{7}; !reflect.DeepEqual(all, want) {
		t.Errorf("GetAllOr(nope) = %v, want %v", all, want)
	}

	// An existing entry wins over the default.
	tag, err := GetOr[string](r, "tag", "fallback")
	if err != nil || tag != "hello" {
		t.Errorf("GetOr(tag) = %q, %v, want %q, nil", tag, err, "hello")
	}
}

func TestDefaultsCoverNotParsed(t *testing.T) {
	p := New([]string{"prog"}, "")
	got, err := GetOr(p.Result(), "verbose", true)
	if err != nil || !got {
		t.Errorf("GetOr before parse = %t, %v, want true, nil", got, err)
	}
}

func TestDefaultsDoNotCoverConversionFailure(t *testing.T) {
	r := parsedResult(t)
	// "tag" exists but holds non-numeric text; the default must not
	// mask the conversion failure.
	if _, err := GetOr[int64](r, "tag", 5); err == nil {
		t.Error("GetOr on a non-convertible entry succeeded, want error")
	}
	if _, err := GetAllOr[int64](r, "tag", 5); err == nil {
		t.Error("GetAllOr on a non-convertible entry succeeded, want error")
	}
}

func TestHasDoesNotRequireParse(t *testing.T) {
	p := New([]string{"prog", "-v"}, "")
	if err := p.AddSwitch([]string{"-v"}, "verbose", ""); err != nil {
		t.Fatal(err)
	}
	if p.Result().Has("verbose") {
		t.Error("Has(verbose) = true before parse")
	}
	if err := p.Parse(); err != nil {
		t.Fatal(err)
	}
	if !p.Result().Has("verbose") {
		t.Error("Has(verbose) = false after parse")
	}
	if p.Result().Has("absent") {
		t.Error("Has(absent) = true")
	}
}

func TestNamesPreserveInsertionOrder(t *testing.T) {
	r := parsedResult(t)
	if want := []string{"nums", "tag"}; !reflect.DeepEqual(r.Names(), want) {
		t.Errorf("Names() = %v, want %v", r.Names(), want)
	}
}
