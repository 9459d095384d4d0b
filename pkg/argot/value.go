// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argot

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueType identifies the declared type of a Value.
type ValueType int

const (
	// Null is a sentinel; constructing a Value or a spec with it fails.
	Null ValueType = iota
	Bool
	Integer
	Float
	String
)

func (t ValueType) String() string {
	switch t {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case String:
		return "string"
	}
	return fmt.Sprintf("ValueType(%d)", int(t))
}

// Value is a typed scalar backed by its raw textual representation.
// The raw text is validated against the type tag at construction and at
// every Assign; a Value that exists is always convertible to its tag.
type Value struct {
	typ ValueType
	raw string
}

// NewValue constructs a Value, failing with ErrNullType for the Null tag
// and with a ConversionError when raw does not convert to typ.
func NewValue(typ ValueType, raw string) (Value, error) {
	v := Value{typ: typ, raw: raw}
	if err := v.check(); err != nil {
		return Value{}, err
	}
	return v, nil
}

// Type returns the type tag recorded at construction.
func (v Value) Type() ValueType { return v.typ }

// Raw returns the backing text.
func (v Value) Raw() string { return v.raw }

// Assign replaces the backing text, revalidating it against the existing
// type tag. On failure the previous text is kept.
func (v *Value) Assign(raw string) error {
	old := v.raw
	v.raw = raw
	if err := v.check(); err != nil {
		v.raw = old
		return err
	}
	return nil
}

// DescribeType returns the human-readable name of the stored type. It
// fails for the Null tag and for unrecognized tags.
func (v Value) DescribeType() (string, error) {
	switch v.typ {
	case Bool, Integer, Float, String:
		return v.typ.String(), nil
	case Null:
		return "", ErrNullType
	}
	return "", fmt.Errorf("unrecognized argument type %d", int(v.typ))
}

func (v Value) check() error {
	switch v.typ {
	case Null:
		return ErrNullType
	case Bool:
		_, err := toBool(v.raw)
		return err
	case Integer:
		_, err := toInteger(v.raw)
		return err
	case Float:
		_, err := toFloat(v.raw)
		return err
	case String:
		return nil
	}
	return fmt.Errorf("unrecognized argument type %d", int(v.typ))
}

// Native is the closed set of Go types a Value converts to.
type Native interface {
	bool | int64 | float64 | string
}

// As converts the Value's raw text into the requested native type. The
// conversion function is selected by T, not by the type tag; requesting
// a type other than the tag's natural one is permitted whenever the text
// happens to convert.
func As[T Native](v Value) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *bool:
		b, err := toBool(v.raw)
		if err != nil {
			return out, err
		}
		*p = b
	case *int64:
		n, err := toInteger(v.raw)
		if err != nil {
			return out, err
		}
		*p = n
	case *float64:
		f, err := toFloat(v.raw)
		if err != nil {
			return out, err
		}
		*p = f
	case *string:
		*p = v.raw
	}
	return out, nil
}

// toBool accepts the literals "true" and "false" in any case, and
// otherwise falls back to an integer parse tested against zero.
func toBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, &ConversionError{Raw: raw, Target: Bool}
	}
	return n != 0, nil
}

func toInteger(raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ConversionError{Raw: raw, Target: Integer}
	}
	return n, nil
}

func toFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ConversionError{Raw: raw, Target: Float}
	}
	return f, nil
}
