// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argot

import (
	"errors"
	"testing"
)

func TestNewValue(t *testing.T) {
	tests := []struct {
		name    string
		typ     ValueType
		raw     string
		wantErr bool
	}{
		{name: "bool literal true", typ: Bool, raw: "true"},
		{name: "bool literal mixed case", typ: Bool, raw: "TrUe"},
		{name: "bool literal false", typ: Bool, raw: "false"},
		{name: "bool from integer", typ: Bool, raw: "42"},
		{name: "bool from zero", typ: Bool, raw: "0"},
		{name: "bool garbage", typ: Bool, raw: "yes", wantErr: true},
		{name: "integer", typ: Integer, raw: "-17"},
		{name: "integer partial", typ: Integer, raw: "17abc", wantErr: true},
		{name: "integer empty", typ: Integer, raw: "", wantErr: true},
		{name: "float", typ: Float, raw: "3.25"},
		{name: "float exponent", typ: Float, raw: "1e-3"},
		{name: "float garbage", typ: Float, raw: "3.2.5", wantErr: true},
		{name: "string always converts", typ: String, raw: "anything at all"},
		{name: "string empty", typ: String, raw: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewValue(tt.typ, tt.raw)
			if tt.wantErr {
				var convErr *ConversionError
				if !errors.As(err, &convErr) {
					t.Fatalf("NewValue(%v, %q) error = %v, want ConversionError", tt.typ, tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewValue(%v, %q) error = %v", tt.typ, tt.raw, err)
			}
			if v.Type() != tt.typ {
				t.Errorf("Type() = %v, want %v", v.Type(), tt.typ)
			}
			if v.Raw() != tt.raw {
				t.Errorf("Raw() = %q, want %q", v.Raw(), tt.raw)
			}
		})
	}
}

func TestNewValueNullType(t *testing.T) {
	_, err := NewValue(Null, "x")
	if !errors.Is(err, ErrNullType) {
		t.Fatalf("NewValue(Null, ...) error = %v, want ErrNullType", err)
	}
}

func TestAssignRevalidates(t *testing.T) {
	v, err := NewValue(Integer, "1")
	if err != nil {
		t.Fatal(err)
	}
	if err := v.Assign("99"); err != nil {
		t.Fatalf("Assign(99) error = %v", err)
	}
	if got, _ := As[int64](v); got != 99 {
		t.Errorf("As[int64] = %d, want 99", got)
	}

	// A failed Assign keeps the previous text.
	if err := v.Assign("not-a-number"); err == nil {
		t.Fatal("Assign(not-a-number) succeeded, want error")
	}
	if v.Raw() != "99" {
		t.Errorf("Raw() after failed Assign = %q, want %q", v.Raw(), "99")
	}
}

func TestAs(t *testing.T) {
	v, err := NewValue(Integer, "42")
	if err != nil {
		t.Fatal(err)
	}
	if got, err := As[int64](v); err != nil || got != 42 {
		t.Errorf("As[int64] = %d, %v, want 42, nil", got, err)
	}
	if got, err := As[float64](v); err != nil || got != 42 {
		t.Errorf("As[float64] = %f, %v, want 42, nil", got, err)
	}
	if got, err := As[bool](v); err != nil || got != true {
		t.Errorf("As[bool] = %t, %v, want true, nil", got, err)
	}
	if got, err := As[string](v); err != nil || got != "42" {
		t.Errorf("As[string] = %q, %v, want \"42\", nil", got, err)
	}
}

func TestAsCrossTagFailure(t *testing.T) {
	// A String-typed value converts to a narrower type only when the
	// text happens to parse.
	v, err := NewValue(String, "hello")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := As[int64](v); err == nil {
		t.Error("As[int64] on non-numeric text succeeded, want error")
	}
	if _, err := As[string](v); err != nil {
		t.Errorf("As[string] error = %v", err)
	}
}

func TestDescribeType(t *testing.T) {
	for typ, want := range map[ValueType]string{
		Bool:    "bool",
		Integer: "integer",
		Float:   "float",
		String:  "string",
	} {
		v := Value{typ: typ, raw: "1"}
		got, err := v.DescribeType()
		if err != nil || got != want {
			t.Errorf("DescribeType(%v) = %q, %v, want %q, nil", typ, got, err, want)
		}
	}

	var zero Value
	if _, err := zero.DescribeType(); !errors.Is(err, ErrNullType) {
		t.Errorf("DescribeType on zero Value error = %v, want ErrNullType", err)
	}
}
