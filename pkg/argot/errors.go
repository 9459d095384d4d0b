// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argot

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions that carry no further detail.
var (
	// ErrNullType is returned when a Value or an argument spec is
	// constructed with the Null type tag.
	ErrNullType = errors.New("argument type is null")

	// ErrNotParsed is returned by lookups made before a successful Parse.
	ErrNotParsed = errors.New("arguments are not parsed")
)

// ConversionError is returned when raw text cannot be converted to the
// declared or requested value type.
type ConversionError struct {
	Raw    string    // the offending token
	Target ValueType // the type the token failed to convert to
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("value %q is not convertible to %s", e.Raw, e.Target)
}

// RegistrationError is returned when an argument spec cannot be
// registered, typically because a variable-arity spec of the same kind
// already exists or the name is reserved.
type RegistrationError struct {
	Name   string
	Reason string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("cannot register %q: %s", e.Name, e.Reason)
}

// InsufficientArgsError is returned when fewer tokens remain than an
// argument's arity requires, in either parse phase.
type InsufficientArgsError struct {
	Name string // the spec left unsatisfied
	Want int    // tokens required (Variable when any were required)
	Got  int    // tokens that were available
}

func (e *InsufficientArgsError) Error() string {
	if e.Want == Variable {
		return fmt.Sprintf("insufficient arguments for %q", e.Name)
	}
	return fmt.Sprintf("insufficient arguments for %q: want %d, got %d", e.Name, e.Want, e.Got)
}

// UnknownArgumentError is returned when a lookup names an argument that
// has no entry in the result.
type UnknownArgumentError struct {
	Name string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("unknown argument: %s", e.Name)
}
