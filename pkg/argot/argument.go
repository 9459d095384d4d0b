// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argot

import (
	"fmt"
	"slices"
	"strings"
)

// Variable marks a spec whose arity is unbounded: it consumes every
// remaining unclaimed token. A Variable-arity spec must be the last one
// registered for its kind.
const Variable = -1

// Kind distinguishes the two argument variants.
type Kind int

const (
	// Positional arguments are matched by token position.
	Positional Kind = iota
	// Optional arguments are matched by one of their alias tokens.
	Optional
)

func (k Kind) String() string {
	if k == Positional {
		return "positional"
	}
	return "optional"
}

// Spec declares one named argument.
type Spec struct {
	Kind  Kind
	Name  string
	Type  ValueType
	Arity int // fixed count >= 0, or Variable
	Help  string
	// Aliases holds the token spellings that identify an Optional spec,
	// e.g. "-v" and "--verbose". Empty for Positional specs.
	Aliases []string
}

// Matches reports whether the token identifies this spec. Positional
// specs match by name equality, which is used for display rather than
// token classification; Optional specs match any of their aliases.
func (s Spec) Matches(token string) bool {
	if s.Kind == Positional {
		return s.Name == token
	}
	return slices.Contains(s.Aliases, token)
}

// Format returns the short usage fragment for the spec, e.g. "name",
// "name(0) name(1)" for arity 2, "name..." for Variable arity, and
// "[{-a|-b} name]" for optionals.
func (s Spec) Format() string {
	if s.Kind == Positional {
		return s.formatSlots()
	}
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(s.formatAliases())
	if slots := s.formatSlots(); slots != "" {
		b.WriteString(" ")
		b.WriteString(slots)
	}
	b.WriteString("]")
	return b.String()
}

func (s Spec) formatAliases() string {
	if len(s.Aliases) > 1 {
		return "{" + strings.Join(s.Aliases, "|") + "}"
	}
	return strings.Join(s.Aliases, "|")
}

func (s Spec) formatSlots() string {
	switch {
	case s.Arity == Variable:
		return s.Name + "..."
	case s.Arity == 1:
		return s.Name
	case s.Arity > 1:
		slots := make([]string, s.Arity)
		for i := range slots {
			slots[i] = fmt.Sprintf("%s(%d)", s.Name, i)
		}
		return strings.Join(slots, " ")
	}
	return ""
}

// Explain returns the header line of the spec's help entry: the alias
// list for optionals and a type annotation per slot. The comment text is
// wrapped and appended by the presentation layer.
func (s Spec) Explain() string {
	if s.Kind == Positional {
		types := s.Type.String()
		for i := 1; i < s.Arity; i++ {
			types += "," + s.Type.String()
		}
		if s.Arity == Variable {
			types += ",..."
		}
		return fmt.Sprintf("%s [%s]:", s.Name, types)
	}
	aliases := strings.Join(s.Aliases, "|")
	switch {
	case s.Arity == Variable:
		return fmt.Sprintf("%s [%s:%s,...]:", aliases, s.Name, s.Type)
	case s.Arity == 1:
		return fmt.Sprintf("%s [%s:%s]:", aliases, s.Name, s.Type)
	case s.Arity > 1:
		slots := make([]string, s.Arity)
		for i := range slots {
			slots[i] = fmt.Sprintf("%s(%d):%s", s.Name, i, s.Type)
		}
		return fmt.Sprintf("%s [%s]:", aliases, strings.Join(slots, ","))
	}
	return aliases + ":"
}

// helpName is reserved for the built-in help switch registered by New.
const helpName = "help"

// AddPositional registers a positional argument. Arity is a fixed count
// of value tokens, or Variable to consume every leftover token; a
// Variable-arity positional must be the last positional registered.
func (p *Parser) AddPositional(name string, typ ValueType, arity int, help string) error {
	if err := p.checkSpec(name, typ, arity, p.varPositional, Positional); err != nil {
		return err
	}
	if arity == Variable {
		p.varPositional = true
	}
	p.positionals = append(p.positionals, Spec{
		Kind:  Positional,
		Name:  name,
		Type:  typ,
		Arity: arity,
		Help:  help,
	})
	return nil
}

// AddOptional registers an optional argument identified by one or more
// alias tokens. Arity 0 declares a boolean switch: its presence records
// the value true and no tokens are consumed.
func (p *Parser) AddOptional(aliases []string, name string, typ ValueType, arity int, help string) error {
	if err := p.checkSpec(name, typ, arity, p.varOptional, Optional); err != nil {
		return err
	}
	if len(aliases) == 0 {
		return &RegistrationError{Name: name, Reason: "no aliases given"}
	}
	if arity == Variable {
		p.varOptional = true
	}
	p.optionals = append(p.optionals, Spec{
		Kind:    Optional,
		Name:    name,
		Type:    typ,
		Arity:   arity,
		Help:    help,
		Aliases: slices.Clone(aliases),
	})
	return nil
}

// AddSwitch registers a boolean optional with arity 0.
func (p *Parser) AddSwitch(aliases []string, name, help string) error {
	return p.AddOptional(aliases, name, Bool, 0, help)
}

func (p *Parser) checkSpec(name string, typ ValueType, arity int, varSeen bool, kind Kind) error {
	if typ == Null {
		return fmt.Errorf("register %q: %w", name, ErrNullType)
	}
	if name == helpName {
		return &RegistrationError{Name: name, Reason: "name is reserved for the built-in help switch"}
	}
	if arity < 0 && arity != Variable {
		return &RegistrationError{Name: name, Reason: fmt.Sprintf("invalid arity %d", arity)}
	}
	if varSeen {
		return &RegistrationError{
			Name:   name,
			Reason: fmt.Sprintf("a variable-arity %s argument is already registered", kind),
		}
	}
	return nil
}
