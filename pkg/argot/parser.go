// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argot

import (
	"fmt"
	"slices"
)

// Parser consumes a raw token vector and the registered specs, producing
// a Result. It is a single-use engine: register specs, call Parse once,
// then query the Result. Calling Parse twice, or concurrently, is a
// precondition violation and is not supported.
type Parser struct {
	prog        string
	description string
	tokens      []string

	positionals   []Spec
	optionals     []Spec
	varPositional bool
	varOptional   bool
	envBindings   map[string]string

	result *Result
}

// New creates a Parser over the invocation vector. argv[0] is taken as
// the program name and excluded from parsing; desc is an optional
// human-readable program description used by help rendering.
//
// A reserved "-h|--help" boolean switch named "help" is registered up
// front; user specs may not reuse that name.
func New(argv []string, desc string) *Parser {
	p := &Parser{
		description: desc,
		result:      newResult(),
	}
	if len(argv) > 0 {
		p.prog = argv[0]
		p.tokens = slices.Clone(argv[1:])
	}
	p.optionals = append(p.optionals, Spec{
		Kind:    Optional,
		Name:    helpName,
		Type:    Bool,
		Arity:   0,
		Help:    "show this help message",
		Aliases: []string{"-h", "--help"},
	})
	return p
}

// Prog returns the program name taken from argv[0].
func (p *Parser) Prog() string { return p.prog }

// Description returns the program description.
func (p *Parser) Description() string { return p.description }

// SetDescription replaces the program description.
func (p *Parser) SetDescription(desc string) { p.description = desc }

// Tokens returns a copy of the token vector under parse.
func (p *Parser) Tokens() []string { return slices.Clone(p.tokens) }

// Positionals returns the registered positional specs in registration
// order.
func (p *Parser) Positionals() []Spec { return slices.Clone(p.positionals) }

// Optionals returns the registered optional specs in registration order,
// including the built-in help switch.
func (p *Parser) Optionals() []Spec { return slices.Clone(p.optionals) }

// Result returns the parse outcome. Lookups fail with ErrNotParsed until
// Parse has completed successfully.
func (p *Parser) Result() *Result { return p.result }

// Parse runs the two-phase match against the token vector.
//
// Phase one scans left to right and extracts optional arguments; a token
// is tested against every optional spec in registration order and the
// first spec whose alias set matches wins. Unmatched tokens are kept as
// positional candidates. Phase two resolves those candidates against the
// positional specs, again in registration order. Tokens left over after
// every positional is satisfied are ignored.
//
// The first conversion or arity failure aborts the parse; the Result
// stays unparsed and no partial values are exposed.
func (p *Parser) Parse() error {
	remaining, err := p.extractOptions()
	if err != nil {
		return err
	}
	if err := p.resolvePositionals(remaining); err != nil {
		return err
	}
	if err := p.applyEnv(); err != nil {
		return err
	}
	p.result.completed = true
	return nil
}

func (p *Parser) extractOptions() ([]string, error) {
	var remaining []string
	i := 0
scan:
	for i < len(p.tokens) {
		tok := p.tokens[i]
		for _, spec := range p.optionals {
			if !spec.Matches(tok) {
				continue
			}
			i++
			switch {
			case spec.Arity == 0:
				p.result.set(spec.Name, []Value{{typ: Bool, raw: "true"}})
			case spec.Arity == Variable:
				vals, err := convertTokens(spec, p.tokens[i:])
				if err != nil {
					return nil, err
				}
				p.result.set(spec.Name, vals)
				i = len(p.tokens)
			default:
				if len(p.tokens)-i < spec.Arity {
					return nil, &InsufficientArgsError{
						Name: spec.Name,
						Want: spec.Arity,
						Got:  len(p.tokens) - i,
					}
				}
				vals, err := convertTokens(spec, p.tokens[i:i+spec.Arity])
				if err != nil {
					return nil, err
				}
				p.result.set(spec.Name, vals)
				i += spec.Arity
			}
			continue scan
		}
		remaining = append(remaining, tok)
		i++
	}
	return remaining, nil
}

func (p *Parser) resolvePositionals(remaining []string) error {
	j := 0
	for _, spec := range p.positionals {
		if j >= len(remaining) {
			return &InsufficientArgsError{Name: spec.Name, Want: spec.Arity, Got: 0}
		}
		switch {
		case spec.Arity == Variable:
			vals, err := convertTokens(spec, remaining[j:])
			if err != nil {
				return err
			}
			p.result.set(spec.Name, vals)
			j = len(remaining)
		case spec.Arity >= 1:
			if len(remaining)-j < spec.Arity {
				return &InsufficientArgsError{
					Name: spec.Name,
					Want: spec.Arity,
					Got:  len(remaining) - j,
				}
			}
			vals, err := convertTokens(spec, remaining[j:j+spec.Arity])
			if err != nil {
				return err
			}
			p.result.set(spec.Name, vals)
			j += spec.Arity
		default:
			// Arity 0: the entry exists but holds no values.
			p.result.set(spec.Name, nil)
		}
	}
	return nil
}

func convertTokens(spec Spec, toks []string) ([]Value, error) {
	vals := make([]Value, 0, len(toks))
	for _, tok := range toks {
		v, err := NewValue(spec.Type, tok)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", spec.Name, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
