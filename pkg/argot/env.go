// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argot

import (
	"fmt"
	"os"
	"strings"
)

// BindEnv registers an environment-variable fallback for the named
// optional argument. When Parse finds no tokens for the name and envVar
// is set in the environment, its value is converted with the same
// fail-fast rules as command-line tokens.
//
// For arity-0 switches the variable must hold a boolean literal. For
// fixed arities greater than one the variable is split on whitespace and
// must yield exactly that many fields; Variable arity takes every field.
func (p *Parser) BindEnv(name, envVar string) {
	if p.envBindings == nil {
		p.envBindings = make(map[string]string)
	}
	p.envBindings[name] = envVar
}

func (p *Parser) applyEnv() error {
	if len(p.envBindings) == 0 {
		return nil
	}
	for _, spec := range p.optionals {
		envVar, ok := p.envBindings[spec.Name]
		if !ok || p.result.Has(spec.Name) {
			continue
		}
		raw, ok := os.LookupEnv(envVar)
		if !ok {
			continue
		}
		vals, err := envValues(spec, raw)
		if err != nil {
			return fmt.Errorf("environment %s: %w", envVar, err)
		}
		p.result.set(spec.Name, vals)
	}
	return nil
}

func envValues(spec Spec, raw string) ([]Value, error) {
	if spec.Arity == 0 {
		v, err := NewValue(Bool, raw)
		if err != nil {
			return nil, err
		}
		return []Value{v}, nil
	}
	fields := strings.Fields(raw)
	if spec.Arity != Variable && len(fields) != spec.Arity {
		return nil, &InsufficientArgsError{Name: spec.Name, Want: spec.Arity, Got: len(fields)}
	}
	return convertTokens(spec, fields)
}
