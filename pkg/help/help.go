// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package help renders usage lines and help text for an argot.Parser,
// and provides the configurable parse-then-exit behavior at the process
// boundary. The core parser never writes output or exits; everything
// presentational lives here.
package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/argot-cli/argot/pkg/argot"
)

const commentIndent = 8

// Usage returns the one-line usage summary:
//
//	prog [-h|--help] [{-v|--verbose}] [-n nums(0) nums(1)] src dst
func Usage(p *argot.Parser) string {
	parts := []string{p.Prog()}
	for _, spec := range p.Optionals() {
		parts = append(parts, spec.Format())
	}
	for _, spec := range p.Positionals() {
		if f := spec.Format(); f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}

// Explain returns the detailed per-argument listing: an Arguments block
// for positionals and an Options block for optionals, each entry headed
// by its alias list and slot types with the help text word-wrapped
// underneath.
func Explain(p *argot.Parser) string {
	var b strings.Builder
	if positionals := p.Positionals(); len(positionals) > 0 {
		b.WriteString("\nArguments\n")
		for _, spec := range positionals {
			writeEntry(&b, spec)
		}
	}
	if optionals := p.Optionals(); len(optionals) > 0 {
		b.WriteString("\nOptions\n")
		for _, spec := range optionals {
			writeEntry(&b, spec)
		}
	}
	return b.String()
}

func writeEntry(b *strings.Builder, spec argot.Spec) {
	b.WriteString("  ")
	b.WriteString(spec.Explain())
	b.WriteString("\n")
	if spec.Help != "" {
		b.WriteString(Wrap(spec.Help, Width(), commentIndent))
		b.WriteString("\n")
	}
}

// Write renders the help message to w. The simple form carries the
// description and usage line only; the full form appends the Explain
// blocks.
func Write(w io.Writer, p *argot.Parser, full bool) {
	if desc := p.Description(); desc != "" {
		fmt.Fprintf(w, "%s\n\n", desc)
	}
	fmt.Fprintf(w, "usage:\n  %s\n", Usage(p))
	if full {
		fmt.Fprint(w, Explain(p))
	}
}

// Dump writes a diagnostic view of the parser state: the input tokens,
// the declared specs, and every parsed entry with its typed values.
func Dump(w io.Writer, p *argot.Parser) {
	fmt.Fprintf(w, "# input arguments: %s\n", strings.Join(p.Tokens(), " "))

	var opts []string
	for _, spec := range p.Optionals() {
		opts = append(opts, spec.Format())
	}
	fmt.Fprintf(w, "# defined options: %s\n", strings.Join(opts, " "))

	var args []string
	for _, spec := range p.Positionals() {
		args = append(args, spec.Format())
	}
	fmt.Fprintf(w, "# named arguments: %s\n", strings.Join(args, " "))

	fmt.Fprintf(w, "# parsed arguments:\n")
	r := p.Result()
	for _, name := range r.Names() {
		vals, _ := r.Values(name)
		rendered := make([]string, 0, len(vals))
		for _, v := range vals {
			rendered = append(rendered, renderValue(v))
		}
		fmt.Fprintf(w, "    %s: %s\n", name, strings.Join(rendered, " "))
	}
}

func renderValue(v argot.Value) string {
	switch v.Type() {
	case argot.Bool:
		b, err := argot.As[bool](v)
		if err != nil {
			return v.Raw()
		}
		return fmt.Sprintf("%t", b)
	case argot.Integer:
		n, err := argot.As[int64](v)
		if err != nil {
			return v.Raw()
		}
		return fmt.Sprintf("%d", n)
	case argot.Float:
		f, err := argot.As[float64](v)
		if err != nil {
			return v.Raw()
		}
		return fmt.Sprintf("%f", f)
	}
	return v.Raw()
}
