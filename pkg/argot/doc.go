// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argot converts a raw command-line token vector into a typed,
// named result set.
//
// Callers declare the expected interface up front: positional arguments
// (matched by position) and optional arguments (matched by alias tokens
// such as "-v" or "--verbose"), each with a name, a value type, an arity,
// and help text. A single Parse call then classifies tokens, converts them
// into typed values, and exposes them through a lookup API.
//
// # Basic Usage
//
//	p := argot.New(os.Args, "copy files with a tag")
//	p.AddSwitch([]string{"-v", "--verbose"}, "verbose", "enable verbose output")
//	p.AddOptional([]string{"-n"}, "nums", argot.Integer, 2, "two magic numbers")
//	p.AddPositional("src", argot.String, 1, "source path")
//	p.AddPositional("dst", argot.String, 1, "destination path")
//
//	if err := p.Parse(); err != nil {
//	    log.Fatal(err)
//	}
//	verbose, _ := argot.GetOr(p.Result(), "verbose", false)
//	src, err := argot.Get[string](p.Result(), "src")
//
// Parsing runs in two phases. Phase one scans tokens left to right and
// extracts optional arguments; when the alias sets of two optionals
// overlap, the first registered spec wins. Phase two resolves the
// remaining tokens against the positional specs in registration order.
// Any conversion or arity failure aborts the parse immediately and no
// partial result is exposed.
//
// A Parser is a single-use engine: Parse must be called at most once per
// instance, from a single goroutine. There are no reset semantics.
//
// Help rendering, word wrapping and exit-on-error behavior live in
// package help; declarative registration from a file lives in package
// manifest.
package argot
