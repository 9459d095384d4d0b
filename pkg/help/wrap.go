// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package help

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const defaultWidth = 80

// Test seams, and a single place to touch the terminal.
var (
	isTerminalFn = term.IsTerminal
	sizeFn       = term.GetSize
)

// Width returns the column width help text is wrapped at: the terminal
// width when stdout is a terminal, defaultWidth otherwise.
func Width() int {
	fd := int(os.Stdout.Fd())
	if !isTerminalFn(fd) {
		return defaultWidth
	}
	cols, _, err := sizeFn(fd)
	if err != nil || cols <= 0 {
		return defaultWidth
	}
	return cols
}

// Wrap word-wraps text at the given column width, indenting every line
// by indent spaces.
func Wrap(text string, width, indent int) string {
	if width <= indent {
		width = indent + 1
	}
	pad := strings.Repeat(" ", indent)
	limit := width - indent

	var b strings.Builder
	line := 0
	for _, word := range strings.Fields(text) {
		switch {
		case line == 0:
			b.WriteString(pad)
			b.WriteString(word)
			line = len(word)
		case line+1+len(word) > limit:
			b.WriteString("\n")
			b.WriteString(pad)
			b.WriteString(word)
			line = len(word)
		default:
			b.WriteString(" ")
			b.WriteString(word)
			line += 1 + len(word)
		}
	}
	return b.String()
}
