// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package help

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/argot-cli/argot/pkg/argot"
)

// ErrShown is returned by Run when help or an error message was already
// displayed. Callers should treat it as a signal to stop and return nil
// to the user.
var ErrShown = errors.New("help or error displayed")

// exitFn is swapped out in tests.
var exitFn = os.Exit

// Options configure the behavior at the process boundary. Both booleans
// default to off, leaving errors and help handling to the caller.
type Options struct {
	// HelpOnError renders the usage line plus the error to Output and
	// exits with a failure status when Parse fails.
	HelpOnError bool
	// ExitOnHelp renders the full help to Output and exits successfully
	// when the parse succeeds and the help switch was given.
	ExitOnHelp bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// Run parses p's tokens and applies the configured side effects. With
// both options off it behaves exactly like p.Parse.
func Run(p *argot.Parser, opts Options) error {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if err := p.Parse(); err != nil {
		if opts.HelpOnError {
			Write(out, p, false)
			fmt.Fprintf(out, "%s %v\n", color.RedString("error:"), err)
			exitFn(1)
			return ErrShown
		}
		return err
	}
	if opts.ExitOnHelp {
		if requested, err := argot.GetOr(p.Result(), "help", false); err == nil && requested {
			Write(out, p, true)
			exitFn(0)
			return ErrShown
		}
	}
	return nil
}
