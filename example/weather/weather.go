// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command weather demonstrates declaring a command-line interface in a
// manifest file instead of registering specs in code.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/argot-cli/argot/pkg/argot"
	"github.com/argot-cli/argot/pkg/help"
	"github.com/argot-cli/argot/pkg/manifest"
)

func main() {
	p, err := manifest.Parser(os.Args, "args.toml")
	if err != nil {
		log.Fatal(err)
	}
	if err := help.Run(p, help.Options{HelpOnError: true, ExitOnHelp: true}); err != nil {
		log.Fatal(err)
	}

	city, err := argot.Get[string](p.Result(), "city")
	if err != nil {
		log.Fatal(err)
	}
	units, err := argot.GetOr(p.Result(), "units", "celsius")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("forecast for %s in %s\n", city, units)
}
