// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tagcp demonstrates registering arguments by hand and letting
// package help handle errors and the help switch.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/argot-cli/argot/pkg/argot"
	"github.com/argot-cli/argot/pkg/help"
)

func main() {
	p := argot.New(os.Args, "copy a file and stamp it with a tag")
	must(p.AddSwitch([]string{"-v", "--verbose"}, "verbose", "enable verbose output"))
	must(p.AddOptional([]string{"-n"}, "nums", argot.Integer, 2, "two numbers recorded in the tag"))
	must(p.AddPositional("src", argot.String, 1, "source path"))
	must(p.AddPositional("dst", argot.String, 1, "destination path"))

	if err := help.Run(p, help.Options{HelpOnError: true, ExitOnHelp: true}); err != nil {
		log.Fatal(err)
	}

	var flags struct {
		Verbose bool    `arg:"verbose"`
		Nums    []int64 `arg:"nums"`
		Src     string  `arg:"src"`
		Dst     string  `arg:"dst"`
	}
	must(argot.Bind(p.Result(), &flags))

	if flags.Verbose {
		help.Dump(os.Stderr, p)
	}
	fmt.Printf("copy %s -> %s (nums: %v)\n", flags.Src, flags.Dst, flags.Nums)
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
