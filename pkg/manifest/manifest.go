// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manifest declares a program's command-line interface in a TOML
// or YAML file and applies it to an argot.Parser, so the interface can
// live next to the code instead of being registered call by call.
//
// A manifest looks like:
//
//	description = "copy files with a tag"
//
//	[[option]]
//	aliases = ["-v", "--verbose"]
//	name    = "verbose"
//	help    = "enable verbose output"
//
//	[[option]]
//	aliases = ["-n"]
//	name    = "nums"
//	type    = "integer"
//	arity   = 2
//	env     = "COPY_NUMS"
//
//	[[positional]]
//	name = "src"
//	type = "string"
//	help = "source path"
//
// Options default to boolean switches (type bool, arity 0); positionals
// default to arity 1 and must name a type. An arity of -1 declares
// variable arity.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/argot-cli/argot/pkg/argot"
)

// File is the decoded manifest.
type File struct {
	Description string     `toml:"description" yaml:"description"`
	Positional  []Argument `toml:"positional" yaml:"positional"`
	Option      []Option   `toml:"option" yaml:"option"`
}

// Argument declares one positional argument.
type Argument struct {
	Name  string `toml:"name" yaml:"name"`
	Type  string `toml:"type" yaml:"type"`
	Arity *int   `toml:"arity" yaml:"arity"`
	Help  string `toml:"help" yaml:"help"`
}

// Option declares one optional argument.
type Option struct {
	Aliases []string `toml:"aliases" yaml:"aliases"`
	Name    string   `toml:"name" yaml:"name"`
	Type    string   `toml:"type" yaml:"type"`
	Arity   *int     `toml:"arity" yaml:"arity"`
	Help    string   `toml:"help" yaml:"help"`
	// Env names an environment variable used as a fallback when the
	// option is absent from the command line.
	Env string `toml:"env" yaml:"env"`
}

// Load reads and decodes a manifest. The format is chosen by file
// extension: .toml, .yaml or .yml.
func Load(path string) (*File, error) {
	var f File
	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &f); err != nil {
			return nil, fmt.Errorf("decode manifest %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read manifest %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode manifest %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", filepath.Ext(path))
	}
	return &f, nil
}

// Apply registers every declared argument on p, options first, both in
// file order.
func (f *File) Apply(p *argot.Parser) error {
	if f.Description != "" {
		p.SetDescription(f.Description)
	}
	for _, o := range f.Option {
		typ := argot.Bool
		if o.Type != "" {
			var err error
			if typ, err = parseType(o.Type); err != nil {
				return fmt.Errorf("option %q: %w", o.Name, err)
			}
		}
		arity := 0
		if o.Arity != nil {
			arity = *o.Arity
		}
		if err := p.AddOptional(o.Aliases, o.Name, typ, arity, o.Help); err != nil {
			return err
		}
		if o.Env != "" {
			p.BindEnv(o.Name, o.Env)
		}
	}
	for _, a := range f.Positional {
		typ, err := parseType(a.Type)
		if err != nil {
			return fmt.Errorf("positional %q: %w", a.Name, err)
		}
		arity := 1
		if a.Arity != nil {
			arity = *a.Arity
		}
		if err := p.AddPositional(a.Name, typ, arity, a.Help); err != nil {
			return err
		}
	}
	return nil
}

// Parser loads the manifest at path and returns a parser over argv with
// every declared argument registered.
func Parser(argv []string, path string) (*argot.Parser, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	p := argot.New(argv, f.Description)
	if err := f.Apply(p); err != nil {
		return nil, err
	}
	return p, nil
}

func parseType(s string) (argot.ValueType, error) {
	switch s {
	case "bool":
		return argot.Bool, nil
	case "int", "integer":
		return argot.Integer, nil
	case "float", "double":
		return argot.Float, nil
	case "str", "string":
		return argot.String, nil
	case "":
		return argot.Null, fmt.Errorf("missing value type")
	}
	return argot.Null, fmt.Errorf("unknown value type %q", s)
}
