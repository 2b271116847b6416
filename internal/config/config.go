// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// edits.Option.
package config

import (
	"znkr.io/edits/internal/ops"
	"znkr.io/edits/internal/render"
)

// Config collects all configurable parameters for the functions in this module.
type Config struct {
	// SplitSize is the maximum number of characters compared at once.
	SplitSize int

	// Open and Close enclose a changed region.
	Open, Close string

	// MaxVisible is the number of unchanged characters shown around changes, negative values
	// disable elision.
	MaxVisible int

	// Replacement is shown in place of elided characters.
	Replacement string

	// Format produces the display text of a single edit.
	Format func(ops.Edit[rune]) string

	// Parallel is the maximum number of chunks compared concurrently.
	Parallel int
}

// Default is the default configuration.
var Default = Config{
	SplitSize:   200,
	Open:        "[",
	Close:       "]",
	MaxVisible:  20,
	Replacement: "...",
	Format:      render.Symbolic,
	Parallel:    1,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	SplitSize Flag = 1 << iota
	Separators
	Elide
	Format
	Parallel
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

// Separators returns the configured separators.
func (cfg *Config) Separators() render.Separators {
	return render.Separators{Open: cfg.Open, Close: cfg.Close}
}

// ElideOptions returns the configured elision options.
func (cfg *Config) ElideOptions() render.ElideOptions {
	return render.ElideOptions{MaxVisible: cfg.MaxVisible, Replacement: cfg.Replacement}
}

func printFlag(flag Flag) string {
	switch flag {
	case SplitSize:
		return "edits.SplitSize"
	case Separators:
		return "edits.Separators"
	case Elide:
		return "edits.Elide"
	case Format:
		return "edits.Format"
	case Parallel:
		return "edits.Parallel"
	default:
		panic("never reached")
	}
}
