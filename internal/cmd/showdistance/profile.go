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

package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"znkr.io/edits"
)

// profile collects the display settings that can be set in a config file or on the command line.
type profile struct {
	Split      int    `toml:"split"`
	Context    int    `toml:"context"`
	Ellipsis   string `toml:"ellipsis"`
	Separators string `toml:"separators"`
	Color      string `toml:"color"`
	Parallel   int    `toml:"parallel"`
}

var defaultProfile = profile{
	Split:      200,
	Context:    20,
	Ellipsis:   "...",
	Separators: "[]",
	Color:      "auto",
	Parallel:   1,
}

// loadProfile reads a TOML profile. Settings missing from the file keep their default.
func loadProfile(filename string) (profile, error) {
	p := defaultProfile
	md, err := toml.DecodeFile(filename, &p)
	if err != nil {
		return profile{}, fmt.Errorf("reading config: %v", err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return profile{}, fmt.Errorf("reading config: unknown setting %q", keys[0].String())
	}
	return p, nil
}

// merge overwrites the settings in p that weren't changed on the command line with the settings
// from the config file.
func merge(p *profile, file profile, changed func(name string) bool) {
	if !changed("split") {
		p.Split = file.Split
	}
	if !changed("context") {
		p.Context = file.Context
	}
	if !changed("ellipsis") {
		p.Ellipsis = file.Ellipsis
	}
	if !changed("separators") {
		p.Separators = file.Separators
	}
	if !changed("color") {
		p.Color = file.Color
	}
	if !changed("parallel") {
		p.Parallel = file.Parallel
	}
}

// options converts the profile into comparison options. Whether colors are used depends on the
// color setting and, for "auto", on tty.
func (p profile) options(tty bool) ([]edits.Option, error) {
	open, close, err := parseSeparators(p.Separators)
	if err != nil {
		return nil, err
	}
	opts := []edits.Option{
		edits.SplitSize(p.Split),
		edits.Elide(p.Context, p.Ellipsis),
		edits.Separators(open, close),
		edits.Parallel(p.Parallel),
	}
	switch p.Color {
	case "always":
		opts = append(opts, edits.Format(edits.Colored))
	case "auto":
		if tty {
			opts = append(opts, edits.Format(edits.Colored))
		}
	case "never":
		// Symbolic is the default.
	default:
		return nil, fmt.Errorf("invalid color setting %q, want auto, always or never", p.Color)
	}
	return opts, nil
}

var errSeparators = errors.New(`separators must be two characters or "open,close"`)

// parseSeparators parses either two characters, e.g. "()", or two strings separated by a comma,
// e.g. "<<,>>".
func parseSeparators(s string) (open, close string, err error) {
	if o, c, found := strings.Cut(s, ","); found {
		return o, c, nil
	}
	if utf8.RuneCountInString(s) != 2 {
		return "", "", fmt.Errorf("%w: %q", errSeparators, s)
	}
	_, n := utf8.DecodeRuneInString(s)
	return s[:n], s[n:], nil
}
