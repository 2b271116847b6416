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

package edits

import "znkr.io/edits/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// SplitSize sets the maximum number of characters that are compared at once. Texts are split into
// lines first and every line that's longer than n is split into pieces of n characters. The
// default is 200.
//
// The time and memory needed to compare two pieces grow with the product of their lengths.
func SplitSize(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.SplitSize = max(1, n)
		return config.SplitSize
	}
}

// Separators sets the text that encloses a changed region. The default is [Brackets].
func Separators(open, close string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Open, cfg.Close = open, close
		return config.Separators
	}
}

// Brackets encloses changed regions in "[" and "]".
func Brackets() Option { return Separators("[", "]") }

// Parens encloses changed regions in "(" and ")".
func Parens() Option { return Separators("(", ")") }

// Elide sets how much unchanged text is shown around changes. Unchanged text before the first
// change and after the last change is shortened to maxVisible characters, unchanged text between
// two changes to maxVisible/2 characters on either side. The elided text is replaced with
// replacement. The default is Elide(20, "...").
//
// A negative maxVisible disables elision.
func Elide(maxVisible int, replacement string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxVisible = maxVisible
		cfg.Replacement = replacement
		return config.Elide
	}
}

// Format sets the function that produces the display text of a single edit. The default is
// [Symbolic]. A nil function restores the default.
func Format(f func(Edit[rune]) string) Option {
	return func(cfg *config.Config) config.Flag {
		if f == nil {
			f = Symbolic
		}
		cfg.Format = f
		return config.Format
	}
}

// Parallel compares up to n pieces of the input concurrently. The result does not depend on n.
// The default is 1.
func Parallel(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Parallel = max(1, n)
		return config.Parallel
	}
}
