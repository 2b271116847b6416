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

package render

import "unicode/utf8"

// ElideOptions configure how unchanged text around changed regions is shortened.
type ElideOptions struct {
	// MaxVisible is the number of characters of an unchanged run that remain visible. A negative
	// value disables elision.
	MaxVisible int

	// Replacement is displayed in place of the elided characters.
	Replacement string
}

// run is a maximal sequence of tokens that is either entirely inside a pair of delimiters or
// entirely outside.
type run struct {
	tokens    []Token
	delimited bool
}

// Elide shortens unchanged runs of tokens that are longer than opts.MaxVisible characters:
//
//   - The run at the start keeps its last MaxVisible characters: "...xyz[+a]".
//   - The run at the end keeps its first MaxVisible characters: "[+a]xyz...".
//   - A run between two changes keeps MaxVisible/2 characters on either side: "[+a]x...z[+b]".
//
// Changed regions are never shortened. If ts contains no changes at all, nothing is shortened.
// The returned tokens are enclosed in Start and End.
func Elide(ts []Token, opts ElideOptions) []Token {
	all := make([]Token, 0, len(ts)+2)
	all = append(all, Token{Kind: Start})
	all = append(all, ts...)
	all = append(all, Token{Kind: End})
	if opts.MaxVisible < 0 {
		return all
	}

	out := make([]Token, 0, len(all))
	for _, r := range partition(all) {
		first, last := r.tokens[0].Kind == Start, r.tokens[len(r.tokens)-1].Kind == End
		switch {
		case r.delimited, first && last:
			out = append(out, r.tokens...)
		case first:
			out = append(out, elideLeft(r.tokens, opts)...)
		case last:
			out = append(out, elideRight(r.tokens, opts)...)
		default:
			out = append(out, elideCenter(r.tokens, opts)...)
		}
	}
	return out
}

// partition splits ts into alternating runs outside and inside of delimiters, e.g.
//
//	ab[cd]ef[g]h -> ab, [cd], ef, [g], h
//
// Delimiters alternate between opening and closing a region, which makes it possible to use the
// same text for both.
func partition(ts []Token) []run {
	var runs []run
	var cur run
	for _, t := range ts {
		if t.Kind != Delimiter {
			cur.tokens = append(cur.tokens, t)
			continue
		}
		if !cur.delimited {
			if len(cur.tokens) > 0 {
				runs = append(runs, cur)
			}
			cur = run{tokens: []Token{t}, delimited: true}
			continue
		}
		cur.tokens = append(cur.tokens, t)
		runs = append(runs, cur)
		cur = run{}
	}
	if len(cur.tokens) > 0 {
		runs = append(runs, cur)
	}
	return runs
}

// size returns the number of characters of the kept text in ts.
func size(ts []Token) int {
	n := 0
	for _, t := range ts {
		n += width(t)
	}
	return n
}

func width(t Token) int {
	if t.Kind != Kept {
		return 0
	}
	return utf8.RuneCountInString(t.Text)
}

// prefix returns the largest i such that ts[:i] contains at most n characters.
func prefix(ts []Token, n int) int {
	i, w := 0, 0
	for i < len(ts) && w+width(ts[i]) <= n {
		w += width(ts[i])
		i++
	}
	return i
}

// suffix returns the smallest i such that ts[i:] contains at most n characters.
func suffix(ts []Token, n int) int {
	i, w := len(ts), 0
	for i > 0 && w+width(ts[i-1]) <= n {
		w += width(ts[i-1])
		i--
	}
	return i
}

func elideLeft(ts []Token, opts ElideOptions) []Token {
	if size(ts) <= opts.MaxVisible {
		return ts
	}
	out := []Token{{Kind: Start}, {Kept, opts.Replacement}}
	return append(out, ts[suffix(ts, opts.MaxVisible):]...)
}

func elideRight(ts []Token, opts ElideOptions) []Token {
	if size(ts) <= opts.MaxVisible {
		return ts
	}
	out := append([]Token(nil), ts[:prefix(ts, opts.MaxVisible)]...)
	return append(out, Token{Kept, opts.Replacement}, Token{Kind: End})
}

func elideCenter(ts []Token, opts ElideOptions) []Token {
	if size(ts) <= opts.MaxVisible {
		return ts
	}
	half := opts.MaxVisible / 2
	out := append([]Token(nil), ts[:prefix(ts, half)]...)
	out = append(out, Token{Kept, opts.Replacement})
	return append(out, ts[suffix(ts, half):]...)
}
