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

import (
	"strings"

	"golang.org/x/sync/errgroup"
	"znkr.io/edits/cost"
	"znkr.io/edits/internal/chunk"
	"znkr.io/edits/internal/config"
	"znkr.io/edits/internal/render"
)

// ErrChunkMismatch is returned by [Compare] if the two texts don't have the same number of lines.
var ErrChunkMismatch = chunk.ErrMismatch

const allOptions = config.SplitSize | config.Separators | config.Elide | config.Format | config.Parallel

// ShowDistance compares x and y and returns x annotated with the changes that transform it into
// y. Changes are enclosed in brackets and marked with "+" for insertions, "-" for deletions and
// "~" for substitutions:
//
//	ShowDistance("kitten", "kitsin") == "kit[~t/s~e/i]n"
//
// Long unchanged text around changes is elided. If x and y are identical, the result is x.
//
// ShowDistance panics if x and y have a different number of lines. Use [Compare] to handle this
// case.
func ShowDistance(x, y string) string {
	return ShowDistanceWith(x, y)
}

// ShowDistanceColored is like [ShowDistance], but it shows changes with terminal colors instead
// of symbols. See [Colored].
func ShowDistanceColored(x, y string) string {
	return ShowDistanceWith(x, y, Format(Colored))
}

// ShowDistanceWith is like [ShowDistance], but the comparison and presentation can be configured.
//
// The following options are supported: [SplitSize], [Separators], [Brackets], [Parens],
// [Elide], [Format], [Parallel]
func ShowDistanceWith(x, y string, opts ...Option) string {
	out, err := Compare(x, y, opts...)
	if err != nil {
		panic(err)
	}
	return out
}

// Compare is like [ShowDistanceWith], but it returns an error wrapping [ErrChunkMismatch] if x
// and y have a different number of lines.
func Compare(x, y string, opts ...Option) (string, error) {
	cfg := config.FromOptions(opts, allOptions)

	pairs, err := chunk.Split(x, y, cfg.SplitSize)
	if err != nil {
		return "", err
	}

	out := make([]string, len(pairs))
	if cfg.Parallel > 1 && len(pairs) > 1 {
		var g errgroup.Group
		g.SetLimit(cfg.Parallel)
		for i, p := range pairs {
			g.Go(func() error {
				out[i] = show(p.X, p.Y, &cfg)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return "", err
		}
	} else {
		for i, p := range pairs {
			out[i] = show(p.X, p.Y, &cfg)
		}
	}

	var sb strings.Builder
	for i, s := range out {
		sb.WriteString(s)
		if pairs[i].EOL {
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}

// show aligns a single pair of chunks and renders the result.
func show(x, y []rune, cfg *config.Config) string {
	es := EditsCost(x, y, cost.Levenshtein[rune]{})
	ts := render.Render(es, cfg.Separators(), cfg.Format)
	return render.Text(render.Elide(ts, cfg.ElideOptions()))
}

// Symbolic formats an edit with a prefix describing the operation: "+y" for an insertion, "-x"
// for a deletion, "~x/y" for a substitution and "x" for a kept element. It's the default format.
func Symbolic(e Edit[rune]) string { return render.Symbolic(e) }

// Colored formats an edit with terminal colors: insertions are green, deletions red and
// substitutions show the new element in cyan. Kept elements are not decorated.
func Colored(e Edit[rune]) string { return render.Colored(e) }
