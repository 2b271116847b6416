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

// Package chunk splits two texts into corresponding pieces of bounded size.
//
// The alignment matrix grows with the product of the input lengths. Splitting the inputs first by
// line and then into pieces of a maximum size bounds the memory and time spent per piece.
package chunk

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMismatch is returned if two texts don't split into the same number of lines.
var ErrMismatch = errors.New("texts have a different number of lines")

// Pair is a pair of corresponding chunks of two texts.
type Pair struct {
	X, Y []rune

	// EOL is set for the last pair of a line that's followed by another line.
	EOL bool
}

// Split splits x and y on '\n' and every line into pieces of at most size characters.
//
// Corresponding lines are split into the same number of pieces: if one line needs more pieces
// than the other, the shorter line is padded with empty pieces.
func Split(x, y string, size int) ([]Pair, error) {
	if size < 1 {
		panic("chunk size must be positive")
	}
	xlines, ylines := strings.Split(x, "\n"), strings.Split(y, "\n")
	if len(xlines) != len(ylines) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrMismatch, len(xlines), len(ylines))
	}

	var pairs []Pair
	for i := range xlines {
		xl, yl := []rune(xlines[i]), []rune(ylines[i])
		n := max(pieces(len(xl), size), pieces(len(yl), size), 1)
		for k := range n {
			pairs = append(pairs, Pair{
				X: piece(xl, k, size),
				Y: piece(yl, k, size),
			})
		}
		if i < len(xlines)-1 {
			pairs[len(pairs)-1].EOL = true
		}
	}
	return pairs, nil
}

// pieces returns the number of pieces of at most size characters needed for n characters.
func pieces(n, size int) int {
	return (n + size - 1) / size
}

// piece returns the k-th piece of s, it's empty if s is too short.
func piece(s []rune, k, size int) []rune {
	lo, hi := min(k*size, len(s)), min((k+1)*size, len(s))
	return s[lo:hi:hi]
}
