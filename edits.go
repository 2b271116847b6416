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
	"znkr.io/edits/cost"
	"znkr.io/edits/internal/align"
	"znkr.io/edits/internal/ops"
)

// Op describes an edit operation.
type Op = ops.Op

const (
	Keep       = ops.Keep       // The element is the same in both sequences
	Insert     = ops.Insert     // An insertion of an element from the second sequence
	Delete     = ops.Delete     // A deletion of an element from the first sequence
	Substitute = ops.Substitute // An element of the first sequence is replaced by one of the second
)

// Edit describes a single edit operation.
//
//   - For Keep, X contains the kept element and Y is unset (zero value).
//   - For Insert, Y contains the inserted element and X is unset (zero value).
//   - For Delete, X contains the deleted element and Y is unset (zero value).
//   - For Substitute, X contains the replaced element and Y the replacement.
type Edit[T any] = ops.Edit[T]

// Edits compares the contents of x and y and returns the edit operations with the minimal
// Levenshtein distance that transform x into y.
//
// Among several alignments with the same distance, the result is deterministic: an insertion is
// only preferred over a deletion if it's strictly cheaper, and equal elements are kept rather than
// substituted.
func Edits[T comparable](x, y []T) []Edit[T] {
	return EditsCost(x, y, cost.Levenshtein[T]{})
}

// EditsFunc compares the contents of x and y using the provided equality comparison and returns
// the edit operations that transform x into y.
func EditsFunc[T any](x, y []T, eq func(a, b T) bool) []Edit[T] {
	return EditsCost(x, y, cost.LevenshteinFunc[T]{Eq: eq})
}

// EditsCost compares the contents of x and y and returns the edit operations with the minimal
// cost according to m that transform x into y.
func EditsCost[T any](x, y []T, m cost.Model[T]) []Edit[T] {
	switch {
	case len(x) == 0 && len(y) == 0:
		return nil
	case len(x) == 0:
		out := make([]Edit[T], len(y))
		for i, e := range y {
			out[i] = Edit[T]{Op: Insert, Y: e}
		}
		return out
	case len(y) == 0:
		out := make([]Edit[T], len(x))
		for i, e := range x {
			out[i] = Edit[T]{Op: Delete, X: e}
		}
		return out
	}
	return align.Backtrace(x, y, align.Build(x, y, m))
}

// Distance returns the Levenshtein distance between x and y.
func Distance[T comparable](x, y []T) int {
	return align.Distance(align.Build(x, y, cost.Levenshtein[T]{}))
}

// Apply applies edits to x. If edits were computed for x and y, the result is equal to y.
func Apply[T any](x []T, edits []Edit[T]) []T {
	return ops.Apply(x, edits)
}
