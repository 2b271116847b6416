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

// Package ops contains the edit operations produced by the backtrace over an alignment matrix.
//
// The types are re-exported by the root package. They live here so that the internal packages can
// produce and consume them without importing the public API.
package ops

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Keep       Op = iota // The element is the same in both sequences
	Insert                // An insertion of an element from the second sequence
	Delete                // A deletion of an element from the first sequence
	Substitute            // An element of the first sequence is replaced by one of the second
)

// Edit describes a single edit operation.
//
//   - For Keep, X contains the kept element and Y is unset (zero value).
//   - For Insert, Y contains the inserted element and X is unset (zero value).
//   - For Delete, X contains the deleted element and Y is unset (zero value).
//   - For Substitute, X contains the replaced element and Y the replacement.
type Edit[T any] struct {
	Op   Op
	X, Y T
}

// Changed reports whether e modifies the first sequence.
func (e Edit[T]) Changed() bool { return e.Op != Keep }

// Inverse returns the edit that undoes e, i.e. the edit that transforms the second sequence into
// the first.
func (e Edit[T]) Inverse() Edit[T] {
	switch e.Op {
	case Insert:
		return Edit[T]{Op: Delete, X: e.Y}
	case Delete:
		return Edit[T]{Op: Insert, Y: e.X}
	case Substitute:
		return Edit[T]{Op: Substitute, X: e.Y, Y: e.X}
	default:
		return e
	}
}

// Cost returns the number of edits in es that are not Keep.
func Cost[T any](es []Edit[T]) int {
	n := 0
	for _, e := range es {
		if e.Changed() {
			n++
		}
	}
	return n
}

// Apply applies the edits to x and returns the result.
//
// Every edit except Insert consumes an element of x. Keep copies it to the result, Insert and
// Substitute write Y.
func Apply[T any](x []T, es []Edit[T]) []T {
	out := make([]T, 0, len(x))
	s := 0
	for _, e := range es {
		switch e.Op {
		case Keep:
			out = append(out, x[s])
			s++
		case Insert:
			out = append(out, e.Y)
		case Delete:
			s++
		case Substitute:
			out = append(out, e.Y)
			s++
		}
	}
	return out
}
