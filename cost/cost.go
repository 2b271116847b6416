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

// Package cost defines the cost model used to align two sequences.
//
// A [Model] gives the price of inserting, deleting and substituting elements and decides which
// operation to pick when several lead to a cell of the alignment matrix. The decision is
// observable: among alignments with the same total cost, the one that is reported depends on it.
package cost

import "fmt"

// Kind is the operation that was chosen to reach a cell of the alignment matrix.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind uint8

const (
	Insertion Kind = iota
	Deletion
	Substitution
	NoAction // A substitution of an element with an equal one
)

// Cost is the cumulative minimal edit cost of a matrix cell together with the operation that
// leads to it.
type Cost struct {
	Kind Kind
	N    int
}

// String renders c as "+ n", "- n", "~ n" or "o n".
func (c Cost) String() string {
	var sym string
	switch c.Kind {
	case Insertion:
		sym = "+"
	case Deletion:
		sym = "-"
	case Substitution:
		sym = "~"
	case NoAction:
		sym = "o"
	default:
		sym = "?"
	}
	return fmt.Sprintf("%s %d", sym, c.N)
}

// Model prices edit operations on elements of type T.
//
// Choose receives the elements a and b at the current position and the candidate totals of
// reaching the cell by insertion, deletion and substitution. It returns the chosen operation with
// its total.
type Model[T any] interface {
	Insertion(t T) int
	Deletion(t T) int
	Substitution(a, b T) int
	Choose(a, b T, ins, del, sub int) Cost
}

// Levenshtein is the unit cost model: every insertion, deletion and substitution of different
// elements costs 1.
type Levenshtein[T comparable] struct{}

func (Levenshtein[T]) Insertion(T) int { return 1 }
func (Levenshtein[T]) Deletion(T) int  { return 1 }

func (Levenshtein[T]) Substitution(a, b T) int {
	if a == b {
		return 0
	}
	return 1
}

func (Levenshtein[T]) Choose(a, b T, ins, del, sub int) Cost {
	return Choose(a == b, ins, del, sub)
}

// LevenshteinFunc is the unit cost model for element types that are compared with Eq.
type LevenshteinFunc[T any] struct {
	Eq func(a, b T) bool
}

func (LevenshteinFunc[T]) Insertion(T) int { return 1 }
func (LevenshteinFunc[T]) Deletion(T) int  { return 1 }

func (m LevenshteinFunc[T]) Substitution(a, b T) int {
	if m.Eq(a, b) {
		return 0
	}
	return 1
}

func (m LevenshteinFunc[T]) Choose(a, b T, ins, del, sub int) Cost {
	return Choose(m.Eq(a, b), ins, del, sub)
}

// Choose implements the tie-break shared by the unit cost models. It's exported for custom models
// that only want to change prices.
//
// Insertion is preferred over deletion only if it's strictly cheaper. Against a substitution, the
// insertion (or deletion) wins if it's cheaper, or if it costs the same and the elements are equal.
func Choose(equal bool, ins, del, sub int) Cost {
	if ins < del {
		if ins < sub || ins == sub && equal {
			return Cost{Insertion, ins}
		}
		return Cost{Substitution, sub}
	}
	if del < sub || del == sub && equal {
		return Cost{Deletion, del}
	}
	return Cost{Substitution, sub}
}
