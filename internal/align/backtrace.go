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

package align

import (
	"slices"

	"znkr.io/edits/cost"
	"znkr.io/edits/internal/ops"
)

// Distance returns the total cost of the alignment described by mat.
func Distance(mat *Matrix[cost.Cost]) int {
	c, _ := mat.Get(mat.Rows()-1, mat.Cols()-1)
	return c.N
}

// Backtrace reconstructs the edit operations that transform x into y from the alignment matrix
// mat built by [Build].
//
// The walk starts at the bottom-right cell and follows the operation recorded in each cell back
// to the origin.
//
// If either x or y is empty, there is nothing to align and the result is empty.
func Backtrace[T any](x, y []T, mat *Matrix[cost.Cost]) []ops.Edit[T] {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}

	out := make([]ops.Edit[T], 0, max(len(x), len(y)))
	i, j := len(x), len(y)
	for i > 0 || j > 0 {
		c, ok := mat.Get(i, j)
		if !ok {
			panic("matrix does not match input sequences")
		}
		switch c.Kind {
		case cost.Insertion:
			out = append(out, ops.Edit[T]{Op: ops.Insert, Y: y[j-1]})
			j--
		case cost.Deletion:
			out = append(out, ops.Edit[T]{Op: ops.Delete, X: x[i-1]})
			i--
		case cost.Substitution:
			out = append(out, ops.Edit[T]{Op: ops.Substitute, X: x[i-1], Y: y[j-1]})
			i--
			j--
		case cost.NoAction:
			out = append(out, ops.Edit[T]{Op: ops.Keep, X: x[i-1]})
			i--
			j--
		default:
			panic("unknown cost kind " + c.Kind.String())
		}
	}
	slices.Reverse(out)
	return out
}
