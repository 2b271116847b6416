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

import "znkr.io/edits/cost"

// Build fills the alignment matrix for x and y using the cost model m.
//
// The matrix has len(x)+1 rows and len(y)+1 columns. Building it always takes O(len(x)·len(y))
// time and space, it's the caller's responsibility to bound the input sizes.
func Build[T any](x, y []T, m cost.Model[T]) *Matrix[cost.Cost] {
	n, k := len(x), len(y)
	mat := newMatrix[cost.Cost](n+1, k+1)
	for i := 0; i <= n; i++ {
		for j := 0; j <= k; j++ {
			mat.set(i, j, cellCost(x, y, i, j, mat, m))
		}
	}
	return mat
}

// cellCost computes the cost of cell (i, j) from its already computed neighbours
//
//	(i-1, j-1) (i-1, j)
//	(i, j-1)   (i, j)
//
// Going from (i-1, j) to (i, j) deletes x[i-1], going from (i-1, j-1) substitutes x[i-1] with
// y[j-1], and going from (i, j-1) inserts y[j-1].
func cellCost[T any](x, y []T, i, j int, mat *Matrix[cost.Cost], m cost.Model[T]) cost.Cost {
	switch {
	case i == 0 && j == 0:
		return cost.Cost{Kind: cost.Insertion}
	case i == 0:
		left, _ := mat.Get(i, j-1)
		return cost.Cost{Kind: cost.Insertion, N: left.N + m.Insertion(y[j-1])}
	case j == 0:
		up, _ := mat.Get(i-1, j)
		return cost.Cost{Kind: cost.Deletion, N: up.N + m.Deletion(x[i-1])}
	}

	up, _ := mat.Get(i-1, j)
	diag, _ := mat.Get(i-1, j-1)
	left, _ := mat.Get(i, j-1)
	a, b := x[i-1], y[j-1]

	c := m.Choose(a, b,
		left.N+m.Insertion(b),
		up.N+m.Deletion(a),
		diag.N+m.Substitution(a, b),
	)
	// A substitution that doesn't add to the cost of the diagonal replaced an element with an
	// equal one. Record it as such, the backtrace turns it into a Keep.
	if c.Kind == cost.Substitution && c.N == diag.N {
		c.Kind = cost.NoAction
	}
	return c
}
