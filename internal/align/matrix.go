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

// Package align builds the alignment matrix of two sequences and reconstructs the edit operations
// from it.
//
// The matrix has one row per prefix of x and one column per prefix of y, including the empty
// prefixes. Cell (i, j) holds the minimal cost of transforming x[:i] into y[:j] and the operation
// used to get there. Row 0 and column 0 form the boundary: building y[:j] from nothing takes j
// insertions and erasing x[:i] takes i deletions.
package align

import (
	"fmt"
	"strings"
)

// Matrix is a dense two dimensional grid.
type Matrix[T any] struct {
	rows, cols int
	cells      []T
}

func newMatrix[T any](rows, cols int) *Matrix[T] {
	return &Matrix[T]{
		rows:  rows,
		cols:  cols,
		cells: make([]T, rows*cols),
	}
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// Get returns the value at row i and column j. If the cell is outside of the matrix, ok is false.
func (m *Matrix[T]) Get(i, j int) (v T, ok bool) {
	if i < 0 || j < 0 || i >= m.rows || j >= m.cols {
		return v, false
	}
	return m.cells[i*m.cols+j], true
}

func (m *Matrix[T]) set(i, j int, v T) {
	m.cells[i*m.cols+j] = v
}

// String renders the matrix one row per line with the cells separated by " | ".
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i := range m.rows {
		for j := range m.cols {
			if j > 0 {
				sb.WriteString(" | ")
			}
			fmt.Fprint(&sb, m.cells[i*m.cols+j])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
