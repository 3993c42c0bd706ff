// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/vecmat/vector"

// Transpose replaces m with its transpose: the cell at (i, j) moves to (j, i)
// and Rows()/Cols() swap.
//
// The transposed rows are built completely from the current rows before the
// receiver is overwritten, so no source row is read after it has been
// touched. An r×0 matrix becomes 0×r and vice versa.
//
// Complexity: O(rows*cols) time and a full second copy of the cells.
func (m *Matrix) Transpose() {
	r, c := len(m.rows), m.cols

	t := make([]*vector.Vector, c)
	for j := range t {
		t[j] = vector.NewEmpty()
	}
	for i := 0; i < r; i++ {
		for j, x := range m.rows[i].All() {
			t[j].Append(x)
		}
	}

	m.rows, m.cols = t, r
}
