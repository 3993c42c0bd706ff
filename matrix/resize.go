// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/vecmat/vector"

// Resize reshapes m in place to newRows×newCols.
//
// Implementation:
//   - Stage 1: append zero rows of length newCols until there are newRows rows.
//   - Stage 2: for every row in [0, newRows): a shorter row is padded with
//     zeros; a longer row is replaced by a fresh zero row of length newCols.
//     Shrinking the column count therefore discards the row's old values, it
//     does not keep the first newCols of them.
//   - Stage 3: drop rows past newRows.
//   - Stage 4: set Cols() to newCols.
//
// Growing in both directions keeps every existing cell at its (row, col) and
// makes every new cell 0.
//
// Errors:
//   - ErrInvalidDimensions when newRows < 0 or newCols < 0; m is untouched.
//
// Complexity: O(newRows*newCols) plus the rows released in Stage 3.
func (m *Matrix) Resize(newRows, newCols int) error {
	if newRows < 0 || newCols < 0 {
		return matrixErrorf(ctxResize, ErrInvalidDimensions, newRows, newCols)
	}

	for len(m.rows) < newRows {
		row, _ := vector.NewZeros(newCols) // newCols >= 0 was validated above
		m.rows = append(m.rows, row)
	}

	for i := 0; i < newRows; i++ {
		row := m.rows[i]
		n := row.Len()
		switch {
		case newCols > n:
			for j := n; j < newCols; j++ {
				row.Append(0)
			}
		case newCols < n:
			zero, _ := vector.NewZeros(newCols)
			row.MoveFrom(zero)
		}
	}

	// Clear the tail so dropped rows are not kept alive by the backing array.
	for i := newRows; i < len(m.rows); i++ {
		m.rows[i] = nil
	}
	m.rows = m.rows[:newRows]
	m.cols = newCols

	return nil
}
