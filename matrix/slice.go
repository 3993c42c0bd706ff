// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/vecmat/vector"

// NotFound is the coordinate Find reports for an absent value.
const NotFound = vector.NotFound

// Slice returns a new (rowEnd-rowStart)×(colEnd-colStart) matrix whose row k
// is rows[rowStart+k].Slice(colStart, colEnd). The result owns its cells.
//
// Errors:
//   - ErrOutOfRange when rowStart < 0, rowStart >= Rows(), rowEnd > Rows(),
//     rowStart > rowEnd, colStart < 0, colStart >= Cols(), colEnd > Cols() or
//     colStart > colEnd.
//
// Complexity: O((rowEnd-rowStart)*(colEnd-colStart)).
func (m *Matrix) Slice(rowStart, rowEnd, colStart, colEnd int) (*Matrix, error) {
	nr := len(m.rows)
	if rowStart < 0 || rowStart >= nr || rowEnd > nr || rowStart > rowEnd ||
		colStart < 0 || colStart >= m.cols || colEnd > m.cols || colStart > colEnd {
		return nil, matrixErrorf(ctxSlice, ErrOutOfRange, rowStart, rowEnd, colStart, colEnd)
	}

	out := &Matrix{rows: make([]*vector.Vector, rowEnd-rowStart), cols: colEnd - colStart}
	for k := range out.rows {
		row, err := m.rows[rowStart+k].Slice(colStart, colEnd)
		if err != nil {
			return nil, matrixErrorf(ctxSlice, err, rowStart, rowEnd, colStart, colEnd)
		}
		out.rows[k] = row
	}

	return out, nil
}

// Find returns the (row, col) of the first cell equal to value in row-major
// order, or (NotFound, NotFound).
func (m *Matrix) Find(value int) (row, col int) {
	for i, r := range m.rows {
		if j := r.Find(value); j != vector.NotFound {
			return i, j
		}
	}

	return NotFound, NotFound
}
