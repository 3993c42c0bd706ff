// SPDX-License-Identifier: MIT

// Package matrix - storage, constructors and ownership.
//
// Layout:
//   - rows[i] is the i-th row; insertion order is row order.
//   - cols is the column count; in the settled state rows[i].Len() == cols.
//
// The zero Matrix is a valid 0×0 matrix.

package matrix

import "github.com/katalvlaran/vecmat/vector"

// Matrix is a row-major dense matrix of int values.
type Matrix struct {
	rows []*vector.Vector // exclusively owned rows
	cols int              // column count shared by every settled row
}

// New creates a rows×cols matrix whose cells are drawn from the configured
// source in [0, vector.MaxValue). All rows share one source.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0 or cols < 0.
//
// Complexity: O(rows*cols).
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions, rows, cols)
	}
	o := gatherOptions(opts...)

	m := &Matrix{rows: make([]*vector.Vector, rows), cols: cols}
	for i := range m.rows {
		row, err := vector.New(cols, vector.WithSource(o.src))
		if err != nil {
			return nil, matrixErrorf(ctxNew, err, rows, cols)
		}
		m.rows[i] = row
	}

	return m, nil
}

// NewZeros creates a zero-filled rows×cols matrix.
func NewZeros(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxNewZeros, ErrInvalidDimensions, rows, cols)
	}

	m := &Matrix{rows: make([]*vector.Vector, rows), cols: cols}
	for i := range m.rows {
		row, err := vector.NewZeros(cols)
		if err != nil {
			return nil, matrixErrorf(ctxNewZeros, err, rows, cols)
		}
		m.rows[i] = row
	}

	return m, nil
}

// FromRows builds a matrix holding a copy of values. Every inner slice must
// have the same length; an empty outer slice yields a 0×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch when the rows are ragged (args: offending row, its length).
func FromRows(values [][]int) (*Matrix, error) {
	m := &Matrix{rows: make([]*vector.Vector, len(values))}
	if len(values) > 0 {
		m.cols = len(values[0])
	}
	for i, r := range values {
		if len(r) != m.cols {
			return nil, matrixErrorf(ctxFromRows, ErrDimensionMismatch, i, len(r))
		}
		m.rows[i] = vector.FromValues(r...)
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) (int, error) {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= m.cols {
		return 0, matrixErrorf(ctxAt, ErrOutOfRange, row, col)
	}

	return m.rows[row].At(col)
}

// Row returns a copy of row i; mutating it does not affect m.
func (m *Matrix) Row(i int) (*vector.Vector, error) {
	if i < 0 || i >= len(m.rows) {
		return nil, matrixErrorf(ctxRow, ErrOutOfRange, i)
	}

	return m.rows[i].Copy(), nil
}

// Copy returns a deep copy; no row buffer is shared with m.
// Complexity: O(rows*cols).
func (m *Matrix) Copy() *Matrix {
	out := &Matrix{rows: make([]*vector.Vector, len(m.rows)), cols: m.cols}
	for i, r := range m.rows {
		out.rows[i] = r.Copy()
	}

	return out
}

// CopyFrom replaces m with a deep copy of src. Self-copy is a no-op.
func (m *Matrix) CopyFrom(src *Matrix) {
	if src == m {
		return
	}
	cp := src.Copy()
	m.rows, m.cols = cp.rows, cp.cols
}

// Move transfers the rows of m into a new matrix and leaves m as a valid 0×0
// matrix. Complexity: O(1).
func (m *Matrix) Move() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols}
	m.rows, m.cols = nil, 0

	return out
}

// MoveFrom takes over the rows of src and leaves src as a 0×0 matrix.
// Self-move is a no-op.
func (m *Matrix) MoveFrom(src *Matrix) {
	if src == m {
		return
	}
	m.rows, m.cols = src.rows, src.cols
	src.rows, src.cols = nil, 0
}

// Sum returns the sum of all cells, row by row through vector.Sum.
func (m *Matrix) Sum() int {
	var s int
	for _, r := range m.rows {
		s += r.Sum()
	}

	return s
}

// Equal reports whether m and other have the same shape and cells.
func (m *Matrix) Equal(other *Matrix) bool {
	if len(m.rows) != len(other.rows) || m.cols != other.cols {
		return false
	}
	for i, r := range m.rows {
		if !r.Equal(other.rows[i]) {
			return false
		}
	}

	return true
}

// ToSlice returns the cells as a fresh [][]int.
func (m *Matrix) ToSlice() [][]int {
	out := make([][]int, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.ToSlice()
	}

	return out
}
