// Package matrix_test holds shared helpers for the matrix tests.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/stretchr/testify/require"
)

// mustFromRows builds a matrix from literal rows or fails the test.
func mustFromRows(tb testing.TB, values [][]int) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.FromRows(values)
	require.NoError(tb, err)

	return m
}

// mustNew builds a seeded random matrix or fails the test.
func mustNew(tb testing.TB, rows, cols int, seed int64) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(rows, cols, matrix.WithSeed(seed))
	require.NoError(tb, err)

	return m
}

// requireSettled asserts the shape invariant: every row has Cols() cells.
func requireSettled(tb testing.TB, m *matrix.Matrix) {
	tb.Helper()
	cells := m.ToSlice()
	require.Len(tb, cells, m.Rows())
	for i, r := range cells {
		require.Len(tb, r, m.Cols(), "row %d", i)
	}
}
