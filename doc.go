// SPDX-License-Identifier: MIT

// Package vecmat is a small library of growable integer vectors and row-major
// integer matrices built on them.
//
//	vector/       — Vector: owned buffer with capacity doubling, copy/move,
//	                bounds-checked Slice, Find, Sum and iteration
//	matrix/       — Matrix: rows of Vectors; Resize, Transpose, 2D Slice,
//	                Find and Display
//	internal/cli/ — the `vecmat demo` walkthrough (cobra + viper + charm log)
//	cmd/vecmat/   — command entry point
//
// Quick example:
//
//	m, _ := matrix.New(3, 3, matrix.WithSeed(42))
//	_ = m.Resize(5, 5)              // new cells are zero
//	sub, err := m.Slice(1, 3, 1, 3) // 2×2 window, errors.Is(err, matrix.ErrOutOfRange) on bad bounds
//	sub.Transpose()
//	r, c := sub.Find(9)             // (-1, -1) when absent
package vecmat
