// SPDX-License-Identifier: MIT

// Package matrix provides Matrix, a row-major dense matrix of int values whose
// rows are vector.Vector buffers.
//
// What & Why:
//
//	A Matrix owns an ordered sequence of rows and a column count. Outside of
//	Resize and Transpose every row holds exactly Cols() elements (the settled
//	state). All structural work is delegated to the vector package: rows grow
//	with Append, sub-ranges come from Vector.Slice, searches use Vector.Find.
//
// Operations:
//
//   - New / NewZeros / FromRows build a matrix (random, zero or explicit contents).
//   - Copy / Move and CopyFrom / MoveFrom give deep-copy and ownership-transfer
//     semantics; a moved-from matrix is a valid 0×0 matrix.
//   - Resize grows with zeros, replaces shortened rows by zero rows, and drops
//     rows past the new row count.
//   - Transpose swaps (i,j) → (j,i) in place via a freshly built row set.
//   - Slice extracts a copied sub-matrix; Find locates the first match in
//     row-major order; Display writes space-separated rows to an io.Writer.
//
// Errors:
//
//	ErrOutOfRange (shared with package vector) for invalid indices and slice
//	bounds, ErrInvalidDimensions for negative shapes, ErrDimensionMismatch for
//	ragged input. Match them with errors.Is.
//
// A Matrix is not safe for concurrent use.
package matrix
