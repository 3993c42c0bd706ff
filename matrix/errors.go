// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public operations return these sentinels (possibly wrapped with call-site
// context via %w); tests match them with errors.Is. No operation panics on
// user-triggered conditions; panics are reserved for invalid Option values.

package matrix

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/vecmat/vector"
)

var (
	// ErrOutOfRange indicates a row/column index or a slice range outside the
	// matrix bounds. It is the same sentinel as vector.ErrOutOfRange, so a
	// failure raised by a row matches either name.
	ErrOutOfRange = vector.ErrOutOfRange

	// ErrInvalidDimensions indicates a negative row or column count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrDimensionMismatch indicates ragged input rows in FromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// Method tags used in error context.
const (
	ctxNew      = "New"
	ctxNewZeros = "NewZeros"
	ctxFromRows = "FromRows"
	ctxAt       = "At"
	ctxRow      = "Row"
	ctxResize   = "Resize"
	ctxSlice    = "Slice"
)

// matrixErrorf wraps err as "Matrix.<method>(a,b,...): <err>".
func matrixErrorf(method string, err error, args ...int) error {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = strconv.Itoa(a)
	}

	return fmt.Errorf("Matrix.%s(%s): %w", method, strings.Join(parts, ","), err)
}
