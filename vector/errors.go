// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrOutOfRange indicates an index or a [start, end) range outside the
	// logical length of a Vector.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidSize indicates a negative size passed to a constructor.
	ErrInvalidSize = errors.New("vector: size must be >= 0")
)

// vectorErrorf wraps a sentinel with the method name and its integer arguments,
// e.g. "Vector.Slice(3,1): vector: index out of range".
func vectorErrorf(method string, err error, args ...int) error {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = strconv.Itoa(a)
	}

	return fmt.Errorf("Vector.%s(%s): %w", method, strings.Join(parts, ","), err)
}
