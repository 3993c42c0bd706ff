// SPDX-License-Identifier: MIT

// Package vector - storage, growth and ownership transfer.
//
// Layout:
//   - data is the allocated buffer; len(data) is the capacity.
//   - n is the logical length; data[:n] holds the values, data[n:] is scratch.
//
// The zero Vector is an empty vector with capacity 0 and is ready to use.

package vector

import (
	"strconv"
	"strings"
)

// NotFound is returned by Find when no element matches.
const NotFound = -1

// Vector is a growable, exclusively owned buffer of int values.
type Vector struct {
	data []int // allocated slots, len(data) == capacity
	n    int   // logical length, 0 <= n <= len(data)
}

// New returns a vector of the given size whose every slot holds an
// independently drawn value in [0, MaxValue).
// Length and capacity both equal size.
//
// Errors:
//   - ErrInvalidSize when size < 0.
//
// Complexity: O(size).
func New(size int, opts ...Option) (*Vector, error) {
	if size < 0 {
		return nil, vectorErrorf("New", ErrInvalidSize, size)
	}
	o := gatherOptions(opts...)

	data := make([]int, size)
	for i := range data {
		data[i] = o.src.Intn(MaxValue)
	}

	return &Vector{data: data, n: size}, nil
}

// NewZeros returns a zero-filled vector with length and capacity size.
func NewZeros(size int) (*Vector, error) {
	if size < 0 {
		return nil, vectorErrorf("NewZeros", ErrInvalidSize, size)
	}

	return &Vector{data: make([]int, size), n: size}, nil
}

// NewEmpty returns an empty vector with capacity 0.
func NewEmpty() *Vector {
	return &Vector{}
}

// FromValues returns a vector holding a copy of values; capacity == len(values).
func FromValues(values ...int) *Vector {
	data := make([]int, len(values))
	copy(data, values)

	return &Vector{data: data, n: len(values)}
}

// Len returns the number of logically present elements.
func (v *Vector) Len() int { return v.n }

// Cap returns the number of allocated slots.
func (v *Vector) Cap() int { return len(v.data) }

// At returns the element at index i.
func (v *Vector) At(i int) (int, error) {
	if i < 0 || i >= v.n {
		return 0, vectorErrorf("At", ErrOutOfRange, i)
	}

	return v.data[i], nil
}

// Set overwrites the element at index i.
func (v *Vector) Set(i, value int) error {
	if i < 0 || i >= v.n {
		return vectorErrorf("Set", ErrOutOfRange, i)
	}
	v.data[i] = value

	return nil
}

// Append adds value at index Len().
// When the vector is full the capacity doubles (0 becomes 1) and existing
// elements keep their indices.
//
// Complexity: amortised O(1).
func (v *Vector) Append(value int) {
	if v.n == len(v.data) {
		v.grow()
	}
	v.data[v.n] = value
	v.n++
}

// grow reallocates the buffer at twice its capacity, or 1 when it was empty.
func (v *Vector) grow() {
	newCap := 1
	if c := len(v.data); c > 0 {
		newCap = c * 2
	}
	buf := make([]int, newCap)
	copy(buf, v.data[:v.n])
	v.data = buf
}

// Copy returns an independent vector with the same elements.
// The copy's capacity equals v.Len().
//
// Complexity: O(n).
func (v *Vector) Copy() *Vector {
	buf := make([]int, v.n)
	copy(buf, v.data[:v.n])

	return &Vector{data: buf, n: v.n}
}

// CopyFrom replaces the contents of v with an independent copy of src.
// Copying a vector onto itself is a no-op; a nil src empties v.
func (v *Vector) CopyFrom(src *Vector) {
	if src == v {
		return
	}
	if src == nil {
		v.data, v.n = nil, 0
		return
	}
	buf := make([]int, src.n)
	copy(buf, src.data[:src.n])
	v.data, v.n = buf, src.n
}

// Move transfers the buffer of v into a new vector and leaves v empty with
// capacity 0. v stays valid and can be appended to.
//
// Complexity: O(1).
func (v *Vector) Move() *Vector {
	out := &Vector{data: v.data, n: v.n}
	v.data, v.n = nil, 0

	return out
}

// MoveFrom takes over the buffer of src, releasing the one v held, and
// leaves src empty. Moving a vector onto itself is a no-op.
func (v *Vector) MoveFrom(src *Vector) {
	if src == v {
		return
	}
	if src == nil {
		v.data, v.n = nil, 0
		return
	}
	v.data, v.n = src.data, src.n
	src.data, src.n = nil, 0
}

// Slice returns a new vector holding the elements [start, end) in order.
// Slice(0, Len()) is an element-wise copy; Slice(k, k) with k <= Len() is empty.
//
// Errors:
//   - ErrOutOfRange when start < 0, start > Len(), end > Len() or start > end.
//
// Complexity: O(end-start).
func (v *Vector) Slice(start, end int) (*Vector, error) {
	if start < 0 || start > v.n || end > v.n || start > end {
		return nil, vectorErrorf("Slice", ErrOutOfRange, start, end)
	}
	buf := make([]int, end-start)
	copy(buf, v.data[start:end])

	return &Vector{data: buf, n: end - start}, nil
}

// Find returns the lowest index holding value, or NotFound.
func (v *Vector) Find(value int) int {
	for i := 0; i < v.n; i++ {
		if v.data[i] == value {
			return i
		}
	}

	return NotFound
}

// Sum returns the sum of all elements; 0 for an empty vector.
// Overflow wraps around like any Go int addition.
func (v *Vector) Sum() int {
	var s int
	for _, x := range v.data[:v.n] {
		s += x
	}

	return s
}

// Fill sets every element to value. Length and capacity are unchanged.
func (v *Vector) Fill(value int) {
	for i := 0; i < v.n; i++ {
		v.data[i] = value
	}
}

// Equal reports whether v and other hold the same elements in the same order.
// Capacity is not compared.
func (v *Vector) Equal(other *Vector) bool {
	if v.n != other.n {
		return false
	}
	for i := 0; i < v.n; i++ {
		if v.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// ToSlice returns a fresh []int holding the elements.
func (v *Vector) ToSlice() []int {
	out := make([]int, v.n)
	copy(out, v.data[:v.n])

	return out
}

// String renders the elements as "[a b c]".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(v.data[i]))
	}
	sb.WriteByte(']')

	return sb.String()
}
