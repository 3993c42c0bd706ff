// SPDX-License-Identifier: MIT

package vector

import "iter"

// All returns a read-only sequence of (index, value) pairs over [0, Len()).
// The sequence is restartable; each range over it walks the vector afresh.
func (v *Vector) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Values returns a read-only sequence of the elements in index order.
func (v *Vector) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// Update replaces every element with fn(index, value), in index order.
func (v *Vector) Update(fn func(i, value int) int) {
	for i := 0; i < v.n; i++ {
		v.data[i] = fn(i, v.data[i])
	}
}
