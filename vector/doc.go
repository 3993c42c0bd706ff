// SPDX-License-Identifier: MIT

// Package vector provides Vector, an exclusively owned, growable buffer of int
// values with explicit capacity management.
//
// What & Why:
//
//	Vector keeps a logical length and an allocated capacity. Appends past the
//	capacity double it (minimum 1), so a run of n appends costs O(n) amortised.
//	Two Vectors never share storage: Copy allocates a fresh buffer, Move hands
//	the buffer over and leaves the source empty but usable.
//
// Construction:
//
//	New(size) fills every slot with a pseudo-random value in [0, MaxValue)
//	drawn from a Source. The process-wide default source is created once and
//	seeded from the wall clock; pass WithSource or WithSeed for reproducible
//	contents. NewZeros, NewEmpty and FromValues build deterministic vectors.
//
// Errors:
//
//	Slice, At and Set report ErrOutOfRange for invalid indices; New and
//	NewZeros report ErrInvalidSize for negative sizes. Errors carry the method
//	and arguments as context and are matched with errors.Is.
//
// Complexity:
//
//	Append is amortised O(1); Copy, Slice, Find and Sum are O(n); Move is O(1).
//
// A Vector is not safe for concurrent use.
package vector
