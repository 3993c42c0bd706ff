// Package vector_test covers construction, growth, ownership transfer and
// range extraction of vector.Vector.
package vector_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/vecmat/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLengthAndRange checks Len()==Cap()==n and every value in [0, MaxValue).
func TestNewLengthAndRange(t *testing.T) {
	for _, n := range []int{0, 1, 7, 64, 1000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			v, err := vector.New(n, vector.WithSeed(int64(n)+3))
			require.NoError(t, err)

			assert.Equal(t, n, v.Len())
			assert.Equal(t, n, v.Cap())
			for i, x := range v.All() {
				assert.GreaterOrEqual(t, x, 0, "index %d", i)
				assert.Less(t, x, vector.MaxValue, "index %d", i)
			}
		})
	}
}

// TestNewDefaultSource exercises the process-wide source.
func TestNewDefaultSource(t *testing.T) {
	v, err := vector.New(50)
	require.NoError(t, err)
	require.Equal(t, 50, v.Len())
	for x := range v.Values() {
		assert.True(t, x >= 0 && x < vector.MaxValue)
	}
}

// TestNewInvalidSize ensures negative sizes are rejected.
func TestNewInvalidSize(t *testing.T) {
	_, err := vector.New(-1)
	require.ErrorIs(t, err, vector.ErrInvalidSize)

	_, err = vector.NewZeros(-5)
	require.ErrorIs(t, err, vector.ErrInvalidSize)
}

// TestNewZeros checks zero fill and shape.
func TestNewZeros(t *testing.T) {
	v, err := vector.NewZeros(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, v.ToSlice())
	assert.Equal(t, 4, v.Cap())
}

// TestZeroValueUsable verifies that the zero Vector behaves as an empty vector.
func TestZeroValueUsable(t *testing.T) {
	var v vector.Vector
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.Equal(t, 0, v.Sum())
	assert.Equal(t, vector.NotFound, v.Find(0))

	v.Append(9)
	assert.Equal(t, []int{9}, v.ToSlice())
}

// TestAppendOrderAndFind appends a sequence and looks every value up again.
func TestAppendOrderAndFind(t *testing.T) {
	values := []int{5, 3, 8, 3, 0, 19, 5, 42}
	v := vector.NewEmpty()
	for _, x := range values {
		v.Append(x)
	}
	require.Equal(t, len(values), v.Len())
	assert.Equal(t, values, v.ToSlice())

	// Find returns the first occurrence in append order.
	first := map[int]int{}
	for i, x := range values {
		if _, ok := first[x]; !ok {
			first[x] = i
		}
	}
	for x, idx := range first {
		assert.Equal(t, idx, v.Find(x), "value %d", x)
	}
	assert.Equal(t, vector.NotFound, v.Find(-7))
}

// TestAppendCapacityDoubling pins the growth sequence 0,1,2,4,8,16.
func TestAppendCapacityDoubling(t *testing.T) {
	v := vector.NewEmpty()
	require.Equal(t, 0, v.Cap())

	wantCaps := []int{1, 2, 4, 4, 8, 8, 8, 8, 16}
	for i, want := range wantCaps {
		v.Append(i)
		assert.Equal(t, want, v.Cap(), "after %d appends", i+1)
		assert.Equal(t, i+1, v.Len())
	}

	// Growth from a pre-sized vector doubles the existing capacity.
	w, err := vector.NewZeros(3)
	require.NoError(t, err)
	w.Append(1)
	assert.Equal(t, 6, w.Cap())
	assert.Equal(t, []int{0, 0, 0, 1}, w.ToSlice())
}

// TestCopyIndependence checks equality after Copy and that appends to the copy
// never leak into the source.
func TestCopyIndependence(t *testing.T) {
	src := vector.FromValues(1, 2, 3)
	src.Append(4) // capacity 6, length 4

	cp := src.Copy()
	require.True(t, cp.Equal(src))
	assert.Equal(t, src.Len(), cp.Cap())

	cp.Append(99)
	require.NoError(t, cp.Set(0, -1))

	assert.Equal(t, 4, src.Len())
	assert.Equal(t, []int{1, 2, 3, 4}, src.ToSlice())
	assert.Equal(t, []int{-1, 2, 3, 4, 99}, cp.ToSlice())
}

// TestCopyFrom covers copy-assignment including the self case.
func TestCopyFrom(t *testing.T) {
	dst := vector.FromValues(7, 7)
	src := vector.FromValues(1, 2, 3)

	dst.CopyFrom(src)
	assert.Equal(t, []int{1, 2, 3}, dst.ToSlice())
	src.Append(4)
	assert.Equal(t, 3, dst.Len())

	dst.CopyFrom(dst)
	assert.Equal(t, []int{1, 2, 3}, dst.ToSlice())

	dst.CopyFrom(nil)
	assert.Equal(t, 0, dst.Len())
}

// TestMove verifies that the destination owns the old contents and the source
// is left empty, zero-capacity and reusable.
func TestMove(t *testing.T) {
	src := vector.FromValues(4, 5, 6)
	before := src.ToSlice()

	dst := src.Move()
	assert.Equal(t, before, dst.ToSlice())
	assert.Equal(t, 0, src.Len())
	assert.Equal(t, 0, src.Cap())

	src.Append(1)
	assert.Equal(t, []int{1}, src.ToSlice())
	assert.Equal(t, before, dst.ToSlice())
}

// TestMoveFrom covers move-assignment including the self case.
func TestMoveFrom(t *testing.T) {
	dst := vector.FromValues(9)
	src := vector.FromValues(1, 2)

	dst.MoveFrom(src)
	assert.Equal(t, []int{1, 2}, dst.ToSlice())
	assert.Equal(t, 0, src.Len())
	assert.Equal(t, 0, src.Cap())

	dst.MoveFrom(dst)
	assert.Equal(t, []int{1, 2}, dst.ToSlice())
}

// TestSliceRoundTrip checks Slice(0, Len()) equals the original.
func TestSliceRoundTrip(t *testing.T) {
	v, err := vector.New(12, vector.WithSeed(77))
	require.NoError(t, err)

	s, err := v.Slice(0, v.Len())
	require.NoError(t, err)
	assert.True(t, s.Equal(v))

	// The slice owns its storage.
	require.NoError(t, s.Set(0, 1000))
	got, err := v.At(0)
	require.NoError(t, err)
	assert.NotEqual(t, 1000, got)
}

// TestSliceContents checks an interior range.
func TestSliceContents(t *testing.T) {
	v := vector.FromValues(10, 11, 12, 13, 14)
	s, err := v.Slice(1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 12, 13}, s.ToSlice())
	assert.Equal(t, 3, s.Cap())
}

// TestSliceBounds walks a grid of (start, end, length) triples and checks the
// rejection rule start > len || end > len || start > end.
func TestSliceBounds(t *testing.T) {
	for length := 0; length <= 4; length++ {
		v, err := vector.NewZeros(length)
		require.NoError(t, err)
		for start := 0; start <= length+1; start++ {
			for end := 0; end <= length+1; end++ {
				bad := start > length || end > length || start > end
				s, err := v.Slice(start, end)
				if bad {
					assert.ErrorIs(t, err, vector.ErrOutOfRange, "len=%d [%d,%d)", length, start, end)
					assert.Nil(t, s)
					continue
				}
				if assert.NoError(t, err, "len=%d [%d,%d)", length, start, end) {
					assert.Equal(t, end-start, s.Len())
				}
			}
		}
	}

	_, err := vector.FromValues(1, 2).Slice(-1, 1)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
}

// TestSliceEmptyDegenerate pins Slice(0,0) on an empty vector.
func TestSliceEmptyDegenerate(t *testing.T) {
	s, err := vector.NewEmpty().Slice(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

// TestSliceErrorContext checks the wrapped message carries the call site.
func TestSliceErrorContext(t *testing.T) {
	_, err := vector.FromValues(1, 2, 3).Slice(3, 1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	assert.EqualError(t, err, "Vector.Slice(3,1): vector: index out of range")
}

// TestSum covers empty and populated vectors.
func TestSum(t *testing.T) {
	assert.Equal(t, 0, vector.NewEmpty().Sum())
	assert.Equal(t, 15, vector.FromValues(1, 2, 3, 4, 5).Sum())
	assert.Equal(t, -2, vector.FromValues(3, -5).Sum())
}

// TestAtSet checks bounds on indexed access.
func TestAtSet(t *testing.T) {
	v := vector.FromValues(1, 2, 3)
	v.Append(4) // capacity 6: indices 4 and 5 are allocated but not logical

	_, err := v.At(4)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.At(-1)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
	assert.ErrorIs(t, v.Set(4, 0), vector.ErrOutOfRange)

	require.NoError(t, v.Set(3, 40))
	x, err := v.At(3)
	require.NoError(t, err)
	assert.Equal(t, 40, x)
}

// TestIterationRestartable ranges twice and mutates through Update and Fill.
func TestIterationRestartable(t *testing.T) {
	v := vector.FromValues(1, 2, 3)
	seq := v.Values()

	var a, b []int
	for x := range seq {
		a = append(a, x)
	}
	for x := range seq {
		b = append(b, x)
	}
	assert.Equal(t, a, b)

	// Early break stops the walk.
	var seen []int
	for i, x := range v.All() {
		if i == 1 {
			break
		}
		seen = append(seen, x)
	}
	assert.Equal(t, []int{1}, seen)

	v.Update(func(i, x int) int { return x * 10 })
	assert.Equal(t, []int{10, 20, 30}, v.ToSlice())

	v.Fill(0)
	assert.Equal(t, []int{0, 0, 0}, v.ToSlice())
}

// TestString checks the debug rendering.
func TestString(t *testing.T) {
	assert.Equal(t, "[]", vector.NewEmpty().String())
	assert.Equal(t, "[1 2 3]", vector.FromValues(1, 2, 3).String())
}

// TestFromValuesCopies ensures the input slice is not aliased.
func TestFromValuesCopies(t *testing.T) {
	in := []int{1, 2}
	v := vector.FromValues(in...)
	in[0] = 100
	assert.Equal(t, []int{1, 2}, v.ToSlice())
}
