// SPDX-License-Identifier: MIT

// Random sources used by New.
//
// A single process-wide source is created lazily and seeded from the wall
// clock exactly once. Callers that need reproducible contents pass their own
// Source (WithSource) or a seed (WithSeed) instead of relying on the default.

package vector

import (
	"math/rand"
	"sync"
	"time"
)

// MaxValue is the exclusive upper bound of values drawn by New.
const MaxValue = 20

// defaultSeed replaces seed==0 in NewSource so that the zero seed still
// yields a fixed, documented stream.
const defaultSeed int64 = 1

// Source supplies pseudo-random integers. Intn must return a value in [0, n)
// for n > 0.
type Source interface {
	Intn(n int) int
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(n int) int

// Intn calls f(n).
func (f SourceFunc) Intn(n int) int { return f(n) }

// NewSource returns a deterministic Source. seed==0 selects defaultSeed.
// The returned Source is not safe for concurrent use.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// lockedSource serialises access to a *rand.Rand shared by the whole process.
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.r.Intn(n)
}

var (
	defaultOnce sync.Once
	defaultSrc  *lockedSource
)

// DefaultSource returns the process-wide Source, seeding it from the wall
// clock on first use. It is safe for concurrent use.
func DefaultSource() Source {
	defaultOnce.Do(func() {
		defaultSrc = &lockedSource{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
	})

	return defaultSrc
}
