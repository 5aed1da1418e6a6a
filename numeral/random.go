// SPDX-License-Identifier: MIT
// Package: lvroman/numeral
//
// random.go: uniformly random numerals from an explicit source.
//
// Determinism:
//   • WithSeed / WithRand inject the source; the same seed yields the same
//     sequence of numerals.
//   • Without an option, each call draws from a fresh time-seeded source.
//
// Concurrency:
//   • math/rand.Rand is NOT goroutine-safe. Do not share one *rand.Rand, or
//     one Generator, across goroutines.

package numeral

import (
	"math/rand"
	"time"
)

const (
	// DefaultRandomMin is the lower bound used by RandomDefault.
	DefaultRandomMin = 1
	// DefaultRandomMax is the upper bound used by RandomDefault.
	DefaultRandomMax = MaxValue
)

// randomConfig holds the resolved random source.
type randomConfig struct {
	rng *rand.Rand
}

// RandomOption customizes the random source used by Random and NewGenerator.
type RandomOption func(*randomConfig)

// WithRand injects an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) RandomOption {
	if r == nil {
		panic("numeral: WithRand(nil)")
	}
	return func(c *randomConfig) {
		c.rng = r
	}
}

// WithSeed creates a deterministic RNG from seed.
func WithSeed(seed int64) RandomOption {
	return func(c *randomConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

func newRandomConfig(opts ...RandomOption) randomConfig {
	var c randomConfig
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return c
}

// Generator draws numerals from one source. Repeated draws from a seeded
// Generator are reproducible.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator over the configured source.
func NewGenerator(opts ...RandomOption) *Generator {
	c := newRandomConfig(opts...)
	return &Generator{rng: c.rng}
}

// Numeral returns a uniformly distributed Numeral in [lo, hi].
//
// Errors: ErrInvalidRange if lo < MinValue, hi > MaxValue or lo > hi.
// Complexity: O(1).
func (g *Generator) Numeral(lo, hi int) (Numeral, error) {
	if lo < MinValue || hi > MaxValue || lo > hi {
		return Numeral{}, numeralErrorf(MethodRandom, ErrInvalidRange, "[%d, %d] not within [%d, %d]", lo, hi, MinValue, MaxValue)
	}
	v := lo + g.rng.Intn(hi-lo+1)

	return Numeral{s: encodeInRange(v), v: v}, nil
}

// Random returns a uniformly distributed Numeral in [lo, hi].
//
// Errors: ErrInvalidRange.
func Random(lo, hi int, opts ...RandomOption) (Numeral, error) {
	return NewGenerator(opts...).Numeral(lo, hi)
}

// RandomDefault returns a uniformly distributed Numeral in
// [DefaultRandomMin, DefaultRandomMax].
func RandomDefault(opts ...RandomOption) Numeral {
	// The default bounds are always valid.
	n, _ := Random(DefaultRandomMin, DefaultRandomMax, opts...)
	return n
}
