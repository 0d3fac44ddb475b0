// SPDX-License-Identifier: MIT
// Package: lvlarray/arrays
//
// options.go — functional options for the randomized operations
// (Shuffle, ShuffleN, Fill).
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//     Operations themselves never panic on caller input.
//   • No hidden globals: without WithRand/WithSeed every call builds its own
//     freshly seeded generator, so two calls never share stream state.
//   • Later options override earlier ones (last-wins).

package arrays

import (
	"math/rand"
	"time"
)

const panicNilRand = "arrays: WithRand(nil)"

// Option customizes a randomized operation by mutating its options before
// the operation starts.
type Option func(*options)

// options is the resolved configuration of a randomized call.
type options struct {
	// rng is the random source; nil until resolved by gatherOptions.
	rng *rand.Rand
}

// WithRand supplies an explicit random source. The caller owns the stream;
// consecutive calls sharing r advance the same sequence.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed, so the call is
// reproducible. Use it in tests and examples.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// gatherOptions applies opts in order and falls back to a per-call
// time-seeded generator.
func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}
