// SPDX-License-Identifier: MIT
// Package: lvlarray/seq
//
// options.go — functional options for New.
//
// Defaults:
//   • capacity = DefaultCapacity (1)
//   • policy   = DoubleSize
//
// Option constructors panic on nonsensical inputs; Sequence methods return
// errors instead.

package seq

// DefaultCapacity is the initial buffer size when WithCapacity is not given.
// It is 1 because doubling a zero-sized buffer never makes room.
const DefaultCapacity = 1

const (
	panicCapacityInvalid = "seq: WithCapacity: capacity must be >= 1"
	panicPolicyNil       = "seq: WithGrowthPolicy(nil)"
)

// Option configures a Sequence under construction.
type Option func(*config)

type config struct {
	capacity int
	policy   GrowthPolicy
}

// WithCapacity sets the initial buffer size. Panics if n < 1.
func WithCapacity(n int) Option {
	if n < 1 {
		panic(panicCapacityInvalid)
	}
	return func(c *config) {
		c.capacity = n
	}
}

// WithGrowthPolicy selects how the buffer grows when full. Panics on nil.
func WithGrowthPolicy(p GrowthPolicy) Option {
	if p == nil {
		panic(panicPolicyNil)
	}
	return func(c *config) {
		c.policy = p
	}
}

func gatherConfig(opts ...Option) config {
	c := config{
		capacity: DefaultCapacity,
		policy:   DoubleSize,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
