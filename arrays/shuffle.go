// SPDX-License-Identifier: MIT
// Package: lvlarray/arrays
//
// shuffle.go — in-place Fisher–Yates (Durstenfeld, decreasing) shuffle,
// element swap and random fill.
//
// Determinism:
//   • WithSeed / WithRand → reproducible permutation for the same input.
//   • No option → a fresh generator per call; nothing is shared between calls.
//
// Uniformity: for i = size..2 the swap partner j is drawn uniformly from
// [0, i), so each of the size! permutations has probability 1/size! given an
// unbiased source.

package arrays

import "math/rand"

// Shuffle permutes the whole slice in place.
func Shuffle[S ~[]E, E any](s S, opts ...Option) {
	o := gatherOptions(opts...)
	shuffle(s, len(s), o)
}

// ShuffleN permutes the first size elements in place and leaves the rest
// untouched.
//
// Errors: ErrInvalidSize (size outside [0, len(s)]).
// Complexity: O(size) time, O(1) space.
func ShuffleN[S ~[]E, E any](s S, size int, opts ...Option) error {
	if err := validateSize(size, len(s)); err != nil {
		return arraysErrorf(opShuffleN, err)
	}
	o := gatherOptions(opts...)
	shuffle(s, size, o)

	return nil
}

// shuffle assumes 0 <= size <= len(s).
func shuffle[S ~[]E, E any](s S, size int, o options) {
	for i := size; i > 1; i-- {
		j := o.rng.Intn(i)
		s[i-1], s[j] = s[j], s[i-1]
	}
}

// Swap exchanges s[i] and s[j]. i == j is a no-op.
//
// Errors: ErrNegativeIndex, ErrOutOfRange.
func Swap[S ~[]E, E any](s S, i, j int) error {
	if err := validateIndex(i, len(s)); err != nil {
		return arraysErrorf(opSwap, err)
	}
	if err := validateIndex(j, len(s)); err != nil {
		return arraysErrorf(opSwap, err)
	}
	s[i], s[j] = s[j], s[i]

	return nil
}

// Fill overwrites every element with a uniform draw from [0, 1).
func Fill[S ~[]E, E Float](s S, opts ...Option) {
	o := gatherOptions(opts...)
	for i := range s {
		s[i] = unitDraw[E](o.rng)
	}
}

// unitDraw narrows a float64 draw to E, redrawing when rounding to a
// narrower type would produce 1.
func unitDraw[E Float](rng *rand.Rand) E {
	for {
		if v := E(rng.Float64()); v < 1 {
			return v
		}
	}
}
