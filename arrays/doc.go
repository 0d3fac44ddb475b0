// SPDX-License-Identifier: MIT

// Package arrays provides primitive plumbing over caller-owned slices:
// capacity-doubling assignment, append and insert with reallocation,
// resized copies, clamped subranges, bounded search, Fisher–Yates shuffle
// and scalar comparison with an optional tolerance.
//
// The package keeps no state. A slice's "capacity" is its length; the
// number of meaningful elements (the logical size) is tracked by the caller
// and passed explicitly to Append, Insert and ShuffleN:
//
//	buf := make([]int, 1)
//	size := 0
//	for _, v := range []int{3, 1, 4, 1, 5} {
//		var err error
//		if buf, err = arrays.Append(buf, size, v); err != nil {
//			return err
//		}
//		size++
//	}
//
// Growth operations may return a new slice; always continue with the
// returned value.
//
// Errors are package sentinels (ErrOutOfRange, ErrInvalidSize, ...) wrapped
// with the operation name; test them with errors.Is. A nil slice passed to
// Subarray or IndexOf is treated as "absent" and propagates as nil or
// IndexNotFound instead of an error.
//
// Randomized operations accept WithSeed or WithRand for reproducibility.
// Without them each call seeds its own generator.
//
// Concurrent calls on the same slice need external synchronization.
package arrays
