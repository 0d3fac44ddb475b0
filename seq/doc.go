// SPDX-License-Identifier: MIT

// Package seq pairs a buffer with its logical length so callers do not have
// to thread the size through every arrays call by hand.
//
// A Sequence grows according to a GrowthPolicy. The two rules used by the
// arrays package are available as named policies and are deliberately not
// merged:
//
//	DoubleCapacity — new capacity = 2 × capacity   (arrays.Set)
//	DoubleSize     — new capacity = 2 × length     (arrays.Append, arrays.Insert)
//
// Example:
//
//	s := seq.New[float64](seq.WithCapacity(4))
//	_ = s.Push(0.5)
//	_ = s.InsertAt(0, 0.25)
//	fmt.Println(s.Values()) // [0.25 0.5]
//
// A Sequence is not safe for concurrent use.
package seq
