// SPDX-License-Identifier: MIT

package arrays

// IndexNotFound is returned by IndexOf when the value is absent or the
// slice itself is nil.
const IndexNotFound = -1

// DefaultAlmostEqualDelta is the absolute tolerance used by AlmostEqualsAll.
const DefaultAlmostEqualDelta = 1e-15

// Integer is the set of built-in integer element types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of built-in floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Number is any element type that supports ordered subtraction, which the
// tolerance comparisons need.
type Number interface {
	Integer | Float
}
