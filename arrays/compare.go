// SPDX-License-Identifier: MIT
// Package: lvlarray/arrays
//
// compare.go — comparison of every element against one scalar.
//
// Numeric policy:
//   • EqualsAll is exact (==); a NaN element never equals anything.
//   • EqualsWithin accepts s[i] == v or |v - s[i]| <= delta. A NaN difference
//     FAILS, which keeps EqualsWithin(s, v, 0) == EqualsAll(s, v).
//   • Signed integer distances that overflow E count as out of tolerance.
//   • A negative delta fails every element not equal to v; that is
//     degenerate, not an error.
//   • An empty slice satisfies all three predicates.

package arrays

// EqualsAll reports whether every element of s equals v.
func EqualsAll[S ~[]E, E comparable](s S, v E) bool {
	for _, x := range s {
		if x != v {
			return false
		}
	}

	return true
}

// AlmostEqualsAll reports whether every element of s is within
// DefaultAlmostEqualDelta of v.
func AlmostEqualsAll[S ~[]E, E Float](s S, v E) bool {
	return EqualsWithin(s, v, E(DefaultAlmostEqualDelta))
}

// EqualsWithin reports whether every element of s lies within delta of v.
// An element equal to v always passes, which covers matching infinities.
// Complexity: O(len(s)), stops at the first failing element.
func EqualsWithin[S ~[]E, E Number](s S, v, delta E) bool {
	for _, x := range s {
		if x == v {
			continue
		}
		d, ok := absDiff(v, x)
		if !ok || !(d <= delta) {
			return false
		}
	}

	return true
}

// absDiff returns |a-b|. ok is false when the distance does not fit in E,
// which only happens for signed integers far apart; such a distance exceeds
// any delta. Unsigned types never wrap because the larger operand comes first.
func absDiff[E Number](a, b E) (d E, ok bool) {
	if a >= b {
		d = a - b
	} else {
		d = b - a
	}

	return d, d >= 0
}
