// SPDX-License-Identifier: MIT
// Package: lvlarray/arrays
//
// copy.go — bulk copy, resized copy and subrange extraction.
//
// Absent vs empty: a nil slice is "no array". Subarray keeps the distinction
// explicit: nil in → nil out, while an empty range on a present slice yields
// a non-nil, zero-length slice. Use IsAbsent to branch on it.

package arrays

// CopyOf returns a new slice of exactly newLength elements. The first
// min(len(s), newLength) come from s; the rest are zero. s is not modified.
//
// Errors: ErrNegativeLength.
func CopyOf[S ~[]E, E any](s S, newLength int) (S, error) {
	if newLength < 0 {
		return nil, arraysErrorf(opCopyOf, ErrNegativeLength)
	}

	return resize(s, newLength), nil
}

// Clone returns a full copy of s with the same length. Clone(nil) is nil.
func Clone[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}

	return resize(s, len(s))
}

// Copy copies src into dst element by element. The lengths must match;
// nothing is resized.
//
// Errors: ErrLengthMismatch (dst is left untouched).
func Copy[S ~[]E, E any](src, dst S) error {
	if len(src) != len(dst) {
		return arraysErrorf(opCopy, ErrLengthMismatch)
	}
	copy(dst, src)

	return nil
}

// Subarray returns a fresh copy of s[start:end] with start clamped up to 0
// and end clamped down to len(s).
//
//   - nil s            → nil
//   - empty/inverted   → non-nil empty slice
//   - otherwise        → new slice, never aliasing s
func Subarray[S ~[]E, E any](s S, start, end int) S {
	if s == nil {
		return nil
	}
	if start < 0 {
		start = 0
	}
	if end > len(s) {
		end = len(s)
	}
	n := end - start
	if n <= 0 {
		return make(S, 0)
	}
	out := make(S, n)
	copy(out, s[start:end])

	return out
}

// IsAbsent reports whether s is the "no array" result (nil), as opposed to a
// present but empty slice.
func IsAbsent[S ~[]E, E any](s S) bool {
	return s == nil
}
