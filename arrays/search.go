// SPDX-License-Identifier: MIT

package arrays

// IndexOf scans [start, min(end, len(s))) and returns the position of the
// first element equal to v, or IndexNotFound.
//
// A nil s yields (IndexNotFound, nil). A start below zero or past the
// effective end is a caller error (ErrInvalidRange), never a silent miss.
// Complexity: O(end-start).
func IndexOf[S ~[]E, E comparable](s S, v E, start, end int) (int, error) {
	if s == nil {
		return IndexNotFound, nil
	}
	til := min(end, len(s))
	if err := validateSearchRange(start, til); err != nil {
		return IndexNotFound, arraysErrorf(opIndexOf, err)
	}
	for i := start; i < til; i++ {
		if s[i] == v {
			return i, nil
		}
	}

	return IndexNotFound, nil
}

// Contains reports whether v occurs anywhere in s.
func Contains[S ~[]E, E comparable](s S, v E) bool {
	// The full range is always valid, so the error is impossible here.
	i, _ := IndexOf(s, v, 0, len(s))
	return i != IndexNotFound
}
