// SPDX-License-Identifier: MIT
// Package: lvlarray/arrays
//
// growth.go — capacity-doubling assignment, append and insert.
//
// Capacity here is len(s): the number of allocated slots the caller sees.
// The runtime cap(s) is never consulted, and fresh slices are always
// allocated with make(S, n) so len == cap for everything we return.
//
// Two growth rules coexist and are NOT interchangeable:
//   • Set grows to 2 × len(s).
//   • Append and Insert grow to 2 × size (the caller's logical size).
//
// Ownership: a call may return a new slice. The returned slice is the only
// valid handle afterwards; the argument must not be used again.

package arrays

// Set writes v at index, growing s to twice its length first when index
// falls outside it. Growth happens at most once, so index must be below
// 2*len(s). All elements other than index keep their position.
//
// Errors: ErrNegativeIndex, ErrZeroCapacity (len(s)==0 and growth needed),
// ErrOutOfRange (index >= 2*len(s)). On error s is returned unchanged.
// Complexity: O(1) without growth, O(len(s)) with growth.
func Set[S ~[]E, E any](s S, index int, v E) (S, error) {
	if index < 0 {
		return s, arraysErrorf(opSet, ErrNegativeIndex)
	}
	if index >= len(s) {
		if len(s) == 0 {
			return s, arraysErrorf(opSet, ErrZeroCapacity)
		}
		grown := len(s) * 2
		if index >= grown {
			return s, arraysErrorf(opSet, ErrOutOfRange)
		}
		s = resize(s, grown)
	}
	s[index] = v

	return s, nil
}

// Append writes e at position size. When size+1 exceeds len(s) the slice
// is reallocated to 2*size and its first size elements are copied over.
// The caller increments its own size after a successful call.
//
// Errors: ErrInvalidSize (size outside [0, len(s)]), ErrZeroCapacity
// (growth from size 0).
// Complexity: amortized O(1).
func Append[S ~[]E, E any](s S, size int, e E) (S, error) {
	if err := validateSize(size, len(s)); err != nil {
		return s, arraysErrorf(opAppend, err)
	}
	if size+1 > len(s) {
		if size == 0 {
			return s, arraysErrorf(opAppend, ErrZeroCapacity)
		}
		grown := make(S, size*2)
		copy(grown, s[:size])
		s = grown
	}
	s[size] = e

	return s, nil
}

// Insert places e at index, moving the elements of [index, size) one slot
// to the right. Requires 0 <= index <= size.
//
// Without growth exactly size-index elements move. With growth the slice is
// reallocated to 2*size and the whole tail s[index:len(s)] is carried over
// shifted by one, including any slots past size. Callers that keep data in
// spare capacity rely on that.
//
// Errors: ErrInvalidSize, ErrNegativeIndex, ErrOutOfRange (index > size),
// ErrZeroCapacity.
// Complexity: O(size-index) without growth, O(len(s)) with growth.
func Insert[S ~[]E, E any](s S, size, index int, e E) (S, error) {
	if err := validateSize(size, len(s)); err != nil {
		return s, arraysErrorf(opInsert, err)
	}
	if err := validateInsertIndex(index, size); err != nil {
		return s, arraysErrorf(opInsert, err)
	}

	if size+1 <= len(s) {
		copy(s[index+1:size+1], s[index:size])
		s[index] = e
		return s, nil
	}

	if size == 0 {
		return s, arraysErrorf(opInsert, ErrZeroCapacity)
	}
	grown := make(S, size*2)
	copy(grown, s[:index])
	grown[index] = e
	// Growth only happens when size == len(s), so 2*size >= len(s)+1 and the
	// whole tail fits.
	copy(grown[index+1:], s[index:])

	return grown, nil
}

// resize returns a fresh slice of length n holding the first min(len(s), n)
// elements of s; the remainder is zero.
func resize[S ~[]E, E any](s S, n int) S {
	out := make(S, n)
	copy(out, s)

	return out
}
