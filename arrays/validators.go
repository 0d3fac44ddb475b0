// SPDX-License-Identifier: MIT
// Package: lvlarray/arrays
//
// validators.go — the single source of truth for index/size guards.
// Every validator returns a bare sentinel; call sites wrap it with the
// operation tag through arraysErrorf. All checks are O(1) and allocate nothing.

package arrays

// validateIndex checks 0 <= i < n.
func validateIndex(i, n int) error {
	if i < 0 {
		return ErrNegativeIndex
	}
	if i >= n {
		return ErrOutOfRange
	}

	return nil
}

// validateSize checks that a caller-tracked logical size fits the slice:
// 0 <= size <= capacity.
func validateSize(size, capacity int) error {
	if size < 0 || size > capacity {
		return ErrInvalidSize
	}

	return nil
}

// validateInsertIndex checks 0 <= index <= size (index == size appends).
func validateInsertIndex(index, size int) error {
	if index < 0 {
		return ErrNegativeIndex
	}
	if index > size {
		return ErrOutOfRange
	}

	return nil
}

// validateSearchRange checks 0 <= start <= end, where end is already
// clamped to the slice length.
func validateSearchRange(start, end int) error {
	if start < 0 || start > end {
		return ErrInvalidRange
	}

	return nil
}
