// SPDX-License-Identifier: MIT
// Package: lvlarray/arrays
//
// errors.go — sentinel errors for the arrays package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Operations attach the operation name via arraysErrorf (%w wrapping).
//   • Operations MUST NOT panic on caller input. Panics are confined to option
//     constructors (WithRand(nil)), same as in seq.
//   • Absent input (nil slice) is NOT an error for Subarray/IndexOf: it
//     propagates as nil / IndexNotFound.

package arrays

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeIndex is returned when an index argument is below zero.
	ErrNegativeIndex = errors.New("arrays: negative index")

	// ErrOutOfRange indicates that an index lies beyond the allocated capacity
	// (after the single growth step, for Set) or beyond the logical size (Insert).
	ErrOutOfRange = errors.New("arrays: index out of range")

	// ErrInvalidSize indicates a logical size outside [0, len(s)].
	ErrInvalidSize = errors.New("arrays: logical size out of range")

	// ErrZeroCapacity is returned when a growth step is required on a slice
	// whose doubling rule yields zero slots (len 0 for Set, size 0 for Append/Insert).
	ErrZeroCapacity = errors.New("arrays: cannot grow zero capacity")

	// ErrLengthMismatch signals Copy between slices of different lengths.
	ErrLengthMismatch = errors.New("arrays: length mismatch")

	// ErrInvalidRange signals startIndex < 0 or startIndex > effective end in IndexOf.
	ErrInvalidRange = errors.New("arrays: invalid search range")

	// ErrNegativeLength is returned by CopyOf for newLength < 0.
	ErrNegativeLength = errors.New("arrays: negative length")

	// ErrTypeMismatch is returned by Unbox when an element has a foreign dynamic type.
	ErrTypeMismatch = errors.New("arrays: element type mismatch")
)

// Operation tags used as error prefixes ("Set: arrays: negative index").
const (
	opSet      = "Set"
	opAppend   = "Append"
	opInsert   = "Insert"
	opCopyOf   = "CopyOf"
	opCopy     = "Copy"
	opIndexOf  = "IndexOf"
	opShuffleN = "ShuffleN"
	opSwap     = "Swap"
	opUnbox    = "Unbox"
)

// arraysErrorf prefixes err with the operation tag, keeping the sentinel
// reachable through errors.Is.
func arraysErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
