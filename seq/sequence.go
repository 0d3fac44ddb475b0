// SPDX-License-Identifier: MIT
// Package: lvlarray/seq
//
// sequence.go — Sequence[T], an explicit (buffer, length) pair.
//
// Invariant: 0 <= n <= len(buf) and len(buf) >= 1 at all times. Slots in
// [n, len(buf)) hold zero values unless Put left older data there.
//
// Every mutation delegates the element plumbing to the arrays package after
// grow has made room, so the arrays error paths for capacity never fire.

package seq

import "github.com/katalvlaran/lvlarray/arrays"

const (
	opPush     = "Push"
	opInsertAt = "InsertAt"
	opPut      = "Put"
	opAt       = "At"
	opSetAt    = "SetAt"
)

// Sequence is a growable buffer with a tracked logical length.
type Sequence[T any] struct {
	buf    []T
	n      int
	policy GrowthPolicy
}

// New returns an empty Sequence configured by opts.
func New[T any](opts ...Option) *Sequence[T] {
	c := gatherConfig(opts...)

	return &Sequence[T]{
		buf:    make([]T, c.capacity),
		policy: c.policy,
	}
}

// From returns a Sequence holding a copy of values. The initial capacity is
// max(len(values), WithCapacity).
func From[T any](values []T, opts ...Option) *Sequence[T] {
	c := gatherConfig(opts...)
	buf, _ := arrays.CopyOf(values, max(c.capacity, len(values)))

	return &Sequence[T]{
		buf:    buf,
		n:      len(values),
		policy: c.policy,
	}
}

// Len returns the logical length.
func (s *Sequence[T]) Len() int { return s.n }

// Cap returns the number of allocated slots.
func (s *Sequence[T]) Cap() int { return len(s.buf) }

// Values returns a copy of the live elements.
func (s *Sequence[T]) Values() []T {
	return arrays.Subarray(s.buf, 0, s.n)
}

// Push appends v.
//
// Errors: ErrGrowthStalled.
func (s *Sequence[T]) Push(v T) error {
	if err := s.grow(s.n + 1); err != nil {
		return seqErrorf(opPush, err)
	}
	buf, err := arrays.Append(s.buf, s.n, v)
	if err != nil {
		return seqErrorf(opPush, err)
	}
	s.buf = buf
	s.n++

	return nil
}

// InsertAt places v at index i and shifts [i, Len()) one slot right.
// i == Len() appends.
//
// Errors: ErrOutOfRange, ErrGrowthStalled.
func (s *Sequence[T]) InsertAt(i int, v T) error {
	if i < 0 || i > s.n {
		return seqErrorf(opInsertAt, ErrOutOfRange)
	}
	if err := s.grow(s.n + 1); err != nil {
		return seqErrorf(opInsertAt, err)
	}
	buf, err := arrays.Insert(s.buf, s.n, i, v)
	if err != nil {
		return seqErrorf(opInsertAt, err)
	}
	s.buf = buf
	s.n++

	return nil
}

// Put writes v at index i, growing the buffer once through the policy when
// i is past the capacity. The length extends to i+1 if needed; skipped slots
// keep whatever the buffer holds (zero for freshly grown slots).
//
// Errors: ErrOutOfRange (i < 0), ErrGrowthStalled (one growth step is not
// enough to reach i).
func (s *Sequence[T]) Put(i int, v T) error {
	if i < 0 {
		return seqErrorf(opPut, ErrOutOfRange)
	}
	if err := s.grow(i + 1); err != nil {
		return seqErrorf(opPut, err)
	}
	buf, err := arrays.Set(s.buf, i, v)
	if err != nil {
		return seqErrorf(opPut, err)
	}
	s.buf = buf
	if i >= s.n {
		s.n = i + 1
	}

	return nil
}

// At returns the element at i.
//
// Errors: ErrOutOfRange.
func (s *Sequence[T]) At(i int) (T, error) {
	if i < 0 || i >= s.n {
		var zero T
		return zero, seqErrorf(opAt, ErrOutOfRange)
	}

	return s.buf[i], nil
}

// SetAt overwrites an existing element.
//
// Errors: ErrOutOfRange.
func (s *Sequence[T]) SetAt(i int, v T) error {
	if i < 0 || i >= s.n {
		return seqErrorf(opSetAt, ErrOutOfRange)
	}
	s.buf[i] = v

	return nil
}

// Shuffle permutes the live elements in place; spare capacity is untouched.
func (s *Sequence[T]) Shuffle(opts ...arrays.Option) {
	// n never exceeds len(buf), so ShuffleN cannot fail.
	_ = arrays.ShuffleN(s.buf, s.n, opts...)
}

// IndexOf returns the first position of v among the live elements, or
// arrays.IndexNotFound.
func IndexOf[T comparable](s *Sequence[T], v T) int {
	i, _ := arrays.IndexOf(s.buf, v, 0, s.n)
	return i
}

// grow makes len(buf) >= need using one policy step.
func (s *Sequence[T]) grow(need int) error {
	if need <= len(s.buf) {
		return nil
	}
	capacity := s.policy(len(s.buf), s.n)
	if capacity < need {
		return ErrGrowthStalled
	}
	buf, err := arrays.CopyOf(s.buf, capacity)
	if err != nil {
		return err
	}
	s.buf = buf

	return nil
}
