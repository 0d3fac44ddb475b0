// SPDX-License-Identifier: MIT

package seq

// GrowthPolicy returns the capacity to allocate when a sequence of the given
// capacity and length has no room. Results smaller than the slots the
// operation needs (length+1 for Push and InsertAt, i+1 for Put) are rejected
// with ErrGrowthStalled.
type GrowthPolicy func(capacity, length int) int

// DoubleCapacity doubles the allocated capacity.
func DoubleCapacity(capacity, _ int) int {
	return 2 * capacity
}

// DoubleSize doubles the logical length. For Push and InsertAt the buffer
// is full when growth happens, so this matches DoubleCapacity there; Put
// past the end of a partly filled buffer is where the two differ.
func DoubleSize(_, length int) int {
	return 2 * length
}
