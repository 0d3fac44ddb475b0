// Package lvlarray is a small toolbox of array primitives for numeric and ML
// code that manages its own buffers.
//
// What is inside?
//
//	arrays/ — stateless generic operations over caller-owned slices:
//	          Set / Append / Insert with capacity doubling,
//	          CopyOf / Clone / Copy / Subarray,
//	          IndexOf / Contains,
//	          Shuffle / ShuffleN / Swap / Fill (seedable Fisher–Yates),
//	          EqualsAll / AlmostEqualsAll / EqualsWithin,
//	          Box / Unbox.
//	seq/    — Sequence[T], an explicit (buffer, length) pair with named
//	          growth policies (DoubleCapacity, DoubleSize).
//	examples/ — a runnable walkthrough.
//
// The caller tracks the logical size; the packages never infer it. Growth
// operations may hand back a new slice, and the returned value is the only
// one to keep using.
//
//	go get github.com/katalvlaran/lvlarray
package lvlarray
