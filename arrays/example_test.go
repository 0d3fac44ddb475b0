// SPDX-License-Identifier: MIT

package arrays_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlarray/arrays"
)

// ExampleAppend grows a capacity-3 slice to 2×size when it is full.
func ExampleAppend() {
	buf := []int{0, 0, 0}
	size := 3

	buf, err := arrays.Append(buf, size, 7)
	if err != nil {
		fmt.Println(err)
		return
	}
	size++

	fmt.Println(buf, len(buf), size)
	// Output:
	// [0 0 0 7 0 0] 6 4
}

// ExampleInsert inserts at the front without reallocating.
func ExampleInsert() {
	buf := []string{"b", "c", ""}
	buf, _ = arrays.Insert(buf, 2, 0, "a")
	fmt.Println(buf)
	// Output:
	// [a b c]
}

// ExampleSet writes past the end, which doubles the slice once.
func ExampleSet() {
	buf, _ := arrays.Set([]float64{1, 2}, 3, 9)
	fmt.Println(buf)

	_, err := arrays.Set([]float64{1, 2}, 4, 9)
	fmt.Println(errors.Is(err, arrays.ErrOutOfRange), err)
	// Output:
	// [1 2 0 9]
	// true Set: arrays: index out of range
}

// ExampleSubarray shows clamping and the absent/empty distinction.
func ExampleSubarray() {
	a := []int{1, 2, 3, 4}
	fmt.Println(arrays.Subarray(a, -10, 2))
	fmt.Println(arrays.Subarray(a, 3, 3) == nil)
	fmt.Println(arrays.Subarray([]int(nil), 0, 2) == nil)
	// Output:
	// [1 2]
	// false
	// true
}

// ExampleIndexOf searches a bounded window.
func ExampleIndexOf() {
	a := []int{4, 8, 15, 16, 23, 42}
	i, _ := arrays.IndexOf(a, 23, 0, len(a))
	j, _ := arrays.IndexOf(a, 23, 0, 3)
	fmt.Println(i, j == arrays.IndexNotFound)
	// Output:
	// 4 true
}

// ExampleEqualsWithin compares against a scalar with a tolerance.
func ExampleEqualsWithin() {
	fmt.Println(arrays.EqualsWithin([]float64{1.0, 1.04}, 1.0, 0.05))
	fmt.Println(arrays.EqualsWithin([]float64{1.0, 1.1}, 1.0, 0.05))
	// Output:
	// true
	// false
}
