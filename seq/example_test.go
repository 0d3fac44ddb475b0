// SPDX-License-Identifier: MIT

package seq_test

import (
	"fmt"

	"github.com/katalvlaran/lvlarray/seq"
)

func ExampleSequence() {
	s := seq.New[float64](seq.WithCapacity(2))
	_ = s.Push(0.5)
	_ = s.Push(1.5)
	_ = s.InsertAt(1, 1.0)

	fmt.Println(s.Values(), s.Len(), s.Cap())
	// Output:
	// [0.5 1 1.5] 3 4
}
