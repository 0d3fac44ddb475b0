// SPDX-License-Identifier: MIT

package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an index outside [0, Len()) (or [0, Len()] for InsertAt).
	ErrOutOfRange = errors.New("seq: index out of range")

	// ErrGrowthStalled is returned when the growth policy does not provide at
	// least one extra slot.
	ErrGrowthStalled = errors.New("seq: growth policy made no room")
)

func seqErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
