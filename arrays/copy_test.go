// SPDX-License-Identifier: MIT

package arrays_test

import (
	"testing"

	"github.com/katalvlaran/lvlarray/arrays"
	"github.com/stretchr/testify/require"
)

func TestCopyOf(t *testing.T) {
	src := []byte{1, 2, 3, 4}

	longer, err := arrays.CopyOf(src, 6)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4, 0, 0}, longer)

	shorter, err := arrays.CopyOf(src, 2)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, shorter)

	empty, err := arrays.CopyOf(src, 0)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	shorter[0] = 99
	require.Equal(t, byte(1), src[0], "copy must not alias the source")

	_, err = arrays.CopyOf(src, -1)
	require.ErrorIs(t, err, arrays.ErrNegativeLength)
}

func TestClone(t *testing.T) {
	src := []int{4, 5, 6}
	c := arrays.Clone(src)
	require.Equal(t, src, c)
	c[0] = 0
	require.Equal(t, 4, src[0])

	require.Nil(t, arrays.Clone([]int(nil)))
}

func TestCopy(t *testing.T) {
	dst := make([]int, 3)
	require.NoError(t, arrays.Copy([]int{1, 2, 3}, dst))
	require.Equal(t, []int{1, 2, 3}, dst)

	dst = []int{7, 7}
	err := arrays.Copy([]int{1, 2, 3}, dst)
	require.ErrorIs(t, err, arrays.ErrLengthMismatch)
	require.Equal(t, []int{7, 7}, dst, "dst untouched on mismatch")
}

func TestSubarray(t *testing.T) {
	a := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name       string
		start, end int
		want       []string
	}{
		{"middle", 1, 3, []string{"b", "c"}},
		{"clamped both", -5, len(a) + 5, a},
		{"clamped start", -1, 2, []string{"a", "b"}},
		{"empty", 3, 3, []string{}},
		{"inverted", 4, 1, []string{}},
		{"start past end of slice", 9, 12, []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := arrays.Subarray(a, tc.start, tc.end)
			require.NotNil(t, got)
			require.False(t, arrays.IsAbsent(got))
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSubarray_FullRangeIsClone(t *testing.T) {
	a := []int{1, 2, 3}
	got := arrays.Subarray(a, -5, len(a)+5)
	require.Equal(t, arrays.Subarray(a, 0, len(a)), got)
	got[0] = 100
	require.Equal(t, 1, a[0])
}

func TestSubarray_AbsentPropagates(t *testing.T) {
	got := arrays.Subarray([]int(nil), 0, 3)
	require.Nil(t, got)
	require.True(t, arrays.IsAbsent(got))

	// Present but empty input yields present-but-empty output.
	got = arrays.Subarray([]int{}, 0, 3)
	require.NotNil(t, got)
	require.False(t, arrays.IsAbsent(got))
}
