package utils

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllDistinct(t *testing.T) {
	require.True(t, AllDistinct([]uint64{}))
	require.True(t, AllDistinct([]uint64{1}))
	require.True(t, AllDistinct([]uint64{1, 2, 3}))
	require.False(t, AllDistinct([]uint64{1, 1}))
	require.False(t, AllDistinct([]uint64{1, 2, 3, 4, 5, 5}))
}

func TestRotateUint64SliceAllocFree(t *testing.T) {
	s := []uint64{0, 1, 2, 3, 4, 5, 6, 7}
	sout := make([]uint64, len(s))

	RotateUint64SliceAllocFree(s, 3, sout)
	require.Equal(t, []uint64{3, 4, 5, 6, 7, 0, 1, 2}, sout)
	require.Equal(t, []uint64{0, 1, 2, 3, 4, 5, 6, 7}, s, "should not modify input slice")

	RotateUint64SliceAllocFree(s, 0, sout)
	require.Equal(t, []uint64{0, 1, 2, 3, 4, 5, 6, 7}, sout)

	RotateUint64SliceAllocFree(s, -2, sout)
	require.Equal(t, []uint64{6, 7, 0, 1, 2, 3, 4, 5}, sout)

	RotateUint64SliceAllocFree(s, 0, s)
	require.Equal(t, []uint64{0, 1, 2, 3, 4, 5, 6, 7}, s)

	RotateUint64SliceAllocFree(s, 1, s)
	require.Equal(t, []uint64{1, 2, 3, 4, 5, 6, 7, 0}, s)
}

func TestGetSortedKeys(t *testing.T) {
	m := map[int]int{1: 1, 3: 3, 2: 2}
	require.Equal(t, []int{1, 2, 3}, GetSortedKeys(m))
}

func TestGetDistincts(t *testing.T) {
	actual := GetDistincts([]int{1, 2, 3, 1, 2, 3})
	expected := []int{1, 2, 3}
	sort.Ints(actual)
	require.Equal(t, expected, actual)
}

func TestRotateSlice(t *testing.T) {
	require.Equal(t, []int{3, 4, 5, 1, 2}, RotateSlice([]int{1, 2, 3, 4, 5}, 2))
	require.Equal(t, []int{4, 5, 1, 2, 3}, RotateSlice([]int{1, 2, 3, 4, 5}, -2))
}

func TestGCD(t *testing.T) {
	require.Equal(t, uint64(6), GCD(48, 18))
	require.Equal(t, uint64(1), GCD(17, 13))
	require.Equal(t, uint64(5), GCD(0, 5))
}

func TestKeyedPRNGDeterministic(t *testing.T) {
	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	Ha, err := NewKeyedPRNG(key)
	require.NoError(t, err)
	Hb, err := NewKeyedPRNG(key)
	require.NoError(t, err)

	sum0 := make([]byte, 512)
	sum1 := make([]byte, 512)

	Ha.SetClock(sum0, 256)
	Hb.SetClock(sum1, 128)

	for i := 0; i < 128; i++ {
		Hb.Clock(sum1)
	}

	Ha.Clock(sum0)
	Hb.Clock(sum1)

	require.Equal(t, sum0, sum1)
}
