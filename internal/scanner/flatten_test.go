package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlattenBits_Empty(t *testing.T) {
	out := make([]uint32, 4)
	n := flattenBits(out, 100, 0)
	require.Equal(t, 0, n)
}

func TestFlattenBits_SparseMask(t *testing.T) {
	out := make([]uint32, 4)
	mask := uint64(1)<<0 | uint64(1)<<5 | uint64(1)<<63
	n := flattenBits(out, 1000, mask)
	require.Equal(t, 3, n)
	require.Equal(t, []uint32{1000, 1005, 1063}, out[:n])
}

func TestFlattenBits_DenseMask(t *testing.T) {
	out := make([]uint32, 64)
	n := flattenBits(out, 0, ^uint64(0))
	require.Equal(t, 64, n)
	for i := 0; i < 64; i++ {
		require.Equal(t, uint32(i), out[i])
	}
}

func TestFlattenBits_OrderIsIncreasing(t *testing.T) {
	out := make([]uint32, 8)
	mask := uint64(0b10110101)
	n := flattenBits(out, 0, mask)
	for i := 1; i < n; i++ {
		require.Greater(t, out[i], out[i-1])
	}
}
