package scanner

import "math/bits"

// flattenBits expands mask into the absolute offsets of its set bits,
// writing base+i for each set bit i into out (increasing order) and
// returning how many offsets were written.
//
// The reference implementation unconditionally writes eight offsets per
// unrolled block and lets the pointer advance by popcount, relying on
// extra allocated slack past the real data for the over-writes to land in.
// Go slices are bounds-checked, so this port bounds the loop to exactly
// popcount(mask) writes instead of the wider unconditional unroll -- same
// output, no dependency on caller-side padding beyond what popcount(mask)
// already requires.
func flattenBits(out []uint32, base uint32, mask uint64) int {
	n := 0
	for mask != 0 {
		tz := bits.TrailingZeros64(mask)
		out[n] = base + uint32(tz)
		n++
		mask &= mask - 1
	}
	return n
}
