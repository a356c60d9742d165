package scanner

import "math/bits"

const (
	evenBits = 0x5555555555555555
	oddBits  = ^uint64(evenBits)
)

// followsOddSequenceOf returns the mask of bytes that sit immediately after
// an odd-length run of set bits in match, updating overflow (0 or 1) to
// carry an odd run that ends at the last bit of match into the next window.
//
// Ported from stage1_find_marks.h's follows_odd_sequence_of, with the
// add-with-carry step expressed via math/bits instead of a compiler
// overflow intrinsic.
func followsOddSequenceOf(match uint64, overflow *uint64) uint64 {
	prevOverflow := *overflow

	startEdges := match &^ (match << 1)
	evenStartMask := evenBits ^ prevOverflow
	evenStarts := startEdges & evenStartMask
	oddStarts := startEdges &^ evenStartMask

	evenCarries := match + evenStarts
	oddCarriesRaw, carryOut := bits.Add64(match, oddStarts, 0)
	oddCarries := oddCarriesRaw | prevOverflow

	*overflow = carryOut

	evenCarryEnds := evenCarries &^ match
	oddCarryEnds := oddCarries &^ match
	evenStartOddEnd := evenCarryEnds & oddBits
	oddStartEvenEnd := oddCarryEnds & evenBits
	return evenStartOddEnd | oddStartEvenEnd
}

// prefixXOR computes, for each bit i, the XOR of bits 0..i of x. This is
// the portable stand-in for the carryless multiply by all-ones that real
// SIMD back-ends use to build compute_quote_mask: CLMUL(x, -1) and a
// parallel prefix-XOR produce identical results.
func prefixXOR(x uint64) uint64 {
	x ^= x << 1
	x ^= x << 2
	x ^= x << 4
	x ^= x << 8
	x ^= x << 16
	x ^= x << 32
	return x
}

// carryState is the mutable state that must survive across 64-byte windows
// within a single Scan call. It is never stored outside a *Scanner.
type carryState struct {
	prevEscaped         uint64 // 0 or 1
	prevInString        uint64 // all-ones or all-zeros
	prevPrimitive       uint64 // 0 or 1
	prevStructurals     uint64
	unescapedCharsError uint64
}

// findStrings computes the mask of bytes inside or at the closing quote of
// a string, per window, updating prevEscaped and prevInString.
func (s *Scanner) findStrings(window []byte) uint64 {
	backslash := s.backend.eq(window, '\\')
	escaped := followsOddSequenceOf(backslash, &s.prevEscaped)
	quote := s.backend.eq(window, '"') &^ escaped

	inString := s.backend.computeQuoteMask(quote) ^ s.prevInString
	// Arithmetic right shift by 63 sign-extends the top bit to all-ones
	// or all-zeros, matching the reference implementation's carry.
	s.prevInString = uint64(int64(inString) >> 63)

	return inString ^ quote
}
