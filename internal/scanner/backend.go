package scanner

// simdBackend is the capability interface every architecture back-end
// implements: the primitives eq/lteq/find_whitespace_and_operators
// /compute_quote_mask plus name for diagnostics. There is no separate load
// primitive; each method takes the 64-byte window slice directly. A Scanner
// picks exactly one implementation at construction time (newBackend, in the
// per-architecture files below) and calls through the interface for the
// rest of its life -- a tagged-variant dispatch rather than runtime
// feature-by-feature branching in the hot loop.
type simdBackend interface {
	name() string
	eq(window []byte, c byte) uint64
	lteq(window []byte, c byte) uint64
	findWhitespaceAndOperators(window []byte) (whitespace, op uint64)
	computeQuoteMask(quote uint64) uint64
}

// swarBackend implements simdBackend with the SWAR lane tricks in swar.go.
// Every concrete back-end (AVX2, SSE4.2, NEON, generic) embeds it: none of
// them have a real vector ISA to target from pure Go without assembly, so
// the variants differ only in the capability they report and the name they
// carry for diagnostics, exactly the portable-fallback behavior spec.md
// permits for unsupported hardware -- here that's every back-end, since no
// assembly ships in this module.
type swarBackend struct{}

func (swarBackend) eq(window []byte, c byte) uint64  { return eqMask(window, c) }
func (swarBackend) lteq(window []byte, c byte) uint64 { return lteqMask(window, c) }

func (swarBackend) findWhitespaceAndOperators(window []byte) (whitespace, op uint64) {
	return findWhitespaceAndOperators(window)
}

func (swarBackend) computeQuoteMask(quote uint64) uint64 { return prefixXOR(quote) }

// genericBackend is the scalar fallback required by spec for any
// unsupported architecture, and the default when an amd64/arm64 binary
// finds no usable capability bit. It shares the exact SWAR implementation
// every other back-end uses -- there has never been real vector hardware
// behind any of them in this module -- but is named separately so a
// profiling run can tell which dispatch path a given binary took.
type genericBackend struct{ swarBackend }

func (genericBackend) name() string { return "generic" }
