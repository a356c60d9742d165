// Package scanner implements stage 1 of the JSON structural scan: reading
// raw bytes and producing the ordered list of byte offsets at every
// structural or primitive-start position. It performs no tokenization and
// builds no parse tape; that is left to a stage-2 consumer of the index
// stream this package produces.
package scanner

import "sync"

// StepSize is the number of bytes processed per driver iteration: two
// 64-byte windows, pipelined so the compiler can hide the quote-mask
// prefix-XOR's latency behind the second window's classification work.
const (
	WindowSize = 64
	StepSize   = 2 * WindowSize
)

// ErrorCode mirrors the error codes an stage-1 call can return.
type ErrorCode uint8

const (
	Success ErrorCode = iota
	Capacity
	Empty
	UnclosedString
	UnescapedChars
	UTF8Error
	UnexpectedError
)

func (e ErrorCode) String() string {
	switch e {
	case Success:
		return "success"
	case Capacity:
		return "capacity"
	case Empty:
		return "empty"
	case UnclosedString:
		return "unclosed_string"
	case UnescapedChars:
		return "unescaped_chars"
	case UTF8Error:
		return "utf8_error"
	case UnexpectedError:
		return "unexpected_error"
	default:
		return "unknown_error"
	}
}

// Scanner holds the reusable carry state and back-end selection for
// repeated Scan calls. A Scanner is not safe for concurrent use; obtain a
// distinct one per goroutine via New/Release.
type Scanner struct {
	carryState
	backend simdBackend
	utf8    *utf8Checker
	tailBuf [StepSize]byte
}

var scannerPool = sync.Pool{
	New: func() interface{} {
		return &Scanner{
			backend: newBackend(),
			utf8:    newUTF8Checker(),
		}
	},
}

// New obtains a Scanner from the shared pool.
func New() *Scanner {
	return scannerPool.Get().(*Scanner)
}

// Release returns s to the pool. s must not be used afterward.
func (s *Scanner) Release() {
	scannerPool.Put(s)
}

// BackendName reports which architecture back-end this Scanner dispatched
// to at construction time.
func (s *Scanner) BackendName() string {
	return s.backend.name()
}

func (s *Scanner) reset() {
	s.carryState = carryState{}
	s.utf8.reset()
}

// step runs one 128-byte iteration of the driver: compute both windows'
// string and structural masks, then flatten the *previous* window's
// lagged structurals while the quote-mask carryless-multiply for this
// window has already retired. A held mask is always flattened at the
// base of the window it was computed from, one window behind the window
// currently being classified -- base-WindowSize for the mask held from
// before this step, base for window A's own mask (held across into B).
// When nothing has been held yet (prevStructurals == 0, at the very
// first call) the underflowed base is never read, since flattenBits
// writes nothing for a zero mask. Returns the updated write count.
func (s *Scanner) step(chunk []byte, base uint32, out []uint32, n int) int {
	winA := chunk[0:WindowSize]
	winB := chunk[WindowSize:StepSize]

	stringA := s.findStrings(winA)
	structuralsA := s.findPotentialStructurals(winA)
	stringB := s.findStrings(winB)
	structuralsB := s.findPotentialStructurals(winB)

	unescapedA := s.backend.lteq(winA, 0x1F)
	s.utf8.checkNextInput(winA)
	n += flattenBits(out[n:], base-WindowSize, s.prevStructurals)
	s.prevStructurals = structuralsA &^ stringA
	s.unescapedCharsError |= unescapedA & stringA

	unescapedB := s.backend.lteq(winB, 0x1F)
	s.utf8.checkNextInput(winB)
	n += flattenBits(out[n:], base, s.prevStructurals)
	s.prevStructurals = structuralsB &^ stringB
	s.unescapedCharsError |= unescapedB & stringB

	return n
}

// Scan drives buf through stage 1, writing structural offsets into
// out.StructuralIndexes (which must have room for one entry per input byte
// plus the terminator, as NewParsedJSON allocates) and recording the count in
// out.NStructuralIndexes. It returns the terminal error code.
func (s *Scanner) Scan(buf []byte, out *ParsedJSON) ErrorCode {
	l := uint64(len(buf))
	if l > out.ByteCapacity {
		return Capacity
	}

	s.reset()
	indexes := out.StructuralIndexes
	n := 0

	var idx uint64
	lenMinusStep := uint64(0)
	if l >= StepSize {
		lenMinusStep = l - StepSize
	}

	for ; idx < lenMinusStep; idx += StepSize {
		n = s.step(buf[idx:idx+StepSize], uint32(idx), indexes, n)
	}

	if idx < l {
		for i := range s.tailBuf {
			s.tailBuf[i] = ' '
		}
		copy(s.tailBuf[:], buf[idx:])
		n = s.step(s.tailBuf[:], uint32(idx), indexes, n)
		idx += StepSize
	}

	// The last window processed (whether from the main loop or the tail)
	// held its own structurals one step behind; flush them at that
	// window's own base, idx-WindowSize, not the current idx.
	n += flattenBits(indexes[n:], uint32(idx-WindowSize), s.prevStructurals)

	if s.prevInString != 0 {
		return UnclosedString
	}
	if s.unescapedCharsError != 0 {
		return UnescapedChars
	}

	if n == 0 {
		return Empty
	}
	if uint64(indexes[n-1]) > l {
		return UnexpectedError
	}
	if uint64(indexes[n-1]) < l {
		indexes[n] = uint32(l)
		n++
	}
	if n < len(indexes) {
		indexes[n] = 0 // safe-to-dereference sentinel
	}

	out.NStructuralIndexes = n

	if s.utf8.errors() {
		return UTF8Error
	}
	return Success
}
