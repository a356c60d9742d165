// Package jsonscan exposes stage 1 of a JSON structural scanner: given raw
// UTF-8 bytes, it produces the ordered list of byte offsets at every
// structural or primitive-start position in the document. It performs no
// value materialization and builds no parse tape -- that is left to a
// separate stage-2 consumer of the index stream FindStructuralBits
// produces.
package jsonscan

import (
	"github.com/aldenfen/jsonscan/internal/scanner"
)

// ErrorCode enumerates the terminal outcomes of a scan.
type ErrorCode = scanner.ErrorCode

const (
	Success         = scanner.Success
	Capacity        = scanner.Capacity
	Empty           = scanner.Empty
	UnclosedString  = scanner.UnclosedString
	UnescapedChars  = scanner.UnescapedChars
	UTF8Error       = scanner.UTF8Error
	UnexpectedError = scanner.UnexpectedError
)

// ParsedJSON is the caller-owned output handle: declared capacity, the
// structural index array, and the valid-entry count after a scan.
type ParsedJSON = scanner.ParsedJSON

// NewParsedJSON allocates a ParsedJSON sized for documents up to
// byteCapacity bytes.
func NewParsedJSON(byteCapacity uint64) *ParsedJSON {
	return scanner.NewParsedJSON(byteCapacity)
}

// FindStructuralBits scans buf and writes the resulting structural index
// stream into pj. It returns the terminal ErrorCode plus a non-nil error
// describing it whenever that code is not Success.
func FindStructuralBits(buf []byte, pj *ParsedJSON) (ErrorCode, error) {
	s := scanner.New()
	defer s.Release()

	code := s.Scan(buf, pj)
	if code != Success {
		return code, newScanError(code, uint64(len(buf)), pj.ByteCapacity)
	}
	return code, nil
}
