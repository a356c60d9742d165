package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func scanString(t *testing.T, input string) (*ParsedJSON, ErrorCode) {
	t.Helper()
	pj := NewParsedJSON(uint64(len(input)))
	s := New()
	defer s.Release()
	code := s.Scan([]byte(input), pj)
	return pj, code
}

func TestScanner_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []uint32
		code     ErrorCode
	}{
		{
			name:     "simple object",
			input:    `{"a":1}`,
			expected: []uint32{0, 1, 4, 5, 6, 7},
			code:     Success,
		},
		{
			name:     "simple array",
			input:    `[1,2,3]`,
			expected: []uint32{0, 1, 2, 3, 4, 5, 6, 7},
			code:     Success,
		},
		{
			name:     "escaped quote does not close string",
			input:    `"he\"llo"`,
			expected: []uint32{0, 9},
			code:     Success,
		},
		{
			name:     "even backslash run does not escape the closing quote",
			input:    `"he\\"`,
			expected: []uint32{0, 6},
			code:     Success,
		},
		{
			name:  "unterminated string",
			input: `"unterminated`,
			code:  UnclosedString,
		},
		{
			name:  "unescaped control byte",
			input: "\"a\x01b\"",
			code:  UnescapedChars,
		},
		{
			name:  "whitespace only is empty",
			input: "   ",
			code:  Empty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pj, code := scanString(t, tt.input)
			require.Equal(t, tt.code, code)
			if tt.expected != nil {
				require.Equal(t, tt.expected, pj.StructuralIndexes[:pj.NStructuralIndexes])
			}
		})
	}
}

func TestScanner_TerminatorAndSentinel(t *testing.T) {
	pj, code := scanString(t, `{"a":1}`)
	require.Equal(t, Success, code)

	n := pj.NStructuralIndexes
	require.Equal(t, uint32(len(`{"a":1}`)), pj.StructuralIndexes[n-1], "P2: final offset equals L")
	require.Equal(t, uint32(0), pj.StructuralIndexes[n], "sentinel slot must be zero")
}

func TestScanner_MonotonicAndInBounds(t *testing.T) {
	input := `{"users":[{"id":1,"name":"Alice"},{"id":2,"name":"Bob"}],"count":2}`
	pj, code := scanString(t, input)
	require.Equal(t, Success, code)

	prev := int64(-1)
	for i := 0; i < pj.NStructuralIndexes; i++ {
		off := int64(pj.StructuralIndexes[i])
		require.Greater(t, off, prev, "P1: strictly increasing")
		require.LessOrEqual(t, off, int64(len(input)))
		prev = off
	}
}

func TestScanner_StringInteriorHasNoOffsets(t *testing.T) {
	input := `{"key":"a long value with no structural bytes inside"}`
	pj, code := scanString(t, input)
	require.Equal(t, Success, code)

	openQuote := uint32(7) // position of the opening quote of the value
	closeQuote := uint32(len(input) - 2)

	for i := 0; i < pj.NStructuralIndexes; i++ {
		off := pj.StructuralIndexes[i]
		if off > openQuote && off < closeQuote {
			t.Fatalf("unexpected structural offset %d inside string interior", off)
		}
	}
}

func TestScanner_Deterministic(t *testing.T) {
	input := `{"a":[1,2,3],"b":{"c":true,"d":null},"e":"x\"y"}`
	pj1, code1 := scanString(t, input)
	pj2, code2 := scanString(t, input)

	require.Equal(t, code1, code2)
	require.Equal(t,
		pj1.StructuralIndexes[:pj1.NStructuralIndexes],
		pj2.StructuralIndexes[:pj2.NStructuralIndexes],
		"P6: scanning the same input twice yields identical output",
	)
}

func TestScanner_SpansStepBoundary(t *testing.T) {
	// 128 bytes is exactly one step; pad so the document runs past the first
	// 128-byte step and its structural tokens land in the tail-padding path.
	pad := make([]byte, 130)
	for i := range pad {
		pad[i] = ' '
	}
	input := string(pad) + `{"x":1}`

	pj, code := scanString(t, input)
	require.Equal(t, Success, code)
	require.Equal(t, []uint32{130, 131, 134, 135, 136, uint32(len(input))}, pj.StructuralIndexes[:pj.NStructuralIndexes])
}

func TestScanner_InvalidUTF8(t *testing.T) {
	input := []byte(`{"a":"`)
	input = append(input, 0xFF) // invalid leading byte
	input = append(input, []byte(`"}`)...)

	pj := NewParsedJSON(uint64(len(input)))
	s := New()
	defer s.Release()

	code := s.Scan(input, pj)
	require.Equal(t, UTF8Error, code)
}

func TestScanner_ReusedAcrossScans(t *testing.T) {
	s := New()
	defer s.Release()

	pj := NewParsedJSON(128)

	code := s.Scan([]byte(`{"a":1}`), pj)
	require.Equal(t, Success, code)
	first := append([]uint32{}, pj.StructuralIndexes[:pj.NStructuralIndexes]...)

	code = s.Scan([]byte(`[1,2]`), pj)
	require.Equal(t, Success, code)
	require.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, pj.StructuralIndexes[:pj.NStructuralIndexes])
	require.Equal(t, []uint32{0, 1, 4, 5, 6, 7}, first, "carry state from first scan must not leak")
}

func TestScanner_CapacityExceeded(t *testing.T) {
	pj := NewParsedJSON(4)
	s := New()
	defer s.Release()

	code := s.Scan([]byte(`{"a":1}`), pj)
	require.Equal(t, Capacity, code)
}

func TestScanner_BackendSelected(t *testing.T) {
	s := New()
	defer s.Release()
	require.NotEmpty(t, s.BackendName())
}

func TestScanner_WindowingInvariance(t *testing.T) {
	// P7: padding a document with trailing spaces must not change the
	// structural offsets already emitted for the original prefix.
	base := `{"a":[1,2,3],"b":"hello world","c":null}`
	pj1, code1 := scanString(t, base)
	require.Equal(t, Success, code1)

	padded := base + "                                                                "
	pj2, code2 := scanString(t, padded)
	require.Equal(t, Success, code2)

	baseOffsets := pj1.StructuralIndexes[:pj1.NStructuralIndexes-1] // drop base's own terminator
	paddedOffsets := pj2.StructuralIndexes[:pj1.NStructuralIndexes-1]
	require.Equal(t, baseOffsets, paddedOffsets, "structural offsets of the shared prefix are unaffected by trailing padding")
}
