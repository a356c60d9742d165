package scanner

// ParsedJSON is the caller-owned output handle stage 1 writes into: the
// declared capacity, the structural index array, and the count of valid
// entries after a Scan call. The scanner borrows both fields for the
// duration of one Scan and touches nothing else.
type ParsedJSON struct {
	ByteCapacity       uint64
	StructuralIndexes  []uint32
	NStructuralIndexes int
}

// indexCapacity sizes the structural index array. The resource policy
// leaves the exact lower bound implementation-defined; a document made
// entirely of structural operator bytes (e.g. a run of commas) puts a
// structural at every single offset, so -- unlike a quarter-density
// estimate that would undercount that case -- this sizes for one entry per
// input byte plus room for the terminator and the one-past-end sentinel.
func indexCapacity(byteCapacity uint64) int {
	return int(byteCapacity) + 8
}

// NewParsedJSON allocates a ParsedJSON sized to scan documents up to
// byteCapacity bytes.
func NewParsedJSON(byteCapacity uint64) *ParsedJSON {
	return &ParsedJSON{
		ByteCapacity:      byteCapacity,
		StructuralIndexes: make([]uint32, indexCapacity(byteCapacity)),
	}
}

// Reset zeroes the count so the same buffers can back another Scan call.
func (pj *ParsedJSON) Reset() {
	pj.NStructuralIndexes = 0
}

// Resize grows the backing array if byteCapacity increased, preserving the
// existing ByteCapacity otherwise.
func (pj *ParsedJSON) Resize(byteCapacity uint64) {
	if byteCapacity <= pj.ByteCapacity && len(pj.StructuralIndexes) > 0 {
		return
	}
	pj.ByteCapacity = byteCapacity
	pj.StructuralIndexes = make([]uint32, indexCapacity(byteCapacity))
}
