package jsonscan

// Valid reports whether stage 1 completes with Success on data. It only
// certifies the structural-scan contract (balanced quoting, no unescaped
// control bytes, valid UTF-8, at least one structural token) -- it is not
// a full JSON grammar check, which belongs to the stage-2 tape builder
// this package does not implement.
func Valid(data []byte) bool {
	pj := NewParsedJSON(uint64(len(data)))
	code, _ := FindStructuralBits(data, pj)
	return code == Success
}
