//go:build amd64

package scanner

import "golang.org/x/sys/cpu"

// avx2Backend and sse42Backend are both backed by the same portable SWAR
// lane code; the distinction preserved from the teacher is which
// capability bit gated their selection, so a future assembly
// implementation slots in behind the same two names without touching the
// driver.
type avx2Backend struct{ swarBackend }
type sse42Backend struct{ swarBackend }

func (avx2Backend) name() string  { return "avx2" }
func (sse42Backend) name() string { return "sse42" }

func newBackend() simdBackend {
	switch {
	case cpu.X86.HasAVX2:
		return avx2Backend{}
	case cpu.X86.HasSSE42:
		return sse42Backend{}
	default:
		return genericBackend{}
	}
}
