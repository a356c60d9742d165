//go:build arm64

package scanner

import "golang.org/x/sys/cpu"

// neonBackend is selected on every arm64 target that reports the baseline
// Advanced SIMD capability, which in practice is every ARMv8 core: ASIMD
// has been mandatory since the base architecture revision, so this gate
// never actually falls through to genericBackend today. It is still
// checked, the same way cpu.X86.HasAVX2 gates the amd64 side, so a later
// assembly NEON implementation can gate on finer capabilities (e.g.
// dot-product extensions) without changing this selection point.
type neonBackend struct{ swarBackend }

func (neonBackend) name() string { return "neon" }

func newBackend() simdBackend {
	if cpu.ARM64.HasASIMD {
		return neonBackend{}
	}
	return genericBackend{}
}
