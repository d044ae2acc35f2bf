package kernel

import "golang.org/x/sys/cpu"

// DefaultMode picks SIMD2 on hardware that plausibly benefits from
// processing row-words two at a time (wide integer/vector units) and
// Scalar otherwise. Go has no portable SIMD intrinsics, so this only
// gates the software-unrolled path in Advance — see doc.go.
func DefaultMode() Mode {
	if cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD {
		return SIMD2
	}
	return Scalar
}
