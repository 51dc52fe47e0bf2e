package gf256

import "github.com/klauspost/cpuid/v2"

// tier names the lane width the split-table multiply kernels process
// per inner-loop iteration. Real SIMD backends reach these widths
// with a byte-shuffle instruction per lane (pshufb on amd64, tbl on
// arm64); this module processes the same chunk sizes in portable Go,
// so a binary built for any GOARCH behaves identically regardless of
// which tier is selected.
type tier int

const (
	// tierScalar processes 1-byte chunks via the nibble split tables.
	tierScalar tier = iota
	// tier128 processes 16-byte chunks via the nibble split tables,
	// modeling a 128-bit byte-shuffle (SSSE3 / NEON TBL) backend.
	tier128
	// tier256 processes 32-byte chunks via the nibble split tables,
	// modeling a 256-bit byte-shuffle (AVX2) backend.
	tier256
)

// detectTier picks the widest lane width the running CPU advertises,
// preferring 256-bit, then 128-bit, then scalar. Selection happens
// once per Context and is fixed for its lifetime.
func detectTier() tier {
	switch {
	case cpuid.CPU.Supports(cpuid.AVX2):
		return tier256
	case cpuid.CPU.Supports(cpuid.SSSE3), cpuid.CPU.Supports(cpuid.ASIMD):
		return tier128
	default:
		return tierScalar
	}
}

// Tier reports which dispatch tier this context selected at New. It
// is exposed for kernel-equivalence tests and diagnostics; callers
// should never need to branch on it.
func (c *Context) Tier() string {
	switch c.tier {
	case tier256:
		return "256-bit"
	case tier128:
		return "128-bit"
	default:
		return "scalar"
	}
}

func chunkWidth(t tier) int {
	switch t {
	case tier256:
		return 32
	case tier128:
		return 16
	default:
		return 1
	}
}
