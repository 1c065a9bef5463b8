// Package cpu reports CPU feature availability for diagnostic purposes.
// The SKINNY core always runs the portable bit-sliced Go path regardless of
// what is reported here; this package exists so callers (and benchmarks)
// can record which microarchitecture produced a given timing, not to
// select among code paths.
package cpu

import "github.com/klauspost/cpuid/v2"

// Features summarizes the instruction-set extensions cpuid detected on the
// running CPU that are relevant to a from-scratch SIMD port of the fixsliced
// SKINNY core (none of which this module currently uses).
type Features struct {
	SSE2  bool
	SSSE3 bool
	AVX2  bool
	Name  string
}

// Detect reports the current CPU's relevant feature set.
func Detect() Features {
	return Features{
		SSE2:  cpuid.CPU.Has(cpuid.SSE2),
		SSSE3: cpuid.CPU.Has(cpuid.SSSE3),
		AVX2:  cpuid.CPU.Has(cpuid.AVX2),
		Name:  cpuid.CPU.BrandName,
	}
}
