package p256k1

import "github.com/klauspost/cpuid/v2"

// HasIFMA reports whether the running CPU supports AVX-512 IFMA, the
// instruction set the vector arithmetic in Fp4 and Fp4Ext is modeled on.
// cpuid.CPU is populated at package init by the cpuid library (already an
// indirect dependency, promoted here to direct use); this wraps that single
// feature check so callers never probe cpuid.CPU.Supports directly.
func HasIFMA() bool {
	return cpuid.CPU.Supports(cpuid.AVX512IFMA)
}

// RequireIFMA returns CapabilityUnavailable if the running CPU lacks IFMA,
// nil otherwise. Callers that want to select the vector path only on
// hardware that can actually run it call this before doing so; the
// arithmetic in fpvec.go and fpextvec.go runs correctly either way (it is a
// portable emulation, not an assembly or cgo binding), so this check gates
// a caller's choice of path, not the package's own behavior.
func RequireIFMA() error {
	if !HasIFMA() {
		return CapabilityUnavailable
	}
	return nil
}
