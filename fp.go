package p256k1

import (
	"crypto/subtle"
	"math/bits"
	"unsafe"
)

// Fp represents an element of the prime field of order p = 2^127 - 1, the
// Mersenne prime. An Fp holds a single 128-bit unsigned integer in two
// uint64 halves, lo and hi, with value lo + hi*2^64. Unlike FieldElement's
// multi-limb radix-2^52 representation, this is the full canonical 128-bit
// integer: the invariant is 0 <= v <= p, where the representative p itself
// is permitted transiently between operations (see Canonical).
type Fp struct {
	lo, hi uint64
}

// pLo, pHi are the limbs of p = 2^127 - 1. twoPLo, twoPHi are the limbs of
// 2p = 2^128 - 2.
const (
	pLo = 0xFFFFFFFFFFFFFFFF
	pHi = 0x7FFFFFFFFFFFFFFF

	twoPLo = 0xFFFFFFFFFFFFFFFE
	twoPHi = 0xFFFFFFFFFFFFFFFF
)

// FpZero is the additive identity.
var FpZero = Fp{0, 0}

// FpOne is the multiplicative identity.
var FpOne = Fp{1, 0}

// NewFp constructs a field element from a 128-bit unsigned integer given as
// low/high 64-bit halves, canonicalizing it modulo p. The precondition is
// that the integer is < 2p; in debug builds this is checked and reported
// as DomainOutOfRange, in release builds it is assumed.
func NewFp(lo, hi uint64) (Fp, error) {
	if debugAssertions && !fitsBelow2P(lo, hi) {
		return Fp{}, DomainOutOfRange
	}
	rlo, rhi := canonicalizeFp(lo, hi)
	return Fp{rlo, rhi}, nil
}

// fitsBelow2P reports whether lo+hi*2^64 < 2p = 2^128 - 2.
func fitsBelow2P(lo, hi uint64) bool {
	// 2p falls exactly 2 short of 2^128, so the only excluded values are
	// the top two: 2^128-1 and 2^128-2 (all-ones, and all-ones-minus-one).
	return !(hi == 0xFFFFFFFFFFFFFFFF && lo >= 0xFFFFFFFFFFFFFFFE)
}

// canonicalizeFp reduces an arbitrary x = lo + hi*2^64 with x < 2p to the
// unique representative in [0, p). Per spec: let y = x - p computed with
// wrap-around; if the high bit of y is set (x < p) the representative is
// y + p = x, otherwise it is y = x - p. Implemented branchlessly via an
// all-ones/all-zeros mask, mirroring FieldElement.normalize's constant-time
// conditional final reduction.
func canonicalizeFp(lo, hi uint64) (uint64, uint64) {
	ylo, borrow := bits.Sub64(lo, pLo, 0)
	yhi, _ := bits.Sub64(hi, pHi, borrow)

	// If y underflowed (x < p), yhi's top bit is set; build an all-ones
	// mask in that case, all-zeros otherwise.
	mask := uint64(0)
	if yhi>>63 != 0 {
		mask = ^uint64(0)
	}

	zlo, carry := bits.Add64(ylo, pLo&mask, 0)
	zhi, _ := bits.Add64(yhi, pHi&mask, carry)
	return zlo, zhi
}

// Canonical returns the strict canonical representative in [0, p): if f
// holds the transient representative p itself, it is mapped to zero.
func (f Fp) Canonical() Fp {
	isP := subtle.ConstantTimeCompare(f.bytes(), Fp{pLo, pHi}.bytes())
	mask := uint64(-int64(isP))
	return Fp{f.lo &^ mask, f.hi &^ mask}
}

// Uint128 returns the canonical 128-bit representative as low/high halves.
func (f Fp) Uint128() (lo, hi uint64) {
	c := f.Canonical()
	return c.lo, c.hi
}

func (f Fp) bytes() []byte {
	return (*[16]byte)(unsafe.Pointer(&f))[:16]
}

// Equal reports whether f and a represent the same field element, after
// canonicalizing both. A naive bit comparison would wrongly distinguish
// the transient p from 0.
func (f Fp) Equal(a Fp) bool {
	fc, ac := f.Canonical(), a.Canonical()
	return subtle.ConstantTimeCompare(fc.bytes(), ac.bytes()) == 1
}

// IsZero reports whether f represents zero.
func (f Fp) IsZero() bool {
	return f.Equal(FpZero)
}

// CMove sets f to a if flag is 1, leaving f unchanged if flag is 0.
// Constant-time selection, grounded on FieldElement.cmov/Scalar.cmov.
func (f *Fp) CMove(a Fp, flag int) {
	mask := uint64(-int64(flag & 1))
	f.lo ^= mask & (f.lo ^ a.lo)
	f.hi ^= mask & (f.hi ^ a.hi)
}

// Neg returns p - f. Safe because f <= p.
func (f Fp) Neg() Fp {
	lo, borrow := bits.Sub64(pLo, f.lo, 0)
	hi, _ := bits.Sub64(pHi, f.hi, borrow)
	return Fp{lo, hi}
}

// Add returns f + a mod p. Both operands must satisfy the Fp invariant
// (<= p). z = f + a fits in 128 bits since 2p = 2^128 - 2; z is split as
// z0 + z1*2^127 with z0 < 2^127 and z1 the top bit, and the result is
// z0 + z1, which is <= p.
func (f Fp) Add(a Fp) Fp {
	zlo, carry := bits.Add64(f.lo, a.lo, 0)
	zhi, _ := bits.Add64(f.hi, a.hi, carry)

	top := zhi >> 63
	zhi &= pHi // clear bit 127, leaving the 127-bit z0 high half

	rlo, c := bits.Add64(zlo, top, 0)
	rhi, _ := bits.Add64(zhi, 0, c)
	return Fp{rlo, rhi}
}

// Sub returns f - a mod p. z = f - a computed with wrap-around is split the
// same way as Add; the result is z0 - z1, which stays in [0, p].
func (f Fp) Sub(a Fp) Fp {
	zlo, borrow := bits.Sub64(f.lo, a.lo, 0)
	zhi, _ := bits.Sub64(f.hi, a.hi, borrow)

	top := zhi >> 63
	zhi &= pHi

	rlo, b := bits.Sub64(zlo, top, 0)
	rhi, _ := bits.Sub64(zhi, 0, b)
	return Fp{rlo, rhi}
}

// Mul returns f * a mod p using the Mersenne reduction 2^127 ≡ 1 (mod p).
// The 128x128 -> 256-bit schoolbook product is folded down using the
// identities 2^128 ≡ 2 and 2^192 ≡ 2^65 (mod p), matching FieldElement's
// wide-multiply-then-reduce shape in field_mul.go but specialized to two
// 64-bit limbs and a Mersenne modulus rather than five 52-bit limbs and a
// pseudo-Mersenne one.
func (f Fp) Mul(a Fp) Fp {
	var t [4]uint64
	x := [2]uint64{f.lo, f.hi}
	y := [2]uint64{a.lo, a.hi}

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			hi, lo := bits.Mul64(x[i], y[j])
			k := i + j

			var carry uint64
			t[k], carry = bits.Add64(t[k], lo, 0)
			if k+1 < 4 {
				t[k+1], carry = bits.Add64(t[k+1], hi, carry)
				for l := k + 2; l < 4 && carry != 0; l++ {
					t[l], carry = bits.Add64(t[l], 0, carry)
				}
			}
		}
	}

	lo, hi := reduceWideFp(t)
	rlo, rhi := canonicalizeFp(lo, hi)
	return Fp{rlo, rhi}
}

// Square returns f * f. No dedicated squaring routine exists upstream
// (the original crate only ever calls Mul(x, x)); this is an ergonomic
// alias, grounded on field_mul.go's sqr wrapper.
func (f Fp) Square() Fp {
	return f.Mul(f)
}

// reduceWideFp folds a 256-bit product t = t0 + t1*2^64 + t2*2^128 +
// t3*2^192 down to 128 bits using 2^128 ≡ 2 and 2^192 ≡ 2^65 (mod p): the
// t2 limb is doubled and added in at weight 2^0, the t3 limb is doubled and
// added in at weight 2^64, and any further overflow folds the same way
// (multiplying by 2) since it is still a multiple of 2^127. The fold alone
// only bounds its result to < 2^128, two values short of canonicalizeFp's
// < 2p precondition (2p = 2^128 - 2), so a final conditional subtraction of p
// brings it under 2p before returning.
func reduceWideFp(t [4]uint64) (lo, hi uint64) {
	d2lo := t[2] << 1
	d2carry := t[2] >> 63
	alo, c := bits.Add64(t[0], d2lo, 0)
	ahi := d2carry + c

	d3lo := t[3] << 1
	d3carry := t[3] >> 63
	blo, c2 := bits.Add64(t[1], d3lo, 0)
	bhi := d3carry + c2

	lo = alo
	var c3 uint64
	hi, c3 = bits.Add64(ahi, blo, 0)
	extra := bhi + c3

	for extra != 0 {
		var cc uint64
		lo, cc = bits.Add64(lo, 2*extra, 0)
		hi, cc = bits.Add64(hi, 0, cc)
		extra = cc
	}

	// lo+hi*2^64 < 2^128 always, so it exceeds 2p by at most 1; a single
	// branchless conditional subtraction of p (mirroring canonicalizeFp's
	// own mask-and-add-back shape) is always enough to land below 2p.
	_, borrow := bits.Sub64(lo, twoPLo, 0)
	_, borrow2 := bits.Sub64(hi, twoPHi, borrow)
	mask := uint64(0)
	if borrow2 == 0 {
		mask = ^uint64(0)
	}
	rlo, b := bits.Sub64(lo, pLo&mask, 0)
	rhi, _ := bits.Sub64(hi, pHi&mask, b)
	return rlo, rhi
}
