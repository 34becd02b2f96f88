package p256k1

import "math/bits"

const (
	mask43 = (1 << 43) - 1
	mask41 = (1 << 41) - 1
)

// Fp4 is the vectorized prime field: four independent elements of Fp held
// side-by-side across SIMD lanes, each represented in an unsaturated
// radix-2^43, 3-limb form (L0, L1, L2). Lane k's value is L0[k] +
// L1[k]*2^43 + L2[k]*2^86. This is the performance-critical counterpart to
// Fp, generalizing FieldElement's 5-limb radix-2^52 shape down to 3 limbs
// at radix 2^43 and up to 4 SIMD lanes, per the choice-of-radix rationale
// in original_source/src/vector/prime_field.rs (radix 2^52 forces
// sequential carries; radix 2^51 misaligns limb boundaries with the
// 127-bit modulus; 2^43 aligns 3 limbs exactly to 129 bits).
type Fp4 struct {
	L0, L1, L2 vec4
}

// PackFp4 packs four canonical Fp values into an Fp4, extracting bits
// [0,43), [43,86), [86,127) of each value into lane k of L0, L1, L2.
func PackFp4(v0, v1, v2, v3 Fp) Fp4 {
	vs := [4]Fp{v0, v1, v2, v3}
	var f Fp4
	for k := 0; k < 4; k++ {
		lo, hi := vs[k].Uint128()
		f.L0[k] = lo & mask43
		f.L1[k] = ((lo >> 43) | (hi << 21)) & mask43
		f.L2[k] = (hi >> 22) & mask43 // naturally < 2^41 since lo+hi*2^64 < 2^127
	}
	return f
}

// Unpack reconstitutes the four canonical Fp values held in f's lanes.
// Before reassembly the limbs may exceed the tight <2^43 bound because the
// multiplier leaves them in an "almost canonical" state; a single
// reduction pass folds the overflow of L2 back into L0 using 2^127 ≡ 1
// (mod p): bit i of L2 (i >= 41) sits at absolute weight 2^(86+i), so bit
// 41 itself sits at weight 2^127, and c = L2>>41, read as an integer, is
// exactly the coefficient of that weight-2^127 term — hence it folds into
// L0 by a plain add, with no extra doubling (contrast Mul's c2<<2 carry,
// which folds a term that lands at weight 2^129 ≡ 4, a different position).
func (f Fp4) Unpack() (v0, v1, v2, v3 Fp) {
	c := f.L2.shr(41)
	l0 := f.L0.add(c)
	l2 := f.L2.and(mask41)

	var out [4]Fp
	for k := 0; k < 4; k++ {
		lo1, c1 := bits.Add64(l0[k], f.L1[k]<<43, 0)
		hi1, _ := bits.Add64(f.L1[k]>>21, l2[k]<<22, c1)
		rlo, rhi := canonicalizeFp(lo1, hi1)
		out[k] = Fp{rlo, rhi}
	}
	return out[0], out[1], out[2], out[3]
}

// Add returns f + a, lane- and limb-wise, without reduction.
func (f Fp4) Add(a Fp4) Fp4 {
	return Fp4{f.L0.add(a.L0), f.L1.add(a.L1), f.L2.add(a.L2)}
}

// negConstL0L1, negConstL2 are per-limb representatives of 8p ≡ 0 (mod p):
// M0 = M1 = (2^43-1)<<3, M2 = (2^41-1)<<3. Subtracting the input from this
// constant negates modulo p while keeping headroom (limbs bounded above by
// 8*(2^43-1)) for subsequent unreduced adds, per spec.md §4.4's negation
// constant design note.
var (
	negConstL0L1 = splat4(mask43 << 3)
	negConstL2   = splat4(mask41 << 3)
)

// Neg returns -f, computed as 8p - f per limb.
func (f Fp4) Neg() Fp4 {
	return Fp4{
		negConstL0L1.sub(f.L0),
		negConstL0L1.sub(f.L1),
		negConstL2.sub(f.L2),
	}
}

// Sub returns f - a, via negation and unreduced add. (Fp.Sub instead
// subtracts directly and folds the borrow.)
func (f Fp4) Sub(a Fp4) Fp4 {
	return f.Add(a.Neg())
}

// Mul returns f * a using the scheduled 18-IFMA-instruction product
// described in spec.md §4.4 and taken verbatim (accumulator assignment,
// shift amounts, and the c2<<2 carry constant) from
// original_source/src/vector/prime_field.rs. THE CORE of this package.
//
// Nine partial products x_i*y_j (i,j in {0,1,2}) are accumulated into nine
// 64-bit accumulators (three per output limb) so the 18 madd52lo/hi calls
// form nine independent latency-2 chains, saturating two IFMA execution
// ports. The weight of partial x_i*y_j is 2^(43*(i+j)); terms that land at
// or beyond weight 2^129 are folded back using 2^129 ≡ 4 (mod p).
func (f Fp4) Mul(a Fp4) Fp4 {
	x0, x1, x2 := f.L0, f.L1, f.L2
	y0, y1, y2 := a.L0, a.L1, a.L2

	var z0a, z0b, z0c vec4
	var z1a, z1b, z1c vec4
	var z2a, z2b, z2c vec4

	z0a = madd52hi(z0a, x2, y0)
	z0b = madd52lo(z0b, x2, y1)
	z0c = madd52hi(z0c, x1, y1)

	z1a = madd52hi(z1a, x0, y0)
	z1b = madd52hi(z1b, x2, y1)
	z1c = madd52lo(z1c, x1, y0)

	z2a = madd52hi(z2a, x2, y2)
	z2b = madd52hi(z2b, x0, y1)
	z2c = madd52lo(z2c, x2, y0)

	z0a = z0a.shl(11)
	z1a = z1a.shl(7)
	z2a = z2a.shl(11)

	z0a = madd52lo(z0a, x0, y0)
	z0b = madd52lo(z0b, x1, y2)
	z0c = madd52hi(z0c, x0, y2)

	z1a = madd52lo(z1a, x2, y2)
	z1b = madd52hi(z1b, x1, y2)
	z1c = madd52lo(z1c, x0, y1)

	z2a = madd52lo(z2a, x0, y2)
	z2b = madd52hi(z2b, x1, y0)
	z2c = madd52lo(z2c, x1, y1)

	z0 := z0a.add(z0b.shl(2)).add(z0c.shl(11))
	z1 := z1a.shl(2).add(z1b.shl(11)).add(z1c)
	z2 := z2a.add(z2b.shl(9)).add(z2c)

	c0 := z0.shr(43)
	c1 := z1.shr(43)
	c2 := z2.shr(43)

	return Fp4{
		z0.and(mask43).add(c2.shl(2)),
		z1.and(mask43).add(c0),
		z2.and(mask43).add(c1),
	}
}

// Square returns f * f. The upstream reference has no dedicated vector
// squaring routine either; this is an alias, not a distinct algorithm.
func (f Fp4) Square() Fp4 {
	return f.Mul(f)
}
