package p256k1

import "math/bits"

// vec4 is a 4-lane 64-bit SIMD vector. On hardware with AVX-512 IFMA this
// would map directly onto a single 256-bit ymm register; here it is the portable
// fallback implementations target when the instruction is unavailable,
// and the type real IFMA-capable callers would use once intrinsics are
// wired in.
type vec4 [4]uint64

const mask52 = (1 << 52) - 1

// madd52lo returns z + low52(x*y) lane-wise, where each lane of x and y is
// first reduced to its low 52 bits. This is the portable emulation of the
// AVX-512 IFMA vpmadd52luq instruction.
func madd52lo(z, x, y vec4) vec4 {
	var r vec4
	for k := 0; k < 4; k++ {
		xl := x[k] & mask52
		yl := y[k] & mask52
		r[k] = z[k] + (xl*yl)&mask52
	}
	return r
}

// madd52hi returns z + high52(x*y) lane-wise, where each lane of x and y is
// first reduced to its low 52 bits and the product's top 52 bits (of the
// resulting 104-bit product) are added in. The portable emulation of
// vpmadd52huq.
func madd52hi(z, x, y vec4) vec4 {
	var r vec4
	for k := 0; k < 4; k++ {
		xl := x[k] & mask52
		yl := y[k] & mask52
		hi, lo := bits.Mul64(xl, yl)
		r[k] = z[k] + (hi<<12 | lo>>52)
	}
	return r
}

// splat4 builds a vec4 with every lane set to v.
func splat4(v uint64) vec4 {
	return vec4{v, v, v, v}
}

func (a vec4) add(b vec4) vec4 {
	return vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func (a vec4) sub(b vec4) vec4 {
	return vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (a vec4) shl(n uint) vec4 {
	return vec4{a[0] << n, a[1] << n, a[2] << n, a[3] << n}
}

func (a vec4) shr(n uint) vec4 {
	return vec4{a[0] >> n, a[1] >> n, a[2] >> n, a[3] >> n}
}

func (a vec4) and(mask uint64) vec4 {
	return vec4{a[0] & mask, a[1] & mask, a[2] & mask, a[3] & mask}
}
