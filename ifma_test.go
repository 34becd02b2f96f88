package p256k1

import (
	"math/bits"
	"testing"
)

func TestMadd52LoHiSplitReconstructsProduct(t *testing.T) {
	cases := []vec4{
		{0, 1, mask52, mask52 - 1},
		{mask52, mask52, mask52, mask52},
	}
	for _, x := range cases {
		lo := madd52lo(vec4{}, x, x)
		hi := madd52hi(vec4{}, x, x)
		for k := 0; k < 4; k++ {
			xl := x[k] & mask52
			pHi, pLo := bits.Mul64(xl, xl)
			wantLo := pLo & mask52
			wantHi := pHi<<12 | pLo>>52
			if lo[k] != wantLo || hi[k] != wantHi {
				t.Errorf("lane %d: (lo, hi) = (%d, %d), want (%d, %d)", k, lo[k], hi[k], wantLo, wantHi)
			}
		}
	}
}

func TestVec4Arithmetic(t *testing.T) {
	a := vec4{1, 2, 3, 4}
	b := vec4{10, 20, 30, 40}

	if sum := a.add(b); sum != (vec4{11, 22, 33, 44}) {
		t.Errorf("add: got %v", sum)
	}
	if diff := b.sub(a); diff != (vec4{9, 18, 27, 36}) {
		t.Errorf("sub: got %v", diff)
	}
	if shifted := a.shl(4); shifted != (vec4{16, 32, 48, 64}) {
		t.Errorf("shl: got %v", shifted)
	}
	if shifted := b.shr(1); shifted != (vec4{5, 10, 15, 20}) {
		t.Errorf("shr: got %v", shifted)
	}
	if masked := b.and(0xF); masked != (vec4{10, 4, 14, 8}) {
		t.Errorf("and: got %v", masked)
	}
	if s := splat4(7); s != (vec4{7, 7, 7, 7}) {
		t.Errorf("splat4: got %v", s)
	}
}
