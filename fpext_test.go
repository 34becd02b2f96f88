package p256k1

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/hdevalence/mersenne-ifma/internal/randsrc"
)

func randFpExt(src *randsrc.Source) FpExt {
	return FpExt{randFp(src), randFp(src)}
}

// extMulRef computes (a+bi)(c+di) directly as (ac-bd) + (ad+bc)i over
// big.Int mod p, the naive four-multiplication definition, to check the
// three-multiplication identity against.
func extMulRef(t *testing.T, a, b, c, d *big.Int) (re, im *big.Int) {
	ac := new(big.Int).Mul(a, c)
	bd := new(big.Int).Mul(b, d)
	ad := new(big.Int).Mul(a, d)
	bc := new(big.Int).Mul(b, c)
	re = new(big.Int).Sub(ac, bd)
	im = new(big.Int).Add(ad, bc)
	re.Mod(re, bigP)
	im.Mod(im, bigP)
	return re, im
}

func TestFpExtMulAgainstNaiveFourMul(t *testing.T) {
	src := randsrc.New([32]byte{'f', 'p', 'e', 'x', 't'})
	for i := 0; i < 512; i++ {
		x := randFpExt(src)
		y := randFpExt(src)

		got := x.Mul(y)

		wantRe, wantIm := extMulRef(t, fpToBig(x.A), fpToBig(x.B), fpToBig(y.A), fpToBig(y.B))
		gotRe, gotIm := fpToBig(got.A), fpToBig(got.B)

		if gotRe.Cmp(wantRe) != 0 || gotIm.Cmp(wantIm) != 0 {
			t.Fatalf("trial %d: Mul mismatch\nx=%s\ny=%s\ngot=(%s,%s)\nwant=(%s,%s)",
				i, spew.Sdump(x), spew.Sdump(y), gotRe, gotIm, wantRe, wantIm)
		}
	}
}

func TestFpExtAddSubNeg(t *testing.T) {
	src := randsrc.New([32]byte{'f', 'p', 'e', 'x', 't', '2'})
	for i := 0; i < 256; i++ {
		x := randFpExt(src)
		y := randFpExt(src)

		if sum := x.Sub(y).Add(y); !sum.Equal(x) {
			t.Fatalf("trial %d: (x-y)+y != x, got %s", i, spew.Sdump(sum))
		}
		if z := x.Add(x.Neg()); !z.IsZero() {
			t.Fatalf("trial %d: x + (-x) != 0, got %s", i, spew.Sdump(z))
		}
	}
}

func TestFpExtSquareIsSelfMul(t *testing.T) {
	src := randsrc.New([32]byte{'f', 'p', 'e', 'x', 't', '3'})
	x := randFpExt(src)
	if !x.Square().Equal(x.Mul(x)) {
		t.Error("Square should equal Mul(x, x)")
	}
}

// TestSeedScenarioExtMul pins the reference's fixed extension-field product.
func TestSeedScenarioExtMul(t *testing.T) {
	x := FpExt{
		bigToFp(t, bigFromDecimal(t, "64602349736890547230188097686032968383")),
		bigToFp(t, bigFromDecimal(t, "58401672467634577377614110902426170573")),
	}
	y := FpExt{
		bigToFp(t, bigFromDecimal(t, "36178516401130528447705023720593931265")),
		bigToFp(t, bigFromDecimal(t, "57463319253223551344966612196770510351")),
	}
	got := x.Mul(y)

	wantRe := bigFromDecimal(t, "167087788139004297409615161698155907378")
	wantIm := bigFromDecimal(t, "77896319433764489876703096387833153505")
	if gotRe := fpToBig(got.A); gotRe.Cmp(wantRe) != 0 {
		t.Errorf("re = %s, want %s", gotRe, wantRe)
	}
	if gotIm := fpToBig(got.B); gotIm.Cmp(wantIm) != 0 {
		t.Errorf("im = %s, want %s", gotIm, wantIm)
	}
}

func TestFpExtCMove(t *testing.T) {
	src := randsrc.New([32]byte{'f', 'p', 'e', 'x', 't', 'c', 'm'})
	a := randFpExt(src)
	b := randFpExt(src)

	x := a
	x.CMove(b, 0)
	if !x.Equal(a) {
		t.Error("CMove with flag=0 should leave value unchanged")
	}
	y := a
	y.CMove(b, 1)
	if !y.Equal(b) {
		t.Error("CMove with flag=1 should adopt the new value")
	}
}
