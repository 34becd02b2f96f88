package p256k1

// FpExt represents an element of the quadratic extension Fp[i]/(i^2+1),
// i.e. a + b*i for a, b in Fp. An ordered pair, mirroring how Scalar and
// FieldElement are plain structs with no invariant beyond their
// components' own invariants.
type FpExt struct {
	A, B Fp
}

// FpExtZero is the additive identity.
var FpExtZero = FpExt{FpZero, FpZero}

// FpExtOne is the multiplicative identity.
var FpExtOne = FpExt{FpOne, FpZero}

// Add returns f + a, component-wise.
func (f FpExt) Add(a FpExt) FpExt {
	return FpExt{f.A.Add(a.A), f.B.Add(a.B)}
}

// Sub returns f - a, component-wise.
func (f FpExt) Sub(a FpExt) FpExt {
	return FpExt{f.A.Sub(a.A), f.B.Sub(a.B)}
}

// Neg returns -f, component-wise.
func (f FpExt) Neg() FpExt {
	return FpExt{f.A.Neg(), f.B.Neg()}
}

// Mul returns f * a using the three-multiplication identity
//
//	(a + bi)(c + di) = (ac - bd) + ((b-a)(c-d) + ac + bd)*i
//
// taken verbatim from original_source/src/serial/ext_field.rs. This costs
// three Fp multiplications (ac, bd, (b-a)(c-d)) instead of the naive four,
// at the cost of five additions/subtractions instead of two. b-a and c-d are
// computed before the middle product; no normalization is interposed
// between the subtractions and the multiplication, since Fp tolerates
// every representative in [0, p] as an operand.
func (f FpExt) Mul(o FpExt) FpExt {
	a, b := f.A, f.B
	c, d := o.A, o.B

	ac := a.Mul(c)
	bd := b.Mul(d)
	mid := b.Sub(a).Mul(c.Sub(d))

	re := ac.Sub(bd)
	im := mid.Add(ac).Add(bd)
	return FpExt{re, im}
}

// Square returns f * f. Like Fp.Square, a pure alias: the reference never
// defines a dedicated squaring formula for the extension field either.
func (f FpExt) Square() FpExt {
	return f.Mul(f)
}

// CMove sets f to a if flag is 1, leaving f unchanged if flag is 0.
func (f *FpExt) CMove(a FpExt, flag int) {
	f.A.CMove(a.A, flag)
	f.B.CMove(a.B, flag)
}

// Equal reports whether f and a represent the same extension-field
// element, comparing canonical representatives component-wise.
func (f FpExt) Equal(a FpExt) bool {
	return f.A.Equal(a.A) && f.B.Equal(a.B)
}

// IsZero reports whether f represents zero.
func (f FpExt) IsZero() bool {
	return f.A.IsZero() && f.B.IsZero()
}
