package p256k1

// Fp4Ext is the vectorized quadratic extension: four elements of FpExt held
// side-by-side, each lane an independent a + b*i. The vector counterpart of
// FpExt, built the same way Fp4 generalizes Fp.
type Fp4Ext struct {
	A, B Fp4
}

// Add returns f + a, component-wise.
func (f Fp4Ext) Add(a Fp4Ext) Fp4Ext {
	return Fp4Ext{f.A.Add(a.A), f.B.Add(a.B)}
}

// Neg returns -f, component-wise.
func (f Fp4Ext) Neg() Fp4Ext {
	return Fp4Ext{f.A.Neg(), f.B.Neg()}
}

// Sub returns f - a, component-wise, mirroring FpExt.Sub.
func (f Fp4Ext) Sub(a Fp4Ext) Fp4Ext {
	return Fp4Ext{f.A.Sub(a.A), f.B.Sub(a.B)}
}

// Mul returns f * a using the same three-multiplication identity as
// FpExt.Mul, applied lane-wise via Fp4's IFMA-scheduled multiply:
//
//	(a + bi)(c + di) = (ac - bd) + ((b-a)(c-d) + ac + bd)*i
func (f Fp4Ext) Mul(o Fp4Ext) Fp4Ext {
	a, b := f.A, f.B
	c, d := o.A, o.B

	ac := a.Mul(c)
	bd := b.Mul(d)
	mid := b.Sub(a).Mul(c.Sub(d))

	re := ac.Sub(bd)
	im := mid.Add(ac).Add(bd)
	return Fp4Ext{re, im}
}

// Square returns f * f.
func (f Fp4Ext) Square() Fp4Ext {
	return f.Mul(f)
}
