package rs

import "github.com/xtaci/fecrs/gf"

// berlekampMassey finds the shortest linear-feedback recurrence (the
// error-locator polynomial) that generates the syndrome sequence synds,
// writing it into errPoly (len(errPoly) == c.ecc, high-coefficient-first
// with errPoly[ecc-1] always 1, matching cpp11/reed_solomon.hpp's
// convention of keeping the locator right-aligned in a fixed ecc-length
// buffer) and returning the number of errors found.
//
// This is a direct port of RS::berlekamp_massey, generalized from XOR
// (gf.mul/gf.div only, additive inverse implicit) to the field-agnostic
// Add/Sub/Mul/Div so it runs unchanged over GF(257) as well as GF(2^8).
func (c *Codec[T]) berlekampMassey(synds, errPoly []T) int {
	e := c.ecc
	prev := make([]T, e)
	temp := make([]T, e)

	for i := range errPoly {
		errPoly[i] = 0
		prev[i] = 0
	}
	prev[e-1] = 1
	errPoly[e-1] = 1

	errors := 0
	m := 1
	b := T(1)

	for n := 0; n < e; n++ {
		// Discrepancy is Sum_{i=0}^{errors} errPoly[e-1-i]*synds[n-i] with
		// errPoly's implicit leading 1 contributing the synds[n] term
		// directly — additive accumulation, not subtractive, per the
		// standard BM recurrence (Blahut/Lin & Costello). Only in
		// characteristic 2 does this coincide with the C++ reference's
		// XOR; for GF(257) it must be field.Add, not field.Sub.
		d := synds[n]
		for i := 1; i < errors+1; i++ {
			d = c.field.Add(d, c.field.Mul(errPoly[e-1-i], synds[n-i]))
		}

		switch {
		case d == 0:
			m++

		case 2*errors <= n:
			copy(temp, errPoly)

			gf.PolyShift(prev, m)
			gf.PolyScale(c.field, prev, c.field.Div(d, b))
			// C(x) = C(x) - (d/b) x^m B(x): subtractive update, distinct
			// from the additive discrepancy above outside char 2.
			gf.PolySub(c.field, errPoly, prev)

			errors = n + 1 - errors
			copy(prev, temp)

			b = d
			m = 1

		default:
			copy(temp, prev)
			gf.PolyShift(temp, m)
			gf.PolyScale(c.field, temp, c.field.Div(d, b))
			gf.PolySub(c.field, errPoly, temp)

			m++
		}
	}

	return errors
}
