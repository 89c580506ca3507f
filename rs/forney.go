package rs

import "github.com/xtaci/fecrs/gf"

// forneyMagnitudes computes the error magnitude at each located position,
// following Forney's algorithm: build the error evaluator Omega(x) =
// (Lambda(x) * S(x)) mod x^ecc, then at each root x_i = alpha^pos, the
// magnitude is Omega(x_i^-1) / Lambda'(x_i^-1) scaled by x_i, which is
// the negated error value, so callers field-add it to the symbol — a direct
// port of RS::forney in cpp11/reed_solomon.hpp, generalized to any field
// via gf.PolyDeriv/PolyEval instead of the char-2-specific derivative
// shortcut alone (PolyDeriv already branches internally on
// characteristic).
func (c *Codec[T]) forneyMagnitudes(synds, lambda, positions []T) []T {
	e := c.ecc

	// synds is high-coefficient-first per this package's convention but
	// Forney's evaluator product needs the syndrome sequence reversed
	// (S(x) = S_0 + S_1 x + ... in the classical formulation, which is
	// low-coefficient-first) — reverse into a scratch buffer rather than
	// mutate the caller's syndromes.
	syndsRev := make([]T, e)
	for i, v := range synds {
		syndsRev[e-1-i] = v
	}

	omega := gf.PolyMul(c.field, syndsRev, lambda)

	// Divide by x^e (a monic divisor of length e+1) to isolate Omega(x)
	// mod x^e; the quotient is discarded, only the remainder matters.
	xPow := make([]T, e+1)
	xPow[0] = 1
	begin := gf.ExSynthDiv(c.field, omega, xPow)
	omegaTail := omega[begin:]

	for len(omegaTail) > 1 && omegaTail[0] == 0 {
		omegaTail = omegaTail[1:]
	}

	lambdaDeriv := make([]T, len(lambda))
	copy(lambdaDeriv, lambda)
	derivLen := gf.PolyDeriv(c.field, lambdaDeriv)
	lambdaDeriv = lambdaDeriv[:derivLen]

	magnitudes := make([]T, len(positions))
	for i, pos := range positions {
		xi := c.field.Exp(int(pos))
		xiInv := c.field.Inv(xi)

		y := gf.PolyEval(c.field, omegaTail, xiInv)
		d := gf.PolyEval(c.field, lambdaDeriv, xiInv)

		magnitudes[i] = c.field.Mul(xi, c.field.Div(y, d))
	}
	return magnitudes
}
