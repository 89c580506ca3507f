package rs

import "github.com/xtaci/fecrs/gf"

// findRoots locates the error positions: indices i in [0, n) for which
// Lambda(alpha^-i) == 0, where Lambda is the significant tail of errPoly
// (length errors+1, high-coefficient-first). Mirrors RS::find_roots in
// cpp11/reed_solomon.hpp, dispatching on the configured RootStrategy.
// Returns the found positions; the caller must check len(positions) ==
// errors (a mismatch means more errors occurred than the code can locate
// and the word is uncorrectable).
func (c *Codec[T]) findRoots(lambda []T, n int) []T {
	switch c.opts.rootFind {
	case RootChien:
		if pos := c.findRootsChien(lambda, n); pos != nil {
			return pos
		}
	case RootWideLUT:
		if pos := c.findRootsWideLUT(lambda, n); pos != nil {
			return pos
		}
	}
	return c.findRootsBasic(lambda, n)
}

func (c *Codec[T]) findRootsBasic(lambda []T, n int) []T {
	var positions []T
	for i := 0; i < n; i++ {
		xInv := c.field.Inv(c.field.Exp(i))
		if gf.PolyEval(c.field, lambda, xInv) == 0 {
			positions = append(positions, T(i))
		}
	}
	return positions
}

// findRootsChien runs an incremental Chien search: rather than a full
// Horner evaluation of Lambda at alpha^-i for every i, it maintains one
// running term per coefficient and multiplies each by alpha^-(deg) once
// per step, summing the terms — the standard Chien-search
// multiply-accumulate, restricted to GF(2^8) where Field8.Mul is cheap
// enough via the log/exp tables for this to pay off per spec.md §4.9.
func (c *Codec[T]) findRootsChien(lambda []T, n int) []T {
	f8, ok := any(c.field).(*gf.Field8)
	if !ok {
		return nil
	}

	deg := len(lambda) - 1
	// reg[k] tracks lambda[deg-k] * (alpha^-1)^(k*i) as i advances, where
	// lambda[deg-k] is the coefficient of x^k (lambda is stored
	// high-coefficient-first). Each step multiplies reg[k] by the fixed
	// per-degree factor betas[k] = (alpha^-1)^k, which advances the
	// exponent i by exactly one — the standard Chien-search
	// multiply-accumulate.
	reg := make([]byte, deg+1)
	betas := make([]byte, deg+1)
	for k := 0; k <= deg; k++ {
		reg[k] = byte(lambda[deg-k])
		betas[k] = f8.Exp(-k)
	}

	var positions []T
	for i := 0; i < n; i++ {
		var sum byte
		for k := 0; k <= deg; k++ {
			sum ^= reg[k]
		}
		if sum == 0 {
			positions = append(positions, T(i))
		}
		for k := 0; k <= deg; k++ {
			reg[k] = f8.MulLog(reg[k], betas[k])
		}
	}
	return positions
}

// findRootsWideLUT evaluates 8 consecutive candidate positions per pass
// using the packed wide-word Horner evaluator, the GF(2^8) counterpart of
// RS_POLY_ROOT_LUT in cpp11/reed_solomon.hpp (there realized via a
// precomputed inv(exp(i)) table reinterpreted as a Word array; here
// computed per pass instead of fully precomputed, since Field8.Exp/Inv
// are already table lookups and the packing is the expensive part worth
// batching).
func (c *Codec[T]) findRootsWideLUT(lambda []T, n int) []T {
	f8, ok := any(c.field).(*gf.Field8)
	if !ok {
		return nil
	}

	poly := make([]byte, len(lambda))
	for i, v := range lambda {
		poly[i] = byte(v)
	}

	var positions []T
	for base := 0; base < n; base += 8 {
		var lanes [8]byte
		count := 8
		if base+8 > n {
			count = n - base
		}
		for j := 0; j < count; j++ {
			lanes[j] = f8.Inv(f8.Exp(base + j))
		}
		x := gf.PackBytes(lanes[:count])
		w := f8.WidePolyEval(poly, x)
		var out [8]byte
		gf.UnpackBytes(w, out[:])
		for j := 0; j < count; j++ {
			if out[j] == 0 {
				positions = append(positions, T(base+j))
			}
		}
	}
	return positions
}
