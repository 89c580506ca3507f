package rs

import "github.com/xtaci/fecrs/gf"

// Decode checks codeword for errors and corrects them in place, returning
// nil if the word was already valid or was corrected successfully.
// Mirrors the data flow of RS::decode in cpp11/reed_solomon.hpp:
// syndromes -> (early exit if all zero) -> Berlekamp-Massey -> root
// finding -> Forney -> apply corrections.
func (c *Codec[T]) Decode(codeword []T) error {
	n := len(codeword)
	if n <= c.ecc {
		return ErrCodewordLength
	}

	buf := c.getScratch()
	defer c.putScratch(buf)
	synds := buf[:c.ecc]
	errPoly := buf[c.ecc : 2*c.ecc]

	c.syndromes(codeword, synds)
	if allZero(synds) {
		return nil
	}

	errors := c.berlekampMassey(synds, errPoly)
	if 2*errors > c.ecc {
		return ErrUncorrectable
	}

	lambda := errPoly[c.ecc-errors-1:]

	positions := c.findRoots(lambda, n)
	if len(positions) != errors {
		return ErrUncorrectable
	}

	magnitudes := c.forneyMagnitudes(synds, lambda, positions)
	for i, pos := range positions {
		idx := n - 1 - int(pos)
		if idx < 0 || idx >= n {
			return ErrUncorrectable
		}
		codeword[idx] = c.field.Add(codeword[idx], magnitudes[i])
	}

	return nil
}

// DecodeWithErasures corrects codeword given known erasure positions
// (indices from the start of codeword, 0 being its first symbol),
// bypassing root-finding entirely per
// spec.md §6: the erasure locator Lambda(x) = prod (1 - alpha^pos * x)
// is built directly from the supplied positions instead of discovered via
// Berlekamp-Massey, then fed straight into Forney's algorithm — the same
// errors-and-erasures decoding classically used when erasure locations
// are known out of band.
func (c *Codec[T]) DecodeWithErasures(codeword []T, positions []int) error {
	n := len(codeword)
	if n <= c.ecc {
		return ErrCodewordLength
	}
	if len(positions) > c.ecc {
		return ErrTooManyErasures
	}
	for _, p := range positions {
		if p < 0 || p >= n {
			return ErrErasureOutOfRange
		}
	}

	synds := make([]T, c.ecc)
	c.syndromes(codeword, synds)
	if allZero(synds) {
		return nil
	}
	if len(positions) == 0 {
		return ErrUncorrectable
	}

	// Index p holds the coefficient of x^(n-1-p); the locator and Forney
	// work with that power, not with the buffer index.
	erasurePos := make([]T, len(positions))
	for i, p := range positions {
		erasurePos[i] = T(n - 1 - p)
	}

	one := f1[T]()
	lambda := one
	var zero T
	for _, pos := range erasurePos {
		alphaPos := c.field.Exp(int(pos))
		factor := []T{c.field.Sub(zero, alphaPos), one[0]}
		lambda = gf.PolyMul(c.field, lambda, factor)
	}

	magnitudes := c.forneyMagnitudes(synds, lambda, erasurePos)
	for i, pos := range erasurePos {
		idx := n - 1 - int(pos)
		codeword[idx] = c.field.Add(codeword[idx], magnitudes[i])
	}

	return nil
}

// f1 returns the length-1 polynomial representing the constant 1, the
// multiplicative identity used to seed erasure-locator construction.
func f1[T gf.Elem]() []T {
	return []T{1}
}
