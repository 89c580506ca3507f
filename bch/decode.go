package bch

import (
	"encoding/binary"

	"github.com/xtaci/fecrs/gf"
)

// syndromes evaluates the codeword's 63 significant bits (as a binary
// polynomial over field64) at alpha^1 .. alpha^numSynds, mirroring bch.c's
// `synds[i] = gf2_poly63_eval(data, exp[i+1])`.
func (c *Codec63) syndromes(whole uint64) []byte {
	cw := symbols(whole, 63, 63)
	s := make([]byte, c.numSynds)
	for i := range s {
		s[i] = gf.PolyEval(field, cw, field.Exp(i+1))
	}
	return s
}

func allZeroBits(s []byte) bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}

// berlekampMassey is the same field-agnostic recurrence as
// rs.Codec.berlekampMassey (see rs/berlekamp_massey.go for the derivation
// of why discrepancy accumulation uses Add while the polynomial update
// uses Sub), re-instantiated over field64 here since Codec63 has no
// rs.Codec to share the method with.
func (c *Codec63) berlekampMassey(synds []byte) (errPoly []byte, errorCount int) {
	e := c.numSynds
	errPoly = make([]byte, e)
	prev := make([]byte, e)
	temp := make([]byte, e)

	prev[e-1] = 1
	errPoly[e-1] = 1

	m := 1
	b := byte(1)

	for n := 0; n < e; n++ {
		d := synds[n]
		for i := 1; i < errorCount+1; i++ {
			d = field.Add(d, field.Mul(errPoly[e-1-i], synds[n-i]))
		}

		switch {
		case d == 0:
			m++

		case 2*errorCount <= n:
			copy(temp, errPoly)

			gf.PolyShift(prev, m)
			gf.PolyScale(field, prev, field.Div(d, b))
			gf.PolySub(field, errPoly, prev)

			errorCount = n + 1 - errorCount
			copy(prev, temp)

			b = d
			m = 1

		default:
			copy(temp, prev)
			gf.PolyShift(temp, m)
			gf.PolyScale(field, temp, field.Div(d, b))
			gf.PolySub(field, errPoly, temp)

			m++
		}
	}

	return errPoly, errorCount
}

// findErrorPositions locates bit positions i in [0,63) with
// Lambda(alpha^-i) == 0, mirroring find_err_pos in bch.c. Position i maps
// to bit (i+1) of the packed codeword, per symbols' indexing.
func (c *Codec63) findErrorPositions(lambda []byte) []int {
	var positions []int
	for i := 0; i < 63; i++ {
		xInv := field.Div(1, field.Exp(i))
		if gf.PolyEval(field, lambda, xInv) == 0 {
			positions = append(positions, i)
		}
	}
	return positions
}

// Check reports whether codeword is a valid codeword of this code (every
// syndrome zero), without attempting correction.
func (c *Codec63) Check(codeword *[8]byte) bool {
	whole := binary.BigEndian.Uint64(codeword[:])
	return allZeroBits(c.syndromes(whole))
}

// Decode corrects up to MaxErrors() bit errors in codeword in place,
// returning nil if the word was already valid or was corrected
// successfully. Binary BCH error magnitudes are always 1 (the only
// nonzero element of GF(2)), so unlike rs.Codec.Decode this skips Forney's
// algorithm entirely and just flips the located bits — the same shortcut
// decode63_45/decode63_30 take in bch.c.
func (c *Codec63) Decode(codeword *[8]byte) error {
	whole := binary.BigEndian.Uint64(codeword[:])

	synds := c.syndromes(whole)
	if allZeroBits(synds) {
		return nil
	}

	errPoly, errorCount := c.berlekampMassey(synds)
	if errorCount == 0 || 2*errorCount > c.numSynds {
		return ErrUncorrectable
	}

	lambda := errPoly[c.numSynds-errorCount-1:]
	positions := c.findErrorPositions(lambda)
	if len(positions) != errorCount {
		return ErrUncorrectable
	}

	for _, pos := range positions {
		whole ^= 1 << uint(pos+1)
	}

	binary.BigEndian.PutUint64(codeword[:], whole)
	return nil
}
