package rs

import "github.com/xtaci/fecrs/gf"

// buildByteLUT precomputes, for each possible leading-byte value v, the
// row v*genTail(x) (entrywise scalar multiply of the generator's
// non-leading coefficients by v). Since the generator is monic of degree
// ecc, v*x^ecc mod generator == v*genTail(x) — multiplying by x^ecc only
// ever needs one reduction step against the leading term, so this row is
// exactly what cpp11/reed_solomon.hpp's RS constructor computes via a full
// ex_synth_div([v,0,...,0], generator) call, reached here directly since
// there's nothing left to divide out. Only meaningful for GF(2^8): the
// consuming encoders below use it via the XOR-merge trick in spec.md
// §4.6, which assumes characteristic 2.
func (c *Codec[T]) buildByteLUT() {
	f8 := any(c.field).(*gf.Field8)
	q := f8.Order()
	c.byteLUT = make([][]T, q)
	for v := 0; v < q; v++ {
		row := make([]T, c.ecc)
		for j := range row {
			row[j] = c.field.Mul(c.genTail[j], T(v))
		}
		c.byteLUT[v] = row
	}
}

// stepByteLUT applies one byte-LUT reduction step to rem in place: fold
// the incoming byte d into the head of the register to get a row index,
// rotate the register left by one (dropping the now-consumed head into
// the vacated tail slot), then XOR the indexed row into the whole
// register. This is the per-byte loop body of the non-slice branch of
// RS::encode in cpp11/reed_solomon.hpp.
func (c *Codec[T]) stepByteLUT(rem []T, d T) {
	pos := int(rem[0] ^ d)
	copy(rem, rem[1:])
	rem[len(rem)-1] = 0
	row := c.byteLUT[pos]
	for j := range rem {
		rem[j] ^= row[j]
	}
}

// encodeByteLUT runs the CRC-style byte-at-a-time table encoder: the
// remainder register starts at zero and every data byte folds through one
// stepByteLUT call.
func (c *Codec[T]) encodeByteLUT(data, rem []T) {
	for i := range rem {
		rem[i] = 0
	}
	for _, d := range data {
		c.stepByteLUT(rem, d)
	}
}

// buildSliceLUT derives, for each of the 8 byte positions in a slice, the
// table giving that position's full contribution to the register after
// the remaining (7-pos) bytes of the block have also been pushed through.
// Built by running stepByteLUT's "push a zero byte" half on top of
// buildByteLUT's row for v, (7-pos) additional times — position 7 (the
// last byte of the block) needs none, position 0 (the first) needs 7.
// Because stepByteLUT is linear (XOR-additive) in the register, folding
// each slice byte independently through its own table and XORing the
// eight results together reproduces feeding them through one at a time
// (table pos holds v*x^(15-pos) mod g). Only valid for GF(2^8) with ecc == 8.
func (c *Codec[T]) buildSliceLUT() {
	if c.byteLUT == nil {
		c.buildByteLUT()
	}

	for pos := 0; pos < 8; pos++ {
		c.sliceLUT[pos] = make([]uint64, 256)
		for v := 0; v < 256; v++ {
			reg := make([]T, 8)
			copy(reg, c.byteLUT[v])
			for step := 0; step < 7-pos; step++ {
				c.stepByteLUT(reg, 0)
			}
			var lanes [8]byte
			for i, x := range reg {
				lanes[i] = byte(x)
			}
			c.sliceLUT[pos][v] = gf.PackBytes(lanes[:])
		}
	}
}

// encodeSliceBy8 consumes 8 data bytes per iteration: fold the register
// and the slice elementwise (spec.md §4.6's "XOR N bytes of input into
// the register"), then XOR in the 8 position tables ("XOR N table
// lookups to advance"). Tail bytes short of a full block fall back to the
// single-byte step.
func (c *Codec[T]) encodeSliceBy8(data, rem []T) {
	for i := range rem {
		rem[i] = 0
	}

	n := len(data)
	full := n - n%8
	for i := 0; i < full; i += 8 {
		var acc uint64
		for j := 0; j < 8; j++ {
			combined := byte(rem[j] ^ data[i+j])
			acc ^= c.sliceLUT[j][combined]
		}
		var lanes [8]byte
		gf.UnpackBytes(acc, lanes[:])
		for j := range rem {
			rem[j] = T(lanes[j])
		}
	}

	for i := full; i < n; i++ {
		c.stepByteLUT(rem, data[i])
	}
}

// Encode appends c.ECC() parity symbols to the end of codeword, which
// must be exactly dataLen+c.ECC() symbols long with the trailing ECC()
// slots used only as scratch (their initial contents are overwritten).
func (c *Codec[T]) Encode(codeword []T) error {
	if len(codeword) <= c.ecc {
		return ErrCodewordLength
	}
	dataLen := len(codeword) - c.ecc
	data, rem := codeword[:dataLen], codeword[dataLen:]

	switch c.opts.encoder {
	case EncodeBasic:
		gf.PolyModXN(c.field, data, c.genTail, rem)
		if c.field.Characteristic() != 2 {
			for i, v := range rem {
				rem[i] = c.field.Sub(0, v)
			}
		}
	case EncodeByteLUT:
		c.encodeByteLUT(data, rem)
	case EncodeSliceBy8:
		c.encodeSliceBy8(data, rem)
	}

	return nil
}
