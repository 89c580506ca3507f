package bch

import (
	"encoding/binary"

	"github.com/xtaci/fecrs/gf"
)

// Encode appends parity bits to the data bits already present in the top
// dataBits bits of codeword, overwriting everything after them, and sets
// the trailing bit (position 0) to 1 as the block's valid-codeword marker.
// Mirrors encode63_45/encode63_30 in original_source/bch/bch.c, but
// computed via the same generic gf.PolyModXN "basic" remainder strategy
// package rs uses for its EncodeBasic (C6), instantiated with GF(2)-valued
// symbols over field64 instead of replaying the reference's raw 32/64-bit
// shift-register CRC loop — both compute the identical binary-cyclic-code
// remainder, and this reuses already-grounded machinery instead of a
// second copy of it.
func (c *Codec63) Encode(codeword *[8]byte) {
	whole := binary.BigEndian.Uint64(codeword[:])

	data := symbols(whole, 63, c.dataBits)
	rem := make([]byte, c.eccBits)
	gf.PolyModXN[byte](field, data, c.genTail, rem)

	var out uint64
	for j, v := range data {
		if v != 0 {
			out |= 1 << uint(63-j)
		}
	}
	for j, v := range rem {
		if v != 0 {
			out |= 1 << uint(63-c.dataBits-j)
		}
	}
	out |= 1 // marker bit

	binary.BigEndian.PutUint64(codeword[:], out)
}
