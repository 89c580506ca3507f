// Package bch implements the fixed-rate binary BCH(63,k) codes used as the
// small-block alternative to the general Reed-Solomon codec in package rs,
// grounded directly on original_source/bch/bch.c. Unlike rs.Codec, the
// field, block length and generator are fixed at compile time, so there is
// no options surface (spec.md §4.11/§6): New45/New30 take no arguments.
package bch

// Codec63 encodes and decodes one fixed binary BCH(63,k) variant. Built
// once by New45/New30 and read-only thereafter, the same immutable-
// descriptor model as rs.Codec.
type Codec63 struct {
	dataBits  int // k: 45 or 30
	eccBits   int // n-k: 18 or 33
	numSynds  int // 2t: 6 or 12
	maxErrors int // t: 3 or 6

	generator uint64 // binary generator polynomial, bit i is the x^i coefficient
	genTail   []byte // genPoly[1:], high-coefficient-first, length eccBits
}

var field field64

func newCodec63(dataBits, eccBits, numSynds, maxErrors int, generator uint64) *Codec63 {
	genPoly := make([]byte, eccBits+1)
	for j := range genPoly {
		genPoly[j] = byte(generator>>uint(eccBits-j)) & 1
	}

	return &Codec63{
		dataBits:  dataBits,
		eccBits:   eccBits,
		numSynds:  numSynds,
		maxErrors: maxErrors,
		generator: generator,
		genTail:   genPoly[1:],
	}
}

// New45 builds the BCH(63,45) codec: 18 parity bits, corrects up to 3 bit
// errors per 63-bit block. Grounded on generator18/encode63_45/decode63_45
// in original_source/bch/bch.c.
func New45() *Codec63 {
	return newCodec63(45, 18, 6, 3, 0x782cf)
}

// New30 builds the BCH(63,30) codec: 33 parity bits, corrects up to 6 bit
// errors per 63-bit block. Grounded on generator33/encode63_30/decode63_30
// in original_source/bch/bch.c.
func New30() *Codec63 {
	return newCodec63(30, 33, 12, 6, 0x37cd0eb67)
}

// DataBits returns k, the number of message bits per 63-bit block.
func (c *Codec63) DataBits() int { return c.dataBits }

// ECCBits returns n-k, the number of parity bits per 63-bit block.
func (c *Codec63) ECCBits() int { return c.eccBits }

// MaxErrors returns t, the number of bit errors per block the codec
// guarantees to correct.
func (c *Codec63) MaxErrors() int { return c.maxErrors }

// symbols reads out the bits of whole from position `from` down to
// from-n+1 (MSB-first, matching the high-coefficient-first convention
// gf/poly.go requires) as a length-n slice of GF(64) elements restricted
// to {0,1} — the GF(2) subfield embedding the codeword's bits live in.
func symbols(whole uint64, from, n int) []byte {
	out := make([]byte, n)
	for j := 0; j < n; j++ {
		out[j] = byte(whole>>uint(from-j)) & 1
	}
	return out
}
