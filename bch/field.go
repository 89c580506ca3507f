package bch

import "github.com/xtaci/fecrs/gf"

// field64 is GF(2^6), the field the BCH(63,k) codes below are built over:
// codeword bits are elements of its GF(2) subfield, but syndromes and the
// error-locator polynomial live in the full 64-element field. Tables are
// copied directly from original_source/bch/bch.c's exp[]/log[] arrays
// (primitive polynomial x^6+x+1, primitive element x) rather than derived,
// since the reference never states the polynomial explicitly and the
// tables are the ground truth.
//
// field64 satisfies gf.Field[byte], so bch's polynomial-level decoding
// (syndromes, Berlekamp-Massey, root search) reuses the same gf.Poly*
// kernel as package rs instead of a second hand-rolled copy.
type field64 struct{}

var _ gf.Field[byte] = field64{}

var exp64 = [64]byte{
	0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x03, 0x06,
	0x0c, 0x18, 0x30, 0x23, 0x05, 0x0a, 0x14, 0x28,
	0x13, 0x26, 0x0f, 0x1e, 0x3c, 0x3b, 0x35, 0x29,
	0x11, 0x22, 0x07, 0x0e, 0x1c, 0x38, 0x33, 0x25,
	0x09, 0x12, 0x24, 0x0b, 0x16, 0x2c, 0x1b, 0x36,
	0x2f, 0x1d, 0x3a, 0x37, 0x2d, 0x19, 0x32, 0x27,
	0x0d, 0x1a, 0x34, 0x2b, 0x15, 0x2a, 0x17, 0x2e,
	0x1f, 0x3e, 0x3f, 0x3d, 0x39, 0x31, 0x21, 0x01,
}

var log64 = [64]byte{
	0x00, 0x3f, 0x01, 0x06, 0x02, 0x0c, 0x07, 0x1a,
	0x03, 0x20, 0x0d, 0x23, 0x08, 0x30, 0x1b, 0x12,
	0x04, 0x18, 0x21, 0x10, 0x0e, 0x34, 0x24, 0x36,
	0x09, 0x2d, 0x31, 0x26, 0x1c, 0x29, 0x13, 0x38,
	0x05, 0x3e, 0x19, 0x0b, 0x22, 0x1f, 0x11, 0x2f,
	0x0f, 0x17, 0x35, 0x33, 0x25, 0x2c, 0x37, 0x28,
	0x0a, 0x3d, 0x2e, 0x1e, 0x32, 0x16, 0x27, 0x2b,
	0x1d, 0x3c, 0x2a, 0x15, 0x14, 0x3b, 0x39, 0x3a,
}

func (field64) Order() int          { return 64 }
func (field64) Characteristic() int { return 2 }

func (field64) Add(a, b byte) byte { return a ^ b }
func (field64) Sub(a, b byte) byte { return a ^ b }

func (field64) Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	r := int(log64[a]) + int(log64[b])
	if r >= 63 {
		r -= 63
	}
	return exp64[r]
}

func (field64) Div(a, b byte) byte {
	if a == 0 {
		return 0
	}
	r := int(log64[a]) + 63 - int(log64[b])
	if r >= 63 {
		r -= 63
	}
	return exp64[r]
}

// Inv returns the multiplicative inverse of a. bch.c's own gf_inv ignores
// its argument (`return exp[63 - log[1]]`, and log[1] is always 0x3f i.e.
// 0 mod 63, so the reference always returns exp[0] == 1) — dead code
// there, since every call site in bch.c uses gf_div(1, x) instead of
// gf_inv(x). This is the inverse gf_div(1, x) actually computes.
func (field64) Inv(a byte) byte {
	r := 63 - int(log64[a])
	if r >= 63 {
		r -= 63
	}
	return exp64[r]
}

func (field64) Exp(k int) byte {
	k %= 63
	if k < 0 {
		k += 63
	}
	return exp64[k]
}

func (field64) Log(a byte) int {
	return int(log64[a])
}
