package gf

// Field8 is GF(2^8): byte-oriented, addition is XOR. Modelled on the
// exp/log table build in cpp11/galois.hpp's GF<primitive, poly1> and on
// the mixin split in cpp17/galois.hpp (gf_mul_cpu builds the tables,
// gf_mul_exp_log_lut serves Mul once they exist).
type Field8 struct {
	primitive byte
	// poly is the reduction polynomial's low byte: for the common
	// Reed-Solomon choice x^8+x^4+x^3+x^2+1, poly == 0x1d (the implicit x^8 term
	// is dropped, same convention as cpp17/main.cpp's `0x11d & 0xff`).
	poly byte

	expTable [255]byte // expTable[i] == primitive^i, cyclic with period 255
	logTable [256]byte // logTable[expTable[i]] == i; logTable[0] is unused

	mulTable *[256][256]byte // built lazily by EnableMulTable
}

// NewField8 builds GF(2^8) from a primitive element and a reduction
// polynomial in full form (e.g. 0x11d). Bit 0x80 of the polynomial's low
// byte must be clear, both per the spec invariant and because it is what
// makes the wide-word packed multiply in WideMul safe.
func NewField8(primitive byte, poly uint16) (*Field8, error) {
	lowByte := byte(poly & 0xff)
	if lowByte&0x80 != 0 {
		return nil, ErrBadReductionPoly
	}

	f := &Field8{primitive: primitive, poly: lowByte}

	x := byte(1)
	for i := 0; i < 255; i++ {
		f.expTable[i] = x
		f.logTable[x] = byte(i)
		x = f.schoolbookMul(x, primitive)
	}
	// The multiplicative group has order 255, so alpha^0 == alpha^255 == 1.
	return f, nil
}

// schoolbookMul is the byte-at-a-time carry-mask scan used to both build
// the tables (bootstrap — no log/exp exist yet) and, if a caller wants it,
// to multiply without any table at all.
func (f *Field8) schoolbookMul(a, b byte) byte {
	var r byte
	for i := 7; i >= 0; i-- {
		if r&0x80 != 0 {
			r = (r << 1) ^ f.poly
		} else {
			r = r << 1
		}
		if a&(1<<uint(i)) != 0 {
			r ^= b
		}
	}
	return r
}

// EnableMulTable builds the full 256x256 multiplication table. Only worth
// it for small fields (q <= 4096, per the spec's LUT budget); GF(2^8)
// qualifies.
func (f *Field8) EnableMulTable() {
	if f.mulTable != nil {
		return
	}
	var t [256][256]byte
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			t[a][b] = f.schoolbookMul(byte(a), byte(b))
		}
	}
	f.mulTable = &t
}

func (f *Field8) Order() int          { return 256 }
func (f *Field8) Characteristic() int { return 2 }

func (f *Field8) Add(a, b byte) byte { return a ^ b }
func (f *Field8) Sub(a, b byte) byte { return a ^ b }

func (f *Field8) Mul(a, b byte) byte {
	if f.mulTable != nil {
		return f.mulTable[a][b]
	}
	return f.MulLog(a, b)
}

// MulLog multiplies via the log/exp tables regardless of whether a full
// mul table has been built; used by the Chien root finder in package rs
// and by the tests that cross-check the full mul table.
func (f *Field8) MulLog(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	r := int(f.logTable[a]) + int(f.logTable[b])
	if r >= 255 {
		r -= 255
	}
	return f.expTable[r]
}

func (f *Field8) Div(a, b byte) byte {
	if a == 0 {
		return 0
	}
	r := int(f.logTable[a]) + 255 - int(f.logTable[b])
	if r >= 255 {
		r -= 255
	}
	return f.expTable[r]
}

func (f *Field8) Inv(a byte) byte {
	idx := 255 - int(f.logTable[a])
	if idx >= 255 {
		idx -= 255
	}
	return f.expTable[idx]
}

func (f *Field8) Exp(k int) byte {
	k %= 255
	if k < 0 {
		k += 255
	}
	return f.expTable[k]
}

func (f *Field8) Log(a byte) int {
	return int(f.logTable[a])
}

// ReductionPolyLowByte exposes the low byte of the reduction polynomial,
// for the wide-word packer which needs to replicate it across lanes.
func (f *Field8) ReductionPolyLowByte() byte { return f.poly }
