package gf

// FieldP is an odd-prime field GF(p), m == 1 — the only extension degree
// this package supports for p != 2, per the spec's data model. Addition is
// modular, not XOR: this is the piece of the kernel that differs from
// Field8, grounded on cpp17/lib.cpp's `GF257 = GF<uint16_t, 257, 1, 3, 0,
// gf_add_ring, gf_mul_cpu, gf_exp_log_lut>` instantiation.
type FieldP struct {
	p         uint16
	primitive uint16

	expTable []uint16 // length p-1
	logTable []int    // length p, logTable[0] unused
}

// NewFieldP builds GF(p) for an odd prime p from a primitive root of the
// multiplicative group. There is no reduction polynomial: arithmetic is
// plain mod-p, so the "schoolbook" bit-scan multiply the binary fields use
// degenerates to ordinary modular multiplication.
func NewFieldP(p, primitive uint16) *FieldP {
	f := &FieldP{
		p:         p,
		primitive: primitive,
		expTable:  make([]uint16, p-1),
		logTable:  make([]int, p),
	}

	x := uint16(1)
	for i := 0; i < int(p)-1; i++ {
		f.expTable[i] = x
		f.logTable[x] = i
		x = f.mulMod(x, primitive)
	}
	return f
}

func (f *FieldP) mulMod(a, b uint16) uint16 {
	return uint16((uint32(a) * uint32(b)) % uint32(f.p))
}

func (f *FieldP) Order() int          { return int(f.p) }
func (f *FieldP) Characteristic() int { return int(f.p) }

func (f *FieldP) Add(a, b uint16) uint16 {
	s := a + b
	if s >= f.p {
		s -= f.p
	}
	return s
}

func (f *FieldP) Sub(a, b uint16) uint16 {
	if a >= b {
		return a - b
	}
	return f.p + a - b
}

func (f *FieldP) Mul(a, b uint16) uint16 {
	if a == 0 || b == 0 {
		return 0
	}
	r := f.logTable[a] + f.logTable[b]
	if r >= int(f.p)-1 {
		r -= int(f.p) - 1
	}
	return f.expTable[r]
}

func (f *FieldP) Div(a, b uint16) uint16 {
	if a == 0 {
		return 0
	}
	r := f.logTable[a] + int(f.p) - 1 - f.logTable[b]
	if r >= int(f.p)-1 {
		r -= int(f.p) - 1
	}
	return f.expTable[r]
}

func (f *FieldP) Inv(a uint16) uint16 {
	idx := int(f.p) - 1 - f.logTable[a]
	if idx >= int(f.p)-1 {
		idx -= int(f.p) - 1
	}
	return f.expTable[idx]
}

func (f *FieldP) Exp(k int) uint16 {
	m := int(f.p) - 1
	k %= m
	if k < 0 {
		k += m
	}
	return f.expTable[k]
}

func (f *FieldP) Log(a uint16) int {
	return f.logTable[a]
}

// Negate returns p - a mod p, the factor used when building the RS
// generator polynomial over an odd-prime field (spec.md §9: "the
// generator construction uses -alpha^i as a factor").
func (f *FieldP) Negate(a uint16) uint16 {
	if a == 0 {
		return 0
	}
	return f.p - a
}
