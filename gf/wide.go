package gf

// Wide-word GF(2^8) arithmetic: one byte per lane of a uint64, eight lanes
// per word. Ported from gf_wide_mul<GF,T> in cpp17/galois.hpp (the same
// math appears, specialized to uint32_t/uint64_t, in cpp11/galois.hpp's
// GF::mul(uint32_t,...) and GF::mul(uint64_t,...) overloads).
//
// The trick only works because the reduction polynomial's bit 0x80 is
// clear (enforced by NewField8) — a single left shift can never carry out
// of one lane into the next.

const (
	wideLSB = 0x0101010101010101
	wideTop = 0x8080808080808080
	wideAll = 0x7f7f7f7f7f7f7f7f
)

// wideReplicate copies a single byte into all 8 lanes of a uint64 —
// the Go rendering of the C++ `_w(uint8_t)` helper in gf_wide_mul.
func wideReplicate(b byte) uint64 {
	w := uint64(b)
	return w * wideLSB
}

// WideMul multiplies 8 packed GF(2^8) lanes in parallel: out[i] = a[i] *
// b[i] for each of the 8 byte lanes. Same 8-iteration scan as Field8.Mul's
// schoolbook path, run on all lanes simultaneously via carry masks instead
// of a conditional per lane.
func (f *Field8) WideMul(a, b uint64) uint64 {
	polyW := wideReplicate(f.poly)

	var r uint64
	for i := 7; i >= 0; i-- {
		m := r & wideTop
		m = m - (m >> 7) // top bit of each lane -> 0x7f or 0x00 mask (poly's bit 0x80 is clear, so 0x7f suffices)

		r = ((r & wideAll) << 1) ^ (polyW & m)

		n := (a & (wideLSB << uint(i))) >> uint(i)
		n = (n << 8) - n // bit i of each lane of a -> 0xff or 0x00 mask

		r ^= b & n
	}
	return r
}

// WidePolyEval evaluates the byte polynomial poly (high-coefficient-first,
// same coefficients replicated across every lane) at 8 distinct argument
// lanes packed into x, returning 8 results in one word. Used to evaluate
// at 8 consecutive generator roots, or 8 consecutive candidate locator
// inputs, per pass.
func (f *Field8) WidePolyEval(poly []byte, x uint64) uint64 {
	var r uint64
	for _, c := range poly {
		r = f.WideMul(r, x) ^ wideReplicate(c)
	}
	return r
}

// PackBytes packs up to 8 bytes into the low-to-high lanes of a uint64,
// lane i occupying byte i (fixed little-endian lane order per spec.md §9).
func PackBytes(b []byte) uint64 {
	var w uint64
	for i, v := range b {
		w |= uint64(v) << uint(8*i)
	}
	return w
}

// UnpackBytes writes the lanes of w into dst (lane i -> dst[i]).
func UnpackBytes(w uint64, dst []byte) {
	for i := range dst {
		dst[i] = byte(w >> uint(8*i))
	}
}
