package rs

import "github.com/xtaci/fecrs/gf"

// syndromes evaluates the received codeword at each of the ecc generator
// roots (alpha^0 .. alpha^(ecc-1)), filling dst (len(dst) == c.ecc).
// Mirrors the `synds_w[i] = gf.poly_eval(data, size, gen_roots[i])` loop in
// cpp11/reed_solomon.hpp's RS::decode, generalized to any field via
// gf.PolyEval instead of a fixed GF(2^8) poly_eval overload.
func (c *Codec[T]) syndromes(codeword []T, dst []T) {
	if c.opts.syndrome == SyndromeWide {
		if c.syndromesWide(codeword, dst) {
			return
		}
	}
	for i := range dst {
		dst[i] = gf.PolyEval(c.field, codeword, c.roots[i])
	}
}

// syndromesWide evaluates 8 generator roots per pass using the packed
// wide-word Horner evaluator (gf.Field8.WidePolyEval), the GF(2^8)
// counterpart of cpp11/galois.hpp's GF::poly_eval(uint64_t) overload. Only
// usable on GF(2^8) when ecc is a multiple of 8; otherwise it returns
// false and every syndrome is computed by the scalar loop.
func (c *Codec[T]) syndromesWide(codeword []T, dst []T) bool {
	f8, ok := any(c.field).(*gf.Field8)
	if !ok || c.ecc%8 != 0 {
		return false
	}

	data := make([]byte, len(codeword))
	for i, v := range codeword {
		data[i] = byte(v)
	}

	for base := 0; base < c.ecc; base += 8 {
		var lanes [8]byte
		for j := 0; j < 8; j++ {
			lanes[j] = byte(c.roots[base+j])
		}
		x := gf.PackBytes(lanes[:])
		w := f8.WidePolyEval(data, x)
		var out [8]byte
		gf.UnpackBytes(w, out[:])
		for j := 0; j < 8; j++ {
			dst[base+j] = T(out[j])
		}
	}
	return true
}

// allZero reports whether every syndrome is zero, meaning the received
// word is either uncorrupted or the error slipped through undetected.
func allZero[T gf.Elem](s []T) bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}
