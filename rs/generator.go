package rs

import "github.com/xtaci/fecrs/gf"

// buildGenerator constructs g(x) = prod_{i=0}^{ecc-1} (x - alpha^i), stored
// high-coefficient-first with g[0] == 1 (monic), by iterating ecc factor
// multiplies against the running product — the same double-buffered
// construction as cpp11/reed_solomon.hpp's RS() constructor, simplified
// because Go's append-based growth makes the alternating-buffer dance
// unnecessary (gf.PolyMul already allocates its own result).
//
// It also returns roots[i] = alpha^i for i in [0, ecc).
//
// Using f.Sub(zero, alpha^i) for the factor's constant term makes this
// work identically for GF(2^8) (where Sub is XOR, so -alpha^i == alpha^i)
// and for odd-prime fields (where it is the true additive inverse) without
// a field-specific branch — spec.md §9 calls out that the odd-prime
// generator needs "-alpha^i as a factor"; here that's just what Sub does.
func buildGenerator[T gf.Elem](f gf.Field[T], ecc int) (generator, roots []T) {
	var zero T
	one := f.Exp(0)

	generator = []T{one}
	roots = make([]T, ecc)

	for i := 0; i < ecc; i++ {
		alphaI := f.Exp(i)
		roots[i] = alphaI

		factor := []T{one, f.Sub(zero, alphaI)}
		generator = gf.PolyMul[T](f, generator, factor)
	}

	return generator, roots
}
