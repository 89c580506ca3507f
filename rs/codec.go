// Package rs implements the Reed-Solomon pipeline (C5-C10 of the spec):
// generator precompute, three interchangeable encoder strategies, and a
// syndrome -> Berlekamp-Massey -> root-finding -> Forney decode pipeline.
// It is field-agnostic over gf.Field[T] (GF(2^8) byte fields, GF(257) and
// other odd-prime fields), the same way cpp17/reed_solomon.hpp is written
// once against a GF template parameter and instantiated per field.
package rs

import (
	"sync"

	"github.com/klauspost/cpuid/v2"
	"github.com/xtaci/fecrs/gf"
)

// Codec is an immutable, process-lifetime Reed-Solomon descriptor: field,
// ecc, precomputed generator/roots and (depending on options) strategy
// LUTs. Once New returns, a Codec is read-only and safe for concurrent use
// by any number of goroutines against disjoint codeword buffers — there is
// no shared mutable state beyond its scratch pool, which is itself just a
// cache of caller-exclusive buffers (sync.Pool, same pattern as
// reedsolomon.reedSolomon.mPool).
type Codec[T gf.Elem] struct {
	field gf.Field[T]
	ecc   int

	generator []T // length ecc+1, high-coefficient-first, generator[0] == 1
	genTail   []T // generator[1:], the divisor poly_mod_x_n wants
	roots     []T // roots[i] == alpha^i, i in [0, ecc)

	opts options

	byteLUT  [][]T    // EncodeByteLUT: byteLUT[v] is the remainder row for leading value v
	sliceLUT [8][]uint64 // EncodeSliceBy8: only populated for Field8 with ecc == 8

	scratch sync.Pool
}

// New builds a Codec over the given field with ecc parity symbols. ecc
// must satisfy 0 < ecc < q-1 (spec.md §3's "e < q-1" invariant — e is the
// count of nonzero generator roots, and a field of order q has only q-1
// nonzero powers of alpha to draw roots from).
func New[T gf.Elem](field gf.Field[T], ecc int, opts ...Option) (*Codec[T], error) {
	if ecc <= 0 || ecc >= field.Order()-1 {
		return nil, ErrInvalidECC
	}

	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}

	_, isField8 := any(field).(*gf.Field8)

	// Explicit, caller-requested wide-word strategies only make sense on
	// GF(2^8) — reject those outright rather than silently downgrading,
	// since the caller asked for a specific strategy by name. Byte-LUT
	// itself (spec.md §4.6) is defined in terms of XORing a head byte
	// with the input, which is only meaningful for a characteristic-2
	// field; odd-prime fields use EncodeBasic instead.
	if o.encoder == EncodeByteLUT && !isField8 {
		return nil, ErrStrategyUnsupported
	}
	if o.encoder == EncodeSliceBy8 && (!isField8 || ecc != 8) {
		return nil, ErrStrategyUnsupported
	}
	if o.encoder == encoderAuto {
		switch {
		case isField8 && ecc == 8 && cpuid.CPU.Supports(cpuid.SSE2, cpuid.SSSE3):
			o.encoder = EncodeSliceBy8
		case isField8:
			o.encoder = EncodeByteLUT
		default:
			o.encoder = EncodeBasic
		}
	}
	if o.syndrome == SyndromeWide && !isField8 {
		return nil, ErrStrategyUnsupported
	}
	if (o.rootFind == RootChien || o.rootFind == RootWideLUT) && !isField8 {
		return nil, ErrStrategyUnsupported
	}

	// The auto sentinels, by contrast, were never a request for a
	// specific strategy — resolve them now that the field's concrete
	// type is known, upgrading to the wide-word paths only on GF(2^8)
	// hosts fast enough to benefit (gf.HasFastWideWord, the same
	// templexxx/cpu probe xorsimd relies on). A GF(257) Codec built with
	// zero Options always lands on the scalar/basic strategies.
	fastWide := isField8 && gf.HasFastWideWord()
	if o.syndrome == syndromeAuto {
		if fastWide {
			o.syndrome = SyndromeWide
		} else {
			o.syndrome = SyndromeScalar
		}
	}
	if o.rootFind == rootAuto {
		if fastWide {
			o.rootFind = RootWideLUT
		} else {
			o.rootFind = RootBasic
		}
	}

	c := &Codec[T]{field: field, ecc: ecc, opts: o}

	c.generator, c.roots = buildGenerator[T](field, ecc)
	c.genTail = c.generator[1:]

	if f8, ok := any(field).(*gf.Field8); ok {
		if o.mulTable {
			f8.EnableMulTable()
		}
	}

	switch o.encoder {
	case EncodeByteLUT:
		c.buildByteLUT()
	case EncodeSliceBy8:
		c.buildSliceLUT()
	}

	c.scratch.New = func() any {
		return make([]T, 4*ecc)
	}

	return c, nil
}

// ECC returns the number of parity symbols this codec appends.
func (c *Codec[T]) ECC() int { return c.ecc }

// MaxN returns the largest codeword length this codec's field supports
// (q-1, per spec.md §3).
func (c *Codec[T]) MaxN() int { return c.field.Order() - 1 }

func (c *Codec[T]) getScratch() []T {
	buf := c.scratch.Get().([]T)
	if cap(buf) < 4*c.ecc {
		buf = make([]T, 4*c.ecc)
	}
	return buf[:4*c.ecc]
}

func (c *Codec[T]) putScratch(buf []T) {
	c.scratch.Put(buf) //nolint:staticcheck // scratch is reused as-is, zeroed by the next borrower's own writes
}
