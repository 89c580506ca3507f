// Package fecrs is a thin convenience facade over the rs and bch packages:
// general Reed-Solomon codecs over an arbitrary field (package rs) and the
// fixed-rate binary BCH(63,45)/(63,30) codecs (package bch). Most callers
// will import rs/bch directly; this package exists for callers that want
// both under one import, mirroring how xtaci/kcp-go re-exports its fec
// package's constructors alongside the session API it builds on.
package fecrs

import (
	"github.com/xtaci/fecrs/bch"
	"github.com/xtaci/fecrs/gf"
	"github.com/xtaci/fecrs/rs"
)

// NewRS builds a Reed-Solomon codec over field with the given ECC symbol
// count. See rs.New for the available Options.
func NewRS[T gf.Elem](field gf.Field[T], ecc int, opts ...rs.Option) (*rs.Codec[T], error) {
	return rs.New(field, ecc, opts...)
}

// NewBCH45 builds the BCH(63,45) codec (3-bit correction capacity).
func NewBCH45() *bch.Codec63 {
	return bch.New45()
}

// NewBCH30 builds the BCH(63,30) codec (6-bit correction capacity).
func NewBCH30() *bch.Codec63 {
	return bch.New30()
}
