package gf

import (
	"github.com/templexxx/cpu"
	"github.com/templexxx/xorsimd"
)

// AddBulk applies field addition (XOR in GF(2^8)) across two whole buffers
// at once, writing the result into dst, via xorsimd.Bytes. Nothing in
// package rs calls it: the decoders apply corrections one symbol at a
// time with Field.Add.
//
// Only meaningful for GF(2^8): odd-prime fields don't have XOR addition,
// so FieldP has no analogous bulk helper.
func (f *Field8) AddBulk(dst, a, b []byte) {
	xorsimd.Bytes(dst, a, b)
}

// HasFastWideWord reports whether the host can do the word-at-a-time
// unaligned XOR path xorsimd itself relies on, mirroring
// xorsimd.supportsUnaligned's amd64/ppc64/ppc64le/s390x allowlist via the
// templexxx/cpu feature probe instead of a GOARCH switch. rs.New uses this
// to decide whether SyndromeWide/RootWideLUT are worth defaulting to on a
// GF(2^8) codec.
func HasFastWideWord() bool {
	return cpu.X86.HasSSE2 || cpu.X86.HasAVX2
}
