package rs

import "github.com/pkg/errors"

// Sentinel errors for the codec, following the teacher's use of
// github.com/pkg/errors for wrapping (client/main.go, server/main.go).
var (
	// ErrInvalidECC is returned by New when ecc is out of range for the
	// field (must be 0 < ecc < q-1, per spec.md §3's "e < q-1" invariant).
	ErrInvalidECC = errors.New("rs: invalid ecc for field order")

	// ErrCodewordLength is returned by Encode/Decode/DecodeWithErasures
	// when a codeword is not longer than ecc.
	ErrCodewordLength = errors.New("rs: codeword not longer than ecc")

	// ErrUncorrectable is returned by Decode/DecodeWithErasures when the
	// received word has more errors than the code can correct.
	ErrUncorrectable = errors.New("rs: uncorrectable error pattern")

	// ErrTooManyErasures is returned when more than ecc erasure
	// positions are supplied.
	ErrTooManyErasures = errors.New("rs: too many erasure positions")

	// ErrErasureOutOfRange is returned when a supplied erasure position
	// falls outside [0, n).
	ErrErasureOutOfRange = errors.New("rs: erasure position out of range")

	// ErrStrategyUnsupported is returned by New when a strategy option
	// requires a field/ecc combination the codec wasn't built with
	// (e.g. EncodeSliceBy8 on a field other than GF(2^8), or with
	// ecc != 8).
	ErrStrategyUnsupported = errors.New("rs: strategy not supported for this field/ecc combination")
)
