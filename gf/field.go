// Package gf implements finite-field arithmetic parameterised by
// characteristic, extension degree, primitive element and reduction
// polynomial, following the field-kernel design used throughout the
// klauspost/reedsolomon galois tables this package is modelled on.
package gf

import "github.com/pkg/errors"

// Elem is the storage type of a field element. GF(2^8) elements fit in a
// byte; GF(257) elements need the extra bit, so they're carried as uint16.
type Elem interface {
	~byte | ~uint16
}

// Field is a finite field GF(p^m) built once at construction time and
// read-only thereafter, so that concurrent Encode/Decode calls against
// disjoint buffers never need to synchronize on it.
type Field[T Elem] interface {
	// Order returns q = p^m, the number of elements in the field.
	Order() int

	// Characteristic returns p.
	Characteristic() int

	Add(a, b T) T
	Sub(a, b T) T

	// Mul multiplies via whichever table the concrete field was built
	// with (log/exp by default).
	Mul(a, b T) T

	// Div returns a/b; b must be non-zero.
	Div(a, b T) T

	// Inv returns the multiplicative inverse of a; a must be non-zero.
	Inv(a T) T

	// Exp returns alpha^k, where k is taken mod (q-1) for negative or
	// out-of-range k (so Exp can express alpha^-j as Exp(-j)).
	Exp(k int) T

	// Log returns the discrete log of a base alpha. Undefined at a == 0.
	Log(a T) int
}

// ErrBadReductionPoly is returned when a caller-supplied reduction
// polynomial has bit 0x80 set, which would break the wide-word carry-mask
// trick in WideMul (see gf.Field8.WideMul).
var ErrBadReductionPoly = errors.New("gf: reduction polynomial must have bit 0x80 clear")

// ErrZeroLog names the log-of-zero error. No function in this package
// returns it: Log(0) is undefined rather than reported.
var ErrZeroLog = errors.New("gf: log of zero is undefined")
