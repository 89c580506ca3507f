package gf

import "testing"

func newTestField8(t *testing.T) *Field8 {
	t.Helper()
	f, err := NewField8(0x02, 0x11d)
	if err != nil {
		t.Fatalf("NewField8: %v", err)
	}
	return f
}

func TestField8BadReductionPoly(t *testing.T) {
	if _, err := NewField8(0x02, 0x1ff); err == nil {
		t.Fatal("expected error for reduction poly with bit 0x80 set")
	}
}

func TestField8MulDivInverse(t *testing.T) {
	f := newTestField8(t)
	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b++ {
			p := f.Mul(byte(a), byte(b))
			if got := f.Div(p, byte(b)); got != byte(a) {
				t.Fatalf("Div(Mul(%d,%d), %d) = %d, want %d", a, b, b, got, a)
			}
		}
	}
}

func TestField8Inv(t *testing.T) {
	f := newTestField8(t)
	for a := 1; a < 256; a++ {
		inv := f.Inv(byte(a))
		if got := f.Mul(byte(a), inv); got != 1 {
			t.Fatalf("a=%d * inv(a)=%d = %d, want 1", a, inv, got)
		}
	}
}

func TestField8MulTableMatchesLog(t *testing.T) {
	f := newTestField8(t)
	f.EnableMulTable()
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			if got, want := f.Mul(byte(a), byte(b)), f.MulLog(byte(a), byte(b)); got != want {
				t.Fatalf("mulTable[%d][%d] = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestField8ExpLogRoundTrip(t *testing.T) {
	f := newTestField8(t)
	for k := 0; k < 255; k++ {
		x := f.Exp(k)
		if x == 0 {
			t.Fatalf("Exp(%d) == 0", k)
		}
		if got := f.Log(x); got != k {
			t.Fatalf("Log(Exp(%d)) = %d, want %d", k, got, k)
		}
	}
	// Exp is periodic with period 255, and accepts negative exponents.
	if f.Exp(0) != f.Exp(255) {
		t.Fatal("Exp(0) != Exp(255), multiplicative group order should be 255")
	}
	if f.Exp(-1) != f.Exp(254) {
		t.Fatalf("Exp(-1) = %d, want Exp(254) = %d", f.Exp(-1), f.Exp(254))
	}
}

func TestField8WideMulMatchesScalar(t *testing.T) {
	f := newTestField8(t)
	var a, b [8]byte
	for i := range a {
		a[i] = byte(17 * (i + 1))
		b[i] = byte(53 * (i + 3))
	}
	wa := PackBytes(a[:])
	wb := PackBytes(b[:])

	got := f.WideMul(wa, wb)
	var out [8]byte
	UnpackBytes(got, out[:])

	for i := range out {
		if want := f.Mul(a[i], b[i]); out[i] != want {
			t.Fatalf("lane %d: WideMul = %d, want %d", i, out[i], want)
		}
	}
}

func TestField8WidePolyEvalMatchesScalar(t *testing.T) {
	f := newTestField8(t)
	poly := []byte{3, 0, 7, 200, 1}

	var xs [8]byte
	for i := range xs {
		xs[i] = f.Exp(i + 1)
	}
	x := PackBytes(xs[:])

	got := f.WidePolyEval(poly, x)
	var out [8]byte
	UnpackBytes(got, out[:])

	for i, xi := range xs {
		if want := PolyEval[byte](f, poly, xi); out[i] != want {
			t.Fatalf("lane %d: WidePolyEval = %d, want %d", i, out[i], want)
		}
	}
}
