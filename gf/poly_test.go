package gf

import (
	"reflect"
	"testing"
)

func TestPolyModXNMatchesExSynthDiv(t *testing.T) {
	f, err := NewField8(0x02, 0x11d)
	if err != nil {
		t.Fatal(err)
	}

	// generator = (x-1)(x-2)(x-4) = (x-alpha^0)(x-alpha^1)(x-alpha^2),
	// monic, high-coefficient-first.
	one := f.Exp(0)
	gen := []byte{one}
	for _, root := range []byte{f.Exp(0), f.Exp(1), f.Exp(2)} {
		gen = PolyMul[byte](f, gen, []byte{one, f.Sub(0, root)})
	}
	genTail := gen[1:]

	data := []byte{10, 20, 30, 40, 50}

	rem := make([]byte, len(genTail))
	PolyModXN[byte](f, data, genTail, rem)

	// Cross-check against ExSynthDiv on the shifted dividend a*x^e.
	padded := make([]byte, len(data)+len(genTail))
	copy(padded, data)
	ExSynthDiv[byte](f, padded, gen)
	want := padded[len(data):]

	if !reflect.DeepEqual(rem, want) {
		t.Fatalf("PolyModXN = %v, want %v (via ExSynthDiv)", rem, want)
	}
}

func TestPolyEvalHornerMatchesDirect(t *testing.T) {
	f, err := NewField8(0x02, 0x11d)
	if err != nil {
		t.Fatal(err)
	}
	// p(x) = 3x^2 + 0x + 7 (high-coefficient-first: [3,0,7])
	p := []byte{3, 0, 7}
	x := f.Exp(5)

	got := PolyEval[byte](f, p, x)

	x2 := f.Mul(x, x)
	want := f.Add(f.Mul(3, x2), 7)
	if got != want {
		t.Fatalf("PolyEval = %d, want %d", got, want)
	}
}

func TestPolyDerivCharacteristic2(t *testing.T) {
	f, err := NewField8(0x02, 0x11d)
	if err != nil {
		t.Fatal(err)
	}
	// p(x) = x^4 + x^3 + x^2 + x + 1 -> p'(x) = 4x^3 + 3x^2 + 2x + 1, but in
	// char 2 the even multipliers vanish: p'(x) = x^2 + 1. We check both the
	// returned length and the even/odd cancellation pattern.
	p := []byte{1, 1, 1, 1, 1} // degree 4, length 5 (odd)
	n := PolyDeriv[byte](f, p)
	if n != 3 {
		t.Fatalf("PolyDeriv length = %d, want 3", n)
	}
	if !reflect.DeepEqual(p[:n], []byte{1, 0, 1}) {
		t.Fatalf("PolyDeriv = %v, want [1 0 1]", p[:n])
	}
}

func TestPolyShiftZeroFillsTail(t *testing.T) {
	p := []byte{1, 2, 3, 4, 5}
	PolyShift(p, 2)
	if !reflect.DeepEqual(p, []byte{3, 4, 5, 0, 0}) {
		t.Fatalf("PolyShift(2) = %v, want [3 4 5 0 0]", p)
	}
}

func TestPolyMulDegree(t *testing.T) {
	f, err := NewField8(0x02, 0x11d)
	if err != nil {
		t.Fatal(err)
	}
	a := []byte{1, 2, 3}
	b := []byte{1, 1}
	r := PolyMul[byte](f, a, b)
	if len(r) != len(a)+len(b)-1 {
		t.Fatalf("len(PolyMul) = %d, want %d", len(r), len(a)+len(b)-1)
	}
}
