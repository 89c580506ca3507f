package rs

import (
	"testing"

	"github.com/xtaci/fecrs/gf"
)

func newTestField8(t *testing.T) *gf.Field8 {
	t.Helper()
	f, err := gf.NewField8(0x02, 0x11d)
	if err != nil {
		t.Fatalf("NewField8: %v", err)
	}
	return f
}

func sampleData(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(7*i + 3)
	}
	return out
}

func TestEncodeDecodeRoundTripNoErrors(t *testing.T) {
	strategies := []struct {
		name     string
		encoder  EncoderStrategy
		syndrome SyndromeStrategy
		root     RootStrategy
	}{
		{"basic/scalar/basic", EncodeBasic, SyndromeScalar, RootBasic},
		{"byteLUT/scalar/chien", EncodeByteLUT, SyndromeScalar, RootChien},
		{"sliceBy8/wide/wideLUT", EncodeSliceBy8, SyndromeWide, RootWideLUT},
	}

	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			f := newTestField8(t)
			ecc := 8
			c, err := New[byte](f, ecc,
				WithEncoderStrategy(s.encoder),
				WithSyndromeStrategy(s.syndrome),
				WithRootFinder(s.root),
			)
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			data := sampleData(32)
			codeword := append(append([]byte{}, data...), make([]byte, ecc)...)
			if err := c.Encode(codeword); err != nil {
				t.Fatalf("Encode: %v", err)
			}

			if err := c.Decode(codeword); err != nil {
				t.Fatalf("Decode on clean codeword: %v", err)
			}
			for i, v := range data {
				if codeword[i] != v {
					t.Fatalf("data[%d] = %d, want %d", i, codeword[i], v)
				}
			}
		})
	}
}

func TestDecodeCorrectsWithinCapacity(t *testing.T) {
	f := newTestField8(t)
	ecc := 10
	c, err := New[byte](f, ecc)
	if err != nil {
		t.Fatal(err)
	}

	data := sampleData(40)
	codeword := append(append([]byte{}, data...), make([]byte, ecc)...)
	if err := c.Encode(codeword); err != nil {
		t.Fatal(err)
	}
	original := append([]byte{}, codeword...)

	maxErrors := ecc / 2
	corrupted := append([]byte{}, codeword...)
	for i := 0; i < maxErrors; i++ {
		pos := i * 5
		corrupted[pos] ^= byte(0x55 + i)
	}

	if err := c.Decode(corrupted); err != nil {
		t.Fatalf("Decode with %d errors: %v", maxErrors, err)
	}
	for i := range original {
		if corrupted[i] != original[i] {
			t.Fatalf("byte %d = %d, want %d", i, corrupted[i], original[i])
		}
	}
}

// TestDecodeCorrectsErrorAtLastByte exercises pos==0 (alpha^0==1), which
// makes findRoots test Inv(Exp(0)) == Inv(1) and, via Forney, divide by
// xi==1 for that root first — the boundary case where an unguarded field
// inverse implementation would index out of range.
func TestDecodeCorrectsErrorAtLastByte(t *testing.T) {
	f := newTestField8(t)
	ecc := 8
	c, err := New[byte](f, ecc)
	if err != nil {
		t.Fatal(err)
	}

	data := sampleData(20)
	codeword := append(append([]byte{}, data...), make([]byte, ecc)...)
	if err := c.Encode(codeword); err != nil {
		t.Fatal(err)
	}
	original := append([]byte{}, codeword...)

	corrupted := append([]byte{}, codeword...)
	corrupted[len(corrupted)-1] ^= 0x7f

	if err := c.Decode(corrupted); err != nil {
		t.Fatalf("Decode with error at last byte: %v", err)
	}
	for i := range original {
		if corrupted[i] != original[i] {
			t.Fatalf("byte %d = %d, want %d", i, corrupted[i], original[i])
		}
	}
}

func TestDecodeUncorrectableBeyondCapacity(t *testing.T) {
	f := newTestField8(t)
	ecc := 6
	c, err := New[byte](f, ecc)
	if err != nil {
		t.Fatal(err)
	}

	data := sampleData(20)
	codeword := append(append([]byte{}, data...), make([]byte, ecc)...)
	if err := c.Encode(codeword); err != nil {
		t.Fatal(err)
	}

	tooMany := ecc // maxErrors is ecc/2; ecc errors is well beyond capacity
	for i := 0; i < tooMany; i++ {
		codeword[i*2] ^= 0xff
	}

	err = c.Decode(codeword)
	if err == nil {
		t.Fatal("expected an error decoding a word with too many errors")
	}
}

func TestDecodeWithErasuresRecovers(t *testing.T) {
	f := newTestField8(t)
	ecc := 10
	c, err := New[byte](f, ecc)
	if err != nil {
		t.Fatal(err)
	}

	data := sampleData(30)
	codeword := append(append([]byte{}, data...), make([]byte, ecc)...)
	if err := c.Encode(codeword); err != nil {
		t.Fatal(err)
	}
	original := append([]byte{}, codeword...)

	erased := append([]byte{}, codeword...)
	positions := []int{0, 3, 9, 15, 20, 25, 30, 35, 39}
	if len(positions) > ecc {
		t.Fatalf("test bug: %d erasures exceeds ecc %d", len(positions), ecc)
	}
	for _, p := range positions {
		erased[p] = 0
	}

	if err := c.DecodeWithErasures(erased, positions); err != nil {
		t.Fatalf("DecodeWithErasures: %v", err)
	}
	for i := range original {
		if erased[i] != original[i] {
			t.Fatalf("byte %d = %d, want %d", i, erased[i], original[i])
		}
	}
}

func TestDecodeWithErasuresTooMany(t *testing.T) {
	f := newTestField8(t)
	ecc := 4
	c, err := New[byte](f, ecc)
	if err != nil {
		t.Fatal(err)
	}
	codeword := make([]byte, 10+ecc)
	positions := []int{0, 1, 2, 3, 4}
	if err := c.DecodeWithErasures(codeword, positions); err != ErrTooManyErasures {
		t.Fatalf("DecodeWithErasures with too many erasures = %v, want ErrTooManyErasures", err)
	}
}

func TestGF257RoundTripWithErrors(t *testing.T) {
	f := gf.NewFieldP(257, 3)
	ecc := 8
	c, err := New[uint16](f, ecc)
	if err != nil {
		t.Fatal(err)
	}

	data := make([]uint16, 20)
	for i := range data {
		data[i] = uint16(i*13 + 1)
	}
	codeword := append(append([]uint16{}, data...), make([]uint16, ecc)...)
	if err := c.Encode(codeword); err != nil {
		t.Fatal(err)
	}
	original := append([]uint16{}, codeword...)

	maxErrors := ecc / 2
	for i := 0; i < maxErrors; i++ {
		codeword[i*3] = (codeword[i*3] + 17) % 257
	}

	if err := c.Decode(codeword); err != nil {
		t.Fatalf("GF(257) Decode: %v", err)
	}
	for i := range original {
		if codeword[i] != original[i] {
			t.Fatalf("byte %d = %d, want %d", i, codeword[i], original[i])
		}
	}
}

func TestNewRejectsIncompatibleStrategies(t *testing.T) {
	f := gf.NewFieldP(257, 3)

	cases := []Option{
		WithEncoderStrategy(EncodeByteLUT),
		WithEncoderStrategy(EncodeSliceBy8),
		WithSyndromeStrategy(SyndromeWide),
		WithRootFinder(RootChien),
		WithRootFinder(RootWideLUT),
	}
	for _, opt := range cases {
		if _, err := New[uint16](f, 8, opt); err != ErrStrategyUnsupported {
			t.Fatalf("New with incompatible option = %v, want ErrStrategyUnsupported", err)
		}
	}
}

func TestNewRejectsInvalidECC(t *testing.T) {
	f := newTestField8(t)
	if _, err := New[byte](f, 0); err != ErrInvalidECC {
		t.Fatalf("ecc=0: %v, want ErrInvalidECC", err)
	}
	if _, err := New[byte](f, 255); err != ErrInvalidECC {
		t.Fatalf("ecc=255: %v, want ErrInvalidECC", err)
	}
}

func TestAccessors(t *testing.T) {
	f := newTestField8(t)
	c, err := New[byte](f, 12)
	if err != nil {
		t.Fatal(err)
	}
	if c.ECC() != 12 {
		t.Fatalf("ECC() = %d, want 12", c.ECC())
	}
	if c.MaxN() != 255 {
		t.Fatalf("MaxN() = %d, want 255", c.MaxN())
	}
}
