package rs

// EncoderStrategy selects among the three interchangeable parity-generation
// strategies described in spec.md §4.6. Correctness is identical; only
// space/throughput differ.
type EncoderStrategy int

const (
	// encoderAuto picks EncodeSliceBy8 on a GF(2^8) field with ecc == 8
	// when the CPU reports SSE2 and SSSE3, EncodeByteLUT on any other
	// GF(2^8) codec, and EncodeBasic on other fields.
	// Unexported, never visible to callers.
	encoderAuto EncoderStrategy = iota
	// EncodeBasic runs poly_mod_x_n directly against the generator tail,
	// no precomputed table — O(1) extra state, slowest per byte.
	EncodeBasic
	// EncodeByteLUT precomputes one generator-remainder row per possible
	// leading byte (q rows of ecc bytes) and rotates a running remainder.
	EncodeByteLUT
	// EncodeSliceBy8 is only valid when ecc == 8 and the field is
	// GF(2^8): N tables of q 64-bit words, consuming 8 input bytes per
	// step.
	EncodeSliceBy8
)

// SyndromeStrategy selects the syndrome-evaluation strategy (spec.md §4.7).
type SyndromeStrategy int

const (
	// syndromeAuto resolves to SyndromeWide on GF(2^8) when the host has
	// fast unaligned-word support, else SyndromeScalar. It is the
	// unexported zero-ish default and is never visible to callers.
	syndromeAuto SyndromeStrategy = iota
	// SyndromeScalar evaluates the received polynomial at each generator
	// root independently via Horner's rule.
	SyndromeScalar
	// SyndromeWide packs 8 consecutive generator roots into one machine
	// word and runs Horner once per pass of 8 roots. Only available for
	// GF(2^8) fields; when ecc is not a multiple of 8 the syndromes are
	// computed by the scalar path instead.
	SyndromeWide
)

// RootStrategy selects the error-locator root-finding strategy (spec.md §4.9).
type RootStrategy int

const (
	// rootAuto resolves to RootWideLUT on GF(2^8) when fast, else
	// RootBasic. Never visible to callers.
	rootAuto RootStrategy = iota
	// RootBasic evaluates Lambda at alpha^-i for every candidate position.
	RootBasic
	// RootChien runs an incremental Chien search: one multiply-accumulate
	// per coefficient per step instead of a full Horner evaluation.
	// Only available for GF(2^8).
	RootChien
	// RootWideLUT evaluates 8 packed alpha^-i candidates per step.
	// Only available for GF(2^8).
	RootWideLUT
)

type options struct {
	encoder   EncoderStrategy
	syndrome  SyndromeStrategy
	rootFind  RootStrategy
	mulTable  bool
	maxErrors int // 0 means "derive from ecc/2"
}

// Option configures a Codec at construction time, following the
// functional-options pattern in klauspost/reedsolomon/options.go
// (Option func(*options), applied over a package-level default).
type Option func(*options)

// defaultOptions leaves syndrome/root-finder strategy on the auto sentinel;
// New resolves auto based on whether the field is GF(2^8) and whether the
// host has the fast unaligned-word support xorsimd itself requires — the
// same CPU-feature-gated-default idea as reedsolomon/options.go, but
// deferred until the field is known so GF(257) codecs never get handed a
// wide-word strategy they can't run.
var defaultOptions = options{
	encoder:  encoderAuto,
	syndrome: syndromeAuto,
	rootFind: rootAuto,
	mulTable: true,
}

// WithEncoderStrategy overrides the parity-generation strategy.
func WithEncoderStrategy(s EncoderStrategy) Option {
	return func(o *options) { o.encoder = s }
}

// WithSyndromeStrategy overrides the syndrome-evaluation strategy.
func WithSyndromeStrategy(s SyndromeStrategy) Option {
	return func(o *options) { o.syndrome = s }
}

// WithRootFinder overrides the root-finding strategy.
func WithRootFinder(s RootStrategy) Option {
	return func(o *options) { o.rootFind = s }
}

// WithMulTable controls whether the field's full q*q multiplication table
// is built (GF(2^8) only; ignored for GF(257), which never builds one).
func WithMulTable(enabled bool) Option {
	return func(o *options) { o.mulTable = enabled }
}
