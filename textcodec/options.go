package textcodec

// FallbackPolicy controls what happens when a byte (decode) or
// character (encode) has no mapping and no remembered/escaped
// alternative applies.
type FallbackPolicy int

const (
	// FallbackIgnore drops the offending unit and continues.
	FallbackIgnore FallbackPolicy = iota
	// FallbackReplace emits a fixed placeholder and continues.
	FallbackReplace
	// FallbackError aborts with a *DecodeError or *EncodeError.
	FallbackError
)

// Options configures a Codec. Construct with DefaultOptions and
// override individual fields.
type Options struct {
	FallbackPolicy FallbackPolicy

	// ReplacementChar is the placeholder text emitted by Decode under
	// FallbackReplace.
	ReplacementChar rune

	// UnknownByte is the placeholder byte emitted by Encode under
	// FallbackReplace for a character with no mapping.
	UnknownByte byte

	// MaxLivePaths bounds the encoder's branch-exploring path set; the
	// oldest non-critical path is dismissed when exceeded.
	MaxLivePaths int

	// Greedy disables branch exploration: the encoder and decoder both
	// commit to the first value found at each step instead of cloning
	// to consider a longer match.
	Greedy bool

	// Logger receives a message whenever the encoder dismisses a path
	// for exceeding MaxLivePaths. A nil Logger is treated as a no-op.
	Logger func(format string, args ...any)
}

// DefaultOptions returns the canonical configuration: branch-exploring
// (Greedy: false), replace-on-fallback, a 256-path cap, and a no-op
// logger.
func DefaultOptions() Options {
	return Options{
		FallbackPolicy:  FallbackReplace,
		ReplacementChar: '?',
		UnknownByte:     0x00,
		MaxLivePaths:    256,
		Greedy:          false,
		Logger:          func(string, ...any) {},
	}
}

func (o Options) logger() func(string, ...any) {
	if o.Logger != nil {
		return o.Logger
	}
	return func(string, ...any) {}
}

func (o Options) maxLivePaths() int {
	if o.MaxLivePaths <= 0 {
		return 256
	}
	return o.MaxLivePaths
}
