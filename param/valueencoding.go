package param

import (
	"fmt"
	"strconv"
)

// ValueEncoding converts a raw integer field (already shifted and
// addend-adjusted) to and from its presentation string. bits is the
// field's declared width, used by encodings that need to know the
// value's natural range (e.g. "hex" zero-pads to ceil(bits/4) digits).
type ValueEncoding interface {
	Encode(value int64, bits int) (string, error)
	Decode(s string, bits int) (int64, error)
}

type boolEncoding struct{}

func (boolEncoding) Encode(value int64, bits int) (string, error) {
	switch value {
	case 0:
		return "false", nil
	case 1:
		return "true", nil
	default:
		return "", fmt.Errorf("param: bool encoding cannot represent %d", value)
	}
}

func (boolEncoding) Decode(s string, bits int) (int64, error) {
	switch s {
	case "true":
		return 1, nil
	case "false":
		return 0, nil
	default:
		return 0, fmt.Errorf("param: bool encoding cannot parse %q", s)
	}
}

type hexEncoding struct{}

func (hexEncoding) Encode(value int64, bits int) (string, error) {
	if value < 0 {
		return "", fmt.Errorf("param: hex encoding cannot represent negative %d", value)
	}
	digits := (bits + 3) / 4
	if digits == 0 {
		digits = 1
	}
	return fmt.Sprintf("%0*X", digits, value), nil
}

func (hexEncoding) Decode(s string, bits int) (int64, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("param: hex encoding cannot parse %q: %w", s, err)
	}
	return int64(v), nil
}

// EncodingRegistry is a named lookup table of ValueEncodings, owned by
// a command database so that parameter definitions can refer to
// encodings by name rather than by value.
type EncodingRegistry struct {
	encodings map[string]ValueEncoding
}

// NewEncodingRegistry returns a registry pre-populated with the
// built-in "bool" and "hex" encodings.
func NewEncodingRegistry() *EncodingRegistry {
	r := &EncodingRegistry{encodings: make(map[string]ValueEncoding)}
	r.Register("bool", boolEncoding{})
	r.Register("hex", hexEncoding{})
	return r
}

// Register adds or replaces the encoding named name.
func (r *EncodingRegistry) Register(name string, enc ValueEncoding) {
	r.encodings[name] = enc
}

// Lookup returns the encoding named name, or an *ErrUnknownValueEncoding.
func (r *EncodingRegistry) Lookup(name string) (ValueEncoding, error) {
	enc, ok := r.encodings[name]
	if !ok {
		return nil, &ErrUnknownValueEncoding{Name: name}
	}
	return enc, nil
}
