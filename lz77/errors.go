package lz77

import (
	"errors"
	"fmt"
)

// ErrInvalidLz77 is wrapped by every *InvalidLz77Error.
var ErrInvalidLz77 = errors.New("lz77: invalid stream")

// InvalidLz77Error reports a malformed compressed stream: a bad magic
// byte, truncated input, or a copy block whose displacement reaches
// before the start of the output produced so far.
type InvalidLz77Error struct {
	Reason string
}

func (e *InvalidLz77Error) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidLz77, e.Reason)
}

func (e *InvalidLz77Error) Unwrap() error {
	return ErrInvalidLz77
}

// ErrOutputTooLarge is returned by Decompress when the stream's
// declared decompressed size exceeds the caller's MaxOutputSize guard.
var ErrOutputTooLarge = errors.New("lz77: declared output size exceeds MaxOutputSize")
