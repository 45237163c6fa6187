package masktrie

import (
	"errors"
	"fmt"

	"github.com/Prof9/textpet-codec/maskedbyte"
)

// ErrEmptyKey is returned by Add when the key sequence is empty.
var ErrEmptyKey = errors.New("masktrie: key must not be empty")

// ErrDuplicateKey is the sentinel wrapped by DuplicateKeyError.
var ErrDuplicateKey = errors.New("masktrie: key already has a value")

// ErrAmbiguousMask is the sentinel wrapped by AmbiguousMaskError.
var ErrAmbiguousMask = errors.New("masktrie: key is common-bits-equal to an existing sibling")

// DuplicateKeyError reports that Add was called with a key that
// already carries a value.
type DuplicateKeyError struct {
	Key []maskedbyte.MaskedByte
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("masktrie: duplicate key %v: %v", e.Key, ErrDuplicateKey)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// AmbiguousMaskError reports that inserting New at this depth would be
// common-bits-equal to Existing, making the two indistinguishable at
// lookup time.
type AmbiguousMaskError struct {
	New      maskedbyte.MaskedByte
	Existing maskedbyte.MaskedByte
	Depth    int
}

func (e *AmbiguousMaskError) Error() string {
	return fmt.Sprintf("masktrie: %v is ambiguous with %v at depth %d: %v", e.New, e.Existing, e.Depth, ErrAmbiguousMask)
}

func (e *AmbiguousMaskError) Unwrap() error {
	return ErrAmbiguousMask
}
