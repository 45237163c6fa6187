// Package maskedbyte provides the MaskedByte value type used to
// describe variable-length opcodes with don't-care bits.
package maskedbyte

import "fmt"

// MaskedByte is a pair (Base, Mask) that matches any byte x for which
// x&Mask == Base&Mask. A Mask of 0xff means a literal byte; a Mask of
// 0x00 is a wildcard matching every byte.
type MaskedByte struct {
	Base byte
	Mask byte
}

// Literal returns a MaskedByte that matches exactly b.
func Literal(b byte) MaskedByte {
	return MaskedByte{Base: b, Mask: 0xff}
}

// Wildcard returns a MaskedByte that matches every byte.
func Wildcard() MaskedByte {
	return MaskedByte{Base: 0, Mask: 0x00}
}

// Match reports whether b satisfies this MaskedByte's predicate.
func (m MaskedByte) Match(b byte) bool {
	return (b & m.Mask) == (m.Base & m.Mask)
}

// IsLiteral reports whether m matches exactly one byte.
func (m MaskedByte) IsLiteral() bool {
	return m.Mask == 0xff
}

// CommonBitsEqual reports whether m and other are equivalent as trie
// keys: there exists at least one bit both masks care about, and the
// two bases agree on every bit both masks care about.
//
// This relation is reflexive and symmetric but NOT transitive. A
// MaskedByte trie node must reject insertions that are
// CommonBitsEqual to an existing sibling by scanning linearly; it must
// never use this relation as a hash-bucket key.
func (m MaskedByte) CommonBitsEqual(other MaskedByte) bool {
	shared := m.Mask & other.Mask
	if shared == 0 {
		return false
	}
	return (m.Base & shared) == (other.Base & shared)
}

// Equal reports whether m and other describe the same predicate
// (ignoring don't-care bits left set in Base).
func (m MaskedByte) Equal(other MaskedByte) bool {
	return m.Mask == other.Mask && (m.Base&m.Mask) == (other.Base&other.Mask)
}

func (m MaskedByte) String() string {
	return fmt.Sprintf("%02x/%02x", m.Base, m.Mask)
}
