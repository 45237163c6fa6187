// Package masktrie specializes the lookup-trie idea (see package
// trie) to sequences of maskedbyte.MaskedByte: keys that match ranges
// of bytes rather than single literal values.
//
// Because MaskedByte's CommonBitsEqual relation is not transitive (see
// maskedbyte.MaskedByte.CommonBitsEqual), a masktrie node cannot use a
// hash map keyed by mask to store its children — two keys can each be
// common-bits-equal to a third without being common-bits-equal to each
// other, which a hash bucket cannot express. Instead, every node scans
// its children linearly on both Add (to detect AmbiguousMask) and Step
// (to find the first child whose predicate admits the byte being
// matched).
//
// The exception is the very first byte of a walk: Trie maintains a
// 256-entry bypass table mapping every possible first byte directly to
// the depth-1 node it reaches, so that a hot per-byte dispatch loop
// (the command matcher, consulted once per byte of script data) never
// pays for a linear scan at the position that matters most.
package masktrie
