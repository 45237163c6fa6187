// Package byteset provides predicates over single bytes:
// literal (Exactly), dense-bitset (DenseSet), masked (Masked), and the
// degenerate All/None sets. Every Matcher is immutable once
// constructed; command.NewMatcher uses Masked to expand a masked-byte
// opcode pattern into the concrete bytes it admits.
package byteset
