// Package textcodec implements the byte<->string codec at the heart
// of a script disassembler/assembler: a decoder backed by a byte-keyed
// trie (remembered-code-point, fallback-on-failure state machine) and
// a branch-exploring encoder backed by a rune-keyed trie (a set of
// live alternative paths, the shortest of which wins).
package textcodec
