// Package lz77 implements the handheld-game LZ77 variant used by some
// text archives: a one-byte magic, a 3-byte little-endian decompressed
// size, and a stream of 8-block flag groups mixing literal bytes with
// (count, displacement) copy blocks.
package lz77
