// Package command models GBA/NDS script commands: their masked-byte
// opcode patterns, bit-packed element layouts (including repeated
// data rows and single-level inheritance), the database that owns a
// named, chainable set of them, and the priority-ranked matcher that
// identifies the next command at a buffer's read head.
package command
