// Package script models a disassembled sequence of commands, text
// runs, raw bytes, and directives, and converts between that sequence
// and the byte buffer it was read from.
package script
