// Package archive reads and writes text archives: a pointer table of
// (offset, size) entries followed by script payloads, plus the
// encrypted " GSM" container variant, which has its own header and
// pointer table and uses the same script Disassembler/Assembler.
package archive
