package archive

import (
	"encoding/binary"

	"github.com/Prof9/textpet-codec/script"
)

const pointerEntrySize = 8

// TextArchive is a sequence of scripts read from, or destined for, one
// buffer, together with the identifier the caller used to name it
// (typically a ROM offset string).
type TextArchive struct {
	Identifier string
	Scripts    []*script.Script
}

// pointerEntry is one (offset, size) row of the default pointer table,
// both fields 32-bit little-endian.
type pointerEntry struct {
	offset uint32
	size   uint32
}

// Read parses buf as a default-layout text archive: a pointer table of
// (offset, size) entries followed by script payloads. Entries are
// accepted until one fails the validity heuristic (size must be
// positive and the computed script range must lie within buf), unless
// opts.PointerCount pins an exact entry count.
//
// Table-end-relative offsets cannot be validated entry-by-entry during
// the heuristic scan, since the table's own length is exactly what the
// scan is discovering: Read resolves this in two passes, first finding
// the entry count from the entries' raw fields alone, then validating
// every accepted entry's absolute range once the table length is
// known.
func Read(buf []byte, identifier string, opts Options, disOpts script.DisassembleOptions) (*TextArchive, error) {
	entries, err := readPointerTable(buf, opts)
	if err != nil {
		return nil, err
	}

	tableEnd := len(entries) * pointerEntrySize
	dis := script.NewDisassembler(disOpts)

	result := &TextArchive{Identifier: identifier}
	for i, e := range entries {
		start := resolveOffset(e.offset, opts.PointerBase, tableEnd)
		end := start + int(e.size)
		if end > len(buf) {
			return nil, &TruncatedPointerTableError{Index: i}
		}
		dis.Reset(buf, start, end)
		s, err := dis.Run()
		if err != nil {
			return nil, err
		}
		result.Scripts = append(result.Scripts, s)
	}
	return result, nil
}

func resolveOffset(raw uint32, base PointerBase, tableEnd int) int {
	if base == LayoutRelativeToTableEnd {
		return tableEnd + int(raw)
	}
	return int(raw)
}

// readPointerTable scans buf for entries and returns the accepted
// ones in table order.
func readPointerTable(buf []byte, opts Options) ([]pointerEntry, error) {
	if opts.PointerCount > 0 {
		entries := make([]pointerEntry, 0, opts.PointerCount)
		tableEnd := opts.PointerCount * pointerEntrySize
		for i := 0; i < opts.PointerCount; i++ {
			e, ok := readRawEntry(buf, i)
			if !ok {
				return nil, &TruncatedPointerTableError{Index: i}
			}
			if !validEntry(e, opts.PointerBase, tableEnd, buf) {
				return nil, &TruncatedPointerTableError{Index: i}
			}
			entries = append(entries, e)
		}
		return entries, nil
	}

	// First pass: find how many contiguous entries carry a structurally
	// sane (non-zero size) payload, independent of the table's own
	// length.
	var raw []pointerEntry
	for i := 0; ; i++ {
		e, ok := readRawEntry(buf, i)
		if !ok || e.size == 0 {
			break
		}
		raw = append(raw, e)
	}

	tableEnd := len(raw) * pointerEntrySize

	// Second pass: now that the table's length is known, trim any
	// trailing entries whose absolute range doesn't fit buf.
	accepted := raw
	for i, e := range raw {
		start := resolveOffset(e.offset, opts.PointerBase, tableEnd)
		if start+int(e.size) > len(buf) {
			accepted = raw[:i]
			break
		}
	}
	return accepted, nil
}

func readRawEntry(buf []byte, index int) (pointerEntry, bool) {
	off := index * pointerEntrySize
	if off+pointerEntrySize > len(buf) {
		return pointerEntry{}, false
	}
	return pointerEntry{
		offset: binary.LittleEndian.Uint32(buf[off:]),
		size:   binary.LittleEndian.Uint32(buf[off+4:]),
	}, true
}

func validEntry(e pointerEntry, base PointerBase, tableEnd int, buf []byte) bool {
	if e.size == 0 {
		return false
	}
	start := resolveOffset(e.offset, base, tableEnd)
	return start >= 0 && start+int(e.size) <= len(buf)
}

// Write re-encodes a TextArchive as a default-layout buffer: a pointer
// table whose offsets follow opts.PointerBase's convention, followed by the
// scripts' assembled bytes laid out contiguously in order. For an
// archive produced by Read over the same options, Write reproduces the
// original buffer exactly.
func Write(a *TextArchive, opts Options, asmOpts script.AssembleOptions) ([]byte, error) {
	asm := script.NewAssembler(asmOpts)

	payloads := make([][]byte, len(a.Scripts))
	for i, s := range a.Scripts {
		asm.Reset()
		b, err := asm.Run(s)
		if err != nil {
			return nil, err
		}
		payloads[i] = b
	}

	tableEnd := len(a.Scripts) * pointerEntrySize
	out := make([]byte, tableEnd)

	payloadOffset := 0
	for i, b := range payloads {
		var stored uint32
		if opts.PointerBase == LayoutRelativeToTableEnd {
			stored = uint32(payloadOffset)
		} else {
			stored = uint32(tableEnd + payloadOffset)
		}
		off := i * pointerEntrySize
		binary.LittleEndian.PutUint32(out[off:], stored)
		binary.LittleEndian.PutUint32(out[off+4:], uint32(len(b)))
		out = append(out, b...)
		payloadOffset += len(b)
	}
	return out, nil
}
