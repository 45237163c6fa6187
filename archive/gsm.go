package archive

import (
	"encoding/binary"

	"github.com/Prof9/textpet-codec/script"
)

const (
	gsmMagic      = " GSM"
	gsmHeaderSize = 12
	gsmEntrySize  = 4
)

// GSMOptions configures the encrypted " GSM" container's header
// validation.
type GSMOptions struct {
	// Strict requires the header's two fixed fields (00 01 and FF FF)
	// to hold their canonical values. When false those bytes are read
	// but not checked.
	Strict bool
}

type gsmEntry struct {
	offset uint16
	size   int
}

// ReadGSM validates a " GSM" header, XORs the script payload region
// with 0x55 in one pass over a copy of the buffer, and disassembles
// each entry's absolute (offset, size) range of that copy with a
// script.Disassembler. It does not call Read.
//
// The XOR must run over the full payload region in a single pass
// rather than per-script, because GSM scripts are permitted to
// overlap: decrypting script-by-script over shared bytes would
// XOR some bytes twice.
func ReadGSM(buf []byte, identifier string, opts GSMOptions, disOpts script.DisassembleOptions) (*TextArchive, error) {
	if len(buf) < gsmHeaderSize || string(buf[0:4]) != gsmMagic {
		return nil, &InvalidHeaderError{Reason: "missing \" GSM\" magic"}
	}
	if opts.Strict {
		if buf[4] != 0x00 || buf[5] != 0x01 {
			return nil, &InvalidHeaderError{Reason: "fixed field at offset 4 is not 00 01"}
		}
		if buf[10] != 0xff || buf[11] != 0xff {
			return nil, &InvalidHeaderError{Reason: "fixed field at offset 10 is not FF FF"}
		}
	}

	count := int(binary.LittleEndian.Uint16(buf[6:8]))
	tableEnd := gsmHeaderSize + count*gsmEntrySize
	if tableEnd > len(buf) {
		return nil, &InvalidHeaderError{Reason: "pointer table extends past end of buffer"}
	}

	entries := make([]gsmEntry, count)
	regionStart, regionEnd := -1, 0
	for i := 0; i < count; i++ {
		off := gsmHeaderSize + i*gsmEntrySize
		offset := binary.LittleEndian.Uint16(buf[off:])
		sizeWords := binary.LittleEndian.Uint16(buf[off+2:])
		size := (int(sizeWords) + 1) * 2
		entries[i] = gsmEntry{offset: offset, size: size}

		start := int(offset)
		end := start + size
		if end > len(buf) {
			return nil, &TruncatedPointerTableError{Index: i}
		}
		if regionStart == -1 || start < regionStart {
			regionStart = start
		}
		if end > regionEnd {
			regionEnd = end
		}
	}

	decrypted := append([]byte(nil), buf...)
	for i := regionStart; i < regionEnd; i++ {
		decrypted[i] ^= 0x55
	}

	dis := script.NewDisassembler(disOpts)
	result := &TextArchive{Identifier: identifier}
	for _, e := range entries {
		start := int(e.offset)
		dis.Reset(decrypted, start, start+e.size)
		s, err := dis.Run()
		if err != nil {
			return nil, err
		}
		result.Scripts = append(result.Scripts, s)
	}
	return result, nil
}

// WriteGSM re-encodes a TextArchive as a " GSM" container. Scripts
// with odd assembled length are padded with a single zero byte before
// XORing, since the on-disk size is stored in 2-byte words.
func WriteGSM(a *TextArchive, asmOpts script.AssembleOptions) ([]byte, error) {
	asm := script.NewAssembler(asmOpts)

	payloads := make([][]byte, len(a.Scripts))
	for i, s := range a.Scripts {
		asm.Reset()
		b, err := asm.Run(s)
		if err != nil {
			return nil, err
		}
		if len(b)%2 != 0 {
			b = append(b, 0x00)
		}
		payloads[i] = b
	}

	count := len(payloads)
	tableEnd := gsmHeaderSize + count*gsmEntrySize

	out := make([]byte, tableEnd)
	copy(out[0:4], gsmMagic)
	out[4], out[5] = 0x00, 0x01
	binary.LittleEndian.PutUint16(out[6:], uint16(count))
	out[10], out[11] = 0xff, 0xff

	maxSize := 0
	for _, b := range payloads {
		if len(b) > maxSize {
			maxSize = len(b)
		}
	}
	if maxSize > 0 {
		binary.LittleEndian.PutUint16(out[8:], uint16(maxSize/2-1))
	}

	payloadOffset := tableEnd
	for i, b := range payloads {
		off := gsmHeaderSize + i*gsmEntrySize
		binary.LittleEndian.PutUint16(out[off:], uint16(payloadOffset))
		binary.LittleEndian.PutUint16(out[off+2:], uint16(len(b)/2-1))
		out = append(out, b...)
		payloadOffset += len(b)
	}

	for i := tableEnd; i < len(out); i++ {
		out[i] ^= 0x55
	}
	return out, nil
}
