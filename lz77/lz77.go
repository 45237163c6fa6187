package lz77

import "encoding/binary"

// Magic is the one-byte header every compressed stream begins with.
const Magic = 0x10

// Decompress inflates a magic-0x10 stream: a 3-byte little-endian
// decompressed size followed by 8-block flag groups, each flag byte's
// bits read most-significant-first, a clear bit meaning the next
// stream byte is a literal and a set bit meaning the next two stream
// bytes are a big-endian `CCCC DDDD DDDD DDDD` copy word (copy count =
// C+3, displacement = D+1 bytes behind the current output position).
// The copy is performed byte-by-byte so a displacement smaller than
// the count produces run-length-style repetition.
func Decompress(data []byte, opts DecompressOptions) ([]byte, error) {
	if len(data) < 4 {
		return nil, &InvalidLz77Error{Reason: "stream shorter than header"}
	}
	if data[0] != Magic {
		return nil, &InvalidLz77Error{Reason: "bad magic byte"}
	}

	size := int(data[1]) | int(data[2])<<8 | int(data[3])<<16
	if opts.MaxOutputSize > 0 && size > opts.MaxOutputSize {
		return nil, ErrOutputTooLarge
	}

	out := make([]byte, 0, size)
	pos := 4

	for len(out) < size {
		if pos >= len(data) {
			return nil, &InvalidLz77Error{Reason: "premature end of stream"}
		}
		flags := data[pos]
		pos++

		for bit := 7; bit >= 0 && len(out) < size; bit-- {
			if flags&(1<<uint(bit)) == 0 {
				if pos >= len(data) {
					return nil, &InvalidLz77Error{Reason: "premature end of stream"}
				}
				out = append(out, data[pos])
				pos++
				continue
			}

			if pos+2 > len(data) {
				return nil, &InvalidLz77Error{Reason: "premature end of stream"}
			}
			word := binary.BigEndian.Uint16(data[pos : pos+2])
			pos += 2
			count := int(word>>12) + 3
			disp := int(word&0x0fff) + 1

			if disp > len(out) {
				return nil, &InvalidLz77Error{Reason: "displacement before start of output"}
			}
			for i := 0; i < count && len(out) < size; i++ {
				out = append(out, out[len(out)-disp])
			}
		}
	}

	return out, nil
}

// Wrap encodes b as an uncompressed magic-0x10 stream: every literal
// block flag is zero, so the flag stream carries no copy blocks at
// all. The result is padded with trailing zero bytes so its total
// length is a multiple of 4.
func Wrap(b []byte) []byte {
	out := make([]byte, 4, 4+len(b)+(len(b)+7)/8)
	out[0] = Magic
	out[1] = byte(len(b))
	out[2] = byte(len(b) >> 8)
	out[3] = byte(len(b) >> 16)

	for i := 0; i < len(b); i += 8 {
		out = append(out, 0x00)
		end := i + 8
		if end > len(b) {
			end = len(b)
		}
		out = append(out, b[i:end]...)
	}

	for len(out)%4 != 0 {
		out = append(out, 0x00)
	}
	return out
}
