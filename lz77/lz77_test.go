package lz77

import (
	"bytes"
	"testing"
)

// Copy-with-overlap: a literal 'A' followed by a copy block with
// count=3, displacement=1 must repeat the just-emitted byte three more
// times, an RLE-style overlap since displacement (1) is smaller than
// count (3). See DESIGN.md for why this byte sequence differs from an
// inconsistent worked example with the same stated parameters.
func TestDecompressCopyWithOverlap(t *testing.T) {
	data := []byte{
		0x10, 0x04, 0x00, 0x00, // magic, size=4
		0x40,       // flags: block0 literal, block1 copy
		0x41,       // literal 'A'
		0x00, 0x00, // copy word: count=0+3=3, disp=0+1=1
	}
	out, err := Decompress(data, DefaultDecompressOptions())
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	want := []byte{0x41, 0x41, 0x41, 0x41}
	if !bytes.Equal(out, want) {
		t.Fatalf("Decompress = % x, want % x", out, want)
	}
}

func TestDecompressBadMagic(t *testing.T) {
	_, err := Decompress([]byte{0x11, 0x00, 0x00, 0x00}, DefaultDecompressOptions())
	if _, ok := err.(*InvalidLz77Error); !ok {
		t.Fatalf("expected *InvalidLz77Error, got %v", err)
	}
}

func TestDecompressPrematureEOF(t *testing.T) {
	data := []byte{0x10, 0x02, 0x00, 0x00, 0x00}
	_, err := Decompress(data, DefaultDecompressOptions())
	if _, ok := err.(*InvalidLz77Error); !ok {
		t.Fatalf("expected *InvalidLz77Error, got %v", err)
	}
}

func TestDecompressDisplacementPastStart(t *testing.T) {
	data := []byte{
		0x10, 0x02, 0x00, 0x00,
		0x80,       // block0 copy
		0x00, 0x01, // disp=2, but output is still empty
	}
	_, err := Decompress(data, DefaultDecompressOptions())
	if _, ok := err.(*InvalidLz77Error); !ok {
		t.Fatalf("expected *InvalidLz77Error, got %v", err)
	}
}

func TestDecompressMaxOutputSizeGuard(t *testing.T) {
	data := []byte{0x10, 0x00, 0x00, 0x10} // declared size: 0x100000
	opts := DecompressOptions{MaxOutputSize: 1024}
	if _, err := Decompress(data, opts); err != ErrOutputTooLarge {
		t.Fatalf("expected ErrOutputTooLarge, got %v", err)
	}
}

// LZ77 self-inverse for wrap: for any byte sequence,
// decompress(wrap(b)) == b and wrap(b)'s length is a multiple of 4.
func TestWrapDecompressRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		{0x01},
		{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09},
		bytes.Repeat([]byte{0xab}, 37),
	}
	for _, b := range cases {
		wrapped := Wrap(b)
		if len(wrapped)%4 != 0 {
			t.Fatalf("Wrap(% x) length %d not a multiple of 4", b, len(wrapped))
		}
		out, err := Decompress(wrapped, DefaultDecompressOptions())
		if err != nil {
			t.Fatalf("Decompress(Wrap(% x)): %v", b, err)
		}
		if !bytes.Equal(out, b) {
			t.Fatalf("round trip = % x, want % x", out, b)
		}
	}
}
