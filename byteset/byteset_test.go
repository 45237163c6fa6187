package byteset

import (
	"testing"

	"github.com/Prof9/textpet-codec/internal/difftest"
)

type matchRow struct {
	Input    byte
	Expected bool
}

var allBytes []byte

func init() {
	allBytes = make([]byte, 256)
	for i := 0; i < 256; i++ {
		allBytes[i] = byte(i)
	}
}

func runByteMatchTests(t *testing.T, m Matcher, data []matchRow) {
	t.Helper()
	for i, row := range data {
		actual := m.Match(row.Input)
		if row.Expected != actual {
			t.Errorf("%s/%03d: %q: expected %v, got %v", t.Name(), i, row.Input, row.Expected, actual)
		}
	}
}

func runForEachTests(t *testing.T, m Matcher, expected []byte) {
	actual := make([]byte, 0, len(expected))
	m.ForEach(func(b byte) {
		actual = append(actual, b)
	})
	if string(actual) == string(expected) {
		return
	}
	t.Errorf("%s: wrong output:\n%s", t.Name(), difftest.Bytes(expected, actual))
}

func TestAll_Match(t *testing.T) {
	m := All()
	runByteMatchTests(t, m, []matchRow{
		matchRow{'0', true},
		matchRow{'A', true},
		matchRow{'z', true},
		matchRow{' ', true},
		matchRow{0xff, true},
		matchRow{0x00, true},
		matchRow{0x99, true},
		matchRow{0xff, true},
	})
}

func TestAll_ForEach(t *testing.T) {
	m := All()
	runForEachTests(t, m, allBytes)
}

func TestAll_String(t *testing.T) {
	m := All()
	actual := m.String()
	expected := "."
	if expected != actual {
		t.Errorf("%s: expected %q, got %q", t.Name(), expected, actual)
	}
}

func TestNone_Match(t *testing.T) {
	m := None()
	runByteMatchTests(t, m, []matchRow{
		matchRow{'0', false},
		matchRow{'A', false},
		matchRow{'z', false},
		matchRow{' ', false},
		matchRow{0xff, false},
		matchRow{0x00, false},
		matchRow{0x99, false},
		matchRow{0xff, false},
	})
}

func TestNone_ForEach(t *testing.T) {
	m := None()
	runForEachTests(t, m, nil)
}

func TestNone_String(t *testing.T) {
	m := None()
	actual := m.String()
	expected := "!."
	if expected != actual {
		t.Errorf("%s: expected %q, got %q", t.Name(), expected, actual)
	}
}

func makeDenseDemo() Matcher {
	return DenseSet('a', 'e', 'i', 'o', 'u')
}

func TestDenseSet_Match(t *testing.T) {
	m := makeDenseDemo()
	runByteMatchTests(t, m, []matchRow{
		matchRow{'a', true},
		matchRow{'e', true},
		matchRow{'i', true},
		matchRow{'o', true},
		matchRow{'u', true},
		matchRow{'9', false},
		matchRow{'b', false},
		matchRow{'f', false},
		matchRow{'z', false},
	})
}

func TestDenseSet_ForEach(t *testing.T) {
	m := makeDenseDemo()
	runForEachTests(t, m, []byte{'a', 'e', 'i', 'o', 'u'})
}

func TestDenseSet_OptimizeCollapsesToExactlyAndNone(t *testing.T) {
	one := DenseSet('a').Optimize()
	if _, ok := one.(*mExact); !ok {
		t.Errorf("Optimize() of a single-byte dense set = %T, want *mExact", one)
	}
	empty := DenseSet().Optimize()
	if empty != None() {
		t.Errorf("Optimize() of an empty dense set = %v, want None()", empty)
	}
}

// Exactly is the masked-byte matcher's own fast path: a mask of 0xff
// collapses to a single-byte literal.
func TestExactly_Match(t *testing.T) {
	m := Exactly(0x41)
	runByteMatchTests(t, m, []matchRow{
		matchRow{0x41, true},
		matchRow{0x40, false},
		matchRow{0x42, false},
	})
}

func TestExactly_ForEach(t *testing.T) {
	runForEachTests(t, Exactly(0x41), []byte{0x41})
}

// Masked(base, mask) is the matcher command.NewMatcher enumerates via
// ForEach when a def's base/mask sequence can't share a masktrie.Trie
// node with an existing sibling.
func TestMasked_Match(t *testing.T) {
	m := Masked(0xf0, 0xf0)
	runByteMatchTests(t, m, []matchRow{
		matchRow{0xf0, true},
		matchRow{0xff, true},
		matchRow{0xf3, true},
		matchRow{0x0f, false},
		matchRow{0x00, false},
	})
}

func TestMasked_ForEach(t *testing.T) {
	m := Masked(0x00, 0x0f)
	var want []byte
	for x := 0; x < 256; x++ {
		if byte(x)&0x0f == 0 {
			want = append(want, byte(x))
		}
	}
	runForEachTests(t, m, want)
}

func TestMasked_NormalizesBaseUnderMask(t *testing.T) {
	// Base bits outside the mask must not affect matching: Masked(0xff, 0x0f)
	// and Masked(0x0f, 0x0f) describe the same set.
	a := Masked(0xff, 0x0f)
	b := Masked(0x0f, 0x0f)
	for x := 0; x < 256; x++ {
		if a.Match(byte(x)) != b.Match(byte(x)) {
			t.Fatalf("byte %#x: Masked(0xff,0x0f)=%v, Masked(0x0f,0x0f)=%v", x, a.Match(byte(x)), b.Match(byte(x)))
		}
	}
}

func TestMasked_OptimizeCollapsesLiteralAndWildcard(t *testing.T) {
	if _, ok := Masked(0x41, 0xff).Optimize().(*mExact); !ok {
		t.Errorf("Optimize() of a literal mask did not collapse to *mExact")
	}
	if Masked(0x00, 0x00).Optimize() != All() {
		t.Errorf("Optimize() of a zero mask did not collapse to All()")
	}
}

func TestBytes(t *testing.T) {
	m := makeDenseDemo()
	actual := string(Bytes(m, nil))
	expected := "aeiou"
	if actual != expected {
		t.Errorf("%s: expected %q, actual %q", t.Name(), expected, actual)
	}
}
