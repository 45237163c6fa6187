package byteset

import (
	"bytes"
	"fmt"
)

func genericForEach(m Matcher, f func(b byte)) {
	for i := uint(0); i < 256; i++ {
		if m.Match(byte(i)) {
			f(byte(i))
		}
	}
}

func genericString(m Matcher) string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	m.ForEach(func(b byte) {
		fmt.Fprintf(&buf, "\\x%02x", b)
	})
	buf.WriteByte(']')
	return buf.String()
}
