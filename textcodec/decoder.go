package textcodec

import "strings"

// DecodeOneCommit walks data from its start through a single commit
// cycle of the decoder state machine: it steps the byte-trie cursor
// byte by byte, remembering the deepest value found, and stops either
// on a greedy/leaf commit or on step failure. It reports ok=false
// (consumed=0) when no code point could be resolved at data[0] at
// all, leaving the caller (Decode's own fallback handling, or a
// streaming caller such as the script disassembler) to decide what
// happens to that one byte.
func (c *Codec) DecodeOneCommit(data []byte) (value string, consumed int, ok bool) {
	cursor := c.byteTrie.BeginPath()
	var remembered string
	var rememberedLen int
	haveRemembered := false

	for i := 0; i < len(data); i++ {
		if !cursor.Step(data[i]) {
			break
		}
		if v, found := cursor.Value(); found {
			remembered = v
			rememberedLen = i + 1
			haveRemembered = true
		}
		if c.options.Greedy || cursor.AtLeaf() {
			break
		}
	}

	if !haveRemembered {
		return "", 0, false
	}
	return remembered, rememberedLen, true
}

// Decode converts data to its string representation, walking the
// byte-trie and applying the configured FallbackPolicy to any byte
// with no mapping (and, outside Greedy mode, no remembered shorter
// match to fall back on first).
func (c *Codec) Decode(data []byte) (string, error) {
	var out strings.Builder

	queue := data
	startOffset := 0

	for len(queue) > 0 {
		if value, consumed, ok := c.DecodeOneCommit(queue); ok {
			out.WriteString(value)
			startOffset += consumed
			queue = queue[consumed:]
			continue
		}
		text, err := c.decodeFallback(queue[0], startOffset)
		if err != nil {
			return out.String(), err
		}
		out.WriteString(text)
		startOffset++
		queue = queue[1:]
	}

	return out.String(), nil
}

func (c *Codec) decodeFallback(b byte, offset int) (string, error) {
	switch c.options.FallbackPolicy {
	case FallbackIgnore:
		return "", nil
	case FallbackError:
		return "", &DecodeError{Byte: b, Offset: offset}
	default:
		return string(c.options.ReplacementChar), nil
	}
}
