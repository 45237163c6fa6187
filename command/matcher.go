package command

import (
	"github.com/Prof9/textpet-codec/byteset"
	"github.com/Prof9/textpet-codec/maskedbyte"
	"github.com/Prof9/textpet-codec/masktrie"
	"github.com/Prof9/textpet-codec/param"
)

// Matcher identifies the command at the read head of a byte buffer.
//
// Most CommandDefs share its masktrie.Trie: the trie's bypass table
// gives O(1) first-byte dispatch, and walking it past depth 0 resolves
// the common case of one base extending another (e.g. a 1-byte and a
// 2-byte command sharing a literal first byte) for free, since both
// live on the same root-to-leaf path and MatchPaths/Cursor surface
// every value along it. Defs landing at the same node (an exact
// base/mask repeat) accumulate into that node's candidate list via
// Trie.Merge.
//
// A def can still fail to fit: masktrie.Trie rejects a common-bits-equal
// but unequal sibling (e.g. base F0 mask F0 and base F3 mask FF, which
// both admit 0xF3) as ambiguous, by design — see maskedbyte.CommonBitsEqual.
// The priority-ranked matching rule requires exactly that pair to
// coexist, so any def masktrie.Trie.Merge rejects falls through to an
// overflow index instead: a byteset.Masked predicate over its first
// byte enumerates every byte it admits (byteset.Masked(...).ForEach),
// populating a bypass-shaped [256][]*CommandDef table, and its full
// base/mask sequence is checked directly at match time.
type Matcher struct {
	db    *Database
	trie  *masktrie.Trie[[]*CommandDef]
	order map[*CommandDef]int

	overflowFirstByte [256][]*CommandDef
}

// NewMatcher builds a Matcher over every CommandDef reachable from db
// and its chain, in preference order. Construction never fails:
// overlapping masked bases are expected and resolved at match time.
func NewMatcher(db *Database) *Matcher {
	m := &Matcher{
		db:    db,
		trie:  masktrie.New[[]*CommandDef](),
		order: make(map[*CommandDef]int),
	}

	appendDef := func(existing, incoming []*CommandDef) []*CommandDef {
		return append(existing, incoming...)
	}

	for i, def := range allDefs(db) {
		m.order[def] = i
		if err := m.trie.Merge(maskedByteKey(def), []*CommandDef{def}, appendDef); err == nil {
			continue
		}
		byteset.Masked(def.Base[0], def.Mask[0]).ForEach(func(b byte) {
			m.overflowFirstByte[b] = append(m.overflowFirstByte[b], def)
		})
	}
	return m
}

func maskedByteKey(def *CommandDef) []maskedbyte.MaskedByte {
	key := make([]maskedbyte.MaskedByte, len(def.Base))
	for i := range def.Base {
		key[i] = maskedbyte.MaskedByte{Base: def.Base[i], Mask: def.Mask[i]}
	}
	return key
}

// Match looks for a command admitting buf[pos]. It returns nil, false
// if no candidate's base/mask sequence fits within the buffer and
// matches. Among matching candidates it selects by three-level
// preference: (a) greatest PriorityLength wins; (b) tie -> longest
// Base wins; (c) tie -> first-inserted wins, tracked by the order
// NewMatcher built its defs in regardless of which of the two
// candidate sources below supplied the winner.
func (m *Matcher) Match(buf []byte, pos int) (*CommandDef, bool) {
	if pos < 0 || pos >= len(buf) {
		return nil, false
	}

	var best *CommandDef
	consider := func(def *CommandDef) {
		if best == nil || m.better(def, best) {
			best = def
		}
	}

	c := m.trie.BeginPath()
	for i := pos; i < len(buf); i++ {
		if !c.Step(buf[i]) {
			break
		}
		if defs, ok := c.Value(); ok {
			for _, def := range defs {
				consider(def)
			}
		}
	}

	for _, def := range m.overflowFirstByte[buf[pos]] {
		if matchesBase(def, buf, pos) {
			consider(def)
		}
	}

	return best, best != nil
}

func matchesBase(def *CommandDef, buf []byte, pos int) bool {
	if pos+len(def.Base) > len(buf) {
		return false
	}
	for i := range def.Base {
		mb := maskedbyte.MaskedByte{Base: def.Base[i], Mask: def.Mask[i]}
		if !mb.Match(buf[pos+i]) {
			return false
		}
	}
	return true
}

func (m *Matcher) better(candidate, current *CommandDef) bool {
	if candidate.PriorityLength != current.PriorityLength {
		return candidate.PriorityLength > current.PriorityLength
	}
	if len(candidate.Base) != len(current.Base) {
		return len(candidate.Base) > len(current.Base)
	}
	return m.order[candidate] < m.order[current]
}

// Extract instantiates a Command from def's matched bytes at
// buf[pos:], filling its element value map via the parameter
// extractor, and returns the number of bytes the read head should
// advance: len(def.Base) + data-block-size - def.RewindCount.
func Extract(def *CommandDef, buf []byte, pos int) (*Command, int, error) {
	if pos+len(def.Base) > len(buf) {
		return nil, 0, &TruncatedCommandError{Name: def.Name}
	}

	cmd := NewCommand(def)
	end := pos + len(def.Base)

	// extendEnd grows end to cover a parameter's own bytes when they
	// land past the command's current footprint (most commonly when a
	// scalar or length field trails the masked opcode bytes rather
	// than being packed inside them).
	extendEnd := func(p *param.Def) {
		if e := pos + p.Offset + (p.Shift+p.Bits+7)/8; e > end {
			end = e
		}
	}

	for _, el := range def.Elements {
		if !el.HasMultipleDataEntries() {
			if el.Param == nil {
				continue
			}
			value, text, err := el.Param.Read(buf[pos:], def.registry)
			if err != nil {
				return nil, 0, err
			}
			cmd.Values[el.Name] = [][]int64{{value}}
			if text != "" {
				cmd.Texts[el.Name] = [][]string{{text}}
			}
			extendEnd(el.Param)
			continue
		}

		n, _, err := el.Length.Read(buf[pos:], def.registry)
		if err != nil {
			return nil, 0, err
		}
		extendEnd(el.Length)
		stride := el.RowStride()
		rows := make([][]int64, 0, n)
		texts := make([][]string, 0, n)
		for r := int64(0); r < n; r++ {
			rowStart := end + int(r)*stride
			if rowStart+stride > len(buf) {
				return nil, 0, &TruncatedCommandError{Name: def.Name}
			}
			rowBuf := buf[rowStart:]
			values := make([]int64, len(el.DataParams))
			rowTexts := make([]string, len(el.DataParams))
			for i, p := range el.DataParams {
				v, t, err := p.Read(rowBuf, def.registry)
				if err != nil {
					return nil, 0, err
				}
				values[i] = v
				rowTexts[i] = t
			}
			rows = append(rows, values)
			texts = append(texts, rowTexts)
		}
		cmd.Values[el.Name] = rows
		cmd.Texts[el.Name] = texts
		end += int(n) * stride
	}

	advance := (end - pos) - def.RewindCount
	return cmd, advance, nil
}

// ShouldTerminate reports whether, after matching def's base at
// buf[matchPos:matchPos+len(def.Base)] and advancing the read head to
// afterPos, the disassembler should stop: Always always stops, Never
// never stops, and Default stops when either the matched base bytes
// are all zero (mirroring the classic dialogue-interpreter convention
// that opcode 0x00 terminates a script) or afterPos has reached
// scriptEnd.
func ShouldTerminate(def *CommandDef, buf []byte, matchPos, afterPos, scriptEnd int) bool {
	switch def.EndType {
	case EndAlways:
		return true
	case EndNever:
		return false
	default:
		if afterPos >= scriptEnd {
			return true
		}
		for i := 0; i < len(def.Base); i++ {
			if buf[matchPos+i] != 0 {
				return false
			}
		}
		return true
	}
}
