package byteset

// Masked returns a Matcher that matches any byte x for which
// x&mask == base&mask. A mask of 0xff matches only the literal byte
// base&mask; a mask of 0x00 matches every byte.
//
// • Match performance: fast
//
// • ForEach performance: slow
//
// • Usefulness: situational
//
// command.NewMatcher uses ForEach over a Masked set to turn an opcode's
// first-byte pattern into the concrete list of bytes it admits, when
// building its overflow dispatch table for opcodes that can't share a
// masktrie.Trie node.
//
func Masked(base, mask byte) Matcher {
	return &mMasked{Base: base & mask, Mask: mask}
}

type mMasked struct {
	Base byte
	Mask byte
}

var _ Matcher = (*mMasked)(nil)

func (m *mMasked) Match(b byte) bool {
	return (b & m.Mask) == m.Base
}

func (m *mMasked) ForEach(f func(b byte)) {
	genericForEach(m, f)
}

func (m *mMasked) Optimize() Matcher {
	if m.Mask == 0xff {
		return Exactly(m.Base)
	}
	if m.Mask == 0x00 {
		return All()
	}
	return asDense(m).Optimize()
}

func (m *mMasked) String() string {
	return genericString(m)
}

func (m *mMasked) asDense() Matcher {
	mm := &mDense{}
	for i := uint(0); i < 256; i++ {
		b := byte(i)
		if m.Match(b) {
			index, mask := denseIM(b)
			mm.Set[index] |= mask
		}
	}
	return mm
}
