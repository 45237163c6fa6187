package masktrie

import "github.com/Prof9/textpet-codec/maskedbyte"

// Trie is a masked-byte specialization of a lookup trie: keys are
// sequences of maskedbyte.MaskedByte, matched against concrete byte
// streams. See the package doc comment for the bypass-table rationale.
type Trie[V any] struct {
	root   *node[V]
	bypass [256]*node[V]
	size   int
}

// New returns an empty Trie.
func New[V any]() *Trie[V] {
	return &Trie[V]{root: &node[V]{}}
}

// Len reports how many (key, value) pairs have been added.
func (t *Trie[V]) Len() int {
	return t.size
}

// Add inserts value at key. It fails with ErrEmptyKey if key is empty,
// with a *DuplicateKeyError if key already carries a value, or with an
// *AmbiguousMaskError if key is common-bits-equal to an existing,
// distinct sibling at some depth.
func (t *Trie[V]) Add(key []maskedbyte.MaskedByte, value V) error {
	n, err := t.descend(key)
	if err != nil {
		return err
	}
	if n.hasValue {
		return &DuplicateKeyError{Key: append([]maskedbyte.MaskedByte(nil), key...)}
	}
	n.value = value
	n.hasValue = true
	t.size++
	return nil
}

// Merge behaves like Add, except that if key already carries a value
// it combines the existing and incoming values via merge instead of
// failing with *DuplicateKeyError. This lets a caller accumulate a set
// of candidates under one exact pattern (e.g. several commands that
// happen to share an identical base/mask) rather than treating a
// repeat insertion as an error. *AmbiguousMaskError is still returned
// for a common-bits-equal, unequal sibling: Merge cannot resolve that
// case, only an exact-key repeat.
func (t *Trie[V]) Merge(key []maskedbyte.MaskedByte, value V, merge func(existing, incoming V) V) error {
	n, err := t.descend(key)
	if err != nil {
		return err
	}
	if n.hasValue {
		n.value = merge(n.value, value)
		return nil
	}
	n.value = value
	n.hasValue = true
	t.size++
	return nil
}

// descend walks key from the root, creating nodes as needed, and
// returns the node key terminates at.
func (t *Trie[V]) descend(key []maskedbyte.MaskedByte) (*node[V], error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	n := t.root
	for depth, mb := range key {
		child, err := n.findOrCreateChild(mb, depth)
		if err != nil {
			return nil, err
		}
		if depth == 0 {
			t.registerBypass(child)
		}
		n = child
	}
	return n, nil
}

// registerBypass fills every bypass slot admitted by child's key, but
// never overwrites a slot already claimed by an earlier insertion
// (first writer wins). Re-registering the same node (the common case
// when several commands share a literal first byte) is idempotent:
// every slot it would claim is already its own.
func (t *Trie[V]) registerBypass(child *node[V]) {
	mb := child.key
	for x := 0; x < 256; x++ {
		b := byte(x)
		if !mb.Match(b) {
			continue
		}
		if t.bypass[x] == nil {
			t.bypass[x] = child
		}
	}
}

// BypassNode returns the value held by the depth-1 node the bypass
// table maps the given first byte to, and whether that node holds a
// value; it returns false if no key admits the byte. Exposed primarily for
// testing the bypass-table invariant (§8, "Masked-byte bypass
// correctness").
func (t *Trie[V]) BypassNode(first byte) (V, bool) {
	n := t.bypass[first]
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, n.hasValue
}

// PathPoint is one value encountered while walking a Trie, paired with
// how many input bytes were consumed to reach it.
type PathPoint[V any] struct {
	Value  V
	Length int
}

// MatchPaths walks buf starting at the trie root and returns every
// value encountered along the way (in ascending depth order), using
// the bypass table for the first byte and a linear scan thereafter.
func (t *Trie[V]) MatchPaths(buf []byte) []PathPoint[V] {
	var out []PathPoint[V]
	c := t.BeginPath()
	for i, b := range buf {
		if !c.Step(b) {
			break
		}
		if v, ok := c.Value(); ok {
			out = append(out, PathPoint[V]{Value: v, Length: i + 1})
		}
	}
	return out
}

// Cursor is a restartable walk position.
type Cursor[V any] struct {
	trie  *Trie[V]
	node  *node[V]
	depth int
}

// BeginPath returns a Cursor positioned at the trie's root.
func (t *Trie[V]) BeginPath() Cursor[V] {
	return Cursor[V]{trie: t, node: t.root}
}

// Step advances the cursor by byte b. At depth 0 (the first Step call
// since BeginPath) it consults the bypass table in O(1); at any
// greater depth it scans the current node's children linearly. It
// returns true and moves the cursor iff an admitting child was found.
func (c *Cursor[V]) Step(b byte) bool {
	if c.node == nil {
		return false
	}
	var next *node[V]
	if c.depth == 0 {
		next = c.trie.bypass[b]
	} else {
		next = c.node.step(b)
	}
	if next == nil {
		return false
	}
	c.node = next
	c.depth++
	return true
}

// Value returns the value at the cursor's current node, if any.
func (c Cursor[V]) Value() (V, bool) {
	if c.node == nil {
		var zero V
		return zero, false
	}
	return c.node.value, c.node.hasValue
}

// Depth reports how many Step calls have successfully advanced this
// cursor since BeginPath.
func (c Cursor[V]) Depth() int {
	return c.depth
}

// AtLeaf reports whether the cursor's current node has no children.
func (c Cursor[V]) AtLeaf() bool {
	return c.node == nil || len(c.node.children) == 0
}
