package masktrie

import "github.com/Prof9/textpet-codec/maskedbyte"

type node[V any] struct {
	key      maskedbyte.MaskedByte // predicate that reaches this node from its parent; zero at the root
	value    V
	hasValue bool
	children []*node[V]
}

// findOrCreateChild scans n's children linearly. If an existing child
// shares the same predicate, it is returned for reuse (this is how
// multiple commands sharing a literal prefix coexist). If an existing
// child is CommonBitsEqual but not Equal to mb, the two are ambiguous
// and insertion must fail. Otherwise a new child is appended.
func (n *node[V]) findOrCreateChild(mb maskedbyte.MaskedByte, depth int) (*node[V], error) {
	for _, c := range n.children {
		if c.key.Equal(mb) {
			return c, nil
		}
		if c.key.CommonBitsEqual(mb) {
			return nil, &AmbiguousMaskError{New: mb, Existing: c.key, Depth: depth}
		}
	}
	c := &node[V]{key: mb}
	n.children = append(n.children, c)
	return c, nil
}

// step finds the first child (in insertion order) whose predicate
// admits b. Used for depth >= 2, where there is no bypass table.
func (n *node[V]) step(b byte) *node[V] {
	for _, c := range n.children {
		if c.key.Match(b) {
			return c
		}
	}
	return nil
}
