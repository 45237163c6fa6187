package trie

// LookupTrie is a rooted prefix tree keyed by sequences of E, carrying
// optional values of type V. The zero value is not usable; construct
// one with New.
type LookupTrie[E comparable, V any] struct {
	root *node[E, V]
	size int
}

// New returns an empty LookupTrie.
func New[E comparable, V any]() *LookupTrie[E, V] {
	return &LookupTrie[E, V]{root: &node[E, V]{}}
}

// Len reports how many (key, value) pairs have been added.
func (t *LookupTrie[E, V]) Len() int {
	return t.size
}

// Add inserts value at key, creating intermediate nodes as needed. Add
// fails with ErrEmptyKey if key is empty, or with a *DuplicateKeyError
// if key already carries a value; a node may still gain children after
// it has a value (the prefix-of-longer-key case), so Add never fails
// merely because key is a prefix or extension of an existing key.
func (t *LookupTrie[E, V]) Add(key []E, value V) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	n := t.root
	for _, e := range key {
		n = n.child(e, true)
	}
	if n.hasValue {
		return &DuplicateKeyError[E]{Key: append([]E(nil), key...)}
	}
	n.value = value
	n.hasValue = true
	t.size++
	return nil
}

// PathPoint is one value encountered while walking a trie, paired
// with how many input elements were consumed to reach it.
type PathPoint[V any] struct {
	Value  V
	Length int
}

// Match walks seq against the trie and returns every value
// encountered along the way, in ascending depth order. The walk stops
// at the first element of seq with no matching child, or at the end
// of seq.
func (t *LookupTrie[E, V]) Match(seq []E) []V {
	points := t.MatchPaths(seq)
	if len(points) == 0 {
		return nil
	}
	out := make([]V, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}

// MatchPaths is Match, but also reports the length of input consumed
// to reach each value — the branch points a shortest-output search
// needs to consider.
func (t *LookupTrie[E, V]) MatchPaths(seq []E) []PathPoint[V] {
	var out []PathPoint[V]
	c := t.BeginPath()
	for i, e := range seq {
		if !c.Step(e) {
			break
		}
		if v, ok := c.Value(); ok {
			out = append(out, PathPoint[V]{Value: v, Length: i + 1})
		}
	}
	return out
}

// TryMatchFirst returns the shallowest value found by Match, if any.
func (t *LookupTrie[E, V]) TryMatchFirst(seq []E) (V, bool) {
	points := t.MatchPaths(seq)
	if len(points) == 0 {
		var zero V
		return zero, false
	}
	return points[0].Value, true
}

// TryMatchLast returns the deepest value found by Match, if any.
func (t *LookupTrie[E, V]) TryMatchLast(seq []E) (V, bool) {
	points := t.MatchPaths(seq)
	if len(points) == 0 {
		var zero V
		return zero, false
	}
	return points[len(points)-1].Value, true
}

// Cursor is a restartable walk position. The zero Cursor is not
// usable; obtain one with BeginPath. Cursors are plain values: taking
// a copy ("cloning") produces an independent cursor, since the
// underlying trie is immutable from the cursor's point of view.
type Cursor[E comparable, V any] struct {
	node  *node[E, V]
	depth int
}

// BeginPath returns a Cursor positioned at the trie's root.
func (t *LookupTrie[E, V]) BeginPath() Cursor[E, V] {
	return Cursor[E, V]{node: t.root}
}

// Step advances the cursor by e. It returns true and moves the cursor
// iff a child exists for e; otherwise the cursor is left untouched.
func (c *Cursor[E, V]) Step(e E) bool {
	if c.node == nil {
		return false
	}
	next := c.node.child(e, false)
	if next == nil {
		return false
	}
	c.node = next
	c.depth++
	return true
}

// Value returns the value at the cursor's current node, if any.
func (c Cursor[E, V]) Value() (V, bool) {
	if c.node == nil {
		var zero V
		return zero, false
	}
	return c.node.value, c.node.hasValue
}

// Depth reports how many Step calls have successfully advanced this
// cursor since BeginPath.
func (c Cursor[E, V]) Depth() int {
	return c.depth
}

// AtLeaf reports whether the cursor's current node has no children,
// i.e. no Step call from here can ever succeed.
func (c Cursor[E, V]) AtLeaf() bool {
	return c.node == nil || len(c.node.children) == 0
}

// Valid reports whether the cursor was obtained from a trie (as
// opposed to being a zero Cursor).
func (c Cursor[E, V]) Valid() bool {
	return c.node != nil
}
