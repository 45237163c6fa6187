package command

import "testing"

// Masked command priority: A base F0 mask F0 priority_length 1; B
// base F3 mask FF priority_length 2. Buffer "F3 00". Matcher selects
// B and Extract advances 1 byte.
func TestMatcher_PrioritySelectsOverlappingCandidate(t *testing.T) {
	db := NewDatabase("test")
	a := simpleDef("A", 0xf0, 0xf0)
	a.PriorityLength = 1
	mustAdd(t, db, a)

	b := simpleDef("B", 0xf3, 0xff)
	b.PriorityLength = 2
	mustAdd(t, db, b)

	m := NewMatcher(db)
	buf := []byte{0xf3, 0x00}

	def, ok := m.Match(buf, 0)
	if !ok {
		t.Fatalf("expected a match")
	}
	if def.Name != "B" {
		t.Fatalf("expected B to win on priority_length, got %s", def.Name)
	}

	_, advance, err := Extract(def, buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if advance != 1 {
		t.Fatalf("expected advance 1, got %d", advance)
	}
}

func TestMatcher_TieBreaksOnLongestBase(t *testing.T) {
	db := NewDatabase("test")
	short := simpleDef("Short", 0x10, 0xff)
	short.PriorityLength = 1
	mustAdd(t, db, short)

	long := &CommandDef{Name: "Long", Base: []byte{0x10, 0x00}, Mask: []byte{0xff, 0xff}, PriorityLength: 1}
	mustAdd(t, db, long)

	m := NewMatcher(db)
	buf := []byte{0x10, 0x00, 0xff}

	def, ok := m.Match(buf, 0)
	if !ok || def.Name != "Long" {
		t.Fatalf("expected Long to win on base length, got %v, %v", def, ok)
	}
}

func TestMatcher_TieBreaksOnInsertionOrder(t *testing.T) {
	db := NewDatabase("test")
	mustAdd(t, db, simpleDef("First", 0x10, 0xf0))
	mustAdd(t, db, simpleDef("Second", 0x10, 0xf0))

	m := NewMatcher(db)
	def, ok := m.Match([]byte{0x10}, 0)
	if !ok || def.Name != "First" {
		t.Fatalf("expected First to win insertion-order tie, got %v, %v", def, ok)
	}
}

// Rewind-enabled overlap: command X base AA length 1 rewind 0; command
// Y base AA BB length 2 rewind 1. Buffer "AA BB CC". If the matcher
// prefers the longer Y, it advances to position 1; the next match at
// "BB CC" then proceeds normally.
func TestMatcher_RewindEnabledOverlap(t *testing.T) {
	db := NewDatabase("test")
	x := simpleDef("X", 0xaa, 0xff)
	x.RewindCount = 0
	mustAdd(t, db, x)

	y := &CommandDef{Name: "Y", Base: []byte{0xaa, 0xbb}, Mask: []byte{0xff, 0xff}, RewindCount: 1}
	mustAdd(t, db, y)

	m := NewMatcher(db)
	buf := []byte{0xaa, 0xbb, 0xcc}

	def, ok := m.Match(buf, 0)
	if !ok || def.Name != "Y" {
		t.Fatalf("expected Y to win on base length, got %v, %v", def, ok)
	}

	_, advance, err := Extract(def, buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if advance != 1 {
		t.Fatalf("expected advance 1 (2 matched - 1 rewind), got %d", advance)
	}
}

func TestMatcher_NoCandidateAdmitsFirstByte(t *testing.T) {
	db := NewDatabase("test")
	mustAdd(t, db, simpleDef("X", 0x01, 0xff))
	m := NewMatcher(db)
	if _, ok := m.Match([]byte{0x99}, 0); ok {
		t.Fatalf("did not expect a match")
	}
}

func TestShouldTerminate_DefaultOnZeroBase(t *testing.T) {
	def := simpleDef("Terminator", 0x00, 0xff)
	buf := []byte{0x00, 0x01}
	if !ShouldTerminate(def, buf, 0, 1, len(buf)) {
		t.Fatalf("expected termination on all-zero base")
	}
}

func TestShouldTerminate_DefaultContinuesOnNonZeroBase(t *testing.T) {
	def := simpleDef("Print", 0x02, 0xff)
	buf := []byte{0x02, 0x01}
	if ShouldTerminate(def, buf, 0, 1, len(buf)) {
		t.Fatalf("did not expect termination on non-zero base before script end")
	}
}

func TestShouldTerminate_AlwaysAndNever(t *testing.T) {
	always := simpleDef("End", 0x7f, 0xff)
	always.EndType = EndAlways
	never := simpleDef("Loop", 0x00, 0xff)
	never.EndType = EndNever

	buf := []byte{0x00}
	if !ShouldTerminate(always, buf, 0, 1, len(buf)) {
		t.Fatalf("expected Always to terminate")
	}
	if ShouldTerminate(never, buf, 0, 1, len(buf)) {
		t.Fatalf("expected Never to never terminate, even at script end with zero base")
	}
}
