package command

import (
	"strings"

	"github.com/Prof9/textpet-codec/param"
)

// Database is an ordered, case-insensitive-unique-by-name collection
// of CommandDefs, plus an owned ValueEncoding registry and an optional
// chain of fallback databases consulted in explicit preference order
// (first-match wins across databases).
type Database struct {
	Name string

	defs     []*CommandDef
	byName   map[string]*CommandDef
	registry *param.EncodingRegistry
	chain    []*Database
}

// NewDatabase returns an empty, named Database with the default
// ValueEncoding registry ("bool", "hex") pre-registered.
func NewDatabase(name string) *Database {
	return &Database{
		Name:     name,
		byName:   make(map[string]*CommandDef),
		registry: param.NewEncodingRegistry(),
	}
}

// Registry returns the ValueEncoding registry this database resolves
// ParameterDef.ValueEncodingName against.
func (db *Database) Registry() *param.EncodingRegistry {
	return db.registry
}

// RegisterValueEncoding adds or replaces a named ValueEncoding visible
// to every ParameterDef this database resolves.
func (db *Database) RegisterValueEncoding(name string, enc param.ValueEncoding) {
	db.registry.Register(name, enc)
}

// Defs returns every CommandDef added directly to this database, in
// insertion order. It does not include definitions from chained
// fallback databases.
func (db *Database) Defs() []*CommandDef {
	return db.defs
}

// Add appends def to the database. It fails with ErrEmptyBase or
// ErrBaseMaskLengthMismatch if def's byte pattern is malformed, with a
// *DuplicateCommandNameError if def.Name collides case-insensitively
// with an existing command, or with *UnknownBaseCommandError /
// *ChainedBaseCommandError if def.InheritsFrom cannot be resolved.
func (db *Database) Add(def *CommandDef) error {
	if len(def.Base) == 0 {
		return ErrEmptyBase
	}
	if len(def.Base) != len(def.Mask) {
		return ErrBaseMaskLengthMismatch
	}

	key := strings.ToLower(def.Name)
	if _, exists := db.byName[key]; exists {
		return &DuplicateCommandNameError{Name: def.Name}
	}

	resolved := def
	if def.InheritsFrom != "" {
		base, ok := db.byName[strings.ToLower(def.InheritsFrom)]
		if !ok {
			return &UnknownBaseCommandError{Name: def.Name, Base: def.InheritsFrom}
		}
		if base.InheritsFrom != "" {
			return &ChainedBaseCommandError{Name: def.Name, Base: def.InheritsFrom}
		}
		resolved = mergeInherited(base, def)
	}
	resolved.registry = db.registry

	db.defs = append(db.defs, resolved)
	db.byName[key] = resolved
	return nil
}

// mergeInherited deep-copies base's Elements and layers child's own
// elements on top: an element sharing a name with an inherited one
// replaces it in place, otherwise it is appended.
func mergeInherited(base, child *CommandDef) *CommandDef {
	merged := *child

	elements := deepCopyElements(base.Elements)
	for _, own := range child.Elements {
		replaced := false
		for i, inherited := range elements {
			if strings.EqualFold(inherited.Name, own.Name) {
				elements[i] = own
				replaced = true
				break
			}
		}
		if !replaced {
			elements = append(elements, own)
		}
	}
	merged.Elements = elements
	return &merged
}

// Chain returns a new Database that searches db first, then each of
// fallbacks in order, for Lookup. db itself is unmodified.
func (db *Database) Chain(fallbacks ...*Database) *Database {
	chained := *db
	chained.chain = append(append([]*Database(nil), db.chain...), fallbacks...)
	return &chained
}

// Lookup searches db, then its chained fallback databases in order,
// for a command named name (case-insensitive).
func (db *Database) Lookup(name string) (*CommandDef, bool) {
	if d, ok := db.byName[strings.ToLower(name)]; ok {
		return d, true
	}
	for _, next := range db.chain {
		if d, ok := next.Lookup(name); ok {
			return d, true
		}
	}
	return nil, false
}

// allDefs collects every CommandDef reachable from db and its chain,
// in preference order, without duplicating a database visited more
// than once through diamond chaining.
func allDefs(db *Database) []*CommandDef {
	seen := make(map[*Database]bool)
	var out []*CommandDef
	var walk func(*Database)
	walk = func(d *Database) {
		if d == nil || seen[d] {
			return
		}
		seen[d] = true
		out = append(out, d.defs...)
		for _, next := range d.chain {
			walk(next)
		}
	}
	walk(db)
	return out
}
