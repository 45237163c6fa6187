package command

import "github.com/Prof9/textpet-codec/param"

// EndType classifies how a command affects script termination.
type EndType int

const (
	// EndDefault terminates the script when the matched base bytes are
	// all zero (mirroring the classic handheld dialogue interpreter
	// convention that opcode 0x00 ends a script) or the read head has
	// reached the script's allotted end.
	EndDefault EndType = iota
	// EndAlways always terminates the script after this command.
	EndAlways
	// EndNever never terminates the script, even at opcode 0x00 or the
	// script's allotted end.
	EndNever
)

func (e EndType) String() string {
	switch e {
	case EndAlways:
		return "Always"
	case EndNever:
		return "Never"
	default:
		return "Default"
	}
}

// CommandDef describes one recognizable command: its masked byte
// pattern and the bit-packed elements filled in when it matches.
//
// InheritsFrom, if set, names another CommandDef already added to the
// same Database. Adding this def deep-copies the base's Elements and
// prepends them, with any of this def's own elements sharing a name
// overriding the inherited one in place rather than duplicating.
// Inheritance is single-level: the named base must not itself set
// InheritsFrom.
type CommandDef struct {
	Name        string
	Description string

	Base []byte
	Mask []byte

	EndType           EndType
	Prints            bool
	MugshotParamName  string
	PriorityLength    int
	RewindCount       int
	Elements          []*CommandElementDef
	InheritsFrom      string

	registry *param.EncodingRegistry
}
