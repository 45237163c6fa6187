package command

import (
	"errors"
	"fmt"
)

// ErrEmptyBase is returned by Database.Add when a CommandDef's Base is
// empty.
var ErrEmptyBase = errors.New("command: base byte sequence must be non-empty")

// ErrBaseMaskLengthMismatch is returned by Database.Add when Base and
// Mask have different lengths.
var ErrBaseMaskLengthMismatch = errors.New("command: base and mask must have equal length")

// DuplicateCommandNameError is returned by Database.Add when a name
// collides case-insensitively with one already in the database.
type DuplicateCommandNameError struct {
	Name string
}

func (e *DuplicateCommandNameError) Error() string {
	return fmt.Sprintf("command: duplicate command name %q", e.Name)
}

// UnknownBaseCommandError is returned by Database.Add when a
// CommandDef's InheritsFrom names a command not present in the
// database.
type UnknownBaseCommandError struct {
	Name string
	Base string
}

func (e *UnknownBaseCommandError) Error() string {
	return fmt.Sprintf("command: %q inherits from unknown command %q", e.Name, e.Base)
}

// ChainedBaseCommandError is returned by Database.Add when a
// CommandDef's InheritsFrom names a command that itself inherits from
// another (inheritance is single-level only).
type ChainedBaseCommandError struct {
	Name string
	Base string
}

func (e *ChainedBaseCommandError) Error() string {
	return fmt.Sprintf("command: %q cannot inherit from %q, which itself inherits (single-level only)", e.Name, e.Base)
}

// UnknownCommandError is returned when a script references a command
// name not present in the active database (error kind
// "UnknownCommand").
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("command: unknown command %q", e.Name)
}

// TruncatedCommandError is returned by Extract when a matched
// command's declared elements run past the end of the buffer.
type TruncatedCommandError struct {
	Name string
}

func (e *TruncatedCommandError) Error() string {
	return fmt.Sprintf("command: %q extends past end of buffer", e.Name)
}
