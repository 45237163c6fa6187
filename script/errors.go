package script

import (
	"errors"
	"fmt"
)

// ErrUnknownCommand is wrapped by UnknownCommandError.
var ErrUnknownCommand = errors.New("script: unknown command")

// UnknownCommandError reports a script referencing a command name not
// present in the active database.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownCommand, e.Name)
}

func (e *UnknownCommandError) Unwrap() error {
	return ErrUnknownCommand
}
