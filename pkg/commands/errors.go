package commands

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("command not found")
	ErrDuplicateCommand = errors.New("duplicate command")
	ErrInvalidName      = errors.New("invalid command name")
	ErrMissingArgument  = errors.New("missing argument")
	ErrNilSender        = errors.New("instruction command needs a sender")
	ErrNoRenderer       = errors.New("instruction command needs a template")
)

// MissingArgumentError is returned by Validate when a required argument is blank.
type MissingArgumentError struct {
	Command string
	// Usage is the user-facing hint, e.g. "Usage: /epic-create <description>".
	Usage string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("/%s: %s", e.Command, ErrMissingArgument)
}

func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}
