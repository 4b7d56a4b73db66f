package model

import "errors"

// Sentinel errors raised by the model layer. Callers match them with
// errors.Is; wrapped messages carry the offending value.
var (
	// ErrInvalid marks a value that failed validation at construction.
	ErrInvalid = errors.New("invalid value")

	ErrDuplicatePerson = errors.New("person already exists in the address book")
	ErrDuplicateEmail  = errors.New("email is already used by another person")
	ErrPersonNotFound  = errors.New("person not found in the address book")

	ErrDuplicateAssignment = errors.New("assignment already exists in the assignment list")
	ErrAssignmentNotFound  = errors.New("assignment not found in the assignment list")

	ErrNoUndoableState = errors.New("no undoable state")
	ErrNoRedoableState = errors.New("no redoable state")
)

// CommandError is a user-facing command failure. The manager wraps
// undo/redo boundary errors in it so the command layer can show the
// message directly instead of a raw history error.
type CommandError struct {
	Message string
	Err     error
}

func (e *CommandError) Error() string { return e.Message }

func (e *CommandError) Unwrap() error { return e.Err }
