package commands

import (
	"time"

	"tabuddy/pkg/model"
)

// Request is one of a closed set of command variants consumed by
// Dispatch. Command parsing (CLI flags, TUI forms) produces requests;
// the model layer never sees them.
type Request interface {
	isRequest()
}

// AddPerson adds a new contact to the roster.
type AddPerson struct {
	Person model.Person
}

// DeletePerson removes the named contact.
type DeletePerson struct {
	Name model.Name
}

// EditPerson replaces the named contact with an edited version.
type EditPerson struct {
	Name   model.Name
	Edited model.Person
}

// AddAssignment adds an assignment to the named person.
type AddAssignment struct {
	Name       model.Name
	Assignment model.Assignment
}

// AddAssignmentToAll adds an assignment to every person currently in
// the filtered view, skipping those who already have it.
type AddAssignmentToAll struct {
	Assignment model.Assignment
}

// DeleteAssignment removes an assignment from the named person.
type DeleteAssignment struct {
	Name       model.Name
	Assignment model.Assignment
}

// MarkAssignment marks the named person's assignment as done.
type MarkAssignment struct {
	Name       model.Name
	Assignment model.Assignment
}

// CleanAssignments sweeps assignments due strictly before Cutoff from
// every person.
type CleanAssignments struct {
	Cutoff time.Time
}

// SelectPerson makes the named person active so their assignments are
// displayed. Does not commit: it changes only view state.
type SelectPerson struct {
	Name model.Name
}

// FindPersons filters the person view by name keywords.
type FindPersons struct {
	Keywords []string
}

// ListPersons resets the person view to show everyone.
type ListPersons struct{}

// Undo restores the state before the last committed command.
type Undo struct{}

// Redo restores the state undone by the last Undo.
type Redo struct{}

func (AddPerson) isRequest()          {}
func (DeletePerson) isRequest()       {}
func (EditPerson) isRequest()         {}
func (AddAssignment) isRequest()      {}
func (AddAssignmentToAll) isRequest() {}
func (DeleteAssignment) isRequest()   {}
func (MarkAssignment) isRequest()     {}
func (CleanAssignments) isRequest()   {}
func (SelectPerson) isRequest()       {}
func (FindPersons) isRequest()        {}
func (ListPersons) isRequest()        {}
func (Undo) isRequest()               {}
func (Redo) isRequest()               {}
