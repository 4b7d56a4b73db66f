package model

import (
	"fmt"
	"strings"
	"time"
)

// DueDateLayout is the canonical due date format used for input and
// display.
const DueDateLayout = "2006-01-02"

// dueDateLayouts are the accepted input formats, canonical first.
var dueDateLayouts = []string{DueDateLayout, "2/1/2006", "02/01/2006"}

// Assignment is a piece of work with a due date owned by one person.
// Two assignments are the same when description and due date match;
// the done state is not part of identity.
type Assignment struct {
	Description string
	DueDate     time.Time
	Done        bool
}

// NewAssignment validates the description and parses the due date.
func NewAssignment(description, dueDate string) (Assignment, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Assignment{}, fmt.Errorf("assignment description must not be empty: %w", ErrInvalid)
	}
	due, err := ParseDueDate(dueDate)
	if err != nil {
		return Assignment{}, err
	}
	return Assignment{Description: description, DueDate: due}, nil
}

// ParseDueDate parses a due date string, normalized to midnight UTC.
func ParseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("due date %q must be in YYYY-MM-DD format: %w", s, ErrInvalid)
}

// Same reports whether both assignments have the same description and
// due date, regardless of done state.
func (a Assignment) Same(other Assignment) bool {
	return a.Description == other.Description && a.DueDate.Equal(other.DueDate)
}

// Equal reports full equality, done state included.
func (a Assignment) Equal(other Assignment) bool {
	return a.Same(other) && a.Done == other.Done
}

func (a Assignment) String() string {
	status := " "
	if a.Done {
		status = "x"
	}
	return fmt.Sprintf("[%s] %s (due %s)", status, a.Description, a.DueDate.Format(DueDateLayout))
}
