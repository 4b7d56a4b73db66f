package model

import (
	"fmt"
	"sort"
	"time"
)

// UniqueAssignmentList is an ordered collection of assignments in which
// no two entries share a description and due date. The uniqueness check
// is a linear scan; per-person assignment counts stay small.
type UniqueAssignmentList struct {
	items []Assignment
}

// Add appends an assignment, rejecting duplicates.
func (l *UniqueAssignmentList) Add(a Assignment) error {
	if l.Contains(a) {
		return fmt.Errorf("%s: %w", a.Description, ErrDuplicateAssignment)
	}
	l.items = append(l.items, a)
	return nil
}

// Remove deletes the assignment matching a's description and due date.
func (l *UniqueAssignmentList) Remove(a Assignment) error {
	i := l.indexOf(a)
	if i < 0 {
		return fmt.Errorf("%s: %w", a.Description, ErrAssignmentNotFound)
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// Mark sets the done state of the matching assignment.
func (l *UniqueAssignmentList) Mark(a Assignment) error {
	i := l.indexOf(a)
	if i < 0 {
		return fmt.Errorf("%s: %w", a.Description, ErrAssignmentNotFound)
	}
	l.items[i].Done = true
	return nil
}

// Contains reports whether an assignment with the same description and
// due date exists.
func (l *UniqueAssignmentList) Contains(a Assignment) bool {
	return l.indexOf(a) >= 0
}

// Sort orders assignments by due date ascending, then description.
// The sort is stable, so entries equal on both keys keep their
// insertion order.
func (l *UniqueAssignmentList) Sort() {
	sort.SliceStable(l.items, func(i, j int) bool {
		if !l.items[i].DueDate.Equal(l.items[j].DueDate) {
			return l.items[i].DueDate.Before(l.items[j].DueDate)
		}
		return l.items[i].Description < l.items[j].Description
	})
}

// AsList returns a snapshot copy of the assignments. Mutating the
// returned slice does not affect the list.
func (l *UniqueAssignmentList) AsList() []Assignment {
	out := make([]Assignment, len(l.items))
	copy(out, l.items)
	return out
}

func (l *UniqueAssignmentList) Len() int { return len(l.items) }

// Equal compares both lists element-wise, order and done state
// included.
func (l *UniqueAssignmentList) Equal(other *UniqueAssignmentList) bool {
	if len(l.items) != len(other.items) {
		return false
	}
	for i := range l.items {
		if !l.items[i].Equal(other.items[i]) {
			return false
		}
	}
	return true
}

// clean removes assignments due strictly before the cutoff and returns
// how many were swept.
func (l *UniqueAssignmentList) clean(cutoff time.Time) int {
	kept := l.items[:0]
	removed := 0
	for _, a := range l.items {
		if a.DueDate.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	l.items = kept
	return removed
}

func (l *UniqueAssignmentList) indexOf(a Assignment) int {
	for i, item := range l.items {
		if item.Same(a) {
			return i
		}
	}
	return -1
}

func (l *UniqueAssignmentList) copy() UniqueAssignmentList {
	return UniqueAssignmentList{items: l.AsList()}
}
