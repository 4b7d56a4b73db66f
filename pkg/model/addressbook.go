package model

import (
	"fmt"
	"time"
)

// AddressBook is the aggregate root over the person roster. It also
// tracks the active person, whose assignments are projected into a
// separate list for display.
//
// Invariant: the active person, when set, always names a person present
// in the roster; removing that person clears the projection instead of
// leaving it stale.
type AddressBook struct {
	persons []Person
	active  *Name
	view    []Assignment
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{}
}

// AddPerson appends a person, rejecting one whose name is already
// taken.
func (ab *AddressBook) AddPerson(p Person) error {
	if ab.HasPerson(p) {
		return fmt.Errorf("%s: %w", p.Name(), ErrDuplicatePerson)
	}
	ab.persons = append(ab.persons, p.copy())
	return nil
}

// RemovePerson deletes the person with the same name. If that person
// was active, the assignment projection is cleared.
func (ab *AddressBook) RemovePerson(p Person) error {
	i := ab.indexOf(p.Name())
	if i < 0 {
		return fmt.Errorf("%s: %w", p.Name(), ErrPersonNotFound)
	}
	ab.persons = append(ab.persons[:i], ab.persons[i+1:]...)
	if ab.active != nil && *ab.active == p.Name() {
		ab.ClearActivePerson()
	}
	return nil
}

// SetPerson replaces target with edited, keeping its roster position.
// Fails when target is absent or edited collides with a different
// existing person.
func (ab *AddressBook) SetPerson(target, edited Person) error {
	i := ab.indexOf(target.Name())
	if i < 0 {
		return fmt.Errorf("%s: %w", target.Name(), ErrPersonNotFound)
	}
	if !target.SameAs(edited) && ab.HasPerson(edited) {
		return fmt.Errorf("%s: %w", edited.Name(), ErrDuplicatePerson)
	}
	ab.persons[i] = edited.copy()
	if ab.active != nil && *ab.active == target.Name() {
		name := edited.Name()
		ab.active = &name
		ab.view = ab.persons[i].Assignments()
	}
	return nil
}

// HasPerson reports whether a person with the same name exists.
func (ab *AddressBook) HasPerson(p Person) bool {
	return ab.indexOf(p.Name()) >= 0
}

// HasEmail reports whether any person in the roster already uses p's
// email address.
func (ab *AddressBook) HasEmail(p Person) bool {
	for i := range ab.persons {
		if ab.persons[i].SameEmail(p) {
			return true
		}
	}
	return false
}

// FindPerson looks up a person by name.
func (ab *AddressBook) FindPerson(name Name) (Person, bool) {
	i := ab.indexOf(name)
	if i < 0 {
		return Person{}, false
	}
	return ab.persons[i].copy(), true
}

// AddAssignment adds an assignment to the named person's list.
func (ab *AddressBook) AddAssignment(p Person, a Assignment) error {
	i := ab.indexOf(p.Name())
	if i < 0 {
		return fmt.Errorf("%s: %w", p.Name(), ErrPersonNotFound)
	}
	return ab.persons[i].assignments.Add(a)
}

// RemoveAssignment removes an assignment from the named person's list.
func (ab *AddressBook) RemoveAssignment(p Person, a Assignment) error {
	i := ab.indexOf(p.Name())
	if i < 0 {
		return fmt.Errorf("%s: %w", p.Name(), ErrPersonNotFound)
	}
	return ab.persons[i].assignments.Remove(a)
}

// MarkAssignment marks an assignment on the named person's list as
// done.
func (ab *AddressBook) MarkAssignment(p Person, a Assignment) error {
	i := ab.indexOf(p.Name())
	if i < 0 {
		return fmt.Errorf("%s: %w", p.Name(), ErrPersonNotFound)
	}
	return ab.persons[i].assignments.Mark(a)
}

// HasAssignment reports whether the named person already has an equal
// assignment.
func (ab *AddressBook) HasAssignment(p Person, a Assignment) (bool, error) {
	i := ab.indexOf(p.Name())
	if i < 0 {
		return false, fmt.Errorf("%s: %w", p.Name(), ErrPersonNotFound)
	}
	return ab.persons[i].assignments.Contains(a), nil
}

// ChangeActivePerson selects the person whose assignments are shown.
// It fails with ErrPersonNotFound for a person absent from the roster.
func (ab *AddressBook) ChangeActivePerson(p Person) error {
	if ab.indexOf(p.Name()) < 0 {
		return fmt.Errorf("%s: %w", p.Name(), ErrPersonNotFound)
	}
	name := p.Name()
	ab.active = &name
	return nil
}

// ClearActivePerson unsets the active person and empties the
// projection.
func (ab *AddressBook) ClearActivePerson() {
	ab.active = nil
	ab.view = nil
}

// UpdateAssignmentList recomputes the assignment projection from the
// named person's current, sorted assignments.
func (ab *AddressBook) UpdateAssignmentList(p Person) error {
	i := ab.indexOf(p.Name())
	if i < 0 {
		return fmt.Errorf("%s: %w", p.Name(), ErrPersonNotFound)
	}
	ab.view = ab.persons[i].Assignments()
	return nil
}

// ActivePerson returns the active person, if one is set.
func (ab *AddressBook) ActivePerson() (Person, bool) {
	if ab.active == nil {
		return Person{}, false
	}
	return ab.FindPerson(*ab.active)
}

// HasActivePerson reports whether an active person is set.
func (ab *AddressBook) HasActivePerson() bool { return ab.active != nil }

// IsActivePerson reports whether p is the active person.
func (ab *AddressBook) IsActivePerson(p Person) bool {
	return ab.active != nil && *ab.active == p.Name()
}

// Persons returns a copy of the roster in insertion order.
func (ab *AddressBook) Persons() []Person {
	out := make([]Person, len(ab.persons))
	for i := range ab.persons {
		out[i] = ab.persons[i].copy()
	}
	return out
}

// AssignmentList returns a copy of the active-person assignment
// projection.
func (ab *AddressBook) AssignmentList() []Assignment {
	out := make([]Assignment, len(ab.view))
	copy(out, ab.view)
	return out
}

// PersonAssignments returns a sorted copy of one person's assignments
// without touching the active person.
func (ab *AddressBook) PersonAssignments(p Person) ([]Assignment, error) {
	i := ab.indexOf(p.Name())
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", p.Name(), ErrPersonNotFound)
	}
	return ab.persons[i].Assignments(), nil
}

// CleanAssignments removes assignments due strictly before the cutoff
// from every person and returns how many were swept. The projection is
// refreshed when the active person was affected.
func (ab *AddressBook) CleanAssignments(cutoff time.Time) int {
	removed := 0
	for i := range ab.persons {
		removed += ab.persons[i].assignments.clean(cutoff)
	}
	if ab.active != nil {
		if i := ab.indexOf(*ab.active); i >= 0 {
			ab.view = ab.persons[i].Assignments()
		}
	}
	return removed
}

// ResetData replaces this book's content with a deep copy of other's.
func (ab *AddressBook) ResetData(other *AddressBook) {
	ab.persons = other.Persons()
	ab.active = nil
	if other.active != nil {
		name := *other.active
		ab.active = &name
	}
	ab.view = other.AssignmentList()
}

// Copy deep-copies the address book.
func (ab *AddressBook) Copy() *AddressBook {
	out := NewAddressBook()
	out.ResetData(ab)
	return out
}

// Equal compares rosters element-wise along with the active person.
func (ab *AddressBook) Equal(other *AddressBook) bool {
	if len(ab.persons) != len(other.persons) {
		return false
	}
	for i := range ab.persons {
		if !ab.persons[i].Equal(other.persons[i]) {
			return false
		}
	}
	if (ab.active == nil) != (other.active == nil) {
		return false
	}
	return ab.active == nil || *ab.active == *other.active
}

func (ab *AddressBook) indexOf(name Name) int {
	for i := range ab.persons {
		if ab.persons[i].name == name {
			return i
		}
	}
	return -1
}
