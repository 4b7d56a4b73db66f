package model

import (
	"strings"
	"time"

	"tabuddy/pkg/utils"
)

// PersonPredicate selects persons for the filtered person view.
type PersonPredicate func(Person) bool

// ShowAllPersons matches every person.
func ShowAllPersons(Person) bool { return true }

// NameContainsKeywords matches persons whose name contains any of the
// keywords, case-insensitively.
func NameContainsKeywords(keywords []string) PersonPredicate {
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}
	return func(p Person) bool {
		name := strings.ToLower(p.Name().String())
		for _, kw := range lowered {
			if kw != "" && strings.Contains(name, kw) {
				return true
			}
		}
		return false
	}
}

// InModule matches persons belonging to the given module.
func InModule(m Module) PersonPredicate {
	return func(p Person) bool { return p.HasModule(m) }
}

// Manager is the single mutation entry point over the versioned address
// book. It exposes pull-based filtered views: the active predicate is
// re-applied eagerly after every mutation, never lazily on read.
//
// Manager does not commit on its own. Committing is the command layer's
// job after a mutation succeeds, so failed mutations never pollute the
// undo history.
type Manager struct {
	book     *VersionedAddressBook
	pred     PersonPredicate
	filtered []Person
	logger   *utils.Logger
}

// NewManager wraps the initial address book state.
func NewManager(initial *AddressBook, logger *utils.Logger) *Manager {
	m := &Manager{
		book:   NewVersionedAddressBook(initial),
		pred:   ShowAllPersons,
		logger: logger,
	}
	m.refreshPersons()
	return m
}

// AddPerson adds a person and resets the person view to show everyone.
func (m *Manager) AddPerson(p Person) error {
	if err := m.book.AddPerson(p); err != nil {
		return err
	}
	m.logger.Logf("Added person: %s", p.Name())
	m.UpdateFilteredPersonList(ShowAllPersons)
	return nil
}

// DeletePerson removes a person. The address book clears the
// assignment projection itself when the active person is removed.
func (m *Manager) DeletePerson(p Person) error {
	if err := m.book.RemovePerson(p); err != nil {
		return err
	}
	m.logger.Logf("Deleted person: %s", p.Name())
	m.refreshPersons()
	return nil
}

// SetPerson replaces target with edited.
func (m *Manager) SetPerson(target, edited Person) error {
	if err := m.book.SetPerson(target, edited); err != nil {
		return err
	}
	m.logger.Logf("Edited person: %s -> %s", target.Name(), edited.Name())
	m.refreshPersons()
	return nil
}

// HasPerson reports whether a same-named person exists.
func (m *Manager) HasPerson(p Person) bool { return m.book.HasPerson(p) }

// HasEmail reports whether p's email is already used in the roster.
func (m *Manager) HasEmail(p Person) bool { return m.book.HasEmail(p) }

// FindPerson looks up a person by name.
func (m *Manager) FindPerson(name Name) (Person, bool) { return m.book.FindPerson(name) }

// HasAssignment reports whether the person already has an equal
// assignment.
func (m *Manager) HasAssignment(p Person, a Assignment) (bool, error) {
	return m.book.HasAssignment(p, a)
}

// AddAssignment adds an assignment to the person and shows that
// person's assignment list.
func (m *Manager) AddAssignment(p Person, a Assignment) error {
	if err := m.book.AddAssignment(p, a); err != nil {
		return err
	}
	m.logger.Logf("Added assignment %q to %s", a.Description, p.Name())
	return m.SetActiveAssignmentList(p)
}

// AddAllAssignments adds the assignment to every listed person,
// skipping those who already have it.
func (m *Manager) AddAllAssignments(persons []Person, a Assignment) error {
	for _, p := range persons {
		has, err := m.book.HasAssignment(p, a)
		if err != nil {
			return err
		}
		if has {
			continue
		}
		if err := m.book.AddAssignment(p, a); err != nil {
			return err
		}
	}
	if active, ok := m.book.ActivePerson(); ok {
		return m.SetActiveAssignmentList(active)
	}
	return nil
}

// DeleteAssignment removes an assignment from the person.
func (m *Manager) DeleteAssignment(p Person, a Assignment) error {
	if err := m.book.RemoveAssignment(p, a); err != nil {
		return err
	}
	m.logger.Logf("Deleted assignment %q from %s", a.Description, p.Name())
	return m.SetActiveAssignmentList(p)
}

// MarkAssignment marks the person's assignment as done.
func (m *Manager) MarkAssignment(p Person, a Assignment) error {
	if err := m.book.MarkAssignment(p, a); err != nil {
		return err
	}
	m.logger.Logf("Marked assignment %q for %s", a.Description, p.Name())
	return m.SetActiveAssignmentList(p)
}

// CleanAssignments sweeps assignments due strictly before the cutoff
// from every person and returns how many were removed.
func (m *Manager) CleanAssignments(cutoff time.Time) int {
	removed := m.book.CleanAssignments(cutoff)
	m.logger.Logf("Cleaned %d assignments due before %s", removed, cutoff.Format(DueDateLayout))
	return removed
}

// SetActiveAssignmentList makes p the active person and recomputes the
// assignment projection from p's current assignments.
func (m *Manager) SetActiveAssignmentList(p Person) error {
	if err := m.book.ChangeActivePerson(p); err != nil {
		return err
	}
	return m.book.UpdateAssignmentList(p)
}

// ActivePerson returns the active person, if one is set.
func (m *Manager) ActivePerson() (Person, bool) { return m.book.ActivePerson() }

// HasActivePerson reports whether an active person is set.
func (m *Manager) HasActivePerson() bool { return m.book.HasActivePerson() }

// UpdateFilteredPersonList replaces the active predicate and recomputes
// the person view immediately.
func (m *Manager) UpdateFilteredPersonList(pred PersonPredicate) {
	if pred == nil {
		pred = ShowAllPersons
	}
	m.pred = pred
	m.refreshPersons()
}

// FilteredPersons returns a copy of the current person view.
func (m *Manager) FilteredPersons() []Person {
	out := make([]Person, len(m.filtered))
	copy(out, m.filtered)
	return out
}

// FilteredAssignments returns a copy of the active-person assignment
// view.
func (m *Manager) FilteredAssignments() []Assignment {
	return m.book.AssignmentList()
}

// PersonAssignments returns a sorted copy of one person's assignments
// without changing the active person.
func (m *Manager) PersonAssignments(p Person) ([]Assignment, error) {
	return m.book.PersonAssignments(p)
}

// Commit snapshots the current state for undo. Invoked by the command
// layer after a mutation succeeds.
func (m *Manager) Commit() {
	m.book.Commit()
}

// Undo restores the previous committed state, re-applying the current
// filter predicate to the restored roster.
func (m *Manager) Undo() error {
	if err := m.book.Undo(); err != nil {
		return &CommandError{Message: "No more commands to undo!", Err: err}
	}
	m.logger.Logf("Undid last command")
	m.refreshPersons()
	return nil
}

// Redo restores the next committed state.
func (m *Manager) Redo() error {
	if err := m.book.Redo(); err != nil {
		return &CommandError{Message: "No more commands to redo!", Err: err}
	}
	m.logger.Logf("Redid last undone command")
	m.refreshPersons()
	return nil
}

// CanUndo reports whether an undoable state exists.
func (m *Manager) CanUndo() bool { return m.book.CanUndo() }

// CanRedo reports whether a redoable state exists.
func (m *Manager) CanRedo() bool { return m.book.CanRedo() }

// AddressBook returns a snapshot copy of the live state for the storage
// layer.
func (m *Manager) AddressBook() *AddressBook {
	return m.book.AddressBook.Copy()
}

// SetAddressBook replaces the live state wholesale, e.g. from a loaded
// snapshot at startup. It does not commit.
func (m *Manager) SetAddressBook(book *AddressBook) {
	m.book.ResetData(book)
	m.refreshPersons()
}

func (m *Manager) refreshPersons() {
	m.filtered = m.filtered[:0]
	for _, p := range m.book.Persons() {
		if m.pred(p) {
			m.filtered = append(m.filtered, p)
		}
	}
}
