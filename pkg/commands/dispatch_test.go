package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabuddy/pkg/model"
)

func newTestPerson(t *testing.T, name, email, module string) model.Person {
	t.Helper()

	n, err := model.NewName(name)
	require.NoError(t, err)
	e, err := model.NewEmail(email)
	require.NoError(t, err)
	m, err := model.NewModule(module)
	require.NoError(t, err)
	p, err := model.NewPerson(n, e, m, nil)
	require.NoError(t, err)
	return p
}

func newTestAssignment(t *testing.T, description, dueDate string) model.Assignment {
	t.Helper()

	a, err := model.NewAssignment(description, dueDate)
	require.NoError(t, err)
	return a
}

func emptyManager() *model.Manager {
	return model.NewManager(model.NewAddressBook(), nil)
}

// countingStore records how many times Save was called.
type countingStore struct {
	saves int
	last  *model.AddressBook
}

func (s *countingStore) Load() (*model.AddressBook, error) { return model.NewAddressBook(), nil }

func (s *countingStore) Save(book *model.AddressBook) error {
	s.saves++
	s.last = book
	return nil
}

func TestDispatch_AddPerson_CommitsAndSaves(t *testing.T) {
	mgr := emptyManager()
	store := &countingStore{}
	alice := newTestPerson(t, "Alice Pauline", "alice@example.com", "CS2103T")

	res, err := Dispatch(mgr, store, AddPerson{Person: alice})
	require.NoError(t, err)

	assert.Contains(t, res.Feedback, "Alice Pauline")
	assert.True(t, mgr.CanUndo())
	assert.Equal(t, 1, store.saves)
	require.NotNil(t, store.last)
	assert.Len(t, store.last.Persons(), 1)
}

func TestDispatch_AddPerson_DuplicateEmailDoesNotCommit(t *testing.T) {
	mgr := emptyManager()
	store := &countingStore{}
	alice := newTestPerson(t, "Alice Pauline", "alice@example.com", "CS2103T")
	_, err := Dispatch(mgr, store, AddPerson{Person: alice})
	require.NoError(t, err)

	sameEmail := newTestPerson(t, "Someone Else", "alice@example.com", "CS2101")
	_, err = Dispatch(mgr, store, AddPerson{Person: sameEmail})

	assert.ErrorIs(t, err, model.ErrDuplicateEmail)
	assert.Equal(t, 1, store.saves, "a rejected command must not save")
}

func TestDispatch_DeletePerson_UnknownName(t *testing.T) {
	mgr := emptyManager()
	name, err := model.NewName("Nobody")
	require.NoError(t, err)

	_, err = Dispatch(mgr, nil, DeletePerson{Name: name})
	assert.ErrorIs(t, err, model.ErrPersonNotFound)
	assert.False(t, mgr.CanUndo(), "a failed command must not commit")
}

func TestDispatch_EditPerson_EmailCollision(t *testing.T) {
	mgr := emptyManager()
	alice := newTestPerson(t, "Alice Pauline", "alice@example.com", "CS2103T")
	bob := newTestPerson(t, "Bob Choo", "bob@example.com", "CS2101")
	_, err := Dispatch(mgr, nil, AddPerson{Person: alice})
	require.NoError(t, err)
	_, err = Dispatch(mgr, nil, AddPerson{Person: bob})
	require.NoError(t, err)

	// Editing Bob to take Alice's email must be rejected
	taken := newTestPerson(t, "Bob Choo", "alice@example.com", "CS2101")
	_, err = Dispatch(mgr, nil, EditPerson{Name: bob.Name(), Edited: taken})
	assert.ErrorIs(t, err, model.ErrDuplicateEmail)
}

func TestDispatch_EditPerson_KeepingOwnEmail(t *testing.T) {
	mgr := emptyManager()
	alice := newTestPerson(t, "Alice Pauline", "alice@example.com", "CS2103T")
	_, err := Dispatch(mgr, nil, AddPerson{Person: alice})
	require.NoError(t, err)

	edited := newTestPerson(t, "Alice Pauline", "alice@example.com", "CS2101")
	_, err = Dispatch(mgr, nil, EditPerson{Name: alice.Name(), Edited: edited})
	require.NoError(t, err)

	got, ok := mgr.FindPerson(alice.Name())
	require.True(t, ok)
	assert.True(t, got.Equal(edited))
}

func TestDispatch_AssignmentLifecycle(t *testing.T) {
	mgr := emptyManager()
	store := &countingStore{}
	alice := newTestPerson(t, "Alice Pauline", "alice@example.com", "CS2103T")
	_, err := Dispatch(mgr, store, AddPerson{Person: alice})
	require.NoError(t, err)
	hw := newTestAssignment(t, "HW1", "2024-01-10")

	_, err = Dispatch(mgr, store, AddAssignment{Name: alice.Name(), Assignment: hw})
	require.NoError(t, err)
	require.Len(t, mgr.FilteredAssignments(), 1)

	_, err = Dispatch(mgr, store, MarkAssignment{Name: alice.Name(), Assignment: hw})
	require.NoError(t, err)
	assert.True(t, mgr.FilteredAssignments()[0].Done)

	_, err = Dispatch(mgr, store, DeleteAssignment{Name: alice.Name(), Assignment: hw})
	require.NoError(t, err)
	assert.Empty(t, mgr.FilteredAssignments())

	// add person + 3 assignment mutations
	assert.Equal(t, 4, store.saves)
}

func TestDispatch_AddAssignmentToAll_SkipsExisting(t *testing.T) {
	mgr := emptyManager()
	alice := newTestPerson(t, "Alice Pauline", "alice@example.com", "CS2103T")
	bob := newTestPerson(t, "Bob Choo", "bob@example.com", "CS2101")
	_, err := Dispatch(mgr, nil, AddPerson{Person: alice})
	require.NoError(t, err)
	_, err = Dispatch(mgr, nil, AddPerson{Person: bob})
	require.NoError(t, err)

	hw := newTestAssignment(t, "HW1", "2024-01-10")
	_, err = Dispatch(mgr, nil, AddAssignment{Name: alice.Name(), Assignment: hw})
	require.NoError(t, err)

	_, err = Dispatch(mgr, nil, AddAssignmentToAll{Assignment: hw})
	require.NoError(t, err)

	for _, p := range mgr.FilteredPersons() {
		got, err := mgr.PersonAssignments(p)
		require.NoError(t, err)
		assert.Len(t, got, 1, "person %s", p.Name())
	}
}

func TestDispatch_CleanAssignments(t *testing.T) {
	mgr := emptyManager()
	alice := newTestPerson(t, "Alice Pauline", "alice@example.com", "CS2103T")
	_, err := Dispatch(mgr, nil, AddPerson{Person: alice})
	require.NoError(t, err)
	_, err = Dispatch(mgr, nil, AddAssignment{Name: alice.Name(), Assignment: newTestAssignment(t, "Old", "2024-01-01")})
	require.NoError(t, err)
	_, err = Dispatch(mgr, nil, AddAssignment{Name: alice.Name(), Assignment: newTestAssignment(t, "New", "2024-06-01")})
	require.NoError(t, err)

	cutoff := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	res, err := Dispatch(mgr, nil, CleanAssignments{Cutoff: cutoff})
	require.NoError(t, err)

	assert.Contains(t, res.Feedback, "1")
	require.Len(t, mgr.FilteredAssignments(), 1)

	// The sweep is its own undoable step
	_, err = Dispatch(mgr, nil, Undo{})
	require.NoError(t, err)
	got, err := mgr.PersonAssignments(alice)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDispatch_SelectPerson_DoesNotCommit(t *testing.T) {
	mgr := emptyManager()
	alice := newTestPerson(t, "Alice Pauline", "alice@example.com", "CS2103T")
	_, err := Dispatch(mgr, nil, AddPerson{Person: alice})
	require.NoError(t, err)
	hw := newTestAssignment(t, "HW1", "2024-01-10")
	_, err = Dispatch(mgr, nil, AddAssignment{Name: alice.Name(), Assignment: hw})
	require.NoError(t, err)

	store := &countingStore{}
	_, err = Dispatch(mgr, store, SelectPerson{Name: alice.Name()})
	require.NoError(t, err)

	assert.Equal(t, 0, store.saves)
	assert.Len(t, mgr.FilteredAssignments(), 1)
}

func TestDispatch_FindAndList(t *testing.T) {
	mgr := emptyManager()
	_, err := Dispatch(mgr, nil, AddPerson{Person: newTestPerson(t, "Alice Pauline", "alice@example.com", "CS2103T")})
	require.NoError(t, err)
	_, err = Dispatch(mgr, nil, AddPerson{Person: newTestPerson(t, "Bob Choo", "bob@example.com", "CS2101")})
	require.NoError(t, err)

	res, err := Dispatch(mgr, nil, FindPersons{Keywords: []string{"alice"}})
	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "1 persons listed")
	assert.Len(t, mgr.FilteredPersons(), 1)

	_, err = Dispatch(mgr, nil, ListPersons{})
	require.NoError(t, err)
	assert.Len(t, mgr.FilteredPersons(), 2)
}

func TestDispatch_UndoRedo_SavesWithoutCommitting(t *testing.T) {
	mgr := emptyManager()
	alice := newTestPerson(t, "Alice Pauline", "alice@example.com", "CS2103T")
	_, err := Dispatch(mgr, nil, AddPerson{Person: alice})
	require.NoError(t, err)

	store := &countingStore{}
	_, err = Dispatch(mgr, store, Undo{})
	require.NoError(t, err)
	assert.Equal(t, 1, store.saves)
	assert.Empty(t, store.last.Persons())

	_, err = Dispatch(mgr, store, Redo{})
	require.NoError(t, err)
	assert.Equal(t, 2, store.saves)
	assert.Len(t, store.last.Persons(), 1)
}

func TestDispatch_Undo_AtBoundary(t *testing.T) {
	mgr := emptyManager()

	_, err := Dispatch(mgr, nil, Undo{})
	require.Error(t, err)

	var cmdErr *model.CommandError
	assert.ErrorAs(t, err, &cmdErr)
}
