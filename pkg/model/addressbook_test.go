package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressBook_AddPerson_RejectsDuplicateName(t *testing.T) {
	ab := NewAddressBook()
	require.NoError(t, ab.AddPerson(alice(t)))

	// Same name, completely different other fields
	other := newTestPerson(t, "Alice Pauline", "different@example.com", "CS2101")
	err := ab.AddPerson(other)
	assert.ErrorIs(t, err, ErrDuplicatePerson)
}

func TestAddressBook_AddLookupRemove_RoundTrip(t *testing.T) {
	ab := NewAddressBook()
	require.NoError(t, ab.AddPerson(alice(t)))
	before := ab.Copy()

	b := bob(t)
	require.NoError(t, ab.AddPerson(b))

	found, ok := ab.FindPerson(b.Name())
	require.True(t, ok)
	assert.True(t, found.Equal(b))

	require.NoError(t, ab.RemovePerson(b))
	assert.True(t, ab.Equal(before))
}

func TestAddressBook_RemovePerson_Missing(t *testing.T) {
	ab := NewAddressBook()
	err := ab.RemovePerson(alice(t))
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestAddressBook_RemoveActivePerson_ClearsView(t *testing.T) {
	ab := NewAddressBook()
	a := alice(t)
	require.NoError(t, ab.AddPerson(a))
	require.NoError(t, ab.AddAssignment(a, newTestAssignment(t, "HW1", "2024-01-10")))
	require.NoError(t, ab.ChangeActivePerson(a))
	require.NoError(t, ab.UpdateAssignmentList(a))
	require.NotEmpty(t, ab.AssignmentList())

	require.NoError(t, ab.RemovePerson(a))

	assert.False(t, ab.HasActivePerson())
	assert.Empty(t, ab.AssignmentList())
}

func TestAddressBook_SetPerson_PreservesPosition(t *testing.T) {
	ab := NewAddressBook()
	a := alice(t)
	b := bob(t)
	require.NoError(t, ab.AddPerson(a))
	require.NoError(t, ab.AddPerson(b))

	edited := newTestPerson(t, "Alice Pauline", "new@example.com", "CS2101")
	require.NoError(t, ab.SetPerson(a, edited))

	persons := ab.Persons()
	require.Len(t, persons, 2)
	assert.True(t, persons[0].Equal(edited))
	assert.True(t, persons[1].Equal(b))
}

func TestAddressBook_SetPerson_RejectsCollision(t *testing.T) {
	ab := NewAddressBook()
	a := alice(t)
	b := bob(t)
	require.NoError(t, ab.AddPerson(a))
	require.NoError(t, ab.AddPerson(b))

	// Editing Bob to take Alice's name must fail
	renamed := newTestPerson(t, "Alice Pauline", "bob@example.com", "CS2101")
	err := ab.SetPerson(b, renamed)
	assert.ErrorIs(t, err, ErrDuplicatePerson)
}

func TestAddressBook_SetPerson_UpdatesActiveReference(t *testing.T) {
	ab := NewAddressBook()
	a := alice(t)
	require.NoError(t, ab.AddPerson(a))
	require.NoError(t, ab.ChangeActivePerson(a))

	edited := newTestPerson(t, "Alice P", "alice@example.com", "CS2103T",
		newTestAssignment(t, "HW1", "2024-01-10"))
	require.NoError(t, ab.SetPerson(a, edited))

	active, ok := ab.ActivePerson()
	require.True(t, ok)
	assert.Equal(t, edited.Name(), active.Name())
	assert.Len(t, ab.AssignmentList(), 1)
}

func TestAddressBook_HasEmail_SpansRoster(t *testing.T) {
	ab := NewAddressBook()
	require.NoError(t, ab.AddPerson(alice(t)))

	sameEmail := newTestPerson(t, "Someone Else", "alice@example.com", "CS2101")
	assert.True(t, ab.HasEmail(sameEmail))
	assert.False(t, ab.HasEmail(bob(t)))
}

func TestAddressBook_ChangeActivePerson_Missing(t *testing.T) {
	ab := NewAddressBook()
	err := ab.ChangeActivePerson(alice(t))
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestAddressBook_AssignmentOps_PropagateListErrors(t *testing.T) {
	ab := NewAddressBook()
	a := alice(t)
	require.NoError(t, ab.AddPerson(a))
	hw := newTestAssignment(t, "HW1", "2024-01-10")

	require.NoError(t, ab.AddAssignment(a, hw))
	assert.ErrorIs(t, ab.AddAssignment(a, hw), ErrDuplicateAssignment)

	missing := newTestAssignment(t, "HW2", "2024-01-10")
	assert.ErrorIs(t, ab.RemoveAssignment(a, missing), ErrAssignmentNotFound)
	assert.ErrorIs(t, ab.MarkAssignment(a, missing), ErrAssignmentNotFound)

	assert.ErrorIs(t, ab.AddAssignment(bob(t), hw), ErrPersonNotFound)
}

func TestAddressBook_CleanAssignments_RefreshesActiveView(t *testing.T) {
	ab := NewAddressBook()
	a := alice(t)
	require.NoError(t, ab.AddPerson(a))
	require.NoError(t, ab.AddAssignment(a, newTestAssignment(t, "Old", "2024-01-01")))
	require.NoError(t, ab.AddAssignment(a, newTestAssignment(t, "New", "2024-06-01")))
	require.NoError(t, ab.ChangeActivePerson(a))
	require.NoError(t, ab.UpdateAssignmentList(a))

	cutoff := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	removed := ab.CleanAssignments(cutoff)

	assert.Equal(t, 1, removed)
	view := ab.AssignmentList()
	require.Len(t, view, 1)
	assert.Equal(t, "New", view[0].Description)
}

func TestAddressBook_Copy_IsIndependent(t *testing.T) {
	ab := NewAddressBook()
	a := alice(t)
	require.NoError(t, ab.AddPerson(a))

	snapshot := ab.Copy()
	require.NoError(t, ab.AddAssignment(a, newTestAssignment(t, "HW1", "2024-01-10")))

	original, _ := ab.FindPerson(a.Name())
	copied, _ := snapshot.FindPerson(a.Name())
	assert.Len(t, original.Assignments(), 1)
	assert.Empty(t, copied.Assignments())
}
