package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName_Valid(t *testing.T) {
	n, err := NewName("John Doe 2")
	require.NoError(t, err)
	assert.Equal(t, "John Doe 2", n.String())
}

func TestNewName_CollapsesWhitespace(t *testing.T) {
	n1, err := NewName("John   Doe")
	require.NoError(t, err)
	n2, err := NewName("John Doe")
	require.NoError(t, err)
	assert.Equal(t, n2, n1)
}

func TestNewName_Invalid(t *testing.T) {
	for _, s := range []string{"", "  ", "John*Doe", "-dash"} {
		_, err := NewName(s)
		assert.ErrorIs(t, err, ErrInvalid, "name %q", s)
	}
}

func TestNewEmail_Lowercases(t *testing.T) {
	e, err := NewEmail("Alice@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", e.String())
}

func TestNewEmail_Invalid(t *testing.T) {
	for _, s := range []string{"", "no-at-sign", "spaces in@mail.com", "@domain"} {
		_, err := NewEmail(s)
		assert.ErrorIs(t, err, ErrInvalid, "email %q", s)
	}
}

func TestNewModule_Uppercases(t *testing.T) {
	m, err := NewModule("cs2103t")
	require.NoError(t, err)
	assert.Equal(t, "CS2103T", m.String())
}

func TestNewModule_Invalid(t *testing.T) {
	for _, s := range []string{"", "2103", "CS", "CS21034X", "C2103"} {
		_, err := NewModule(s)
		assert.ErrorIs(t, err, ErrInvalid, "module %q", s)
	}
}

func TestNewTag_Invalid(t *testing.T) {
	_, err := NewTag("has space")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestNewPerson_RejectsDuplicateAssignments(t *testing.T) {
	n, err := NewName("Alice")
	require.NoError(t, err)
	e, err := NewEmail("alice@example.com")
	require.NoError(t, err)
	m, err := NewModule("CS2103T")
	require.NoError(t, err)

	a := newTestAssignment(t, "HW1", "2024-01-10")
	_, err = NewPerson(n, e, m, nil, a, a)
	assert.ErrorIs(t, err, ErrDuplicateAssignment)
}

func TestNewPerson_DeduplicatesTags(t *testing.T) {
	n, _ := NewName("Alice")
	e, _ := NewEmail("alice@example.com")
	m, _ := NewModule("CS2103T")
	friend, err := NewTag("friend")
	require.NoError(t, err)

	p, err := NewPerson(n, e, m, []Tag{friend, friend})
	require.NoError(t, err)
	assert.Len(t, p.Tags(), 1)
}

func TestPerson_SameAs_NameOnly(t *testing.T) {
	p1 := newTestPerson(t, "Alice Pauline", "alice@example.com", "CS2103T")
	p2 := newTestPerson(t, "Alice Pauline", "other@example.com", "CS2101")

	assert.True(t, p1.SameAs(p2))
	assert.False(t, p1.Equal(p2))
}

func TestPerson_Equal_ComparesAllFields(t *testing.T) {
	a := newTestAssignment(t, "HW1", "2024-01-10")
	p1 := newTestPerson(t, "Alice", "alice@example.com", "CS2103T", a)
	p2 := newTestPerson(t, "Alice", "alice@example.com", "CS2103T", a)

	assert.True(t, p1.Equal(p2))

	marked := a
	marked.Done = true
	p3 := newTestPerson(t, "Alice", "alice@example.com", "CS2103T", marked)
	assert.False(t, p1.Equal(p3))
}

func TestPerson_AccessorsReturnCopies(t *testing.T) {
	a := newTestAssignment(t, "HW1", "2024-01-10")
	p := newTestPerson(t, "Alice", "alice@example.com", "CS2103T", a)

	got := p.Assignments()
	got[0].Done = true

	assert.False(t, p.Assignments()[0].Done)
}

func TestAssignment_SameIgnoresDoneState(t *testing.T) {
	a := newTestAssignment(t, "HW1", "2024-01-10")
	b := a
	b.Done = true

	assert.True(t, a.Same(b))
	assert.False(t, a.Equal(b))
}

func TestAssignment_SameRequiresSameDueDate(t *testing.T) {
	a := newTestAssignment(t, "HW1", "2024-01-10")
	b := newTestAssignment(t, "HW1", "2024-01-11")

	assert.False(t, a.Same(b))
}

func TestParseDueDate_AcceptedFormats(t *testing.T) {
	iso, err := ParseDueDate("2021-11-11")
	require.NoError(t, err)

	slash, err := ParseDueDate("11/11/2021")
	require.NoError(t, err)
	assert.True(t, iso.Equal(slash))
}

func TestParseDueDate_Invalid(t *testing.T) {
	_, err := ParseDueDate("not a date")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestNewAssignment_EmptyDescription(t *testing.T) {
	_, err := NewAssignment("   ", "2024-01-10")
	assert.ErrorIs(t, err, ErrInvalid)
}
