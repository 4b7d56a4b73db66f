package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestPerson(t *testing.T, name, email, module string, assignments ...Assignment) Person {
	t.Helper()

	n, err := NewName(name)
	require.NoError(t, err)
	e, err := NewEmail(email)
	require.NoError(t, err)
	m, err := NewModule(module)
	require.NoError(t, err)

	p, err := NewPerson(n, e, m, nil, assignments...)
	require.NoError(t, err)
	return p
}

func newTestAssignment(t *testing.T, description, dueDate string) Assignment {
	t.Helper()

	a, err := NewAssignment(description, dueDate)
	require.NoError(t, err)
	return a
}

func alice(t *testing.T) Person {
	t.Helper()
	return newTestPerson(t, "Alice Pauline", "alice@example.com", "CS2103T")
}

func bob(t *testing.T) Person {
	t.Helper()
	return newTestPerson(t, "Bob Choo", "bob@example.com", "CS2101")
}
