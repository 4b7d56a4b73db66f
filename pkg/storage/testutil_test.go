package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tabuddy/pkg/model"
)

func loadedName(t *testing.T, s string) model.Name {
	t.Helper()

	n, err := model.NewName(s)
	require.NoError(t, err)
	return n
}

func testBook(t *testing.T) *model.AddressBook {
	t.Helper()

	book := model.NewAddressBook()

	aliceName, err := model.NewName("Alice Pauline")
	require.NoError(t, err)
	aliceEmail, err := model.NewEmail("alice@example.com")
	require.NoError(t, err)
	aliceModule, err := model.NewModule("CS2103T")
	require.NoError(t, err)
	friend, err := model.NewTag("friend")
	require.NoError(t, err)

	hw1, err := model.NewAssignment("HW1", "2024-01-10")
	require.NoError(t, err)
	hw2, err := model.NewAssignment("HW2", "2024-02-20")
	require.NoError(t, err)
	hw2.Done = true

	alice, err := model.NewPerson(aliceName, aliceEmail, aliceModule, []model.Tag{friend}, hw1, hw2)
	require.NoError(t, err)
	require.NoError(t, book.AddPerson(alice))

	bobName, err := model.NewName("Bob Choo")
	require.NoError(t, err)
	bobEmail, err := model.NewEmail("bob@example.com")
	require.NoError(t, err)
	bobModule, err := model.NewModule("CS2101")
	require.NoError(t, err)

	bob, err := model.NewPerson(bobName, bobEmail, bobModule, nil)
	require.NoError(t, err)
	require.NoError(t, book.AddPerson(bob))

	return book
}
