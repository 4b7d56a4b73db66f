package storage

import (
	"os"
	"path/filepath"

	"tabuddy/pkg/model"
	"tabuddy/pkg/utils"
)

// JSONStore persists the address book as a single JSON file.
type JSONStore struct {
	path   string
	logger *utils.Logger
}

// NewJSONStore creates a store writing to the given file path.
func NewJSONStore(path string, logger *utils.Logger) *JSONStore {
	return &JSONStore{path: path, logger: logger}
}

// Load reads the address book from disk. A missing file yields an
// empty book, not an error, so first runs start clean.
func (s *JSONStore) Load() (*model.AddressBook, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Logf("No data file at %s, starting with an empty address book", s.path)
			return model.NewAddressBook(), nil
		}
		return nil, err
	}

	book, err := UnmarshalBook(data)
	if err != nil {
		return nil, err
	}
	s.logger.Logf("Loaded %d persons from %s", len(book.Persons()), s.path)
	return book, nil
}

// Save writes the address book snapshot to disk, creating the parent
// directory if needed.
func (s *JSONStore) Save(book *model.AddressBook) error {
	data, err := MarshalBook(book)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return err
	}
	s.logger.Logf("Saved %d persons to %s", len(book.Persons()), s.path)
	return nil
}
