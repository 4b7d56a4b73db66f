package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"tabuddy/pkg/model"
	"tabuddy/pkg/utils"
)

// SQLiteStore persists the address book in a SQLite database. Saves
// replace the full snapshot in one transaction, matching the
// whole-book snapshot semantics of the model layer.
type SQLiteStore struct {
	db     *sql.DB
	logger *utils.Logger
}

// OpenSQLite connects to the SQLite database at dbPath and ensures the
// schema exists.
func OpenSQLite(dbPath string, logger *utils.Logger) (*SQLiteStore, error) {
	// Expand tilde to home directory if present
	if strings.HasPrefix(dbPath, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dbPath = homeDir + dbPath[1:]
	}

	// Create the directory structure if it doesn't exist
	dbDir := filepath.Dir(dbPath)
	if dbDir != "." {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, err
		}
	}

	// SQLite will create the database file if it doesn't exist
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db, logger: logger}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS persons (
			name TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			module TEXT NOT NULL,
			tags TEXT
		);
		CREATE TABLE IF NOT EXISTS assignments (
			person_name TEXT NOT NULL REFERENCES persons(name) ON DELETE CASCADE,
			description TEXT NOT NULL,
			duedate TEXT NOT NULL,
			done BOOLEAN NOT NULL DEFAULT 0,
			PRIMARY KEY (person_name, description, duedate)
		)
	`)
	return err
}

// Load reads the full roster from the database.
func (s *SQLiteStore) Load() (*model.AddressBook, error) {
	rows, err := s.db.Query(`SELECT name, email, module, tags FROM persons ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var persons []serializedPerson
	for rows.Next() {
		var sp serializedPerson
		var tagsStr string
		if err := rows.Scan(&sp.Name, &sp.Email, &sp.Module, &tagsStr); err != nil {
			return nil, err
		}

		// Parse tags from comma-separated string
		if tagsStr != "" {
			sp.Tags = strings.Split(tagsStr, ",")
			for i, tag := range sp.Tags {
				sp.Tags[i] = strings.TrimSpace(tag)
			}
		}
		persons = append(persons, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	book := model.NewAddressBook()
	for _, sp := range persons {
		if err := s.loadAssignments(&sp); err != nil {
			return nil, err
		}
		p, err := decodePerson(sp)
		if err != nil {
			return nil, err
		}
		if err := book.AddPerson(p); err != nil {
			return nil, err
		}
	}

	s.logger.Logf("Loaded %d persons from database", len(persons))
	return book, nil
}

func (s *SQLiteStore) loadAssignments(sp *serializedPerson) error {
	rows, err := s.db.Query(
		`SELECT description, duedate, done FROM assignments WHERE person_name = ? ORDER BY rowid`,
		sp.Name,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var sa serializedAssignment
		if err := rows.Scan(&sa.Description, &sa.DueDate, &sa.Done); err != nil {
			return err
		}
		sp.Assignments = append(sp.Assignments, sa)
	}
	return rows.Err()
}

// Save replaces the stored roster with the given snapshot.
func (s *SQLiteStore) Save(book *model.AddressBook) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM assignments`); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM persons`); err != nil {
		return err
	}

	for _, p := range book.Persons() {
		tags := make([]string, 0, len(p.Tags()))
		for _, t := range p.Tags() {
			tags = append(tags, t.String())
		}

		if _, err := tx.Exec(
			`INSERT INTO persons (name, email, module, tags) VALUES (?, ?, ?, ?)`,
			p.Name().String(), p.Email().String(), p.Module().String(), strings.Join(tags, ","),
		); err != nil {
			return err
		}

		for _, a := range p.Assignments() {
			if _, err := tx.Exec(
				`INSERT INTO assignments (person_name, description, duedate, done) VALUES (?, ?, ?, ?)`,
				p.Name().String(), a.Description, a.DueDate.Format(model.DueDateLayout), a.Done,
			); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Logf("Saved %d persons to database", len(book.Persons()))
	return nil
}
