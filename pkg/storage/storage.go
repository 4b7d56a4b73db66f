package storage

import (
	"encoding/json"
	"fmt"

	"tabuddy/pkg/model"
)

// Store loads and saves address book snapshots. The model layer only
// requires structural equivalence between the saved and restored
// roster; the file format belongs to this package.
type Store interface {
	Load() (*model.AddressBook, error)
	Save(book *model.AddressBook) error
}

// serializedAssignment is the on-disk form of an assignment.
type serializedAssignment struct {
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Done        bool   `json:"done"`
}

// serializedPerson is the on-disk form of a person.
type serializedPerson struct {
	Name        string                 `json:"name"`
	Email       string                 `json:"email"`
	Module      string                 `json:"module"`
	Tags        []string               `json:"tags,omitempty"`
	Assignments []serializedAssignment `json:"assignments,omitempty"`
}

type serializedBook struct {
	Persons []serializedPerson `json:"persons"`
}

// MarshalBook encodes an address book snapshot as indented JSON.
func MarshalBook(book *model.AddressBook) ([]byte, error) {
	out := serializedBook{Persons: []serializedPerson{}}
	for _, p := range book.Persons() {
		sp := serializedPerson{
			Name:   p.Name().String(),
			Email:  p.Email().String(),
			Module: p.Module().String(),
		}
		for _, t := range p.Tags() {
			sp.Tags = append(sp.Tags, t.String())
		}
		for _, a := range p.Assignments() {
			sp.Assignments = append(sp.Assignments, serializedAssignment{
				Description: a.Description,
				DueDate:     a.DueDate.Format(model.DueDateLayout),
				Done:        a.Done,
			})
		}
		out.Persons = append(out.Persons, sp)
	}
	return json.MarshalIndent(out, "", "  ")
}

// UnmarshalBook decodes JSON into an address book, re-validating every
// field through the model constructors.
func UnmarshalBook(data []byte) (*model.AddressBook, error) {
	var in serializedBook
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parsing address book: %w", err)
	}

	book := model.NewAddressBook()
	for _, sp := range in.Persons {
		p, err := decodePerson(sp)
		if err != nil {
			return nil, err
		}
		if err := book.AddPerson(p); err != nil {
			return nil, err
		}
	}
	return book, nil
}

func decodePerson(sp serializedPerson) (model.Person, error) {
	name, err := model.NewName(sp.Name)
	if err != nil {
		return model.Person{}, err
	}
	email, err := model.NewEmail(sp.Email)
	if err != nil {
		return model.Person{}, err
	}
	module, err := model.NewModule(sp.Module)
	if err != nil {
		return model.Person{}, err
	}

	var tags []model.Tag
	for _, s := range sp.Tags {
		t, err := model.NewTag(s)
		if err != nil {
			return model.Person{}, err
		}
		tags = append(tags, t)
	}

	var assignments []model.Assignment
	for _, sa := range sp.Assignments {
		a, err := model.NewAssignment(sa.Description, sa.DueDate)
		if err != nil {
			return model.Person{}, err
		}
		a.Done = sa.Done
		assignments = append(assignments, a)
	}

	return model.NewPerson(name, email, module, tags, assignments...)
}
