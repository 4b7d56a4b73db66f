package model

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	nameRe   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)
	moduleRe = regexp.MustCompile(`^[A-Z]{2,4}[0-9]{4}[A-Z]?$`)
	tagRe    = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// Name is a person's display name. Internal whitespace is collapsed so
// "John  Doe" and "John Doe" name the same person.
type Name string

// NewName validates and normalizes a name.
func NewName(s string) (Name, error) {
	s = strings.Join(strings.Fields(s), " ")
	if !nameRe.MatchString(s) {
		return "", fmt.Errorf("name %q must be alphanumeric words: %w", s, ErrInvalid)
	}
	return Name(s), nil
}

func (n Name) String() string { return string(n) }

// Email is a contact email address, compared case-insensitively.
type Email string

// NewEmail validates an email address and lowercases it.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRe.MatchString(s) {
		return "", fmt.Errorf("email %q must be of the form local@domain: %w", s, ErrInvalid)
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }

// Module is a course module code such as CS2103T, compared after
// uppercasing.
type Module string

// NewModule validates a module code.
func NewModule(s string) (Module, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !moduleRe.MatchString(s) {
		return "", fmt.Errorf("module %q must be a course code like CS2103T: %w", s, ErrInvalid)
	}
	return Module(s), nil
}

func (m Module) String() string { return string(m) }

// Tag is a short alphanumeric label attached to a person.
type Tag string

// NewTag validates a tag.
func NewTag(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	if !tagRe.MatchString(s) {
		return "", fmt.Errorf("tag %q must be alphanumeric: %w", s, ErrInvalid)
	}
	return Tag(s), nil
}

func (t Tag) String() string { return string(t) }

// Person represents a contact in the address book. All fields are
// validated before construction; accessors hand out copies so callers
// cannot mutate a person in place.
type Person struct {
	name        Name
	email       Email
	module      Module
	tags        []Tag
	assignments UniqueAssignmentList
}

// NewPerson builds a person from validated field values. Tags are
// deduplicated; duplicate assignments are rejected.
func NewPerson(name Name, email Email, module Module, tags []Tag, assignments ...Assignment) (Person, error) {
	p := Person{name: name, email: email, module: module, tags: dedupTags(tags)}
	for _, a := range assignments {
		if err := p.assignments.Add(a); err != nil {
			return Person{}, err
		}
	}
	return p, nil
}

func dedupTags(tags []Tag) []Tag {
	seen := make(map[Tag]bool, len(tags))
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (p Person) Name() Name     { return p.name }
func (p Person) Email() Email   { return p.email }
func (p Person) Module() Module { return p.module }

// Tags returns a copy of the person's tag set.
func (p Person) Tags() []Tag {
	out := make([]Tag, len(p.tags))
	copy(out, p.tags)
	return out
}

// Assignments returns a sorted copy of the person's assignments.
func (p Person) Assignments() []Assignment {
	list := p.assignments.copy()
	list.Sort()
	return list.items
}

// SameAs reports whether both persons have the same name. This is the
// weaker notion of equality used for roster uniqueness and lookup.
func (p Person) SameAs(other Person) bool {
	return p.name == other.name
}

// SameEmail reports whether both persons share an email address.
func (p Person) SameEmail(other Person) bool {
	return p.email == other.email
}

// HasModule reports whether the person belongs to the given module.
func (p Person) HasModule(m Module) bool {
	return p.module == m
}

// Equal reports whether both persons have the same identity and data
// fields, assignments and tags included.
func (p Person) Equal(other Person) bool {
	if p.name != other.name || p.email != other.email || p.module != other.module {
		return false
	}
	if len(p.tags) != len(other.tags) {
		return false
	}
	for i := range p.tags {
		if p.tags[i] != other.tags[i] {
			return false
		}
	}
	return p.assignments.Equal(&other.assignments)
}

func (p Person) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s; Email: %s; Module: %s", p.name, p.email, p.module)
	if p.assignments.Len() > 0 {
		sb.WriteString("; Assignments: ")
		for i, a := range p.Assignments() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.String())
		}
	}
	if len(p.tags) > 0 {
		sb.WriteString("; Tags: ")
		for i, t := range p.tags {
			if i > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "[%s]", t)
		}
	}
	return sb.String()
}

// copy deep-copies the person, assignments included.
func (p Person) copy() Person {
	out := p
	out.tags = p.Tags()
	out.assignments = p.assignments.copy()
	return out
}
