package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"tabuddy/pkg/commands"
	"tabuddy/pkg/model"
)

// exec dispatches a request and records the feedback or error.
func (m *Model) exec(req commands.Request) {
	result, err := commands.Dispatch(m.mgr, m.store, req)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.feedback = result.Feedback
	m.refreshTables()
}

// refreshTables recomputes both table views from the manager's
// filtered lists.
func (m *Model) refreshTables() {
	m.persons = m.mgr.FilteredPersons()

	personRows := make([]table.Row, 0, len(m.persons))
	for _, p := range m.persons {
		name := p.Name().String()
		if tags := p.Tags(); len(tags) > 0 {
			parts := make([]string, len(tags))
			for i, t := range tags {
				parts[i] = t.String()
			}
			tagText := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.TagColor)).
				Render("[" + strings.Join(parts, ",") + "]")
			name = fmt.Sprintf("%s %s", name, tagText)
		}
		personRows = append(personRows, table.Row{name, p.Module().String(), p.Email().String()})
	}
	m.personTable.SetRows(personRows)
	if cursor := m.personTable.Cursor(); cursor >= len(personRows) && len(personRows) > 0 {
		m.personTable.SetCursor(len(personRows) - 1)
	}

	m.assignments = m.mgr.FilteredAssignments()

	assignmentRows := make([]table.Row, 0, len(m.assignments))
	for _, a := range m.assignments {
		status := "[ ]"
		if a.Done {
			status = "[x]"
		}
		desc := fmt.Sprintf("%s %s", status, a.Description)
		if a.Done {
			desc = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.DoneColor)).
				Render(desc)
		}
		assignmentRows = append(assignmentRows, table.Row{desc, a.DueDate.Format(model.DueDateLayout)})
	}
	m.assignmentTable.SetRows(assignmentRows)
	if cursor := m.assignmentTable.Cursor(); cursor >= len(assignmentRows) && len(assignmentRows) > 0 {
		m.assignmentTable.SetCursor(len(assignmentRows) - 1)
	}
}

// selectedPerson returns the person under the cursor in the person
// table.
func (m *Model) selectedPerson() (model.Person, bool) {
	idx := m.personTable.Cursor()
	if idx < 0 || idx >= len(m.persons) {
		return model.Person{}, false
	}
	return m.persons[idx], true
}

// selectedAssignment returns the assignment under the cursor in the
// assignment table.
func (m *Model) selectedAssignment() (model.Assignment, bool) {
	idx := m.assignmentTable.Cursor()
	if idx < 0 || idx >= len(m.assignments) {
		return model.Assignment{}, false
	}
	return m.assignments[idx], true
}

// switchPane toggles keyboard focus between the two tables.
func (m *Model) switchPane() {
	if m.pane == PersonPane {
		m.pane = AssignmentPane
		m.personTable.Blur()
		m.assignmentTable.Focus()
	} else {
		m.pane = PersonPane
		m.assignmentTable.Blur()
		m.personTable.Focus()
	}
}

// personFormInputs lists the person form inputs in focus order.
func (m *Model) personFormInputs() []*textinput.Model {
	return []*textinput.Model{&m.nameInput, &m.emailInput, &m.moduleInput, &m.tagsInput}
}

// assignmentFormInputs lists the assignment form inputs in focus
// order.
func (m *Model) assignmentFormInputs() []*textinput.Model {
	return []*textinput.Model{&m.descInput, &m.dueInput}
}

func (m *Model) activeFormInputs() []*textinput.Model {
	switch m.mode {
	case AddPersonMode, EditPersonMode:
		return m.personFormInputs()
	case AddAssignmentMode:
		return m.assignmentFormInputs()
	case FilterMode:
		return []*textinput.Model{&m.filterInput}
	}
	return nil
}

// resetInputs clears all form inputs and focuses the first one
func (m *Model) resetInputs() {
	m.nameInput.Reset()
	m.emailInput.Reset()
	m.moduleInput.Reset()
	m.tagsInput.Reset()
	m.descInput.Reset()
	m.dueInput.Reset()
	m.filterInput.Reset()

	m.activeInput = 0
	for i, input := range m.personFormInputs() {
		if i == 0 {
			input.Focus()
		} else {
			input.Blur()
		}
	}
	m.descInput.Focus()
	m.dueInput.Blur()
	m.filterInput.Focus()
}

// focusNextInput cycles through the current form's inputs
func (m *Model) focusNextInput() {
	inputs := m.activeFormInputs()
	if len(inputs) == 0 {
		return
	}
	m.activeInput = (m.activeInput + 1) % len(inputs)
	for i, input := range inputs {
		if i == m.activeInput {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

// submitPersonForm builds a person from the form and dispatches the
// add or edit request.
func (m *Model) submitPersonForm() {
	name, err := model.NewName(m.nameInput.Value())
	if err != nil {
		m.err = err
		return
	}
	email, err := model.NewEmail(m.emailInput.Value())
	if err != nil {
		m.err = err
		return
	}
	module, err := model.NewModule(m.moduleInput.Value())
	if err != nil {
		m.err = err
		return
	}

	var tags []model.Tag
	for _, s := range strings.Split(m.tagsInput.Value(), ",") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		t, err := model.NewTag(s)
		if err != nil {
			m.err = err
			return
		}
		tags = append(tags, t)
	}

	switch m.mode {
	case AddPersonMode:
		p, err := model.NewPerson(name, email, module, tags)
		if err != nil {
			m.err = err
			return
		}
		m.exec(commands.AddPerson{Person: p})

	case EditPersonMode:
		if m.editingPerson == nil {
			return
		}
		// Keep the existing assignments on the edited person
		p, err := model.NewPerson(name, email, module, tags, m.editingPerson.Assignments()...)
		if err != nil {
			m.err = err
			return
		}
		m.exec(commands.EditPerson{Name: m.editingPerson.Name(), Edited: p})
	}

	if m.err == nil {
		m.mode = NormalMode
		m.resetInputs()
		m.editingPerson = nil
	}
}

// submitAssignmentForm builds an assignment from the form and adds it
// to the selected person.
func (m *Model) submitAssignmentForm() {
	if m.editingPerson == nil {
		return
	}
	a, err := model.NewAssignment(m.descInput.Value(), m.dueInput.Value())
	if err != nil {
		m.err = err
		return
	}
	m.exec(commands.AddAssignment{Name: m.editingPerson.Name(), Assignment: a})

	if m.err == nil {
		m.mode = NormalMode
		m.resetInputs()
		m.editingPerson = nil
	}
}

// submitFilterForm applies the name keyword filter.
func (m *Model) submitFilterForm() {
	keywords := strings.Fields(m.filterInput.Value())
	if len(keywords) == 0 {
		m.exec(commands.ListPersons{})
	} else {
		m.exec(commands.FindPersons{Keywords: keywords})
	}
	m.mode = NormalMode
	m.resetInputs()
}
