package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"tabuddy/pkg/model"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case NormalMode:
		// App Title Bar
		titleBar := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.AccentColor)).
			Padding(0, 1).
			Render(" TAbuddy - Contacts & Assignments ")

		sb.WriteString(titleBar)
		sb.WriteString("\n\n")

		sb.WriteString(m.renderTables())
		sb.WriteString("\n")
		sb.WriteString(m.renderStatusBar())

	case AddPersonMode:
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Add Person"))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderPersonForm())
		sb.WriteString("\n\n")
		sb.WriteString(m.statusBarStyle().Render("Tab: next field • Enter: submit • Esc: cancel"))

	case EditPersonMode:
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Edit Person"))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderPersonForm())
		sb.WriteString("\n\n")
		sb.WriteString(m.statusBarStyle().Render("Tab: next field • Enter: submit • Esc: cancel"))

	case AddAssignmentMode:
		title := "Add Assignment"
		if m.editingPerson != nil {
			title = fmt.Sprintf("Add Assignment for %s", m.editingPerson.Name())
		}
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderAssignmentForm())
		sb.WriteString("\n\n")
		sb.WriteString(m.statusBarStyle().Render("Tab: next field • Enter: submit • Esc: cancel"))

	case FilterMode:
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Filter Persons"))
		sb.WriteString("\n\n")
		sb.WriteString(m.formStyle().Render("Name keywords:\n" + m.filterInput.View()))
		sb.WriteString("\n\n")
		sb.WriteString(m.statusBarStyle().Render("Enter: apply • Esc: cancel"))

	case DeleteConfirmMode:
		sb.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.styles.ErrorColor)).
			Render("Delete Person"))
		sb.WriteString("\n\n")

		if m.editingPerson != nil {
			sb.WriteString("Are you sure you want to delete this person?\n\n")
			sb.WriteString(fmt.Sprintf("Name: %s\n", m.editingPerson.Name()))
			sb.WriteString(fmt.Sprintf("Email: %s\n", m.editingPerson.Email()))
			sb.WriteString(fmt.Sprintf("Module: %s\n", m.editingPerson.Module()))
			sb.WriteString(fmt.Sprintf("Assignments: %d\n", len(m.editingPerson.Assignments())))
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
		}

	case HelpViewMode:
		sb.WriteString(m.renderHelp())
	}

	// Error message if any
	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.ErrorColor))
		sb.WriteString(errStyle.Render(fmt.Sprintf("\n\nError: %v", m.err)))
	}

	return sb.String()
}

func (m Model) renderTables() string {
	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.styles.BorderColor))
	activeBorder := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.styles.AccentColor))

	personStyle, assignmentStyle := border, border
	if m.pane == PersonPane {
		personStyle = activeBorder
	} else {
		assignmentStyle = activeBorder
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.styles.AccentColor))

	assignmentTitle := "Assignments"
	if active, ok := m.mgr.ActivePerson(); ok {
		assignmentTitle = fmt.Sprintf("Assignments - %s", active.Name())
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		header.Render("Persons"),
		personStyle.Render(m.personTable.View()),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		header.Render(assignmentTitle),
		assignmentStyle.Render(m.assignmentTable.View()),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m Model) renderStatusBar() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("%d person(s) listed", len(m.persons)))

	if m.mgr.CanUndo() {
		parts = append(parts, "undo available")
	}
	if m.mgr.CanRedo() {
		parts = append(parts, "redo available")
	}
	if m.feedback != "" {
		parts = append(parts, m.feedback)
	}

	help := m.keyMap.ShowHelp.Help()
	parts = append(parts, fmt.Sprintf("%s: %s", help.Key, help.Desc))

	return m.statusBarStyle().Render(strings.Join(parts, " | "))
}

// renderPersonForm renders the input form for adding/editing persons
func (m Model) renderPersonForm() string {
	var sb strings.Builder

	sb.WriteString("Name:\n")
	sb.WriteString(m.nameInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Email:\n")
	sb.WriteString(m.emailInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Module:\n")
	sb.WriteString(m.moduleInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Tags (comma separated):\n")
	sb.WriteString(m.tagsInput.View())

	return m.formStyle().Render(sb.String())
}

// renderAssignmentForm renders the input form for adding assignments
func (m Model) renderAssignmentForm() string {
	var sb strings.Builder

	sb.WriteString("Description:\n")
	sb.WriteString(m.descInput.View())
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Due Date (%s):\n", model.DueDateLayout))
	sb.WriteString(m.dueInput.View())

	return m.formStyle().Render(sb.String())
}

func (m Model) renderHelp() string {
	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Key Bindings"))
	sb.WriteString("\n\n")

	bindings := []key.Binding{
		m.keyMap.SwitchPane,
		m.keyMap.SelectPerson,
		m.keyMap.AddPerson,
		m.keyMap.EditPerson,
		m.keyMap.DeletePerson,
		m.keyMap.AddAssignment,
		m.keyMap.MarkAssignment,
		m.keyMap.DeleteAssignment,
		m.keyMap.Undo,
		m.keyMap.Redo,
		m.keyMap.FilterPersons,
		m.keyMap.ClearFilter,
		m.keyMap.CleanAssignments,
		m.keyMap.QuitApp,
	}

	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.styles.AccentColor))
	for _, b := range bindings {
		help := b.Help()
		sb.WriteString(fmt.Sprintf("%s  %s\n", keyStyle.Render(fmt.Sprintf("%-12s", help.Key)), help.Desc))
	}

	sb.WriteString("\n")
	sb.WriteString(m.statusBarStyle().Render("Press esc to close help"))

	return sb.String()
}

func (m Model) formStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.styles.BorderColor)).
		Padding(1, 2)
}

func (m Model) statusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Background(lipgloss.Color("237")).
		Padding(0, 1)
}

// tagsValue renders a person's tags as a comma separated string for
// the edit form.
func tagsValue(p model.Person) string {
	tags := p.Tags()
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
