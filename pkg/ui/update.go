package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tabuddy/pkg/commands"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.SwitchPane):
				m.switchPane()

			case key.Matches(msg, m.keyMap.SelectPerson):
				if p, ok := m.selectedPerson(); ok {
					m.exec(commands.SelectPerson{Name: p.Name()})
				}

			case key.Matches(msg, m.keyMap.AddPerson):
				m.mode = AddPersonMode
				m.resetInputs()

			case key.Matches(msg, m.keyMap.EditPerson):
				if p, ok := m.selectedPerson(); ok {
					m.mode = EditPersonMode
					person := p
					m.editingPerson = &person
					m.resetInputs()

					// Populate form with existing values
					m.nameInput.SetValue(p.Name().String())
					m.emailInput.SetValue(p.Email().String())
					m.moduleInput.SetValue(p.Module().String())
					m.tagsInput.SetValue(tagsValue(p))
				}

			case key.Matches(msg, m.keyMap.DeletePerson):
				if p, ok := m.selectedPerson(); ok {
					m.mode = DeleteConfirmMode
					person := p
					m.editingPerson = &person
				}

			case key.Matches(msg, m.keyMap.AddAssignment):
				if p, ok := m.selectedPerson(); ok {
					m.mode = AddAssignmentMode
					person := p
					m.editingPerson = &person
					m.resetInputs()
				}

			case key.Matches(msg, m.keyMap.DeleteAssignment):
				if active, ok := m.mgr.ActivePerson(); ok {
					if a, ok := m.selectedAssignment(); ok {
						m.exec(commands.DeleteAssignment{Name: active.Name(), Assignment: a})
					}
				}

			case key.Matches(msg, m.keyMap.MarkAssignment):
				if active, ok := m.mgr.ActivePerson(); ok {
					if a, ok := m.selectedAssignment(); ok {
						m.exec(commands.MarkAssignment{Name: active.Name(), Assignment: a})
					}
				}

			case key.Matches(msg, m.keyMap.Undo):
				m.exec(commands.Undo{})

			case key.Matches(msg, m.keyMap.Redo):
				m.exec(commands.Redo{})

			case key.Matches(msg, m.keyMap.FilterPersons):
				m.mode = FilterMode
				m.resetInputs()

			case key.Matches(msg, m.keyMap.ClearFilter):
				m.exec(commands.ListPersons{})

			case key.Matches(msg, m.keyMap.CleanAssignments):
				m.exec(commands.CleanAssignments{Cutoff: commands.CleanCutoff(m.config)})
			}

		case AddPersonMode, EditPersonMode, AddAssignmentMode, FilterMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.resetInputs()
				m.editingPerson = nil

			case "tab", "shift+tab":
				m.focusNextInput()

			case "enter":
				inputs := m.activeFormInputs()
				if m.activeInput == len(inputs)-1 {
					// Submit on enter from the last field
					switch m.mode {
					case AddPersonMode, EditPersonMode:
						m.submitPersonForm()
					case AddAssignmentMode:
						m.submitAssignmentForm()
					case FilterMode:
						m.submitFilterForm()
					}
				} else {
					m.focusNextInput()
				}
			}

			// Handle input updates
			if inputs := m.activeFormInputs(); m.activeInput < len(inputs) {
				var inputCmd tea.Cmd
				*inputs[m.activeInput], inputCmd = inputs[m.activeInput].Update(msg)
				cmds = append(cmds, inputCmd)
			}

		case DeleteConfirmMode:
			switch msg.String() {
			case "y", "Y":
				if m.editingPerson != nil {
					m.exec(commands.DeletePerson{Name: m.editingPerson.Name()})
				}
				m.mode = NormalMode
				m.editingPerson = nil

			case "n", "N", "esc":
				m.mode = NormalMode
				m.editingPerson = nil
			}

		case HelpViewMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = NormalMode
			default:
				if msg.String() == "esc" {
					m.mode = NormalMode
				}
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

		personWidth := m.width * 3 / 5
		assignmentWidth := m.width - personWidth - 8
		if personWidth > 20 && assignmentWidth > 20 {
			m.personTable.SetColumns(personColumns(personWidth))
			m.personTable.SetWidth(personWidth)
			m.assignmentTable.SetColumns(assignmentColumns(assignmentWidth))
			m.assignmentTable.SetWidth(assignmentWidth)
		}
		m.personTable.SetHeight(m.height - 8)
		m.assignmentTable.SetHeight(m.height - 8)
	}

	// Only update the focused table in normal mode
	if m.mode == NormalMode {
		if m.pane == PersonPane {
			m.personTable, cmd = m.personTable.Update(msg)
		} else {
			m.assignmentTable, cmd = m.assignmentTable.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
