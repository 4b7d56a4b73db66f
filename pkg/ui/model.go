package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabuddy/pkg/config"
	"tabuddy/pkg/keymaps"
	"tabuddy/pkg/model"
	"tabuddy/pkg/storage"
	"tabuddy/pkg/utils"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	AddPersonMode
	EditPersonMode
	AddAssignmentMode
	DeleteConfirmMode
	FilterMode   // Mode for filtering the person list
	HelpViewMode // Mode for displaying help
)

// Pane identifies which table has keyboard focus
type Pane int

const (
	PersonPane Pane = iota
	AssignmentPane
)

// Model represents the application state
type Model struct {
	mgr    *model.Manager
	store  storage.Store
	logger *utils.Logger

	personTable     table.Model
	assignmentTable table.Model
	persons         []model.Person
	assignments     []model.Assignment
	pane            Pane

	width, height int
	err           error
	feedback      string

	// Configuration
	config config.Config
	styles config.Styles
	keyMap keymaps.KeyMap

	// Form state
	mode        InputMode
	nameInput   textinput.Model
	emailInput  textinput.Model
	moduleInput textinput.Model
	tagsInput   textinput.Model
	descInput   textinput.Model
	dueInput    textinput.Model
	filterInput textinput.Model
	activeInput int

	// Edit/delete state
	editingPerson *model.Person
}

// NewModel creates a new UI model over the given manager
func NewModel(mgr *model.Manager, store storage.Store, cfg config.Config, styles config.Styles, logger *utils.Logger) Model {
	personTable := table.New(
		table.WithColumns(personColumns(60)),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	assignmentTable := table.New(
		table.WithColumns(assignmentColumns(40)),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.BorderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(styles.SelectedTextColor)).
		Background(lipgloss.Color(styles.SelectedBgColor)).
		Bold(true)
	personTable.SetStyles(s)
	assignmentTable.SetStyles(s)

	// Initialize text inputs
	nameInput := textinput.New()
	nameInput.Placeholder = "Name"
	nameInput.Focus()
	nameInput.Width = 40

	emailInput := textinput.New()
	emailInput.Placeholder = "Email"
	emailInput.Width = 40

	moduleInput := textinput.New()
	moduleInput.Placeholder = "Module (e.g. CS2103T)"
	moduleInput.Width = 40

	tagsInput := textinput.New()
	tagsInput.Placeholder = "Tags (comma separated, optional)"
	tagsInput.Width = 40

	descInput := textinput.New()
	descInput.Placeholder = "Assignment description"
	descInput.Width = 40

	dueInput := textinput.New()
	dueInput.Placeholder = "Due date (YYYY-MM-DD)"
	dueInput.Width = 40
	dueInput.SetValue(time.Now().Format("2006-01-02"))

	filterInput := textinput.New()
	filterInput.Placeholder = "Filter persons by name keywords"
	filterInput.Width = 40

	m := Model{
		mgr:             mgr,
		store:           store,
		logger:          logger,
		personTable:     personTable,
		assignmentTable: assignmentTable,
		pane:            PersonPane,
		config:          cfg,
		styles:          styles,
		keyMap:          keymaps.BuildKeyMap(cfg.KeyMap),
		mode:            NormalMode,
		nameInput:       nameInput,
		emailInput:      emailInput,
		moduleInput:     moduleInput,
		tagsInput:       tagsInput,
		descInput:       descInput,
		dueInput:        dueInput,
		filterInput:     filterInput,
		activeInput:     0,
	}

	// Load initial data
	m.refreshTables()

	return m
}

// Init initializes the model (required by Bubble Tea Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

func personColumns(width int) []table.Column {
	nameWidth := width * 2 / 5
	return []table.Column{
		{Title: "Name", Width: nameWidth},
		{Title: "Module", Width: 10},
		{Title: "Email", Width: width - nameWidth - 10},
	}
}

func assignmentColumns(width int) []table.Column {
	return []table.Column{
		{Title: "Assignment", Width: width - 12},
		{Title: "Due", Width: 12},
	}
}
