package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":         {"ctrl+b", "show/hide commands"},
	"QuitApp":          {"q", "quit"},
	"AddPerson":        {"a", "add person"},
	"EditPerson":       {"e", "edit person"},
	"DeletePerson":     {"d", "delete person"},
	"SelectPerson":     {"enter", "show person's assignments"},
	"AddAssignment":    {"n", "add assignment"},
	"DeleteAssignment": {"x", "delete assignment"},
	"MarkAssignment":   {"space", "mark assignment done"},
	"SwitchPane":       {"tab", "switch between persons and assignments"},
	"Undo":             {"u", "undo last command"},
	"Redo":             {"ctrl+r", "redo last undone command"},
	"FilterPersons":    {"ctrl+f", "filter persons by name"},
	"ClearFilter":      {"esc", "clear filter"},
	"CleanAssignments": {"ctrl+x", "remove past-due assignments"},
}

type KeyMap struct {
	ShowHelp         key.Binding
	QuitApp          key.Binding
	AddPerson        key.Binding
	EditPerson       key.Binding
	DeletePerson     key.Binding
	SelectPerson     key.Binding
	AddAssignment    key.Binding
	DeleteAssignment key.Binding
	MarkAssignment   key.Binding
	SwitchPane       key.Binding
	Undo             key.Binding
	Redo             key.Binding
	FilterPersons    key.Binding
	ClearFilter      key.Binding
	CleanAssignments key.Binding
}

func BuildKeyMap(configOverrides map[string]string) KeyMap {
	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := configOverrides[action]; exists && override != "" {
			keyStr = override
		}

		switch action {
		case "ShowHelp":
			km.ShowHelp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "QuitApp":
			km.QuitApp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "AddPerson":
			km.AddPerson = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "EditPerson":
			km.EditPerson = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "DeletePerson":
			km.DeletePerson = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SelectPerson":
			km.SelectPerson = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "AddAssignment":
			km.AddAssignment = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "DeleteAssignment":
			km.DeleteAssignment = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "MarkAssignment":
			km.MarkAssignment = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "SwitchPane":
			km.SwitchPane = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "Undo":
			km.Undo = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "Redo":
			km.Redo = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "FilterPersons":
			km.FilterPersons = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ClearFilter":
			km.ClearFilter = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CleanAssignments":
			km.CleanAssignments = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	labels := make([]string, len(keys))
	for i, k := range keys {
		k = strings.TrimSpace(k)
		labels[i] = k
		// Bubble Tea reports the spacebar as " "
		if k == "space" {
			k = " "
		}
		keys[i] = k
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(labels[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
