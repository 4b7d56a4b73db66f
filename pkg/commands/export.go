package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tabuddy/pkg/model"
	"tabuddy/pkg/storage"
)

// HandleExportCommand processes --export commands
func HandleExportCommand(mgr *model.Manager, filename, exportType string) {
	book := mgr.AddressBook()
	persons := book.Persons()

	// Ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	var content []byte
	var err error

	switch exportType {
	case "json":
		content, err = storage.MarshalBook(book)
		if err != nil {
			fmt.Printf("Error marshaling address book to JSON: %v\n", err)
			os.Exit(1)
		}
	case "txt":
		var lines []string
		for _, p := range persons {
			tags := ""
			if len(p.Tags()) > 0 {
				parts := make([]string, len(p.Tags()))
				for i, t := range p.Tags() {
					parts[i] = t.String()
				}
				tags = " [" + strings.Join(parts, ", ") + "]"
			}
			lines = append(lines, fmt.Sprintf("\n%s | %s | %s%s:", p.Name(), p.Email(), p.Module(), tags))
			for _, a := range p.Assignments() {
				lines = append(lines, fmt.Sprintf("- %s", a))
			}
		}
		content = []byte(strings.TrimSpace(strings.Join(lines, "\n")))
	default:
		fmt.Printf("Unknown export type: %s\n", exportType)
		os.Exit(1)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully exported %d person(s) to %s\n", len(persons), filename)
}
