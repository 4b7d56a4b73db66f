package commands

import (
	"fmt"
	"os"

	"tabuddy/pkg/model"
	"tabuddy/pkg/storage"
)

// HandleImportCommand processes --import commands. The file must be a
// JSON roster as written by --export -type json. Persons whose name is
// already taken are skipped; the merge is committed as one command.
func HandleImportCommand(mgr *model.Manager, store storage.Store, filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	imported, err := storage.UnmarshalBook(content)
	if err != nil {
		fmt.Printf("Error parsing file: %v\n", err)
		os.Exit(1)
	}

	var added, skipped int
	for _, p := range imported.Persons() {
		if mgr.HasPerson(p) || mgr.HasEmail(p) {
			skipped++
			continue
		}
		if err := mgr.AddPerson(p); err != nil {
			fmt.Printf("Error adding person '%s': %v\n", p.Name(), err)
			continue
		}
		added++
	}

	if added > 0 {
		if err := commitAndSave(mgr, store); err != nil {
			fmt.Printf("Error saving address book: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Successfully imported %d person(s) from %s (%d skipped)\n", added, filename, skipped)
}
