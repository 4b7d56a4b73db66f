package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"tabuddy/pkg/commands"
	"tabuddy/pkg/config"
	"tabuddy/pkg/model"
	"tabuddy/pkg/storage"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
	Verbose    bool

	// Person operations
	AddPerson    string
	DeletePerson string
	EmailFlag    string
	ModuleFlag   string
	TagsFlag     string

	// Assignment operations
	AssignPerson   string
	UnassignPerson string
	MarkPerson     string
	DescFlag       string
	DueFlag        string

	// Housekeeping
	CleanFlag bool
	ListFlag  bool

	// Import/Export operations
	ImportFile string
	ExportFile string
	TypeFlag   string
}

// ParseArgs parses command line arguments and returns Args struct
func ParseArgs() *Args {
	args := &Args{}

	flag.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")

	// Person operations
	flag.StringVar(&args.AddPerson, "add", "", "Add a person with the given name")
	flag.StringVar(&args.DeletePerson, "delete", "", "Delete the person with the given name")
	flag.StringVar(&args.EmailFlag, "email", "", "Email for -add")
	flag.StringVar(&args.ModuleFlag, "module", "", "Module code for -add (e.g. CS2103T)")
	flag.StringVar(&args.TagsFlag, "tags", "", "Comma-separated tags for -add")

	// Assignment operations
	flag.StringVar(&args.AssignPerson, "assign", "", "Add an assignment to the named person")
	flag.StringVar(&args.UnassignPerson, "unassign", "", "Delete an assignment from the named person")
	flag.StringVar(&args.MarkPerson, "mark", "", "Mark the named person's assignment as done")
	flag.StringVar(&args.DescFlag, "desc", "", "Assignment description")
	flag.StringVar(&args.DueFlag, "due", "", "Assignment due date (YYYY-MM-DD)")

	// Housekeeping
	flag.BoolVar(&args.CleanFlag, "clean", false, "Remove past-due assignments from all persons")
	flag.BoolVar(&args.ListFlag, "list", false, "Print the roster and exit")

	// Import/Export operations
	flag.StringVar(&args.ImportFile, "import", "", "Import persons from a JSON file")
	flag.StringVar(&args.ExportFile, "export", "", "Export the address book to a file")
	flag.StringVar(&args.TypeFlag, "type", "json", "Export file type (json, txt)")

	flag.Parse()
	return args
}

// HandleCommands processes one-shot CLI commands and returns true if a
// command was handled (so the TUI should not start).
func HandleCommands(mgr *model.Manager, store storage.Store, cfg config.Config, args *Args) bool {
	if args.AddPerson != "" {
		handleAddPerson(mgr, store, args)
		return true
	}

	if args.DeletePerson != "" {
		name := parseName(args.DeletePerson)
		dispatch(mgr, store, commands.DeletePerson{Name: name})
		return true
	}

	if args.AssignPerson != "" {
		dispatch(mgr, store, commands.AddAssignment{
			Name:       parseName(args.AssignPerson),
			Assignment: parseAssignment(args),
		})
		return true
	}

	if args.UnassignPerson != "" {
		dispatch(mgr, store, commands.DeleteAssignment{
			Name:       parseName(args.UnassignPerson),
			Assignment: parseAssignment(args),
		})
		return true
	}

	if args.MarkPerson != "" {
		dispatch(mgr, store, commands.MarkAssignment{
			Name:       parseName(args.MarkPerson),
			Assignment: parseAssignment(args),
		})
		return true
	}

	if args.CleanFlag {
		dispatch(mgr, store, commands.CleanAssignments{Cutoff: commands.CleanCutoff(cfg)})
		return true
	}

	if args.ListFlag {
		handleList(mgr)
		return true
	}

	if args.ImportFile != "" {
		commands.HandleImportCommand(mgr, store, args.ImportFile)
		return true
	}

	if args.ExportFile != "" {
		commands.HandleExportCommand(mgr, args.ExportFile, args.TypeFlag)
		return true
	}

	// No CLI command was handled
	return false
}

func handleAddPerson(mgr *model.Manager, store storage.Store, args *Args) {
	name := parseName(args.AddPerson)

	email, err := model.NewEmail(args.EmailFlag)
	if err != nil {
		fatal(err)
	}
	module, err := model.NewModule(args.ModuleFlag)
	if err != nil {
		fatal(err)
	}

	var tags []model.Tag
	for _, s := range strings.Split(args.TagsFlag, ",") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		t, err := model.NewTag(s)
		if err != nil {
			fatal(err)
		}
		tags = append(tags, t)
	}

	p, err := model.NewPerson(name, email, module, tags)
	if err != nil {
		fatal(err)
	}

	dispatch(mgr, store, commands.AddPerson{Person: p})
}

func handleList(mgr *model.Manager) {
	persons := mgr.FilteredPersons()
	if len(persons) == 0 {
		fmt.Println("Address book is empty.")
		return
	}
	for _, p := range persons {
		fmt.Printf("%s | %s | %s\n", p.Name(), p.Email(), p.Module())
		for _, a := range p.Assignments() {
			fmt.Printf("  %s\n", a)
		}
	}
}

func parseName(s string) model.Name {
	name, err := model.NewName(s)
	if err != nil {
		fatal(err)
	}
	return name
}

func parseAssignment(args *Args) model.Assignment {
	a, err := model.NewAssignment(args.DescFlag, args.DueFlag)
	if err != nil {
		fatal(err)
	}
	return a
}

func dispatch(mgr *model.Manager, store storage.Store, req commands.Request) {
	result, err := commands.Dispatch(mgr, store, req)
	if err != nil {
		fatal(err)
	}
	fmt.Println(result.Feedback)
}

func fatal(err error) {
	fmt.Printf("Error: %v\n", err)
	os.Exit(1)
}
