package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tabuddy/pkg/cli"
	"tabuddy/pkg/config"
	"tabuddy/pkg/model"
	"tabuddy/pkg/storage"
	"tabuddy/pkg/ui"
	"tabuddy/pkg/utils"
)

func main() {
	args := cli.ParseArgs()

	logger := utils.NewLogger(args.Verbose)
	defer logger.Close()

	cfg, styles, err := config.Load(args.ConfigPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := openStore(cfg, logger)
	if err != nil {
		fmt.Printf("Error opening storage: %v\n", err)
		os.Exit(1)
	}
	if closer, ok := store.(*storage.SQLiteStore); ok {
		defer closer.Close()
	}

	book, err := store.Load()
	if err != nil {
		fmt.Printf("Error loading address book: %v\n", err)
		os.Exit(1)
	}

	mgr := model.NewManager(book, logger)

	// One-shot CLI commands run without the TUI
	if cli.HandleCommands(mgr, store, cfg, args) {
		return
	}

	p := tea.NewProgram(ui.NewModel(mgr, store, cfg, styles, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

func openStore(cfg config.Config, logger *utils.Logger) (storage.Store, error) {
	switch cfg.Backend {
	case "sqlite":
		return storage.OpenSQLite(cfg.DataFile, logger)
	case "json", "":
		return storage.NewJSONStore(cfg.DataFile, logger), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
