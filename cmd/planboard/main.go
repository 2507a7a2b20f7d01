package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"planboard/internal/adapters/filesystem"
	"planboard/internal/adapters/sqlite"
	"planboard/internal/adapters/tui"
	"planboard/internal/config"
	"planboard/internal/ports"
	"planboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Init(logger.Options{Level: cfg.LogLevel})

	// Initialize adapters
	store := filesystem.NewStore(cfg.BoardPath)

	var audit ports.AuditLog
	if log, err := sqlite.Open(cfg.AuditDBPath); err == nil {
		audit = log
		defer log.Close()
	}

	// Create and run TUI app
	app := tui.NewApp(store, audit)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
