package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"planboard/internal/adapters/filesystem"
	"planboard/internal/adapters/sqlite"
	"planboard/internal/config"
	"planboard/internal/ports"
	"planboard/pkg/logger"
)

var (
	boardPath string
	cfg       config.Config
	store     ports.BoardStore
)

var rootCmd = &cobra.Command{
	Use:   "planboard-cli",
	Short: "CLI for the crew whiteboard",
	Long: `planboard-cli manages the job-site whiteboard: employees, sites,
slot placements and attendance reconciliation.

The board lives in a single JSON document; every mutating command loads
it, applies the change and writes it back atomically.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})
		if boardPath != "" {
			cfg.BoardPath = boardPath
		}
		store = filesystem.NewStore(cfg.BoardPath)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&boardPath, "board", "b", "", "path to the board document (overrides config)")
}

// GetStore returns the initialized board store
func GetStore() ports.BoardStore {
	return store
}

// OpenAudit opens the audit database from config. Callers own Close.
func OpenAudit() (ports.AuditLog, error) {
	return sqlite.Open(cfg.AuditDBPath)
}
