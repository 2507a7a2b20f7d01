package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"planboard/internal/adapters/feed"
	"planboard/internal/application/commands"
	"planboard/internal/ports"
	"planboard/pkg/logger"
)

var reconcileNoAudit bool

var reconcileCmd = &cobra.Command{
	Use:   "reconcile <feed.csv>",
	Short: "Merge an attendance feed into the board",
	Long: `Merge an attendance CSV export into the board. Each feed row moves
its employee to the reported job site; employees absent from the feed
whose role allows it are marked Sick in place. Every relocation is
recorded in the audit database.

Feed rows that cannot be applied (unknown names, missing fields) are
reported and skipped; they never abort the run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := feed.NewCSVSource(args[0]).
			WithColumns(cfg.Feed.FirstNameColumn, cfg.Feed.LastNameColumn, cfg.Feed.JobColumn)

		var audit ports.AuditLog
		if !reconcileNoAudit {
			var err error
			audit, err = OpenAudit()
			if err != nil {
				return fmt.Errorf("failed to open audit database (use --no-audit to skip): %w", err)
			}
			defer audit.Close()
		}

		reconcileCmd := commands.NewReconcileCommand(GetStore(), source, audit)
		result, err := reconcileCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		log := logger.Get()
		log.Info().
			Str("run_id", result.RunID).
			Int("rows", result.Outcome.Rows).
			Int("changes", len(result.Outcome.Records)).
			Int("unmatched", len(result.Outcome.Unmatched)).
			Msg("reconciliation complete")

		fmt.Println(result.Message)
		for _, rec := range result.Outcome.Records {
			fmt.Printf("  %s: %s → %s\n", rec.Employee, rec.OldSite, rec.NewSite)
		}
		if len(result.Outcome.Unmatched) > 0 {
			fmt.Printf("Unmatched: %s\n", strings.Join(result.Outcome.Unmatched, ", "))
		}
		for _, d := range result.Outcome.Diagnostics {
			fmt.Printf("  warning: %s\n", d.Message)
		}
		return nil
	},
}

func init() {
	reconcileCmd.Flags().BoolVar(&reconcileNoAudit, "no-audit", false, "skip writing the audit database")
	rootCmd.AddCommand(reconcileCmd)
}
