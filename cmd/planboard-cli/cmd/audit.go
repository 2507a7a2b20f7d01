package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var auditLimit int

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show recent reconciliation relocations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := OpenAudit()
		if err != nil {
			return err
		}
		defer log.Close()

		entries, err := log.Recent(auditLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No reconciliation runs recorded.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%s  %-24s %s → %s  (run %s)\n",
				e.RecordedAt.Format("2006-01-02 15:04"), e.Employee, e.OldSite, e.NewSite, e.RunID)
		}
		return nil
	},
}

func init() {
	auditCmd.Flags().IntVarP(&auditLimit, "limit", "n", 20, "maximum entries to show")
	rootCmd.AddCommand(auditCmd)
}
