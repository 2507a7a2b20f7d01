package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"planboard/internal/application/commands"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List job sites with their occupancy",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listCmd := commands.NewListSitesCommand(GetStore())
		sites, err := listCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		if len(sites) == 0 {
			fmt.Println("No job sites.")
			return nil
		}

		for _, s := range sites {
			header := s.Name
			if s.Address != "" {
				header += "  " + s.Address
			}
			if s.Collapsed {
				header += "  (collapsed)"
			}
			fmt.Println(header)
			fmt.Printf("  PM:      %s\n", orDash(s.PM))
			fmt.Printf("  GM:      %s\n", orDash(s.GM))
			fmt.Printf("  Foreman: %s\n", orDash(s.Foreman))
			fmt.Printf("  Super:   %s\n", orDash(s.Super))
			if len(s.Roster) > 0 {
				fmt.Printf("  Electricians: %s\n", strings.Join(s.Roster, ", "))
			}
		}
		return nil
	},
}

func orDash(name string) string {
	if name == "" {
		return "-"
	}
	return name
}

func init() {
	rootCmd.AddCommand(sitesCmd)
}
