package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"planboard/internal/application/commands"
)

var employeeStatus string

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "List employees with role, site and status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listCmd := commands.NewListEmployeesCommand(GetStore(), employeeStatus)
		emps, err := listCmd.Execute(context.Background())
		if err != nil {
			return err
		}

		if len(emps) == 0 {
			fmt.Println("No matching employees.")
			return nil
		}

		for _, e := range emps {
			fmt.Printf("%-24s %-24s %-20s %s\n", e.Name, e.Role, e.JobSite, e.Status)
		}
		return nil
	},
}

func init() {
	employeesCmd.Flags().StringVarP(&employeeStatus, "status", "s", "", `filter by status ("On-site", "Sick", "Unassigned")`)
	rootCmd.AddCommand(employeesCmd)
}
