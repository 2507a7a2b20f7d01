package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"planboard/internal/application/commands"
)

var unassignCmd = &cobra.Command{
	Use:   "unassign <employee>",
	Short: "Remove an employee from the board",
	Long: `Remove an employee from whatever slot holds them and mark them
Unassigned. The employee stays in the directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unassignCmd := commands.NewUnassignCommand(GetStore(), args[0])
		result, err := unassignCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unassignCmd)
}
