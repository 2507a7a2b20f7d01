package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"planboard/internal/application/commands"
)

var collapseCmd = &cobra.Command{
	Use:   "collapse <site>",
	Short: "Toggle a job site between collapsed and expanded",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		collapseCmd := commands.NewCollapseCommand(GetStore(), args[0])
		result, err := collapseCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(collapseCmd)
}
