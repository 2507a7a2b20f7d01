package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"planboard/internal/application/commands"
)

var renameAddress string

var renameSiteCmd = &cobra.Command{
	Use:   "rename-site <site> <new-name>",
	Short: "Rename a job site",
	Long: `Rename a job site. Every employee assigned to it follows the new
name; the rename fails if another site already uses it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		renameCmd := commands.NewRenameSiteCommand(GetStore(), args[0], args[1], renameAddress)
		result, err := renameCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	renameSiteCmd.Flags().StringVarP(&renameAddress, "address", "a", "", "new address (keeps the old one when omitted)")
	rootCmd.AddCommand(renameSiteCmd)
}
