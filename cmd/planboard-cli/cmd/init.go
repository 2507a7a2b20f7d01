package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"planboard/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file and an empty board",
	Long: `Write a config file populated with defaults and initialize an empty
board document at the configured path. Fails if the config already
exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Init()
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)

		// Loading a missing board document creates it.
		if _, err := GetStore().Load(); err != nil {
			return err
		}
		fmt.Printf("Initialized board at %s\n", GetStore().Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
