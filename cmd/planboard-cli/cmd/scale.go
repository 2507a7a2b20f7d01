package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"planboard/internal/application/commands"
)

var scaleCmd = &cobra.Command{
	Use:   "scale <factor>",
	Short: "Set the board zoom factor",
	Long: `Set the board zoom factor. The factor applies uniformly to every
job site; it must be positive.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		factor, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid scale %q: %w", args[0], err)
		}
		scaleCmd := commands.NewScaleCommand(GetStore(), factor)
		result, err := scaleCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scaleCmd)
}
