package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"planboard/internal/application/commands"
)

var placeCmd = &cobra.Command{
	Use:   "place <employee> <site> <slot>",
	Short: "Place an employee into a slot of a job site",
	Long: `Place an employee into a slot of a job site. Any previous placement
anywhere on the board is cleared first, so nobody appears twice.

Slots: pm, gm, foreman, super, electricians. Fixed slots hold one
person and require a matching role; the electricians slot is a roster.

Examples:
  planboard-cli place "Jane Doe" "Harbor Tower" foreman
  planboard-cli place "Amy Ohm" "Harbor Tower" electricians`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		placeCmd := commands.NewPlaceCommand(GetStore(), args[0], args[1], args[2])
		result, err := placeCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(placeCmd)
}
