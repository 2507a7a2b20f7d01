package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"planboard/internal/application/commands"
	"planboard/internal/domain"
)

var (
	addRole   string
	addSkills []string

	addAddress string
	addAnchor  []float64
)

var addEmployeeCmd = &cobra.Command{
	Use:   "add-employee <name>",
	Short: "Add an employee to the directory",
	Long: `Add an employee to the directory. New employees start unassigned;
use place to put them on the board.

Examples:
  planboard-cli add-employee "Amy Ohm" --role Electrician
  planboard-cli add-employee "Jane Doe" --role Foreman --skill lift --skill "fire alarm"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addCmd := commands.NewAddEmployeeCommand(GetStore(), args[0], addRole, addSkills)
		result, err := addCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var addSiteCmd = &cobra.Command{
	Use:   "add-site <name>",
	Short: "Add a job site to the board",
	Long: `Add a job site hub to the board. The anchor gives the hub's frame
on the virtual whiteboard as x,y,width,height in board units.

Example:
  planboard-cli add-site "Harbor Tower" --address "12 Dock Rd" --anchor 400,0,320,800`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var anchor domain.Rect
		switch len(addAnchor) {
		case 0:
		case 4:
			anchor = domain.Rect{X: addAnchor[0], Y: addAnchor[1], W: addAnchor[2], H: addAnchor[3]}
		default:
			return fmt.Errorf("anchor needs 4 values (x,y,width,height), got %d", len(addAnchor))
		}

		addCmd := commands.NewAddSiteCommand(GetStore(), args[0], addAddress, anchor)
		result, err := addCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	addEmployeeCmd.Flags().StringVarP(&addRole, "role", "r", "", "employee role (required)")
	addEmployeeCmd.Flags().StringArrayVar(&addSkills, "skill", nil, "skill tag (repeatable)")
	addEmployeeCmd.MarkFlagRequired("role")
	rootCmd.AddCommand(addEmployeeCmd)

	addSiteCmd.Flags().StringVarP(&addAddress, "address", "a", "", "street address shown on the board")
	addSiteCmd.Flags().Float64SliceVar(&addAnchor, "anchor", nil, "hub frame as x,y,width,height")
	rootCmd.AddCommand(addSiteCmd)
}
