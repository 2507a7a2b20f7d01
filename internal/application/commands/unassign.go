package commands

import (
	"context"
	"fmt"

	"planboard/internal/application"
	"planboard/internal/ports"
)

// UnassignResult contains the result of unassigning an employee
type UnassignResult struct {
	Employee string
	Message  string
}

// UnassignCommand clears an employee from wherever it sits and points it
// at the Unassigned sentinel. The employee record is kept.
type UnassignCommand struct {
	store    ports.BoardStore
	Employee string
}

// NewUnassignCommand creates a new UnassignCommand
func NewUnassignCommand(store ports.BoardStore, employee string) *UnassignCommand {
	return &UnassignCommand{store: store, Employee: employee}
}

// Validate checks the command parameters
func (c *UnassignCommand) Validate() error {
	if c.Employee == "" {
		return &application.ValidationError{
			Field:   "employee",
			Message: "employee name is required",
		}
	}
	return nil
}

// Execute runs the unassign command
func (c *UnassignCommand) Execute(ctx context.Context) (*UnassignResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dir, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	if err := dir.Unassign(c.Employee); err != nil {
		return nil, err
	}

	if err := c.store.Save(dir); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	return &UnassignResult{
		Employee: c.Employee,
		Message:  fmt.Sprintf("Unassigned %s", c.Employee),
	}, nil
}
