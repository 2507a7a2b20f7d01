package commands

import (
	"context"
	"fmt"

	"planboard/internal/application"
	"planboard/internal/domain"
	"planboard/internal/ports"
)

// AddEmployeeResult contains the result of adding an employee
type AddEmployeeResult struct {
	Employee string
	Message  string
}

// AddEmployeeCommand adds a new employee to the directory, starting
// unassigned.
type AddEmployeeCommand struct {
	store  ports.BoardStore
	Name   string
	Role   string
	Skills []string
}

// NewAddEmployeeCommand creates a new AddEmployeeCommand
func NewAddEmployeeCommand(store ports.BoardStore, name, role string, skills []string) *AddEmployeeCommand {
	return &AddEmployeeCommand{
		store:  store,
		Name:   name,
		Role:   role,
		Skills: skills,
	}
}

// Validate checks the command parameters
func (c *AddEmployeeCommand) Validate() error {
	if domain.CleanName(c.Name) == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "employee name is required",
		}
	}
	if c.Role == "" {
		return &application.ValidationError{
			Field:   "role",
			Message: "role is required",
		}
	}
	return nil
}

// Execute runs the add command
func (c *AddEmployeeCommand) Execute(ctx context.Context) (*AddEmployeeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dir, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	emp, err := dir.AddEmployee(domain.Employee{
		Name:   c.Name,
		Role:   domain.Role(c.Role),
		Skills: c.Skills,
	})
	if err != nil {
		return nil, err
	}

	if err := c.store.Save(dir); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	return &AddEmployeeResult{
		Employee: emp.Name,
		Message:  fmt.Sprintf("Added %s (%s)", emp.Name, emp.Role),
	}, nil
}

// AddSiteResult contains the result of adding a job site
type AddSiteResult struct {
	Site    string
	Message string
}

// AddSiteCommand adds a new job site hub to the board
type AddSiteCommand struct {
	store   ports.BoardStore
	Name    string
	Address string
	Anchor  domain.Rect
}

// NewAddSiteCommand creates a new AddSiteCommand
func NewAddSiteCommand(store ports.BoardStore, name, address string, anchor domain.Rect) *AddSiteCommand {
	return &AddSiteCommand{
		store:   store,
		Name:    name,
		Address: address,
		Anchor:  anchor,
	}
}

// Validate checks the command parameters
func (c *AddSiteCommand) Validate() error {
	if domain.CleanName(c.Name) == "" {
		return &application.ValidationError{
			Field:   "name",
			Message: "job site name is required",
		}
	}
	return nil
}

// Execute runs the add command
func (c *AddSiteCommand) Execute(ctx context.Context) (*AddSiteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dir, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	hub, err := dir.AddHub(domain.Hub{
		Name:    c.Name,
		Address: c.Address,
		Anchor:  c.Anchor,
	})
	if err != nil {
		return nil, err
	}

	if err := c.store.Save(dir); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	return &AddSiteResult{
		Site:    hub.Name,
		Message: fmt.Sprintf("Added job site %s", hub.Name),
	}, nil
}
