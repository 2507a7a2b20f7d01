package commands

import (
	"context"
	"fmt"

	"planboard/internal/application"
	"planboard/internal/domain"
	"planboard/internal/ports"
)

// PlaceResult contains the result of placing an employee
type PlaceResult struct {
	Employee string
	Site     string
	Slot     domain.Slot
	Message  string
}

// PlaceCommand puts an employee into a slot of a job site, clearing any
// prior placement anywhere on the board first.
type PlaceCommand struct {
	store    ports.BoardStore
	Employee string
	Site     string
	Slot     string
}

// NewPlaceCommand creates a new PlaceCommand
func NewPlaceCommand(store ports.BoardStore, employee, site, slot string) *PlaceCommand {
	return &PlaceCommand{
		store:    store,
		Employee: employee,
		Site:     site,
		Slot:     slot,
	}
}

// Validate checks the command parameters
func (c *PlaceCommand) Validate() error {
	if c.Employee == "" {
		return &application.ValidationError{
			Field:   "employee",
			Message: "employee name is required",
		}
	}
	if c.Site == "" {
		return &application.ValidationError{
			Field:   "site",
			Message: "job site name is required",
		}
	}
	if _, ok := domain.ParseSlot(c.Slot); !ok {
		return &application.ValidationError{
			Field:   "slot",
			Message: fmt.Sprintf("unknown slot %q (want pm, gm, foreman, super, or electricians)", c.Slot),
		}
	}
	return nil
}

// Execute runs the place command
func (c *PlaceCommand) Execute(ctx context.Context) (*PlaceResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dir, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	slot, _ := domain.ParseSlot(c.Slot)
	if err := dir.Place(c.Employee, c.Site, slot); err != nil {
		return nil, &application.PlacementError{
			Employee: c.Employee,
			Site:     c.Site,
			Slot:     slot.String(),
			Err:      err,
		}
	}

	if err := c.store.Save(dir); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	return &PlaceResult{
		Employee: c.Employee,
		Site:     c.Site,
		Slot:     slot,
		Message:  fmt.Sprintf("Placed %s at %s (%s)", c.Employee, c.Site, slot),
	}, nil
}
