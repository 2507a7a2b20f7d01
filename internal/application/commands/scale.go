package commands

import (
	"context"
	"fmt"

	"planboard/internal/application"
	"planboard/internal/ports"
)

// ScaleResult contains the result of changing the board zoom
type ScaleResult struct {
	Scale   float64
	Message string
}

// ScaleCommand sets the global zoom factor for the whole board.
type ScaleCommand struct {
	store ports.BoardStore
	Scale float64
}

// NewScaleCommand creates a new ScaleCommand
func NewScaleCommand(store ports.BoardStore, scale float64) *ScaleCommand {
	return &ScaleCommand{store: store, Scale: scale}
}

// Validate checks the command parameters
func (c *ScaleCommand) Validate() error {
	if c.Scale <= 0 {
		return &application.ValidationError{
			Field:   "scale",
			Message: "scale must be positive",
		}
	}
	return nil
}

// Execute runs the scale command
func (c *ScaleCommand) Execute(ctx context.Context) (*ScaleResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dir, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	if err := dir.SetScale(c.Scale); err != nil {
		return nil, err
	}

	if err := c.store.Save(dir); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	return &ScaleResult{
		Scale:   c.Scale,
		Message: fmt.Sprintf("Board scale set to %g", c.Scale),
	}, nil
}
