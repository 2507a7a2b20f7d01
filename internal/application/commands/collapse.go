package commands

import (
	"context"
	"fmt"

	"planboard/internal/application"
	"planboard/internal/ports"
)

// CollapseResult contains the result of toggling a hub's collapsed flag
type CollapseResult struct {
	Site      string
	Collapsed bool
	Message   string
}

// CollapseCommand flips a job site's collapsed flag. Occupancy is
// untouched; viewers re-derive layout from the saved state.
type CollapseCommand struct {
	store ports.BoardStore
	Site  string
}

// NewCollapseCommand creates a new CollapseCommand
func NewCollapseCommand(store ports.BoardStore, site string) *CollapseCommand {
	return &CollapseCommand{store: store, Site: site}
}

// Validate checks the command parameters
func (c *CollapseCommand) Validate() error {
	if c.Site == "" {
		return &application.ValidationError{
			Field:   "site",
			Message: "job site name is required",
		}
	}
	return nil
}

// Execute runs the collapse command
func (c *CollapseCommand) Execute(ctx context.Context) (*CollapseResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dir, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	hub, ok := dir.Hub(c.Site)
	if !ok {
		return nil, application.ErrUnknownHub
	}
	hub.ToggleCollapsed()

	if err := c.store.Save(dir); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	state := "expanded"
	if hub.Collapsed {
		state = "collapsed"
	}
	return &CollapseResult{
		Site:      hub.Name,
		Collapsed: hub.Collapsed,
		Message:   fmt.Sprintf("%s is now %s", hub.Name, state),
	}, nil
}
