package commands

import (
	"context"
	"fmt"

	"planboard/internal/application"
	"planboard/internal/ports"
)

// RenameSiteResult contains the result of renaming a job site
type RenameSiteResult struct {
	OldName string
	NewName string
	Message string
}

// RenameSiteCommand renames a job site, optionally updating its address.
// Employee assignments follow the rename.
type RenameSiteCommand struct {
	store      ports.BoardStore
	Site       string
	NewName    string
	NewAddress string
}

// NewRenameSiteCommand creates a new RenameSiteCommand
func NewRenameSiteCommand(store ports.BoardStore, site, newName, newAddress string) *RenameSiteCommand {
	return &RenameSiteCommand{
		store:      store,
		Site:       site,
		NewName:    newName,
		NewAddress: newAddress,
	}
}

// Validate checks the command parameters
func (c *RenameSiteCommand) Validate() error {
	if c.Site == "" {
		return &application.ValidationError{
			Field:   "site",
			Message: "job site name is required",
		}
	}
	if c.NewName == "" {
		return &application.ValidationError{
			Field:   "newName",
			Message: "new name is required",
		}
	}
	return nil
}

// Execute runs the rename command
func (c *RenameSiteCommand) Execute(ctx context.Context) (*RenameSiteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dir, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	if err := dir.RenameHub(c.Site, c.NewName, c.NewAddress); err != nil {
		return nil, err
	}

	if err := c.store.Save(dir); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	return &RenameSiteResult{
		OldName: c.Site,
		NewName: c.NewName,
		Message: fmt.Sprintf("Renamed %s to %s", c.Site, c.NewName),
	}, nil
}
