package application

import (
	"fmt"

	"planboard/internal/domain"
)

// Sentinel errors, re-exported from the domain for adapters that only
// import the application layer. Everything here except ErrCorruptSnapshot
// is a local, recoverable condition.
var (
	ErrRoleMismatch    = domain.ErrRoleMismatch
	ErrSlotOccupied    = domain.ErrSlotOccupied
	ErrUnknownEmployee = domain.ErrUnknownEmployee
	ErrUnknownHub      = domain.ErrUnknownHub
	ErrDuplicateName   = domain.ErrDuplicateName
	ErrInvalidName     = domain.ErrInvalidName
	ErrInvalidScale    = domain.ErrInvalidScale
	ErrCorruptSnapshot = domain.ErrCorruptSnapshot
)

// ValidationError represents a command parameter failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PlacementError wraps a refused placement with enough context to show an
// operator which move was rejected.
type PlacementError struct {
	Employee string
	Site     string
	Slot     string
	Err      error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("cannot place %s into %s/%s: %v", e.Employee, e.Site, e.Slot, e.Err)
}

func (e *PlacementError) Unwrap() error {
	return e.Err
}
