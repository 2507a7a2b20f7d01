package domain

import "errors"

// Sentinel errors for slot and directory operations. All of them except
// ErrCorruptSnapshot are local, recoverable conditions the caller may
// surface or skip; ErrCorruptSnapshot is fatal to a load attempt.
var (
	ErrRoleMismatch    = errors.New("role does not match slot")
	ErrSlotOccupied    = errors.New("slot already occupied")
	ErrUnknownEmployee = errors.New("unknown employee")
	ErrUnknownHub      = errors.New("unknown job site")
	ErrDuplicateName   = errors.New("duplicate name")
	ErrInvalidName     = errors.New("name must not be blank")
	ErrInvalidScale    = errors.New("scale must be positive")
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)
