package application

import "planboard/internal/domain"

// Re-export domain types for use by adapters
type (
	Employee             = domain.Employee
	Hub                  = domain.Hub
	Directory            = domain.Directory
	Slot                 = domain.Slot
	Role                 = domain.Role
	Status               = domain.Status
	Rect                 = domain.Rect
	HubGeometry          = domain.HubGeometry
	Marker               = domain.Marker
	FeedRow              = domain.FeedRow
	ReconcileResult      = domain.ReconcileResult
	ReconciliationRecord = domain.ReconciliationRecord
	AuditEntry           = domain.AuditEntry
)

const (
	SlotPM           = domain.SlotPM
	SlotGM           = domain.SlotGM
	SlotForeman      = domain.SlotForeman
	SlotSuper        = domain.SlotSuper
	SlotElectricians = domain.SlotElectricians

	UnassignedSite = domain.UnassignedSite
)

// ParseSlot resolves a slot name case-insensitively.
func ParseSlot(name string) (Slot, bool) {
	return domain.ParseSlot(name)
}

// HubLayout derives the on-screen geometry for a hub at a given scale.
func HubLayout(h *Hub, scale float64) HubGeometry {
	return domain.HubLayout(h, scale)
}
