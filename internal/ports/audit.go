package ports

import "planboard/internal/domain"

// AuditLog persists reconciliation records append-only. Entries are never
// mutated after the fact; rendering them is a collaborator's concern.
type AuditLog interface {
	// Append stores one run's records under a run identifier.
	Append(runID string, recs []domain.ReconciliationRecord) error

	// Recent returns the newest entries, most recent first.
	Recent(limit int) ([]domain.AuditEntry, error)

	Close() error
}
