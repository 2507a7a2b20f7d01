package ports

import "planboard/internal/domain"

// FeedSource supplies the external attendance extract as ordered rows.
// Sources must preserve row order; the reconciler's change log follows it.
type FeedSource interface {
	Rows() ([]domain.FeedRow, error)
}
