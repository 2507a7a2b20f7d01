package commands

import (
	"context"
	"fmt"
	"time"

	"planboard/internal/application"
	"planboard/internal/domain"
	"planboard/internal/ports"
)

// ReconcileResult contains everything a reconciliation run produced
type ReconcileResult struct {
	RunID   string
	Outcome domain.ReconcileResult
	Message string
}

// ReconcileCommand merges an attendance feed into the board: load the
// board, apply the feed, save atomically, then append the change log to
// the audit store. Feed-row problems are collected as diagnostics and
// never abort the batch.
type ReconcileCommand struct {
	store ports.BoardStore
	feed  ports.FeedSource
	audit ports.AuditLog // optional; nil skips audit persistence

	now func() time.Time
}

// NewReconcileCommand creates a new ReconcileCommand
func NewReconcileCommand(store ports.BoardStore, feed ports.FeedSource, audit ports.AuditLog) *ReconcileCommand {
	return &ReconcileCommand{
		store: store,
		feed:  feed,
		audit: audit,
		now:   time.Now,
	}
}

// Validate checks the command dependencies
func (c *ReconcileCommand) Validate() error {
	if c.store == nil {
		return &application.ValidationError{
			Field:   "store",
			Message: "board store is required",
		}
	}
	if c.feed == nil {
		return &application.ValidationError{
			Field:   "feed",
			Message: "feed source is required",
		}
	}
	return nil
}

// Execute runs the reconciliation
func (c *ReconcileCommand) Execute(ctx context.Context) (*ReconcileResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rows, err := c.feed.Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	dir, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	outcome := domain.Reconcile(dir, rows)

	if err := c.store.Save(dir); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	runID := c.now().UTC().Format("20060102T150405Z")
	if c.audit != nil && len(outcome.Records) > 0 {
		if err := c.audit.Append(runID, outcome.Records); err != nil {
			return nil, fmt.Errorf("board saved but audit append failed: %w", err)
		}
	}

	return &ReconcileResult{
		RunID:   runID,
		Outcome: outcome,
		Message: fmt.Sprintf("Processed %d rows: %d changes, %d unmatched",
			outcome.Rows, len(outcome.Records), len(outcome.Unmatched)),
	}, nil
}
