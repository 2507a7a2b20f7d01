package ports

import "planboard/internal/domain"

// BoardStore is the single persisted representation of the whiteboard.
// Save must be atomic: a crash mid-write never leaves a reader with a
// truncated document. Mutating command sequences load, mutate, and save
// within one exclusive critical section.
type BoardStore interface {
	// Load reads the persisted board, initializing an empty one when no
	// document exists yet. A structurally broken or internally
	// inconsistent document fails with domain.ErrCorruptSnapshot.
	Load() (*domain.Directory, error)

	// Save atomically replaces the persisted document with the given
	// directory's snapshot.
	Save(d *domain.Directory) error

	// Path returns the location of the persisted document, for display.
	Path() string
}
