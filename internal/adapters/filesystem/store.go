package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"planboard/internal/domain"
	"planboard/internal/ports"
)

// Store implements ports.BoardStore on a single JSON document. The
// document is the only persisted representation of the board; writers
// replace it whole (last writer wins) and the write is atomic, so a
// concurrent reader never observes a half-written document.
type Store struct {
	path string

	// version of the document as last loaded; Save writes version+1.
	version int
}

// Ensure Store implements BoardStore
var _ ports.BoardStore = (*Store)(nil)

// NewStore creates a store for the given document path
func NewStore(path string) *Store {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return &Store{path: path}
}

// Path returns the document location
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted board. A missing file is not an error: the
// store initializes an empty document and returns an empty directory,
// so a fresh checkout works without a setup step.
func (s *Store) Load() (*domain.Directory, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		dir := domain.NewDirectory()
		if err := s.Save(dir); err != nil {
			return nil, fmt.Errorf("failed to initialize board at %s: %w", s.path, err)
		}
		return dir, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read board: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}

	dir, err := domain.FromSnapshot(&snap)
	if err != nil {
		return nil, err
	}
	s.version = snap.Version
	return dir, nil
}

// Save atomically replaces the document: marshal, write to a temporary
// file alongside the target, fsync, then rename into place. A crash
// mid-write leaves the previous document intact.
func (s *Store) Save(d *domain.Directory) error {
	snap := d.Snapshot()
	s.version++
	snap.Version = s.version

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode board: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create board directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write board: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to sync board: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace board: %w", err)
	}
	return nil
}
