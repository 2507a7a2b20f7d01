package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"planboard/internal/domain"
	"planboard/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// AuditLog implements ports.AuditLog using SQLite. Records are append-only:
// nothing here updates or deletes a relocation once written.
type AuditLog struct {
	db   *sql.DB
	path string
}

// Ensure AuditLog implements the port
var _ ports.AuditLog = (*AuditLog)(nil)

// Open initializes the audit database at the given path
func Open(path string) (*AuditLog, error) {
	// Expand ~ in path
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create audit directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open audit database: %w", err)
	}

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS relocations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			employee TEXT NOT NULL,
			old_site TEXT NOT NULL,
			new_site TEXT NOT NULL,
			recorded_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			ran_at INTEGER NOT NULL,
			changes INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_relocations_run ON relocations(run_id);
		CREATE INDEX IF NOT EXISTS idx_relocations_employee ON relocations(employee);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup audit database: %w", err)
	}

	if _, err := db.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`,
		schemaVersion,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &AuditLog{db: db, path: path}, nil
}

// Close closes the database connection
func (a *AuditLog) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Append stores one reconciliation run's records in order
func (a *AuditLog) Append(runID string, recs []domain.ReconciliationRecord) error {
	tx, err := a.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin audit transaction: %w", err)
	}

	now := time.Now().Unix()
	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO runs (run_id, ran_at, changes) VALUES (?, ?, ?)`,
		runID, now, len(recs),
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record run: %w", err)
	}

	for _, rec := range recs {
		if _, err := tx.Exec(`
			INSERT INTO relocations (run_id, employee, old_site, new_site, recorded_at)
			VALUES (?, ?, ?, ?, ?)
		`, runID, rec.Employee, rec.OldSite, rec.NewSite, now); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record relocation: %w", err)
		}
	}

	return tx.Commit()
}

// Recent returns the newest entries, most recent first
func (a *AuditLog) Recent(limit int) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := a.db.Query(`
		SELECT run_id, employee, old_site, new_site, recorded_at
		FROM relocations
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	var out []domain.AuditEntry
	for rows.Next() {
		var entry domain.AuditEntry
		var ts int64
		if err := rows.Scan(&entry.RunID, &entry.Employee, &entry.OldSite, &entry.NewSite, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entry.RecordedAt = time.Unix(ts, 0)
		out = append(out, entry)
	}
	return out, rows.Err()
}
