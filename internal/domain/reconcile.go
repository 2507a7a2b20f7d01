package domain

import (
	"fmt"
	"time"
)

// FeedRow is one row of the external attendance feed. Only these three
// fields are read from the extract.
type FeedRow struct {
	FirstName      string
	LastName       string
	JobDescription string
}

// ReconciliationRecord is one effective site transition, append-only and
// produced only by Reconcile. Status changes are not logged on their own;
// the audit need is "where did this person move".
type ReconciliationRecord struct {
	Employee string
	OldSite  string
	NewSite  string
}

// AuditEntry is a reconciliation record as persisted by an audit log.
type AuditEntry struct {
	ReconciliationRecord
	RunID      string
	RecordedAt time.Time
}

// Diagnostic is a structured, non-fatal note about a feed row or an
// employee the run could not act on. The caller chooses the sink.
type Diagnostic struct {
	Row      int // 1-based feed row, 0 for post-pass diagnostics
	Employee string
	Message  string
}

// ReconcileResult is everything a reconciliation run produced: the ordered
// change log, names needing operator review, and diagnostics.
type ReconcileResult struct {
	Records     []ReconciliationRecord
	Unmatched   []string
	Diagnostics []Diagnostic
	Rows        int // feed rows processed (valid names)
}

// Reconcile merges an attendance feed into the directory.
//
// Per row: the name is normalized and matched case-insensitively; the
// location label resolves to a hub, to the reserved Sick label, or falls
// back to Unassigned (recorded as unmatched, never fatal). The Sick label
// only applies to roles in the allowed-sick set. When the employee's
// (site, status) already equals the target the row is a no-op; otherwise
// the move is applied and logged. After all rows, directory employees in
// the allowed-sick set that the feed never mentioned are marked Sick in
// place. Running the same feed twice produces no further records.
//
// Reconcile never deletes employees and never invents job sites.
func Reconcile(d *Directory, rows []FeedRow) ReconcileResult {
	var res ReconcileResult
	seen := make(map[string]bool, len(rows))

	for i, row := range rows {
		rowNum := i + 1
		first := CleanName(row.FirstName)
		last := CleanName(row.LastName)
		if first == "" || last == "" {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Row:     rowNum,
				Message: "missing first or last name, row skipped",
			})
			continue
		}
		fullName := first + " " + last
		key := NameKey(fullName)
		seen[key] = true
		res.Rows++

		label := CleanName(row.JobDescription)
		if label == "" {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Row:      rowNum,
				Employee: fullName,
				Message:  "missing job description, row skipped",
			})
			continue
		}

		emp, ok := d.Employee(fullName)
		if !ok {
			res.Unmatched = append(res.Unmatched, fullName)
			continue
		}

		var targetSite string
		var targetStatus Status
		switch {
		case NameKey(label) == NameKey(SickLabel):
			if !emp.Role.AllowedSick() {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{
					Row:      rowNum,
					Employee: fullName,
					Message:  fmt.Sprintf("role %q may not be marked sick, row skipped", emp.Role),
				})
				continue
			}
			// Sick keeps the current site; only the status moves.
			targetSite = emp.JobSite
			targetStatus = StatusSick
		default:
			if hub, ok := d.Hub(label); ok {
				targetSite = hub.Name
			} else {
				targetSite = UnassignedSite
				res.Unmatched = append(res.Unmatched, fullName)
			}
			targetStatus = StatusOnSite
		}

		if NameKey(emp.JobSite) == NameKey(targetSite) && emp.Status == targetStatus {
			continue
		}
		oldSite := emp.JobSite
		if err := d.SetAssignment(emp.Name, targetSite, targetStatus); err != nil {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Row:      rowNum,
				Employee: fullName,
				Message:  err.Error(),
			})
			continue
		}
		res.Records = append(res.Records, ReconciliationRecord{
			Employee: emp.Name,
			OldSite:  oldSite,
			NewSite:  targetSite,
		})
	}

	// Anyone the feed never mentioned is absent today. Only roles tracked
	// for daily attendance get auto-marked; the rest are surfaced as
	// diagnostics and left alone.
	for _, emp := range d.Employees() {
		if seen[NameKey(emp.Name)] {
			continue
		}
		if !emp.Role.AllowedSick() {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Employee: emp.Name,
				Message:  fmt.Sprintf("absent from feed, role %q not auto-marked sick", emp.Role),
			})
			continue
		}
		if emp.Status == StatusSick {
			continue
		}
		site := emp.JobSite
		if err := d.SetAssignment(emp.Name, site, StatusSick); err != nil {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Employee: emp.Name,
				Message:  err.Error(),
			})
			continue
		}
		res.Records = append(res.Records, ReconciliationRecord{
			Employee: emp.Name,
			OldSite:  site,
			NewSite:  site,
		})
	}

	return res
}
