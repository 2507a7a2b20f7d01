package commands

import (
	"strings"
	"testing"

	"planboard/internal/domain"
)

// memStore keeps the board in memory for command tests, round-tripping
// through the snapshot on every load/save like a real store would.
type memStore struct {
	snap  *domain.Snapshot
	saves int
}

func newMemStore(t *testing.T, build func(d *domain.Directory)) *memStore {
	t.Helper()
	d := domain.NewDirectory()
	if build != nil {
		build(d)
	}
	return &memStore{snap: d.Snapshot()}
}

func (s *memStore) Load() (*domain.Directory, error) {
	return domain.FromSnapshot(s.snap)
}

func (s *memStore) Save(d *domain.Directory) error {
	s.snap = d.Snapshot()
	s.saves++
	return nil
}

func (s *memStore) Path() string { return "(memory)" }

type memFeed struct {
	rows []domain.FeedRow
}

func (f *memFeed) Rows() ([]domain.FeedRow, error) { return f.rows, nil }

type memAudit struct {
	runs    []string
	entries []domain.ReconciliationRecord
}

func (a *memAudit) Append(runID string, recs []domain.ReconciliationRecord) error {
	a.runs = append(a.runs, runID)
	a.entries = append(a.entries, recs...)
	return nil
}

func (a *memAudit) Recent(limit int) ([]domain.AuditEntry, error) { return nil, nil }
func (a *memAudit) Close() error                                  { return nil }

func buildBoard(d *domain.Directory) {
	d.AddHub(domain.Hub{Name: "Site A", Anchor: domain.Rect{X: 0, Y: 0, W: 320, H: 800}})
	d.AddHub(domain.Hub{Name: "Site B", Anchor: domain.Rect{X: 400, Y: 0, W: 320, H: 800}})
	d.AddEmployee(domain.Employee{Name: "Jane Doe", Role: domain.RoleForeman})
	d.AddEmployee(domain.Employee{Name: "Amy Ohm", Role: domain.RoleElectrician})
	d.AddEmployee(domain.Employee{Name: "Pat Miller", Role: domain.RolePM, JobSite: "Site A", Status: domain.StatusOnSite})
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
