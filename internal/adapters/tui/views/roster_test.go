package views

import (
	"testing"

	"planboard/internal/domain"
)

func rosterFixture(t *testing.T) *domain.Directory {
	t.Helper()
	d := domain.NewDirectory()
	if _, err := d.AddHub(domain.Hub{Name: "Site A"}); err != nil {
		t.Fatal(err)
	}
	for _, e := range []domain.Employee{
		{Name: "Jane Doe", Role: domain.RoleForeman},
		{Name: "Amy Ohm", Role: domain.RoleElectrician},
		{Name: "Pat Miller", Role: domain.RolePM},
	} {
		if _, err := d.AddEmployee(e); err != nil {
			t.Fatal(err)
		}
	}
	if err := d.Place("Jane Doe", "Site A", domain.SlotForeman); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestRefreshFilteredByStatus(t *testing.T) {
	m := NewRosterModel(nil)
	m.dir = rosterFixture(t)

	m.refreshFiltered()
	if len(m.filtered) != 3 {
		t.Fatalf("unfiltered = %d, want 3", len(m.filtered))
	}

	// Cycle to On-site: only Jane was placed.
	m.statusIdx = 1
	m.refreshFiltered()
	if len(m.filtered) != 1 || m.filtered[0].Name != "Jane Doe" {
		t.Errorf("on-site filter = %+v, want only Jane Doe", m.filtered)
	}

	// Unassigned: the other two.
	m.statusIdx = 3
	m.refreshFiltered()
	if len(m.filtered) != 2 {
		t.Errorf("unassigned filter = %d entries, want 2", len(m.filtered))
	}
}

func TestRefreshFilteredByQuery(t *testing.T) {
	m := NewRosterModel(nil)
	m.dir = rosterFixture(t)

	m.input.SetValue("ohm")
	m.refreshFiltered()
	if len(m.filtered) != 1 || m.filtered[0].Name != "Amy Ohm" {
		t.Errorf("name query = %+v, want Amy Ohm", m.filtered)
	}

	// Role and site match too.
	m.input.SetValue("foreman")
	m.refreshFiltered()
	if len(m.filtered) != 1 || m.filtered[0].Name != "Jane Doe" {
		t.Errorf("role query = %+v, want Jane Doe", m.filtered)
	}

	m.input.SetValue("site a")
	m.refreshFiltered()
	if len(m.filtered) != 1 || m.filtered[0].Name != "Jane Doe" {
		t.Errorf("site query = %+v, want Jane Doe", m.filtered)
	}
}

func TestRefreshFilteredClampsCursor(t *testing.T) {
	m := NewRosterModel(nil)
	m.dir = rosterFixture(t)
	m.refreshFiltered()
	m.cursor = 2

	m.input.SetValue("ohm")
	m.refreshFiltered()
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want clamped to 0", m.cursor)
	}
}
