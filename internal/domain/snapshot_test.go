package domain

import (
	"errors"
	"reflect"
	"testing"
)

func populatedDirectory(t *testing.T) *Directory {
	t.Helper()
	d := testDirectory(t)
	d.Place("Pat Miller", "Site A", SlotPM)
	d.Place("Jane Doe", "Site A", SlotForeman)
	d.Place("Amy Ohm", "Site A", SlotElectricians)
	d.Place("Ben Volt", "Site A", SlotElectricians)
	hub, _ := d.Hub("Site B")
	hub.ToggleCollapsed()
	d.SetScale(0.225)
	d.Pan = Transform{X: -120, Y: 40}
	return d
}

func TestSnapshotRoundTrip(t *testing.T) {
	d := populatedDirectory(t)

	restored, err := FromSnapshot(d.Snapshot())
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}

	if !reflect.DeepEqual(restored.Snapshot(), d.Snapshot()) {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", restored.Snapshot(), d.Snapshot())
	}

	// Roster order and collapse flags survive the trip.
	hub, _ := restored.Hub("Site A")
	roster := hub.Occupants(SlotElectricians)
	if len(roster) != 2 || roster[0] != "Amy Ohm" || roster[1] != "Ben Volt" {
		t.Errorf("restored roster = %v, want [Amy Ohm Ben Volt]", roster)
	}
	siteB, _ := restored.Hub("Site B")
	if !siteB.Collapsed {
		t.Error("collapsed flag lost in round-trip")
	}
	if restored.Scale != 0.225 || restored.Pan != (Transform{X: -120, Y: 40}) {
		t.Errorf("view transform lost: scale=%v pan=%+v", restored.Scale, restored.Pan)
	}
}

func TestFromSnapshotDefaults(t *testing.T) {
	s := &Snapshot{
		Employees: []SnapshotEmployee{
			{Name: "Jane Doe", Role: "Foreman"},
		},
		JobSites: []SnapshotSite{
			{Name: "Site A", X: 0, Y: 0, Width: 320, Height: 800},
		},
		// Scale, transform, collapsed, roster, status all absent.
	}

	d, err := FromSnapshot(s)
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}
	if d.Scale != 1.0 {
		t.Errorf("default scale = %v, want 1", d.Scale)
	}
	hub, _ := d.Hub("Site A")
	if hub.Collapsed {
		t.Error("absent collapsed flag defaulted to true")
	}
	if got := len(hub.Occupants(SlotElectricians)); got != 0 {
		t.Errorf("absent roster defaulted to %d entries", got)
	}
	emp, _ := d.Employee("Jane Doe")
	if emp.JobSite != UnassignedSite || emp.Status != StatusUnassigned {
		t.Errorf("employee defaults = %q/%q", emp.JobSite, emp.Status)
	}
}

func TestFromSnapshotRejectsDanglingReferences(t *testing.T) {
	tests := []struct {
		name string
		snap *Snapshot
	}{
		{
			name: "slot references unknown employee",
			snap: &Snapshot{
				JobSites: []SnapshotSite{{Name: "Site A", Foreman: "Ghost Person"}},
			},
		},
		{
			name: "roster references unknown employee",
			snap: &Snapshot{
				JobSites: []SnapshotSite{{Name: "Site A", Electricians: []string{"Ghost Person"}}},
			},
		},
		{
			name: "employee references unknown hub",
			snap: &Snapshot{
				Employees: []SnapshotEmployee{{Name: "Jane Doe", Role: "Foreman", JobSite: "Atlantis"}},
			},
		},
		{
			name: "employee placed in two hubs",
			snap: &Snapshot{
				Employees: []SnapshotEmployee{{Name: "Amy Ohm", Role: "Electrician", JobSite: "Site A"}},
				JobSites: []SnapshotSite{
					{Name: "Site A", Electricians: []string{"Amy Ohm"}},
					{Name: "Site B", Electricians: []string{"Amy Ohm"}},
				},
			},
		},
		{
			name: "fixed slot role mismatch",
			snap: &Snapshot{
				Employees: []SnapshotEmployee{{Name: "Amy Ohm", Role: "Electrician", JobSite: "Site A"}},
				JobSites:  []SnapshotSite{{Name: "Site A", PM: "Amy Ohm"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromSnapshot(tt.snap)
			if !errors.Is(err, ErrCorruptSnapshot) {
				t.Errorf("FromSnapshot error = %v, want ErrCorruptSnapshot", err)
			}
		})
	}
}
