package domain

import (
	"errors"
	"testing"
)

func testDirectory(t *testing.T) *Directory {
	t.Helper()
	d := NewDirectory()

	hubs := []Hub{
		{Name: "Site A", Anchor: Rect{0, 0, 320, 800}},
		{Name: "Site B", Anchor: Rect{400, 0, 320, 800}},
	}
	for _, h := range hubs {
		if _, err := d.AddHub(h); err != nil {
			t.Fatalf("AddHub(%s): %v", h.Name, err)
		}
	}

	emps := []Employee{
		{Name: "Jane Doe", Role: RoleForeman},
		{Name: "Pat Miller", Role: RolePM},
		{Name: "Amy Ohm", Role: RoleElectrician},
		{Name: "Ben Volt", Role: RoleRoughingElectrician},
	}
	for _, e := range emps {
		if _, err := d.AddEmployee(e); err != nil {
			t.Fatalf("AddEmployee(%s): %v", e.Name, err)
		}
	}
	return d
}

func TestPlaceEnforcesCrossHubExclusivity(t *testing.T) {
	d := testDirectory(t)

	if err := d.Place("Jane Doe", "Site A", SlotForeman); err != nil {
		t.Fatalf("Place into Site A: %v", err)
	}
	if err := d.Unassign("Jane Doe"); err != nil {
		t.Fatalf("Unassign: %v", err)
	}
	if err := d.Place("jane doe", "site b", SlotForeman); err != nil {
		t.Fatalf("Place into Site B: %v", err)
	}

	siteA, _ := d.Hub("Site A")
	if occ := siteA.Occupants(SlotForeman); len(occ) != 0 {
		t.Errorf("Site A foreman slot = %v, want empty", occ)
	}
	hub, slot, ok := d.SlotOf("Jane Doe")
	if !ok || hub.Name != "Site B" || slot != SlotForeman {
		t.Errorf("SlotOf = %v/%v/%v, want Site B foreman", hub, slot, ok)
	}

	emp, _ := d.Employee("Jane Doe")
	if emp.JobSite != "Site B" || emp.Status != StatusOnSite {
		t.Errorf("employee = %q/%q, want Site B/On-site", emp.JobSite, emp.Status)
	}
}

func TestPlaceMovesWithoutExplicitUnassign(t *testing.T) {
	d := testDirectory(t)

	if err := d.Place("Amy Ohm", "Site A", SlotElectricians); err != nil {
		t.Fatalf("first Place: %v", err)
	}
	if err := d.Place("Amy Ohm", "Site B", SlotElectricians); err != nil {
		t.Fatalf("second Place: %v", err)
	}

	siteA, _ := d.Hub("Site A")
	siteB, _ := d.Hub("Site B")
	if got := len(siteA.Occupants(SlotElectricians)); got != 0 {
		t.Errorf("Site A roster length = %d, want 0", got)
	}
	if got := siteB.Occupants(SlotElectricians); len(got) != 1 || got[0] != "Amy Ohm" {
		t.Errorf("Site B roster = %v, want [Amy Ohm]", got)
	}
}

func TestPlaceErrors(t *testing.T) {
	tests := []struct {
		name     string
		employee string
		hub      string
		slot     Slot
		want     error
	}{
		{"unknown employee", "Nobody Here", "Site A", SlotPM, ErrUnknownEmployee},
		{"unknown hub", "Jane Doe", "Site C", SlotForeman, ErrUnknownHub},
		{"role mismatch fixed", "Jane Doe", "Site A", SlotPM, ErrRoleMismatch},
		{"role mismatch roster", "Pat Miller", "Site A", SlotElectricians, ErrRoleMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDirectory(t)
			err := d.Place(tt.employee, tt.hub, tt.slot)
			if !errors.Is(err, tt.want) {
				t.Errorf("Place() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPlaceSecondPMFailsWithSlotOccupied(t *testing.T) {
	d := testDirectory(t)
	if _, err := d.AddEmployee(Employee{Name: "Paula Prime", Role: RolePM}); err != nil {
		t.Fatal(err)
	}

	if err := d.Place("Pat Miller", "Site A", SlotPM); err != nil {
		t.Fatalf("first PM placement: %v", err)
	}
	err := d.Place("Paula Prime", "Site A", SlotPM)
	if !errors.Is(err, ErrSlotOccupied) {
		t.Errorf("second PM placement error = %v, want ErrSlotOccupied", err)
	}

	// Rejected placement must leave the directory untouched.
	paula, _ := d.Employee("Paula Prime")
	if paula.JobSite != UnassignedSite {
		t.Errorf("Paula's site = %q, want %q", paula.JobSite, UnassignedSite)
	}
	hub, _, ok := d.SlotOf("Pat Miller")
	if !ok || hub.Name != "Site A" {
		t.Error("original occupant displaced by rejected placement")
	}
}

func TestExclusivityAcrossDirectory(t *testing.T) {
	d := testDirectory(t)
	d.Place("Amy Ohm", "Site A", SlotElectricians)
	d.Place("Ben Volt", "Site A", SlotElectricians)
	d.Place("Jane Doe", "Site B", SlotForeman)
	d.Place("Amy Ohm", "Site B", SlotElectricians)

	for _, emp := range d.Employees() {
		count := 0
		for _, hub := range d.Hubs() {
			if _, ok := hub.SlotOf(emp.Name); ok {
				count++
			}
		}
		if count > 1 {
			t.Errorf("employee %q occupies %d slots, want at most 1", emp.Name, count)
		}
	}
}

func TestAddDuplicates(t *testing.T) {
	d := testDirectory(t)

	if _, err := d.AddEmployee(Employee{Name: "JANE   DOE", Role: RolePM}); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("duplicate employee error = %v, want ErrDuplicateName", err)
	}
	if _, err := d.AddHub(Hub{Name: "site a"}); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("duplicate hub error = %v, want ErrDuplicateName", err)
	}
}

func TestAddBlankNames(t *testing.T) {
	d := NewDirectory()

	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := d.AddEmployee(Employee{Name: name, Role: RoleElectrician}); !errors.Is(err, ErrInvalidName) {
			t.Errorf("AddEmployee(%q) error = %v, want ErrInvalidName", name, err)
		}
		if _, err := d.AddHub(Hub{Name: name}); !errors.Is(err, ErrInvalidName) {
			t.Errorf("AddHub(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
	if len(d.Employees()) != 0 || len(d.Hubs()) != 0 {
		t.Error("rejected adds must not register anything")
	}
}

func TestRenameHub(t *testing.T) {
	d := testDirectory(t)
	d.Place("Jane Doe", "Site A", SlotForeman)

	if err := d.RenameHub("Site A", "Harbor Tower", "12 Dock Rd"); err != nil {
		t.Fatalf("RenameHub: %v", err)
	}

	hub, ok := d.Hub("harbor tower")
	if !ok {
		t.Fatal("renamed hub not found under new name")
	}
	if hub.Address != "12 Dock Rd" {
		t.Errorf("address = %q, want 12 Dock Rd", hub.Address)
	}
	if _, ok := d.Hub("Site A"); ok {
		t.Error("old name still resolves")
	}

	// Job-site references follow the rename.
	emp, _ := d.Employee("Jane Doe")
	if emp.JobSite != "Harbor Tower" {
		t.Errorf("employee site = %q, want Harbor Tower", emp.JobSite)
	}

	if err := d.RenameHub("Harbor Tower", "SITE B", ""); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("rename onto existing name error = %v, want ErrDuplicateName", err)
	}
	// Renaming a hub to a different casing of itself is allowed.
	if err := d.RenameHub("Harbor Tower", "HARBOR TOWER", ""); err != nil {
		t.Errorf("case-only rename failed: %v", err)
	}
}

func TestRemoveHubUnassignsOccupants(t *testing.T) {
	d := testDirectory(t)
	d.Place("Jane Doe", "Site A", SlotForeman)
	d.Place("Amy Ohm", "Site A", SlotElectricians)

	if err := d.RemoveHub("Site A"); err != nil {
		t.Fatalf("RemoveHub: %v", err)
	}
	if _, ok := d.Hub("Site A"); ok {
		t.Fatal("hub still present after removal")
	}
	for _, name := range []string{"Jane Doe", "Amy Ohm"} {
		emp, _ := d.Employee(name)
		if emp.JobSite != UnassignedSite {
			t.Errorf("%s site = %q, want %q", name, emp.JobSite, UnassignedSite)
		}
	}
}

func TestSetAssignmentClearsStaleSlots(t *testing.T) {
	d := testDirectory(t)
	d.Place("Jane Doe", "Site A", SlotForeman)

	// Reconciler-style move: reference changes, no slot placement.
	if err := d.SetAssignment("Jane Doe", "Site B", StatusOnSite); err != nil {
		t.Fatalf("SetAssignment: %v", err)
	}

	siteA, _ := d.Hub("Site A")
	if occ := siteA.Occupants(SlotForeman); len(occ) != 0 {
		t.Errorf("stale slot not cleared: %v", occ)
	}
	if _, _, ok := d.SlotOf("Jane Doe"); ok {
		t.Error("SetAssignment placed the employee in a slot")
	}

	// Sick with the site unchanged keeps the slot.
	d.Place("Jane Doe", "Site B", SlotForeman)
	if err := d.SetAssignment("Jane Doe", "Site B", StatusSick); err != nil {
		t.Fatal(err)
	}
	if _, _, ok := d.SlotOf("Jane Doe"); !ok {
		t.Error("slot cleared although the site did not change")
	}
}

func TestSetScale(t *testing.T) {
	d := NewDirectory()
	if err := d.SetScale(0); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("SetScale(0) error = %v, want ErrInvalidScale", err)
	}
	if err := d.SetScale(-1); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("SetScale(-1) error = %v, want ErrInvalidScale", err)
	}
	if err := d.SetScale(0.225); err != nil || d.Scale != 0.225 {
		t.Errorf("SetScale(0.225) = %v, scale %v", err, d.Scale)
	}
}
