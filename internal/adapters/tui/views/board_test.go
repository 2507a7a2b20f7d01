package views

import (
	"strings"
	"testing"

	"planboard/internal/domain"
)

func boardFixture(t *testing.T) *domain.Directory {
	t.Helper()
	d := domain.NewDirectory()
	// Inserted right-to-left: the view must reorder by board position.
	if _, err := d.AddHub(domain.Hub{Name: "West Yard", Anchor: domain.Rect{X: 400, Y: 0, W: 320, H: 800}}); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddHub(domain.Hub{Name: "East Dock", Anchor: domain.Rect{X: 0, Y: 0, W: 320, H: 800}}); err != nil {
		t.Fatal(err)
	}
	for _, e := range []domain.Employee{
		{Name: "Jane Doe", Role: domain.RoleForeman},
		{Name: "Amy Ohm", Role: domain.RoleElectrician},
		{Name: "Ben Volt", Role: domain.RoleElectrician},
	} {
		if _, err := d.AddEmployee(e); err != nil {
			t.Fatal(err)
		}
	}
	if err := d.Place("Jane Doe", "West Yard", domain.SlotForeman); err != nil {
		t.Fatal(err)
	}
	if err := d.Place("Amy Ohm", "West Yard", domain.SlotElectricians); err != nil {
		t.Fatal(err)
	}
	if err := d.Place("Ben Volt", "West Yard", domain.SlotElectricians); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestRefreshCardsFollowsWhiteboardOrder(t *testing.T) {
	m := NewBoardModel(nil)
	m.dir = boardFixture(t)
	m.refreshCards()

	if len(m.hubs) != 2 {
		t.Fatalf("cards = %d, want 2", len(m.hubs))
	}
	if m.hubs[0].hub.Name != "East Dock" || m.hubs[1].hub.Name != "West Yard" {
		t.Errorf("card order = %s, %s; want East Dock first (leftmost frame)",
			m.hubs[0].hub.Name, m.hubs[1].hub.Name)
	}
	// Geometry is derived at the board's scale.
	wantX := m.hubs[1].hub.Anchor.X * m.dir.Scale
	if m.hubs[1].geo.Frame.X != wantX {
		t.Errorf("frame X = %v, want %v", m.hubs[1].geo.Frame.X, wantX)
	}
}

func TestRenderHubFollowsMarkerOrder(t *testing.T) {
	m := NewBoardModel(nil)
	m.dir = boardFixture(t)
	m.refreshCards()

	card := m.hubs[1] // West Yard
	out := m.renderHub(card, false)

	jane := strings.Index(out, "Jane Doe")
	amy := strings.Index(out, "Amy Ohm")
	ben := strings.Index(out, "Ben Volt")
	if jane < 0 || amy < 0 || ben < 0 {
		t.Fatalf("missing occupants in card:\n%s", out)
	}
	// Fixed slots above the roster, roster rows in marker order.
	if !(jane < amy && amy < ben) {
		t.Errorf("render order jane=%d amy=%d ben=%d, want jane < amy < ben", jane, amy, ben)
	}
}

func TestRenderHubCollapsedShowsAssignedCount(t *testing.T) {
	m := NewBoardModel(nil)
	m.dir = boardFixture(t)
	hub, _ := m.dir.Hub("West Yard")
	hub.ToggleCollapsed()
	m.refreshCards()

	out := m.renderHub(m.hubs[1], false)
	if !strings.Contains(out, "3 assigned") {
		t.Errorf("collapsed card = %q, want assigned count 3", out)
	}
	if strings.Contains(out, "Amy Ohm") {
		t.Error("collapsed card must not list roster members")
	}
}
