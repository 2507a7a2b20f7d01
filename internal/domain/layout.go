package domain

// Layout constants, in unscaled board units. The slot stack and the roster
// box both scale uniformly with the view's zoom factor, so boxes never
// overlap regardless of scale.
const (
	SlotMargin     = 10.0 // inset from the hub frame, and gap between boxes
	SlotBoxHeight  = 70.0 // height of each fixed-slot box
	RosterHeight   = 730.0
	CollapsedStrip = 40.0 // roster box height when the hub is collapsed
	BadgeRadius    = 15.0 // role badge beside a fixed-slot occupant
	RosterBadge    = 10.0 // role badge beside a roster occupant
	RosterRowStep  = 40.0 // marker height (30) + padding (10) per occupant
	LabelInset     = 35.0 // occupant name label offset from a box corner
)

// Point is a coordinate in scaled board units.
type Point struct {
	X, Y float64
}

// Marker is the rendered position of one occupant: the name label anchor
// and the role badge box.
type Marker struct {
	Employee string
	Label    Point
	Badge    Rect
}

// SlotGeometry is one fixed slot's box plus its occupant marker, nil when
// the slot is empty.
type SlotGeometry struct {
	Slot   Slot
	Box    Rect
	Marker *Marker
}

// HubGeometry is the full derived geometry of one hub at a given scale.
// Roster markers appear in roster order; that order is the render order.
type HubGeometry struct {
	Frame         Rect
	Fixed         [4]SlotGeometry // indexed by SlotPM..SlotSuper
	Roster        Rect
	RosterMarkers []Marker
}

// HubLayout derives the on-screen geometry for a hub. It is a pure function
// of (anchor, scale, collapsed, occupancy): calling it twice with the same
// inputs yields identical rectangles, so it is safe to re-run on every
// occupancy or zoom change.
//
// The four fixed slots stack top-to-bottom inside the frame. The roster box
// is anchored to the hub's bottom edge: RosterHeight tall when expanded, a
// small CollapsedStrip when collapsed.
func HubLayout(h *Hub, scale float64) HubGeometry {
	a := h.Anchor
	g := HubGeometry{
		Frame: Rect{a.X * scale, a.Y * scale, a.W * scale, a.H * scale},
	}

	innerW := (a.W - 2*SlotMargin) * scale
	for i, slot := range FixedSlots {
		top := a.Y + SlotMargin + float64(i)*(SlotBoxHeight+SlotMargin)
		box := Rect{
			X: (a.X + SlotMargin) * scale,
			Y: top * scale,
			W: innerW,
			H: SlotBoxHeight * scale,
		}
		sg := SlotGeometry{Slot: slot, Box: box}
		if occ := h.Occupants(slot); len(occ) == 1 {
			sg.Marker = &Marker{
				Employee: occ[0],
				Label:    Point{box.X + LabelInset, box.Y},
				Badge: Rect{
					X: box.X + SlotMargin,
					Y: box.Y + 5,
					W: BadgeRadius * scale,
					H: BadgeRadius * scale,
				},
			}
		}
		g.Fixed[slot] = sg
	}

	bottom := a.Y + a.H
	if h.Collapsed {
		g.Roster = Rect{
			X: (a.X + SlotMargin) * scale,
			Y: (bottom - CollapsedStrip - SlotMargin) * scale,
			W: innerW,
			H: CollapsedStrip * scale,
		}
	} else {
		g.Roster = Rect{
			X: (a.X + SlotMargin) * scale,
			Y: (bottom - RosterHeight - SlotMargin) * scale,
			W: innerW,
			H: RosterHeight * scale,
		}
	}

	roster := h.Occupants(SlotElectricians)
	if len(roster) > 0 {
		g.RosterMarkers = make([]Marker, 0, len(roster))
		for i, name := range roster {
			y := g.Roster.Y + float64(i)*RosterRowStep*scale
			g.RosterMarkers = append(g.RosterMarkers, Marker{
				Employee: name,
				Label:    Point{g.Roster.X + LabelInset, y},
				Badge: Rect{
					X: g.Roster.X + SlotMargin,
					Y: y + 5,
					W: RosterBadge * scale,
					H: RosterBadge * scale,
				},
			})
		}
	}

	return g
}
