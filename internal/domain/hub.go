package domain

// Slot names a position within a hub. The four fixed slots hold at most one
// employee whose role matches the slot; the electricians slot is an ordered
// roster of electrician-family employees.
type Slot int

const (
	SlotPM Slot = iota
	SlotGM
	SlotForeman
	SlotSuper
	SlotElectricians
)

// FixedSlots lists the single-occupancy slots in their stacking order.
var FixedSlots = [4]Slot{SlotPM, SlotGM, SlotForeman, SlotSuper}

func (s Slot) String() string {
	switch s {
	case SlotPM:
		return "PM"
	case SlotGM:
		return "GM"
	case SlotForeman:
		return "Foreman"
	case SlotSuper:
		return "Super"
	case SlotElectricians:
		return "Electricians"
	}
	return "Unknown"
}

// SlotForRole returns the slot an employee with the given role belongs in.
func SlotForRole(r Role) (Slot, bool) {
	switch {
	case r == RolePM:
		return SlotPM, true
	case r == RoleGM:
		return SlotGM, true
	case r == RoleForeman:
		return SlotForeman, true
	case r == RoleSuper:
		return SlotSuper, true
	case r.IsElectrician():
		return SlotElectricians, true
	}
	return 0, false
}

// ParseSlot resolves a slot name (case-insensitive).
func ParseSlot(name string) (Slot, bool) {
	switch NameKey(name) {
	case "pm":
		return SlotPM, true
	case "gm":
		return SlotGM, true
	case "foreman":
		return SlotForeman, true
	case "super":
		return SlotSuper, true
	case "electricians", "electrician":
		return SlotElectricians, true
	}
	return 0, false
}

// Rect is an axis-aligned rectangle in board units.
type Rect struct {
	X, Y, W, H float64
}

// Hub is a job site's occupancy record plus its geometric anchor. Slot
// occupants are stored as canonical employee names; comparison is always
// via NameKey. Geometry is derived, never stored here (see layout.go).
type Hub struct {
	Name      string
	Address   string
	Anchor    Rect // unscaled board units
	Collapsed bool

	fixed        [4]string // indexed by SlotPM..SlotSuper; "" when empty
	electricians []string  // insertion order; this order is the render order
}

// NewHub creates an empty hub at the given anchor.
func NewHub(name, address string, anchor Rect) *Hub {
	return &Hub{Name: name, Address: address, Anchor: anchor}
}

// Assign places an employee into a slot.
//
// Fixed slots fail with ErrRoleMismatch when the employee's role does not
// match the slot, and with ErrSlotOccupied when someone else already holds
// it (the caller must clear first). The electricians slot accepts only
// electrician-family roles and appends in insertion order; re-adding an
// employee already present is a no-op.
func (h *Hub) Assign(slot Slot, e *Employee) error {
	if slot == SlotElectricians {
		if !e.Role.IsElectrician() {
			return ErrRoleMismatch
		}
		key := NameKey(e.Name)
		for _, name := range h.electricians {
			if NameKey(name) == key {
				return nil
			}
		}
		h.electricians = append(h.electricians, e.Name)
		return nil
	}

	want, ok := SlotForRole(e.Role)
	if !ok || want != slot {
		return ErrRoleMismatch
	}
	if cur := h.fixed[slot]; cur != "" && NameKey(cur) != NameKey(e.Name) {
		return ErrSlotOccupied
	}
	h.fixed[slot] = e.Name
	return nil
}

// Clear empties a fixed slot, or removes the named employee from the
// roster. Clearing an empty slot or an absent roster member is a no-op.
func (h *Hub) Clear(slot Slot, name string) {
	if slot != SlotElectricians {
		h.fixed[slot] = ""
		return
	}
	key := NameKey(name)
	for i, cur := range h.electricians {
		if NameKey(cur) == key {
			h.electricians = append(h.electricians[:i], h.electricians[i+1:]...)
			return
		}
	}
}

// Occupants returns the employees in a slot: zero or one name for fixed
// slots, the ordered roster for the electricians slot. The returned slice
// is a copy.
func (h *Hub) Occupants(slot Slot) []string {
	if slot == SlotElectricians {
		out := make([]string, len(h.electricians))
		copy(out, h.electricians)
		return out
	}
	if h.fixed[slot] == "" {
		return nil
	}
	return []string{h.fixed[slot]}
}

// SlotOf returns the slot currently holding the named employee, if any.
func (h *Hub) SlotOf(name string) (Slot, bool) {
	key := NameKey(name)
	for _, s := range FixedSlots {
		if h.fixed[s] != "" && NameKey(h.fixed[s]) == key {
			return s, true
		}
	}
	for _, cur := range h.electricians {
		if NameKey(cur) == key {
			return SlotElectricians, true
		}
	}
	return 0, false
}

// ClearEmployee removes the named employee from whatever slot holds it,
// reporting whether anything changed. The directory calls this on every
// status or assignment change so no slot keeps a dangling reference.
func (h *Hub) ClearEmployee(name string) bool {
	slot, ok := h.SlotOf(name)
	if !ok {
		return false
	}
	h.Clear(slot, name)
	return true
}

// ToggleCollapsed flips the collapsed flag. Pure state flip: occupancy is
// untouched, and geometry consumers must re-derive layout afterward.
func (h *Hub) ToggleCollapsed() {
	h.Collapsed = !h.Collapsed
}
