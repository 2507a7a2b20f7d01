package domain

import "fmt"

// Snapshot is the single persisted representation of the whole board:
// directory contents, per-hub occupancy and collapse flags, and the global
// view transform. There is no other database.
type Snapshot struct {
	Version   int                `json:"version,omitempty"`
	Employees []SnapshotEmployee `json:"employees"`
	JobSites  []SnapshotSite     `json:"job_sites"`
	Scale     float64            `json:"scale"`
	Transform [2]float64         `json:"canvas_transform"`

	// Kept for documents written by older clients; unused here.
	ScrollX float64 `json:"scroll_x,omitempty"`
	ScrollY float64 `json:"scroll_y,omitempty"`
}

// SnapshotEmployee is one employee record in the document.
type SnapshotEmployee struct {
	Name    string   `json:"name"`
	Role    string   `json:"role"`
	Skills  []string `json:"skills,omitempty"`
	JobSite string   `json:"job_site"`
	Status  string   `json:"current_status"`
}

// SnapshotSite is one hub record: identity, anchor geometry, collapse flag,
// and per-slot occupancy by employee name. Roster order in the document is
// the roster order on the board.
type SnapshotSite struct {
	Name         string   `json:"name"`
	Address      string   `json:"address,omitempty"`
	X            float64  `json:"x"`
	Y            float64  `json:"y"`
	Width        float64  `json:"width"`
	Height       float64  `json:"height"`
	Collapsed    bool     `json:"collapsed,omitempty"`
	PM           string   `json:"pm,omitempty"`
	GM           string   `json:"gm,omitempty"`
	Foreman      string   `json:"foreman,omitempty"`
	Super        string   `json:"super,omitempty"`
	Electricians []string `json:"electricians,omitempty"`
}

// Snapshot captures the directory into a document. Employees and sites
// appear in insertion order so that save/load round-trips byte-for-byte.
func (d *Directory) Snapshot() *Snapshot {
	s := &Snapshot{
		Scale:     d.Scale,
		Transform: [2]float64{d.Pan.X, d.Pan.Y},
		Employees: make([]SnapshotEmployee, 0, len(d.employeeOrder)),
		JobSites:  make([]SnapshotSite, 0, len(d.hubOrder)),
	}
	for _, emp := range d.Employees() {
		s.Employees = append(s.Employees, SnapshotEmployee{
			Name:    emp.Name,
			Role:    string(emp.Role),
			Skills:  emp.Skills,
			JobSite: emp.JobSite,
			Status:  string(emp.Status),
		})
	}
	for _, hub := range d.Hubs() {
		site := SnapshotSite{
			Name:         hub.Name,
			Address:      hub.Address,
			X:            hub.Anchor.X,
			Y:            hub.Anchor.Y,
			Width:        hub.Anchor.W,
			Height:       hub.Anchor.H,
			Collapsed:    hub.Collapsed,
			Electricians: hub.Occupants(SlotElectricians),
		}
		if occ := hub.Occupants(SlotPM); len(occ) == 1 {
			site.PM = occ[0]
		}
		if occ := hub.Occupants(SlotGM); len(occ) == 1 {
			site.GM = occ[0]
		}
		if occ := hub.Occupants(SlotForeman); len(occ) == 1 {
			site.Foreman = occ[0]
		}
		if occ := hub.Occupants(SlotSuper); len(occ) == 1 {
			site.Super = occ[0]
		}
		s.JobSites = append(s.JobSites, site)
	}
	return s
}

// FromSnapshot rebuilds a directory from a document. Absent optional fields
// default (missing scale becomes 1, missing roster is empty, missing status
// is Unassigned). A document whose occupancy references an employee or hub
// not present in that same document fails with ErrCorruptSnapshot, as does
// one that violates the slot invariants (role mismatch, double placement).
func FromSnapshot(s *Snapshot) (*Directory, error) {
	d := NewDirectory()
	if s.Scale > 0 {
		d.Scale = s.Scale
	}
	d.Pan = Transform{X: s.Transform[0], Y: s.Transform[1]}

	for _, rec := range s.Employees {
		emp := Employee{
			Name:    rec.Name,
			Role:    Role(CleanName(rec.Role)),
			Skills:  rec.Skills,
			Status:  Status(rec.Status),
			JobSite: rec.JobSite,
		}
		if _, err := d.AddEmployee(emp); err != nil {
			return nil, fmt.Errorf("%w: employee %q: %v", ErrCorruptSnapshot, rec.Name, err)
		}
	}

	for _, site := range s.JobSites {
		hub := Hub{
			Name:      site.Name,
			Address:   site.Address,
			Anchor:    Rect{site.X, site.Y, site.Width, site.Height},
			Collapsed: site.Collapsed,
		}
		if _, err := d.AddHub(hub); err != nil {
			return nil, fmt.Errorf("%w: job site %q: %v", ErrCorruptSnapshot, site.Name, err)
		}
	}

	// Rebuild occupancy through the slot model so every invariant is
	// enforced on the way in.
	for _, site := range s.JobSites {
		hub, _ := d.Hub(site.Name)
		fixed := [4]string{site.PM, site.GM, site.Foreman, site.Super}
		for _, slot := range FixedSlots {
			name := fixed[slot]
			if name == "" {
				continue
			}
			if err := d.restoreSlot(hub, slot, name); err != nil {
				return nil, err
			}
		}
		for _, name := range site.Electricians {
			if err := d.restoreSlot(hub, SlotElectricians, name); err != nil {
				return nil, err
			}
		}
	}

	// Every non-sentinel job-site reference must name a hub in the same
	// document.
	for _, emp := range d.Employees() {
		if emp.JobSite == "" {
			emp.JobSite = UnassignedSite
			continue
		}
		if NameKey(emp.JobSite) == NameKey(UnassignedSite) {
			continue
		}
		if _, ok := d.Hub(emp.JobSite); !ok {
			return nil, fmt.Errorf("%w: employee %q references unknown job site %q",
				ErrCorruptSnapshot, emp.Name, emp.JobSite)
		}
	}

	return d, nil
}

func (d *Directory) restoreSlot(hub *Hub, slot Slot, name string) error {
	emp, ok := d.Employee(name)
	if !ok {
		return fmt.Errorf("%w: job site %q slot %s references unknown employee %q",
			ErrCorruptSnapshot, hub.Name, slot, name)
	}
	if other, _, held := d.SlotOf(emp.Name); held {
		return fmt.Errorf("%w: employee %q placed in both %q and %q",
			ErrCorruptSnapshot, emp.Name, other.Name, hub.Name)
	}
	if err := hub.Assign(slot, emp); err != nil {
		return fmt.Errorf("%w: job site %q slot %s employee %q: %v",
			ErrCorruptSnapshot, hub.Name, slot, emp.Name, err)
	}
	return nil
}
