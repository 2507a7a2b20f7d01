package domain

// Transform is the board's pan offset in unscaled units.
type Transform struct {
	X, Y float64
}

// Directory is the authoritative state of the whiteboard: every employee,
// every job-site hub, and the global view transform. It exclusively owns
// the Employee and Hub records; collaborators get read-only views.
//
// Mutation is single-writer and cooperative: run one mutating operation
// sequence to completion, then persist. Reads are side-effect free.
type Directory struct {
	employees map[string]*Employee // keyed by NameKey
	hubs      map[string]*Hub      // keyed by NameKey of the hub name

	// Insertion order, so snapshots and listings are deterministic and
	// round-trip exactly.
	employeeOrder []string
	hubOrder      []string

	Scale float64
	Pan   Transform
}

// NewDirectory returns an empty directory at scale 1.
func NewDirectory() *Directory {
	return &Directory{
		employees: make(map[string]*Employee),
		hubs:      make(map[string]*Hub),
		Scale:     1.0,
	}
}

// AddEmployee registers a new employee. The name is cleaned, the job site
// defaults to Unassigned, and a case-insensitive name collision fails with
// ErrDuplicateName. A name that cleans to nothing fails with
// ErrInvalidName.
func (d *Directory) AddEmployee(e Employee) (*Employee, error) {
	e.Name = CleanName(e.Name)
	key := NameKey(e.Name)
	if key == "" {
		return nil, ErrInvalidName
	}
	if _, exists := d.employees[key]; exists {
		return nil, ErrDuplicateName
	}
	if e.JobSite == "" {
		e.JobSite = UnassignedSite
	}
	if e.Status == "" {
		e.Status = StatusUnassigned
	}
	emp := &e
	d.employees[key] = emp
	d.employeeOrder = append(d.employeeOrder, key)
	return emp, nil
}

// AddHub registers a new job site. Site names are unique
// case-insensitively.
func (d *Directory) AddHub(h Hub) (*Hub, error) {
	h.Name = CleanName(h.Name)
	key := NameKey(h.Name)
	if key == "" {
		return nil, ErrInvalidName
	}
	if _, exists := d.hubs[key]; exists {
		return nil, ErrDuplicateName
	}
	hub := &h
	d.hubs[key] = hub
	d.hubOrder = append(d.hubOrder, key)
	return hub, nil
}

// Employee resolves a full name case-insensitively.
func (d *Directory) Employee(name string) (*Employee, bool) {
	e, ok := d.employees[NameKey(name)]
	return e, ok
}

// Hub resolves a job-site name case-insensitively.
func (d *Directory) Hub(name string) (*Hub, bool) {
	h, ok := d.hubs[NameKey(name)]
	return h, ok
}

// Employees returns all employees in insertion order.
func (d *Directory) Employees() []*Employee {
	out := make([]*Employee, 0, len(d.employeeOrder))
	for _, key := range d.employeeOrder {
		out = append(out, d.employees[key])
	}
	return out
}

// Hubs returns all job sites in insertion order.
func (d *Directory) Hubs() []*Hub {
	out := make([]*Hub, 0, len(d.hubOrder))
	for _, key := range d.hubOrder {
		out = append(out, d.hubs[key])
	}
	return out
}

// SlotOf finds the hub and slot currently holding the employee, if any.
// At most one hub can hold an employee at a time.
func (d *Directory) SlotOf(name string) (*Hub, Slot, bool) {
	for _, key := range d.hubOrder {
		h := d.hubs[key]
		if slot, ok := h.SlotOf(name); ok {
			return h, slot, true
		}
	}
	return nil, 0, false
}

// Place puts an employee into a slot of a hub, enforcing cross-hub
// exclusivity: any slot the employee occupies anywhere is cleared first.
// All checks happen before any state is written, so a rejected placement
// leaves the directory untouched.
func (d *Directory) Place(employeeName, hubName string, slot Slot) error {
	emp, ok := d.Employee(employeeName)
	if !ok {
		return ErrUnknownEmployee
	}
	hub, ok := d.Hub(hubName)
	if !ok {
		return ErrUnknownHub
	}

	if slot != SlotElectricians {
		want, ok := SlotForRole(emp.Role)
		if !ok || want != slot {
			return ErrRoleMismatch
		}
		if occ := hub.Occupants(slot); len(occ) == 1 && NameKey(occ[0]) != NameKey(emp.Name) {
			return ErrSlotOccupied
		}
	} else if !emp.Role.IsElectrician() {
		return ErrRoleMismatch
	}

	d.clearEverywhere(emp.Name)
	if err := hub.Assign(slot, emp); err != nil {
		return err
	}
	emp.JobSite = hub.Name
	emp.Status = StatusOnSite
	return nil
}

// Unassign clears the employee from wherever it sits and points it at the
// Unassigned sentinel. The employee record itself is kept.
func (d *Directory) Unassign(employeeName string) error {
	emp, ok := d.Employee(employeeName)
	if !ok {
		return ErrUnknownEmployee
	}
	d.clearEverywhere(emp.Name)
	emp.JobSite = UnassignedSite
	emp.Status = StatusUnassigned
	return nil
}

// SetAssignment updates an employee's site and status, clearing any slot
// the employee holds in a hub other than the target site. This is the
// mutation path the reconciler uses: it moves the directory reference but
// never places anyone into a slot.
func (d *Directory) SetAssignment(employeeName, site string, status Status) error {
	emp, ok := d.Employee(employeeName)
	if !ok {
		return ErrUnknownEmployee
	}
	siteKey := NameKey(site)
	for _, key := range d.hubOrder {
		h := d.hubs[key]
		if NameKey(h.Name) == siteKey {
			continue
		}
		h.ClearEmployee(emp.Name)
	}
	emp.JobSite = site
	emp.Status = status
	return nil
}

// RenameHub renames a job site, failing with ErrDuplicateName when the new
// name collides case-insensitively with a different hub. Employee job-site
// references follow the rename.
func (d *Directory) RenameHub(hubName, newName, newAddress string) error {
	hub, ok := d.Hub(hubName)
	if !ok {
		return ErrUnknownHub
	}
	newName = CleanName(newName)
	oldKey := NameKey(hub.Name)
	newKey := NameKey(newName)
	if newKey == "" {
		return ErrUnknownHub
	}
	if other, exists := d.hubs[newKey]; exists && other != hub {
		return ErrDuplicateName
	}

	for _, key := range d.employeeOrder {
		emp := d.employees[key]
		if NameKey(emp.JobSite) == oldKey {
			emp.JobSite = newName
		}
	}

	delete(d.hubs, oldKey)
	hub.Name = newName
	if newAddress != "" {
		hub.Address = newAddress
	}
	d.hubs[newKey] = hub
	for i, key := range d.hubOrder {
		if key == oldKey {
			d.hubOrder[i] = newKey
			break
		}
	}
	return nil
}

// RemoveHub deletes a job site, unassigning every employee that referenced
// it.
func (d *Directory) RemoveHub(hubName string) error {
	hub, ok := d.Hub(hubName)
	if !ok {
		return ErrUnknownHub
	}
	key := NameKey(hub.Name)
	for _, ekey := range d.employeeOrder {
		emp := d.employees[ekey]
		if NameKey(emp.JobSite) == key {
			hub.ClearEmployee(emp.Name)
			emp.JobSite = UnassignedSite
			emp.Status = StatusUnassigned
		}
	}
	delete(d.hubs, key)
	for i, hkey := range d.hubOrder {
		if hkey == key {
			d.hubOrder = append(d.hubOrder[:i], d.hubOrder[i+1:]...)
			break
		}
	}
	return nil
}

// SetScale sets the global zoom factor; it must be positive.
func (d *Directory) SetScale(scale float64) error {
	if scale <= 0 {
		return ErrInvalidScale
	}
	d.Scale = scale
	return nil
}

func (d *Directory) clearEverywhere(name string) {
	for _, key := range d.hubOrder {
		d.hubs[key].ClearEmployee(name)
	}
}
