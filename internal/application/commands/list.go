package commands

import (
	"context"

	"planboard/internal/domain"
	"planboard/internal/ports"
)

// SiteSummary is one job site with its occupancy, for listings.
type SiteSummary struct {
	Name      string
	Address   string
	Collapsed bool
	PM        string
	GM        string
	Foreman   string
	Super     string
	Roster    []string
}

// ListSitesCommand lists all job sites with their occupancy
type ListSitesCommand struct {
	store ports.BoardStore
}

// NewListSitesCommand creates a new ListSitesCommand
func NewListSitesCommand(store ports.BoardStore) *ListSitesCommand {
	return &ListSitesCommand{store: store}
}

// Execute runs the list command
func (c *ListSitesCommand) Execute(ctx context.Context) ([]SiteSummary, error) {
	dir, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	var out []SiteSummary
	for _, hub := range dir.Hubs() {
		s := SiteSummary{
			Name:      hub.Name,
			Address:   hub.Address,
			Collapsed: hub.Collapsed,
			Roster:    hub.Occupants(domain.SlotElectricians),
		}
		if occ := hub.Occupants(domain.SlotPM); len(occ) == 1 {
			s.PM = occ[0]
		}
		if occ := hub.Occupants(domain.SlotGM); len(occ) == 1 {
			s.GM = occ[0]
		}
		if occ := hub.Occupants(domain.SlotForeman); len(occ) == 1 {
			s.Foreman = occ[0]
		}
		if occ := hub.Occupants(domain.SlotSuper); len(occ) == 1 {
			s.Super = occ[0]
		}
		out = append(out, s)
	}
	return out, nil
}

// ListEmployeesCommand lists employees, optionally filtered by status
type ListEmployeesCommand struct {
	store  ports.BoardStore
	Status string // empty means all
}

// NewListEmployeesCommand creates a new ListEmployeesCommand
func NewListEmployeesCommand(store ports.BoardStore, status string) *ListEmployeesCommand {
	return &ListEmployeesCommand{store: store, Status: status}
}

// Execute runs the list command
func (c *ListEmployeesCommand) Execute(ctx context.Context) ([]domain.Employee, error) {
	dir, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	var out []domain.Employee
	for _, emp := range dir.Employees() {
		if c.Status != "" && domain.NameKey(string(emp.Status)) != domain.NameKey(c.Status) {
			continue
		}
		out = append(out, *emp)
	}
	return out, nil
}
