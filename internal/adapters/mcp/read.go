package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"planboard/internal/application"
	"planboard/internal/domain"
	"planboard/internal/ports"
)

// RegisterReadTools adds all read-only board tools to the MCP server.
// The audit log may be nil when no audit database is configured.
func RegisterReadTools(s *server.MCPServer, store ports.BoardStore, audit ports.AuditLog) {
	s.AddTool(listSitesTool(), listSitesHandler(store))
	s.AddTool(siteRosterTool(), siteRosterHandler(store))
	s.AddTool(siteLayoutTool(), siteLayoutHandler(store))
	s.AddTool(findEmployeeTool(), findEmployeeHandler(store))
	s.AddTool(auditTailTool(), auditTailHandler(audit))
}

// --- list_sites ---

func listSitesTool() mcp.Tool {
	return mcp.NewTool("list_sites",
		mcp.WithDescription("List every job site on the board with its headcount."),
	)
}

func listSitesHandler(store ports.BoardStore) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir, err := store.Load()
		if err != nil {
			return toolError(err)
		}
		hubs := dir.Hubs()
		if len(hubs) == 0 {
			return mcp.NewToolResultText("No job sites."), nil
		}
		var sb strings.Builder
		for _, hub := range hubs {
			n := len(hub.Occupants(domain.SlotElectricians))
			for _, slot := range domain.FixedSlots {
				n += len(hub.Occupants(slot))
			}
			fmt.Fprintf(&sb, "%s  %s  %d assigned", hub.Name, hub.Address, n)
			if hub.Collapsed {
				sb.WriteString("  (collapsed)")
			}
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- site_roster ---

func siteRosterTool() mcp.Tool {
	return mcp.NewTool("site_roster",
		mcp.WithDescription("Show who holds each slot of a job site: PM, GM, Foreman, Super and the electrician roster."),
		mcp.WithString("site",
			mcp.Description("Job site name (case-insensitive)"),
			mcp.Required(),
		),
	)
}

func siteRosterHandler(store ports.BoardStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		site := req.GetString("site", "")
		if site == "" {
			return toolError(fmt.Errorf("site is required"))
		}
		dir, err := store.Load()
		if err != nil {
			return toolError(err)
		}
		hub, ok := dir.Hub(site)
		if !ok {
			return toolError(fmt.Errorf("unknown job site: %s", site))
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s  %s\n", hub.Name, hub.Address)
		for _, slot := range domain.FixedSlots {
			name := "-"
			if occ := hub.Occupants(slot); len(occ) > 0 {
				name = occ[0]
			}
			fmt.Fprintf(&sb, "%s: %s\n", slot, name)
		}
		roster := hub.Occupants(domain.SlotElectricians)
		fmt.Fprintf(&sb, "Electricians (%d):\n", len(roster))
		for _, name := range roster {
			fmt.Fprintf(&sb, "  %s\n", name)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- site_layout ---

func siteLayoutTool() mcp.Tool {
	return mcp.NewTool("site_layout",
		mcp.WithDescription("Show the derived geometry of a job site at the board's current scale: frame, slot boxes and occupant markers, in scaled board units."),
		mcp.WithString("site",
			mcp.Description("Job site name (case-insensitive)"),
			mcp.Required(),
		),
	)
}

func siteLayoutHandler(store ports.BoardStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		site := req.GetString("site", "")
		if site == "" {
			return toolError(fmt.Errorf("site is required"))
		}
		dir, err := store.Load()
		if err != nil {
			return toolError(err)
		}
		hub, ok := dir.Hub(site)
		if !ok {
			return toolError(fmt.Errorf("unknown job site: %s", site))
		}

		g := application.HubLayout(hub, dir.Scale)

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s at scale %g\n", hub.Name, dir.Scale)
		fmt.Fprintf(&sb, "frame: %s\n", formatRect(g.Frame))
		for _, sg := range g.Fixed {
			fmt.Fprintf(&sb, "%s: %s", sg.Slot, formatRect(sg.Box))
			if sg.Marker != nil {
				fmt.Fprintf(&sb, "  %s label (%g, %g)", sg.Marker.Employee, sg.Marker.Label.X, sg.Marker.Label.Y)
			}
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "roster box: %s\n", formatRect(g.Roster))
		for _, marker := range g.RosterMarkers {
			fmt.Fprintf(&sb, "  %s label (%g, %g)\n", marker.Employee, marker.Label.X, marker.Label.Y)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func formatRect(r application.Rect) string {
	return fmt.Sprintf("x=%g y=%g w=%g h=%g", r.X, r.Y, r.W, r.H)
}

// --- find_employee ---

func findEmployeeTool() mcp.Tool {
	return mcp.NewTool("find_employee",
		mcp.WithDescription("Find an employee by name and report their role, status, job site and slot."),
		mcp.WithString("name",
			mcp.Description("Employee name (case-insensitive, extra whitespace ignored)"),
			mcp.Required(),
		),
	)
}

func findEmployeeHandler(store ports.BoardStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		if name == "" {
			return toolError(fmt.Errorf("name is required"))
		}
		dir, err := store.Load()
		if err != nil {
			return toolError(err)
		}
		emp, ok := dir.Employee(name)
		if !ok {
			return toolError(fmt.Errorf("unknown employee: %s", name))
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "%s\nRole: %s\nStatus: %s\nJob site: %s\n", emp.Name, emp.Role, emp.Status, emp.JobSite)
		if hub, slot, ok := dir.SlotOf(emp.Name); ok {
			fmt.Fprintf(&sb, "Slot: %s at %s\n", slot, hub.Name)
		}
		if len(emp.Skills) > 0 {
			fmt.Fprintf(&sb, "Skills: %s\n", strings.Join(emp.Skills, ", "))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- audit_tail ---

func auditTailTool() mcp.Tool {
	return mcp.NewTool("audit_tail",
		mcp.WithDescription("Show the most recent reconciliation relocations, newest first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum entries to return (default 20)"),
		),
	)
}

func auditTailHandler(audit ports.AuditLog) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if audit == nil {
			return toolError(fmt.Errorf("no audit database configured"))
		}
		limit := req.GetInt("limit", 20)
		entries, err := audit.Recent(limit)
		if err != nil {
			return toolError(err)
		}
		if len(entries) == 0 {
			return mcp.NewToolResultText("No reconciliation runs recorded."), nil
		}
		var sb strings.Builder
		for _, e := range entries {
			fmt.Fprintf(&sb, "%s  %s  %s → %s  (run %s)\n",
				e.RecordedAt.Format("2006-01-02 15:04"), e.Employee, e.OldSite, e.NewSite, e.RunID)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
