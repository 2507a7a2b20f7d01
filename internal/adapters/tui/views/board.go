package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"planboard/internal/adapters/tui/styles"
	"planboard/internal/domain"
	"planboard/internal/ports"
)

// BoardKeyMap defines key bindings for the board view
type BoardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Roster  key.Binding
	Audit   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var BoardKeys = BoardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "refresh"),
	),
	Roster: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "roster"),
	),
	Audit: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "audit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BoardModel renders the whiteboard: one card per job site showing who
// holds each slot. Cards and their contents come from the derived hub
// geometry, mapped to terminal cells: one card per frame in whiteboard
// order, one line per marker in marker order. The view is read-only;
// mutations go through the CLI.
type BoardModel struct {
	store ports.BoardStore
	dir   *domain.Directory

	// hubs in render order with their derived geometry
	hubs []hubCard

	cursor     int
	width      int
	height     int
	message    string
	messageErr bool
}

// hubCard pairs a hub with its geometry at the board's current scale
type hubCard struct {
	hub *domain.Hub
	geo domain.HubGeometry
}

// NewBoardModel creates a new board model
func NewBoardModel(store ports.BoardStore) *BoardModel {
	return &BoardModel{store: store}
}

// Init initializes the board view
func (m *BoardModel) Init() tea.Cmd {
	return m.loadBoard
}

func (m *BoardModel) loadBoard() tea.Msg {
	dir, err := m.store.Load()
	if err != nil {
		return errMsg{err}
	}
	return boardLoadedMsg{dir}
}

type boardLoadedMsg struct {
	dir *domain.Directory
}

type errMsg struct {
	err error
}

// Update handles messages for the board view
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case boardLoadedMsg:
		m.dir = msg.dir
		m.refreshCards()
		return m, nil

	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case tea.KeyMsg:
		m.message = ""

		switch {
		case key.Matches(msg, BoardKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BoardKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BoardKeys.Down):
			if m.cursor < len(m.hubs)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BoardKeys.Refresh):
			return m, m.Reload()

		case key.Matches(msg, BoardKeys.Roster):
			return m, func() tea.Msg {
				return SwitchToRosterMsg{}
			}

		case key.Matches(msg, BoardKeys.Audit):
			return m, func() tea.Msg {
				return SwitchToAuditMsg{}
			}

		case key.Matches(msg, BoardKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

// View renders the board
func (m *BoardModel) View() string {
	if m.dir == nil {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Planboard"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d job sites · scale %.3g", len(m.hubs), m.dir.Scale)))
	b.WriteString("\n\n")

	if len(m.hubs) == 0 {
		b.WriteString(styles.MutedText.Render("No job sites yet. Add one with the CLI."))
		b.WriteString("\n")
	}
	for i, card := range m.hubs {
		b.WriteString(m.renderHub(card, i == m.cursor))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		if m.messageErr {
			b.WriteString(styles.ErrorMsg.Render(m.message))
		} else {
			b.WriteString(styles.Success.Render(m.message))
		}
	}

	b.WriteString("\n")
	b.WriteString(renderHelpLine([]helpEntry{
		{"j/k", "navigate"},
		{"g", "refresh"},
		{"r", "roster"},
		{"a", "audit"},
		{"?", "help"},
		{"q", "quit"},
	}))

	return styles.App.Render(b.String())
}

// renderHub maps one hub's geometry onto terminal cells: each fixed-slot
// box becomes a line, each roster marker a line below the roster header,
// in the order the geometry emits them.
func (m *BoardModel) renderHub(card hubCard, selected bool) string {
	hub, g := card.hub, card.geo

	title := styles.HubName.Render(hub.Name)
	if hub.Address != "" {
		title += " " + styles.HubAddress.Render(hub.Address)
	}

	if hub.Collapsed {
		line := title + styles.HubCollapsed.Render(fmt.Sprintf("  (collapsed, %d assigned)", assignedCount(g)))
		if selected {
			return styles.HubCardSelected.Render(line)
		}
		return styles.HubCard.Render(line)
	}

	var lines []string
	lines = append(lines, title)
	for _, sg := range g.Fixed {
		var name string
		if sg.Marker != nil {
			name = sg.Marker.Employee
		}
		lines = append(lines, m.renderSlot(sg.Slot.String(), name))
	}
	lines = append(lines, styles.SlotLabel.Render("Electricians")+styles.MutedText.Render(fmt.Sprintf(" (%d)", len(g.RosterMarkers))))
	for _, marker := range g.RosterMarkers {
		lines = append(lines, "  "+m.renderEmployee(marker.Employee))
	}

	cardView := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if selected {
		return styles.HubCardSelected.Render(cardView)
	}
	return styles.HubCard.Render(cardView)
}

func (m *BoardModel) renderSlot(label, name string) string {
	line := styles.SlotLabel.Render(padRight(label, 10))
	if name == "" {
		return line + styles.SlotEmpty.Render("—")
	}
	return line + m.renderEmployee(name)
}

func (m *BoardModel) renderEmployee(name string) string {
	emp, ok := m.dir.Employee(name)
	if !ok {
		return name
	}
	dot := lipgloss.NewStyle().Foreground(styles.StatusColor(emp.Status)).Render("●")
	return fmt.Sprintf("%s %s", dot, emp.Name)
}

func assignedCount(g domain.HubGeometry) int {
	n := len(g.RosterMarkers)
	for _, sg := range g.Fixed {
		if sg.Marker != nil {
			n++
		}
	}
	return n
}

// refreshCards derives every hub's geometry at the current scale and
// orders the cards the way the hubs sit on the whiteboard: left to right
// by frame position, top to bottom within a column.
func (m *BoardModel) refreshCards() {
	m.hubs = nil
	if m.dir == nil {
		m.cursor = 0
		return
	}
	for _, hub := range m.dir.Hubs() {
		m.hubs = append(m.hubs, hubCard{hub: hub, geo: domain.HubLayout(hub, m.dir.Scale)})
	}
	sort.SliceStable(m.hubs, func(i, j int) bool {
		a, b := m.hubs[i].geo.Frame, m.hubs[j].geo.Frame
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	if m.cursor >= len(m.hubs) {
		m.cursor = len(m.hubs) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// SetSize updates the view dimensions
func (m *BoardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Reload re-reads the board document from disk
func (m *BoardModel) Reload() tea.Cmd {
	return m.loadBoard
}

type helpEntry struct {
	key  string
	desc string
}

func renderHelpLine(entries []helpEntry) string {
	var parts []string
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(e.key),
			styles.HelpDesc.Render(e.desc),
		))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// Messages for view switching
type SwitchToRosterMsg struct{}

type SwitchToAuditMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToBoardMsg struct{}
