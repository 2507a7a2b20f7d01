package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"planboard/internal/adapters/tui/styles"
	"planboard/internal/domain"
	"planboard/internal/ports"
)

// RosterKeyMap defines key bindings for the roster view
type RosterKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Status key.Binding
	Yank   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var RosterKeys = RosterKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Status: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "cycle status"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy name"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "b"),
		key.WithHelp("esc", "board"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// statusFilters cycles through with the s key. Empty means all.
var statusFilters = []domain.Status{"", domain.StatusOnSite, domain.StatusSick, domain.StatusUnassigned}

// RosterModel lists every employee with role, site and status, with a
// text filter and a status filter.
type RosterModel struct {
	store ports.BoardStore
	dir   *domain.Directory

	input     textinput.Model
	filtering bool
	statusIdx int
	filtered  []*domain.Employee

	cursor     int
	width      int
	height     int
	message    string
	messageErr bool
}

// NewRosterModel creates a new roster model
func NewRosterModel(store ports.BoardStore) *RosterModel {
	input := textinput.New()
	input.Placeholder = "filter by name, role or site..."
	input.CharLimit = 64
	return &RosterModel{store: store, input: input}
}

// Init initializes the roster view
func (m *RosterModel) Init() tea.Cmd {
	return m.loadRoster
}

func (m *RosterModel) loadRoster() tea.Msg {
	dir, err := m.store.Load()
	if err != nil {
		return errMsg{err}
	}
	return boardLoadedMsg{dir}
}

// Update handles messages for the roster view
func (m *RosterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case boardLoadedMsg:
		m.dir = msg.dir
		m.refreshFiltered()
		return m, nil

	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case tea.KeyMsg:
		m.message = ""

		if m.filtering {
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.input.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				m.refreshFiltered()
				return m, cmd
			}
		}

		switch {
		case key.Matches(msg, RosterKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, RosterKeys.Back):
			return m, func() tea.Msg {
				return SwitchToBoardMsg{}
			}

		case key.Matches(msg, RosterKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, RosterKeys.Down):
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, RosterKeys.Filter):
			m.filtering = true
			m.input.Focus()
			return m, textinput.Blink

		case key.Matches(msg, RosterKeys.Status):
			m.statusIdx = (m.statusIdx + 1) % len(statusFilters)
			m.refreshFiltered()
			return m, nil

		case key.Matches(msg, RosterKeys.Yank):
			if m.cursor >= 0 && m.cursor < len(m.filtered) {
				name := m.filtered[m.cursor].Name
				if err := clipboard.WriteAll(name); err != nil {
					m.message = err.Error()
					m.messageErr = true
				} else {
					m.message = fmt.Sprintf("Copied %q", name)
				}
			}
			return m, nil
		}
	}

	return m, nil
}

func (m *RosterModel) refreshFiltered() {
	m.filtered = nil
	if m.dir == nil {
		return
	}
	query := strings.ToLower(strings.TrimSpace(m.input.Value()))
	status := statusFilters[m.statusIdx]
	for _, emp := range m.dir.Employees() {
		if status != "" && emp.Status != status {
			continue
		}
		if query != "" && !matchesQuery(emp, query) {
			continue
		}
		m.filtered = append(m.filtered, emp)
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func matchesQuery(emp *domain.Employee, query string) bool {
	return strings.Contains(strings.ToLower(emp.Name), query) ||
		strings.Contains(strings.ToLower(string(emp.Role)), query) ||
		strings.Contains(strings.ToLower(emp.JobSite), query)
}

// View renders the roster
func (m *RosterModel) View() string {
	if m.dir == nil {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("Roster"))
	b.WriteString("\n")

	status := statusFilters[m.statusIdx]
	label := "all"
	if status != "" {
		label = string(status)
	}
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d of %d employees · status: %s", len(m.filtered), len(m.dir.Employees()), label)))
	b.WriteString("\n\n")

	if m.filtering || m.input.Value() != "" {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	for i, emp := range m.filtered {
		b.WriteString(m.renderRow(emp, i == m.cursor))
		b.WriteString("\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(styles.MutedText.Render("No matching employees."))
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
		{"/", "filter"},
		{"s", "cycle status"},
		{"y", "copy name"},
		{"esc", "board"},
		{"q", "quit"},
	}))

	return styles.App.Render(b.String())
}

func (m *RosterModel) renderRow(emp *domain.Employee, selected bool) string {
	text := fmt.Sprintf("%s %s %s",
		padRight(emp.Name, 24),
		padRight(string(emp.Role), 24),
		padRight(emp.JobSite, 20),
	)
	if selected {
		return styles.RowSelected.Render(text + string(emp.Status))
	}
	statusText := lipglossStatus(emp.Status)
	return text + statusText
}

func lipglossStatus(status domain.Status) string {
	return styles.MutedText.Foreground(styles.StatusColor(status)).Render(string(status))
}

// SetSize updates the view dimensions
func (m *RosterModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Reload re-reads the board document from disk
func (m *RosterModel) Reload() tea.Cmd {
	return m.loadRoster
}
