package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"planboard/internal/adapters/tui/styles"
	"planboard/internal/domain"
	"planboard/internal/ports"
)

const auditPageSize = 25

// AuditKeyMap defines key bindings for the audit view
type AuditKeyMap struct {
	Refresh key.Binding
	More    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

var AuditKeys = AuditKeyMap{
	Refresh: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "refresh"),
	),
	More: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "load more"),
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

// AuditModel shows the tail of the reconciliation history, most recent
// first. Nil log means the audit database was not configured.
type AuditModel struct {
	log     ports.AuditLog
	entries []domain.AuditEntry
	limit   int

	width      int
	height     int
	message    string
	messageErr bool
}

// NewAuditModel creates a new audit model
func NewAuditModel(log ports.AuditLog) *AuditModel {
	return &AuditModel{log: log, limit: auditPageSize}
}

// Init initializes the audit view
func (m *AuditModel) Init() tea.Cmd {
	return m.loadEntries
}

func (m *AuditModel) loadEntries() tea.Msg {
	if m.log == nil {
		return auditLoadedMsg{nil}
	}
	entries, err := m.log.Recent(m.limit)
	if err != nil {
		return errMsg{err}
	}
	return auditLoadedMsg{entries}
}

type auditLoadedMsg struct {
	entries []domain.AuditEntry
}

// Update handles messages for the audit view
func (m *AuditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case auditLoadedMsg:
		m.entries = msg.entries
		return m, nil

	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case tea.KeyMsg:
		m.message = ""

		switch {
		case key.Matches(msg, AuditKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, AuditKeys.Back):
			return m, func() tea.Msg {
				return SwitchToBoardMsg{}
			}

		case key.Matches(msg, AuditKeys.Refresh):
			return m, m.loadEntries

		case key.Matches(msg, AuditKeys.More):
			m.limit += auditPageSize
			return m, m.loadEntries
		}
	}

	return m, nil
}

// View renders the audit tail
func (m *AuditModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Reconciliation History"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("last %d relocations", len(m.entries))))
	b.WriteString("\n\n")

	if m.log == nil {
		b.WriteString(styles.MutedText.Render("No audit database configured."))
		b.WriteString("\n")
	} else if len(m.entries) == 0 {
		b.WriteString(styles.MutedText.Render("No reconciliation runs recorded yet."))
		b.WriteString("\n")
	}

	var lastRun string
	for _, entry := range m.entries {
		if entry.RunID != lastRun {
			lastRun = entry.RunID
			b.WriteString(styles.InputLabel.Render(fmt.Sprintf("run %s", entry.RunID)))
			b.WriteString(styles.MutedText.Render("  " + entry.RecordedAt.Format("2006-01-02 15:04")))
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("  %s %s\n",
			padRight(entry.Employee, 24),
			styles.MutedText.Render(fmt.Sprintf("%s → %s", entry.OldSite, entry.NewSite)),
		))
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
		{"g", "refresh"},
		{"m", "load more"},
		{"esc", "board"},
		{"q", "quit"},
	}))

	return styles.App.Render(b.String())
}

// SetSize updates the view dimensions
func (m *AuditModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
