package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"planboard/internal/adapters/tui/views"
	"planboard/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBoard ViewState = iota
	ViewRoster
	ViewAudit
	ViewHelp
)

// App is the main TUI application model
type App struct {
	store ports.BoardStore
	audit ports.AuditLog

	state  ViewState
	board  *views.BoardModel
	roster *views.RosterModel
	log    *views.AuditModel
	help   *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application. The audit log may be nil, in
// which case the history view shows a hint instead.
func NewApp(store ports.BoardStore, audit ports.AuditLog) *App {
	return &App{
		store:  store,
		audit:  audit,
		state:  ViewBoard,
		board:  views.NewBoardModel(store),
		roster: views.NewRosterModel(store),
		log:    views.NewAuditModel(audit),
		help:   views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.board.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.board.SetSize(msg.Width, msg.Height)
		a.roster.SetSize(msg.Width, msg.Height)
		a.log.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToRosterMsg:
		a.state = ViewRoster
		return a, a.roster.Init()

	case views.SwitchToAuditMsg:
		a.state = ViewAudit
		return a, a.log.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBoardMsg:
		a.state = ViewBoard
		return a, a.board.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBoard:
		_, cmd = a.board.Update(msg)
	case ViewRoster:
		_, cmd = a.roster.Update(msg)
	case ViewAudit:
		_, cmd = a.log.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewRoster:
		return a.roster.View()
	case ViewAudit:
		return a.log.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.board.View()
	}
}
