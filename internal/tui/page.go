package tui

import tea "github.com/charmbracelet/bubbletea"

// Page is one widget screen in the content area.
type Page interface {
	ID() string
	Title() string
	// Init runs every time the page becomes active.
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
	// Hints is the one-line key summary shown in the status line.
	Hints() string
}

// PageNav is returned by the sidebar to request a page switch.
type PageNav struct {
	PageID string
}

// statusMsg reports a failed store write to the status line.
type statusMsg struct {
	err error
}

func reportErr(err error) tea.Cmd {
	return func() tea.Msg { return statusMsg{err: err} }
}

// tickMsg is a timer tick addressed to one page. gen is the run generation
// that scheduled it; pages drop ticks from older runs.
type tickMsg struct {
	page string
	gen  int
}
