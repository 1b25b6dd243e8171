package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type focusArea int

const (
	focusSidebar focusArea = iota
	focusPage
)

// errorTTL is how long a store error stays on the status line.
const errorTTL = 30 * time.Second

// Options tune the App.
type Options struct {
	ReverseScrollWheel bool
	Logger             *zap.Logger
	Now                func() time.Time
}

// App is the top-level Bubble Tea model: a widget sidebar on the left and
// the active widget page on the right.
type App struct {
	modalStack

	pages      []Page
	byID       map[string]int
	activePage int
	focus      focusArea

	sidebarCursor  int
	sidebarVisible bool

	keys   KeyMap
	help   help.Model
	width  int
	height int

	// Last store error for status line display.
	lastError   string
	lastErrorAt time.Time

	reverseScrollWheel bool
	logger             *zap.Logger
	now                func() time.Time
}

// NewApp creates an App over pages. The first page is the default.
func NewApp(pages []Page, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	byID := make(map[string]int, len(pages))
	for i, p := range pages {
		byID[p.ID()] = i
	}
	return &App{
		pages:              pages,
		byID:               byID,
		sidebarVisible:     true,
		keys:               DefaultKeyMap(),
		help:               newStatusHelp(),
		reverseScrollWheel: opts.ReverseScrollWheel,
		logger:             opts.Logger,
		now:                opts.Now,
	}
}

func (a *App) Init() tea.Cmd {
	if p := a.ActivePage(); p != nil {
		return p.Init()
	}
	return nil
}

// ActivePage returns the page shown in the content area.
func (a *App) ActivePage() Page {
	if a.activePage < 0 || a.activePage >= len(a.pages) {
		return nil
	}
	return a.pages[a.activePage]
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKeyPress(msg)

	case tea.MouseMsg:
		return a, a.handleMouse(msg)

	case statusMsg:
		a.lastError = msg.err.Error()
		a.lastErrorAt = a.now()
		a.logger.Error("store write failed", zap.Error(msg.err))
		return a, nil

	case tickMsg:
		// Ticks reach their page even when it is not on screen.
		if i, ok := a.byID[msg.page]; ok {
			return a, a.pages[i].Update(msg)
		}
		return a, nil
	}

	if p := a.ActivePage(); p != nil {
		return a, p.Update(msg)
	}
	return a, nil
}

// handleKeyPress dispatches key events: modal stack first, then the
// sidebar or the focused page.
func (a *App) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.keys.ForceQuit) {
		return tea.Quit
	}

	if modal := a.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			a.PopModal()
		}
		return cmd
	}

	if key.Matches(msg, a.keys.ToggleSidebar) {
		a.sidebarVisible = !a.sidebarVisible
		if !a.sidebarVisible {
			a.focus = focusPage
		}
		return nil
	}

	if a.focus == focusPage {
		if key.Matches(msg, a.keys.Back) && a.sidebarVisible {
			a.focus = focusSidebar
			return nil
		}
		if p := a.ActivePage(); p != nil {
			return p.Update(msg)
		}
		return nil
	}

	k := a.keys
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Help):
		a.PushModal(NewHelpModal(a.keys, a.pages, a.reverseScrollWheel))
	case key.Matches(msg, k.Up):
		return a.moveSidebarCursor(-1)
	case key.Matches(msg, k.Down):
		return a.moveSidebarCursor(1)
	case key.Matches(msg, k.Enter), key.Matches(msg, k.Right), key.Matches(msg, k.NextField):
		cmd := a.navigate(a.sidebarNav())
		a.focus = focusPage
		return cmd
	}
	return nil
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if modal := a.TopModal(); modal != nil {
		_, cmd := modal.Update(msg)
		return cmd
	}
	if msg.Action != tea.MouseActionPress || a.focus != focusSidebar {
		return nil
	}
	delta := 0
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		delta = -1
	case tea.MouseButtonWheelDown:
		delta = 1
	default:
		return nil
	}
	if a.reverseScrollWheel {
		delta = -delta
	}
	return a.moveSidebarCursor(delta)
}

// navigate switches to nav.PageID and runs the new page's Init.
func (a *App) navigate(nav *PageNav) tea.Cmd {
	if nav == nil {
		return nil
	}
	i, ok := a.byID[nav.PageID]
	if !ok {
		return nil
	}
	if i == a.activePage {
		return nil
	}
	a.activePage = i
	a.sidebarCursor = i
	return a.pages[i].Init()
}
