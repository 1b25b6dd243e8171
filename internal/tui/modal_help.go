package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModal lists key bindings and the widget catalog.
type HelpModal struct {
	viewport           viewport.Model
	content            string
	reverseScrollWheel bool
}

func NewHelpModal(keys KeyMap, pages []Page, reverseScrollWheel bool) *HelpModal {
	return &HelpModal{
		viewport:           viewport.New(80, 20),
		content:            helpContent(keys, pages),
		reverseScrollWheel: reverseScrollWheel,
	}
}

var helpGroups = [...]string{"GLOBAL", "NAVIGATION", "WIDGET"}

func helpContent(keys KeyMap, pages []Page) string {
	var b strings.Builder
	b.WriteString("widgetdeck help\n")
	for i, group := range keys.FullHelp() {
		fmt.Fprintf(&b, "\n%s KEYS:\n", helpGroups[i])
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-12s - %s\n", h.Key, h.Desc)
		}
	}
	b.WriteString("\nWIDGETS:\n")
	for _, p := range pages {
		fmt.Fprintf(&b, "  %-20s %s\n", p.Title(), p.Hints())
	}
	b.WriteString("\nForm widgets marked reactive update as you type;\nthe others calculate when you press enter.\n")
	return b.String()
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			h.viewport.ScrollUp(1)
			return false, nil
		case "down", "j":
			h.viewport.ScrollDown(1)
			return false, nil
		case "pgup":
			h.viewport.HalfPageUp()
			return false, nil
		case "pgdown":
			h.viewport.HalfPageDown()
			return false, nil
		case "?", "esc", "q":
			return true, nil
		}
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(msg)
		return false, cmd

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return false, nil
		}
		up := msg.Button == tea.MouseButtonWheelUp
		down := msg.Button == tea.MouseButtonWheelDown
		if h.reverseScrollWheel {
			up, down = down, up
		}
		switch {
		case up:
			h.viewport.ScrollUp(1)
		case down:
			h.viewport.ScrollDown(1)
		}
	}
	return false, nil
}

func (h *HelpModal) View(width, height int) string {
	modalWidth := width - 8   // 4 chars margin on each side
	modalHeight := height - 4 // 2 lines margin top and bottom

	contentWidth := modalWidth - 4
	contentHeight := modalHeight - 4

	h.viewport.Width = contentWidth
	h.viewport.Height = contentHeight
	h.viewport.SetContent(lipgloss.NewStyle().Width(contentWidth).Render(h.content))

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Render(h.viewport.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render("Help")

	statusBar := hintStyle.Render("up/down/Wheel: Scroll | PgUp/PgDn: Page | ?/ESC: Close")

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}
