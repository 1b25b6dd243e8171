package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 26

func (a *App) clampSidebarCursor() {
	if len(a.pages) == 0 {
		a.sidebarCursor = 0
		return
	}
	a.sidebarCursor = max(0, min(a.sidebarCursor, len(a.pages)-1))
}

// moveSidebarCursor moves the cursor and shows the page under it.
func (a *App) moveSidebarCursor(delta int) tea.Cmd {
	if len(a.pages) == 0 {
		return nil
	}
	a.sidebarCursor += delta
	a.clampSidebarCursor()
	return a.navigate(a.sidebarNav())
}

func (a *App) sidebarNav() *PageNav {
	if len(a.pages) == 0 {
		return nil
	}
	a.clampSidebarCursor()
	return &PageNav{PageID: a.pages[a.sidebarCursor].ID()}
}

func (a *App) buildSidebarLines() []string {
	lines := make([]string, 0, len(a.pages)+2)
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render("Widgets"), "")

	maxLabelWidth := sidebarWidth - 4
	for i, p := range a.pages {
		label := fmt.Sprintf("  %s", p.Title())
		if a.activePage == i {
			label = fmt.Sprintf("> %s", p.Title())
		}
		if len(label) > maxLabelWidth && maxLabelWidth > 3 {
			label = label[:maxLabelWidth-1] + "~"
		}
		if a.focus == focusSidebar && a.sidebarCursor == i {
			label = selectedStyle.Render(label)
		}
		lines = append(lines, label)
	}
	return lines
}

// renderSidebar renders widget navigation in the left sidebar.
func (a *App) renderSidebar(height int) string {
	style := lipgloss.NewStyle().
		Width(sidebarWidth-2).
		Height(height).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Padding(0, 1)

	if a.focus == focusSidebar {
		style = style.BorderForeground(ColorBlue)
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, a.buildSidebarLines()...))
}
