package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth  = 60
	minHeight = 16
)

// contentWidth returns the width available for the page, accounting for the sidebar.
func (a *App) contentWidth() int {
	if a.sidebarVisible {
		return max(a.width-sidebarWidth, 30)
	}
	return a.width
}

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return "Initializing widgetdeck..."
	}

	if modal := a.TopModal(); modal != nil {
		return modal.View(a.width, a.height)
	}

	if a.width < minWidth || a.height < minHeight {
		return "Terminal too small. Resize to at least 60x16."
	}

	pageHeight := a.height - 3 // status line plus page border
	contentWidth := a.contentWidth()

	var body string
	if p := a.ActivePage(); p != nil {
		style := sectionStyle
		if a.focus == focusPage {
			style = activeSectionStyle
		}
		body = style.
			Width(contentWidth - 2).
			Height(pageHeight).
			Render(p.View(contentWidth-4, pageHeight))
	}

	contentArea := lipgloss.JoinVertical(lipgloss.Left, body, a.renderStatusLine(contentWidth))
	if !a.sidebarVisible {
		return contentArea
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, a.renderSidebar(a.height-2), contentArea)
}

// renderStatusLine shows key hints on the left and the latest store error
// (for errorTTL) on the right.
func (a *App) renderStatusLine(w int) string {
	base := lipgloss.NewStyle().Background(ColorNavy).Foreground(ColorWhite)

	a.help.Width = w
	left := a.help.View(a.keys)
	if a.focus == focusPage {
		if p := a.ActivePage(); p != nil {
			left = p.Hints() + "  esc back"
		}
	}

	var right string
	if a.lastError != "" && a.now().Sub(a.lastErrorAt) < errorTTL {
		right = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(lipgloss.Color("#FF6666")).
			Render("Save failed: " + a.lastError)
	}

	gap := w - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Too narrow: the error wins.
		if right != "" {
			return base.Width(w).Render(right)
		}
		return base.Width(w).Render(left)
	}
	return base.Width(w).Render(left + strings.Repeat(" ", gap) + right)
}

// newStatusHelp styles the short help to sit on the navy status line.
func newStatusHelp() help.Model {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = lipgloss.NewStyle().Background(ColorNavy).Foreground(ColorWhite).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Background(ColorNavy).Foreground(ColorWhite)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Background(ColorNavy)
	h.Styles.Ellipsis = lipgloss.NewStyle().Background(ColorNavy).Foreground(ColorWhite)
	return h
}

// StatusError returns the status line error, empty once it has expired.
func (a *App) StatusError() string {
	if a.lastError == "" || a.now().Sub(a.lastErrorAt) >= errorTTL {
		return ""
	}
	return a.lastError
}
