package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/widgetdeck/internal/calc"
	"github.com/tinytelemetry/widgetdeck/internal/tracker"
	"github.com/tinytelemetry/widgetdeck/internal/widget"
)

type jokesPage struct {
	spec     widget.Spec
	jokes    []calc.Joke
	rng      calc.Rand
	saved    *tracker.SavedJokes
	current  calc.Joke
	revealed bool

	listFocused bool
	cursor      int
	loaded      bool
	notice      string
	keys        KeyMap
}

func newJokesPage(spec widget.Spec, jokes []calc.Joke, rng calc.Rand, saved *tracker.SavedJokes) *jokesPage {
	p := &jokesPage{spec: spec, jokes: jokes, rng: rng, saved: saved, keys: DefaultKeyMap()}
	p.current = calc.PickJoke(rng, jokes)
	return p
}

func (p *jokesPage) ID() string    { return p.spec.ID }
func (p *jokesPage) Title() string { return p.spec.Title }

func (p *jokesPage) Hints() string {
	if p.listFocused {
		return "↑/↓ select  d delete  tab back"
	}
	return "space reveal  n next  s save  tab saved"
}

func (p *jokesPage) Init() tea.Cmd {
	if !p.loaded {
		p.saved.Load(context.Background())
		p.loaded = true
	}
	return nil
}

func (p *jokesPage) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	k := p.keys
	ctx := context.Background()

	if km.Type == tea.KeyTab {
		p.listFocused = !p.listFocused && len(p.saved.Items()) > 0
		p.cursor = 0
		return nil
	}

	if p.listFocused {
		n := len(p.saved.Items())
		switch {
		case key.Matches(km, k.Up):
			p.cursor = max(0, p.cursor-1)
		case key.Matches(km, k.Down):
			p.cursor = min(n-1, p.cursor+1)
		case key.Matches(km, k.Delete):
			if err := p.saved.Remove(ctx, p.cursor); err != nil {
				return reportErr(err)
			}
			n--
			p.cursor = max(0, min(p.cursor, n-1))
			if n == 0 {
				p.listFocused = false
			}
		}
		return nil
	}

	switch {
	case key.Matches(km, k.Toggle), key.Matches(km, k.Enter):
		p.revealed = true
	case key.Matches(km, k.Next):
		p.current = calc.PickJoke(p.rng, p.jokes)
		p.revealed = false
		p.notice = ""
	case key.Matches(km, k.Save):
		changed, err := p.saved.Save(ctx, p.current)
		if err != nil {
			return reportErr(err)
		}
		p.notice = "Already saved"
		if changed {
			p.notice = "Saved!"
		}
	}
	return nil
}

func (p *jokesPage) View(width, _ int) string {
	wrap := lipgloss.NewStyle().Width(max(20, width-2))
	parts := []string{
		pageHeader(p.spec.Title, p.spec.Description),
		wrap.Inherit(labelStyle).Bold(true).Render(p.current.Setup),
	}
	if p.revealed {
		parts = append(parts, wrap.Inherit(okStyle).Render(p.current.Punchline))
	} else {
		parts = append(parts, placeholderStyle.Render("Press space for the punchline"))
	}
	if p.notice != "" {
		parts = append(parts, hintStyle.Render(p.notice))
	}

	parts = append(parts, "", titleStyle.Render("Saved jokes"))
	saved := p.saved.Items()
	if len(saved) == 0 {
		parts = append(parts, placeholderStyle.Render("None yet, press s to save one"))
	}
	for i, j := range saved {
		line := "  " + j.Setup + " " + j.Punchline
		if p.listFocused && i == p.cursor {
			line = selectedStyle.Render("> " + j.Setup + " " + j.Punchline)
		}
		parts = append(parts, lipgloss.NewStyle().MaxWidth(width).Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
