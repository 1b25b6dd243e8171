package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/widgetdeck/internal/calc"
	"github.com/tinytelemetry/widgetdeck/internal/widget"
)

type ticTacToePage struct {
	spec    widget.Spec
	game    *calc.TicTacToe
	cursor  int
	message string
	keys    KeyMap
}

func newTicTacToePage(spec widget.Spec) *ticTacToePage {
	return &ticTacToePage{spec: spec, game: calc.NewTicTacToe(), cursor: 4, keys: DefaultKeyMap()}
}

func (p *ticTacToePage) ID() string    { return p.spec.ID }
func (p *ticTacToePage) Title() string { return p.spec.Title }
func (p *ticTacToePage) Init() tea.Cmd { return nil }
func (p *ticTacToePage) Hints() string { return "arrows move  enter/1-9 play  ctrl+r new game" }

func (p *ticTacToePage) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	k := p.keys
	switch {
	case key.Matches(km, k.Up):
		if p.cursor >= 3 {
			p.cursor -= 3
		}
	case key.Matches(km, k.Down):
		if p.cursor < 6 {
			p.cursor += 3
		}
	case key.Matches(km, k.Left):
		if p.cursor%3 > 0 {
			p.cursor--
		}
	case key.Matches(km, k.Right):
		if p.cursor%3 < 2 {
			p.cursor++
		}
	case key.Matches(km, k.Enter), key.Matches(km, k.Toggle):
		p.play(p.cursor)
	case key.Matches(km, k.Reset):
		p.game.Reset()
		p.message = ""
	default:
		if s := km.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			p.cursor = int(s[0] - '1')
			p.play(p.cursor)
		}
	}
	return nil
}

func (p *ticTacToePage) play(cell int) {
	p.message = ""
	if err := p.game.Play(cell); err != nil {
		if errors.Is(err, calc.ErrGameOver) {
			p.message = "Game over, press ctrl+r for a new game"
			return
		}
		p.message = err.Error()
	}
}

func (p *ticTacToePage) View(_, _ int) string {
	board := p.game.Board()
	var rows []string
	for r := 0; r < 3; r++ {
		cells := make([]string, 3)
		for c := 0; c < 3; c++ {
			i := r*3 + c
			cell := " " + board[i].String() + " "
			style := labelStyle
			if i == p.cursor && !p.game.Over() {
				style = selectedStyle.Reverse(true)
			}
			cells[c] = style.Render(cell)
		}
		rows = append(rows, strings.Join(cells, "│"))
		if r < 2 {
			rows = append(rows, "───┼───┼───")
		}
	}

	status := labelStyle.Render(p.game.Status())
	if p.game.Winner() != calc.Empty {
		status = okStyle.Render(p.game.Status())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		pageHeader(p.spec.Title, p.spec.Description),
		strings.Join(rows, "\n"),
		"",
		status,
		inlineError(p.message),
	)
}
