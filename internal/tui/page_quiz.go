package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/widgetdeck/internal/calc"
	"github.com/tinytelemetry/widgetdeck/internal/widget"
)

type quizPage struct {
	spec   widget.Spec
	quiz   *calc.Quiz
	choice int
	keys   KeyMap
}

func newQuizPage(spec widget.Spec, questions []calc.Question) *quizPage {
	return &quizPage{spec: spec, quiz: calc.NewQuiz(questions), keys: DefaultKeyMap()}
}

func (p *quizPage) ID() string    { return p.spec.ID }
func (p *quizPage) Title() string { return p.spec.Title }
func (p *quizPage) Init() tea.Cmd { return nil }
func (p *quizPage) Hints() string { return "↑/↓ choose  enter answer/next  ctrl+r restart" }

func (p *quizPage) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	k := p.keys
	switch {
	case key.Matches(km, k.Reset):
		p.quiz.Restart()
		p.choice = 0
	case p.quiz.Finished():
		if key.Matches(km, k.Enter) {
			p.quiz.Restart()
			p.choice = 0
		}
	case key.Matches(km, k.Up):
		if !p.quiz.Answered() && p.choice > 0 {
			p.choice--
		}
	case key.Matches(km, k.Down):
		q, _ := p.quiz.Current()
		if !p.quiz.Answered() && p.choice < len(q.Choices)-1 {
			p.choice++
		}
	case key.Matches(km, k.Enter):
		if p.quiz.Answered() {
			_ = p.quiz.Next()
			p.choice = 0
			return nil
		}
		_, _ = p.quiz.Answer(p.choice)
	}
	return nil
}

func (p *quizPage) View(_, _ int) string {
	header := pageHeader(p.spec.Title, p.spec.Description)
	if p.quiz.Finished() {
		return lipgloss.JoinVertical(lipgloss.Left, header,
			okStyle.Render(fmt.Sprintf("You scored %d out of %d", p.quiz.Score(), p.quiz.Total())),
			"",
			hintStyle.Render("Press enter to play again"))
	}

	q, _ := p.quiz.Current()
	lines := []string{
		hintStyle.Render(fmt.Sprintf("Question %d of %d", p.quiz.Position(), p.quiz.Total())),
		labelStyle.Bold(true).Render(q.Prompt),
		"",
	}
	for i, c := range q.Choices {
		prefix := "  "
		style := labelStyle
		if i == p.choice {
			prefix = "> "
			style = selectedStyle
		}
		if p.quiz.Answered() && i == q.Answer {
			style = okStyle
		}
		lines = append(lines, style.Render(prefix+c))
	}
	lines = append(lines, "")
	if p.quiz.Answered() {
		if p.quiz.LastCorrect() {
			lines = append(lines, okStyle.Render("Correct!"))
		} else {
			lines = append(lines, errorStyle.Render("Wrong, the answer is "+q.Choices[q.Answer]))
		}
		lines = append(lines, hintStyle.Render("Press enter for the next question"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(lines, "\n"))
}
