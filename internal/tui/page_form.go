package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/widgetdeck/internal/form"
	"github.com/tinytelemetry/widgetdeck/internal/widget"
)

// formPage drives any form.Evaluator. Reactive forms re-evaluate on every
// edit; OnSubmit forms only when enter is pressed.
type formPage struct {
	spec    widget.Spec
	eval    form.Evaluator
	inputs  fieldInputs
	outcome form.Outcome
	keys    KeyMap
}

func newFormPage(spec widget.Spec, eval form.Evaluator) *formPage {
	return &formPage{
		spec:    spec,
		eval:    eval,
		inputs:  newFieldInputs(eval.Fields()),
		outcome: form.Pending(),
		keys:    DefaultKeyMap(),
	}
}

func (p *formPage) ID() string    { return p.spec.ID }
func (p *formPage) Title() string { return p.spec.Title }
func (p *formPage) Init() tea.Cmd { return nil }

func (p *formPage) Hints() string {
	if p.eval.Mode() == form.Reactive {
		return "tab next field  ctrl+r reset"
	}
	if p.inputs.len() == 0 {
		return "enter draw"
	}
	return "tab next field  enter calculate  ctrl+r reset"
}

func (p *formPage) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case p.inputs.navigate(km):
		return nil
	case key.Matches(km, p.keys.Enter):
		p.outcome = p.eval.Evaluate()
		return nil
	case key.Matches(km, p.keys.Reset):
		p.eval.Reset()
		p.inputs.sync()
		p.outcome = form.Pending()
		return nil
	}
	changed, cmd := p.inputs.update(km)
	if changed && p.eval.Mode() == form.Reactive {
		p.outcome = p.eval.Evaluate()
	}
	return cmd
}

func (p *formPage) placeholder() string {
	switch {
	case p.inputs.len() == 0:
		return "Press enter"
	case p.eval.Mode() == form.Reactive:
		return "Start typing to see the result"
	default:
		return "Press enter to calculate"
	}
}

func (p *formPage) View(width, _ int) string {
	parts := []string{pageHeader(p.spec.Title, p.spec.Description)}
	if p.inputs.len() > 0 {
		parts = append(parts, p.inputs.view(), "")
	}
	parts = append(parts, lipgloss.NewStyle().Width(width).Render(renderOutcome(p.outcome, p.placeholder())))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
