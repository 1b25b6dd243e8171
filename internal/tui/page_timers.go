package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/widgetdeck/internal/calc"
	"github.com/tinytelemetry/widgetdeck/internal/form"
	"github.com/tinytelemetry/widgetdeck/internal/widget"
)

const countdownInterval = time.Second

// scheduleTick emits one tickMsg for page after d.
func scheduleTick(page string, gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{page: page, gen: gen}
	})
}

type stopwatchPage struct {
	spec  widget.Spec
	watch *calc.Stopwatch
	keys  KeyMap
}

func newStopwatchPage(spec widget.Spec, interval time.Duration) *stopwatchPage {
	return &stopwatchPage{spec: spec, watch: calc.NewStopwatch(interval), keys: DefaultKeyMap()}
}

func (p *stopwatchPage) ID() string    { return p.spec.ID }
func (p *stopwatchPage) Title() string { return p.spec.Title }
func (p *stopwatchPage) Init() tea.Cmd { return nil }
func (p *stopwatchPage) Hints() string { return "space/enter start/stop  ctrl+r reset" }

func (p *stopwatchPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tickMsg:
		if p.watch.Tick(msg.gen) {
			return scheduleTick(p.spec.ID, msg.gen, p.watch.Interval())
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Toggle), key.Matches(msg, p.keys.Enter):
			if p.watch.Running() {
				p.watch.Stop()
				return nil
			}
			gen := p.watch.Start()
			return scheduleTick(p.spec.ID, gen, p.watch.Interval())
		case key.Matches(msg, p.keys.Reset):
			p.watch.Reset()
		}
	}
	return nil
}

func (p *stopwatchPage) View(_, _ int) string {
	state := "stopped"
	if p.watch.Running() {
		state = "running"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		pageHeader(p.spec.Title, p.spec.Description),
		okStyle.Render(calc.FormatElapsed(p.watch.Elapsed())),
		hintStyle.Render(state),
	)
}

type countdownPage struct {
	spec    widget.Spec
	form    *calc.CountdownForm
	inputs  fieldInputs
	timer   calc.Countdown
	message string
	keys    KeyMap
}

func newCountdownPage(spec widget.Spec) *countdownPage {
	f := &calc.CountdownForm{}
	return &countdownPage{spec: spec, form: f, inputs: newFieldInputs(f.Fields()), keys: DefaultKeyMap()}
}

func (p *countdownPage) ID() string    { return p.spec.ID }
func (p *countdownPage) Title() string { return p.spec.Title }
func (p *countdownPage) Init() tea.Cmd { return nil }
func (p *countdownPage) Hints() string { return "enter start/stop  ctrl+r reset" }

func (p *countdownPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tickMsg:
		if p.timer.Tick(msg.gen) {
			return scheduleTick(p.spec.ID, msg.gen, countdownInterval)
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Enter):
			if p.timer.Running() {
				p.timer.Stop()
				return nil
			}
			return p.start()
		case key.Matches(msg, p.keys.Reset):
			p.timer.Reset()
			p.form.Reset()
			p.inputs.sync()
			p.message = ""
		default:
			_, cmd := p.inputs.update(msg)
			return cmd
		}
	}
	return nil
}

func (p *countdownPage) start() tea.Cmd {
	seconds, ok := p.form.Validate().Value()
	if !ok {
		p.message = p.form.Validate().Reason()
		return nil
	}
	p.message = ""
	gen := p.timer.Start(seconds)
	return scheduleTick(p.spec.ID, gen, countdownInterval)
}

func formatSeconds(s int) string {
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s/60)%60, s%60)
}

func (p *countdownPage) View(_, _ int) string {
	var display string
	switch {
	case p.timer.Done():
		display = okStyle.Render("Time's up!")
	case p.timer.Running() || p.timer.Remaining() > 0:
		display = okStyle.Render(formatSeconds(p.timer.Remaining()))
	default:
		display = renderOutcome(form.Pending(), "Enter seconds and press enter")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		pageHeader(p.spec.Title, p.spec.Description),
		p.inputs.view(),
		"",
		display,
		inlineError(p.message),
	)
}
