package tui

import (
	"errors"
	"fmt"

	"github.com/tinytelemetry/widgetdeck/internal/calc"
	"github.com/tinytelemetry/widgetdeck/internal/tracker"
	"github.com/tinytelemetry/widgetdeck/internal/widget"
)

// BuildPages creates one page per registered widget, in catalog order.
func BuildPages(reg *widget.Registry, deps widget.Deps) ([]Page, error) {
	deps = deps.WithDefaults()
	if deps.KV == nil {
		return nil, errors.New("build pages: no key-value store")
	}
	env := tracker.Env{Now: deps.Now, Logger: deps.Logger}

	pages := make([]Page, 0, reg.Len())
	for _, spec := range reg.All() {
		var p Page
		switch spec.ID {
		case widget.IDTicTacToe:
			p = newTicTacToePage(spec)
		case widget.IDQuiz:
			p = newQuizPage(spec, calc.DefaultQuestions())
		case widget.IDStopwatch:
			p = newStopwatchPage(spec, deps.TickInterval)
		case widget.IDCountdown:
			p = newCountdownPage(spec)
		case widget.IDJokes:
			p = newJokesPage(spec, calc.DefaultJokes(), deps.Rand, tracker.NewSavedJokes(deps.KV, env))
		case widget.IDNotes:
			p = newNotesPage(spec, tracker.NewNotes(deps.KV, env))
		case widget.IDTodo:
			p = newTodoPage(spec, tracker.NewTodo(deps.KV, env))
		case widget.IDExpenses:
			p = newExpensesPage(spec, tracker.NewExpenses(deps.KV, env))
		case widget.IDMood:
			p = newMoodPage(spec, tracker.NewMood(deps.KV, env))
		default:
			if spec.Kind != widget.KindForm {
				return nil, fmt.Errorf("build pages: no page for widget %q", spec.ID)
			}
			p = newFormPage(spec, spec.NewForm(deps))
		}
		pages = append(pages, p)
	}
	return pages, nil
}

// New builds the deck App for every widget in reg.
func New(reg *widget.Registry, deps widget.Deps, opts Options) (*App, error) {
	pages, err := BuildPages(reg, deps)
	if err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = deps.Logger
	}
	if opts.Now == nil {
		opts.Now = deps.Now
	}
	return NewApp(pages, opts), nil
}
