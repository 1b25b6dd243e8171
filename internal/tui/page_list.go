package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/widgetdeck/internal/form"
	"github.com/tinytelemetry/widgetdeck/internal/model"
	"github.com/tinytelemetry/widgetdeck/internal/tracker"
	"github.com/tinytelemetry/widgetdeck/internal/widget"
)

// listPageConfig plugs one tracker into listPage.
type listPageConfig struct {
	fields []form.Field
	load   func(ctx context.Context)
	submit func(ctx context.Context) error
	remove func(ctx context.Context, i int) error
	toggle func(ctx context.Context, i int) error // optional
	rows   func() []string
	footer func() string // optional
	empty  string
}

// listPage is an entry form above a persisted list. Tab moves focus
// between the form and the list.
type listPage struct {
	spec        widget.Spec
	cfg         listPageConfig
	inputs      fieldInputs
	cursor      int
	listFocused bool
	loaded      bool
	message     string
	keys        KeyMap
}

func newListPage(spec widget.Spec, cfg listPageConfig) *listPage {
	return &listPage{spec: spec, cfg: cfg, inputs: newFieldInputs(cfg.fields), keys: DefaultKeyMap()}
}

func (p *listPage) ID() string    { return p.spec.ID }
func (p *listPage) Title() string { return p.spec.Title }

// Init loads the persisted list the first time the page is shown.
func (p *listPage) Init() tea.Cmd {
	if !p.loaded {
		p.cfg.load(context.Background())
		p.loaded = true
	}
	return nil
}

func (p *listPage) Hints() string {
	if !p.listFocused {
		return "enter add  tab list"
	}
	if p.cfg.toggle != nil {
		return "↑/↓ select  space toggle  d delete  tab form"
	}
	return "↑/↓ select  d delete  tab form"
}

func (p *listPage) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case km.Type == tea.KeyTab:
		p.toggleFocus()
		return nil
	case p.listFocused:
		return p.updateList(km)
	case p.inputs.navigate(km):
		return nil
	case key.Matches(km, p.keys.Enter):
		err := p.cfg.submit(context.Background())
		if err == nil {
			p.inputs.clear()
			p.inputs.setFocus(0)
		}
		return p.apply(err)
	}
	_, cmd := p.inputs.update(km)
	return cmd
}

func (p *listPage) toggleFocus() {
	if p.listFocused {
		p.listFocused = false
		p.inputs.setFocus(0)
		return
	}
	if len(p.cfg.rows()) == 0 {
		return
	}
	p.listFocused = true
	p.inputs.setFocus(-1)
	p.clampCursor()
}

func (p *listPage) updateList(km tea.KeyMsg) tea.Cmd {
	n := len(p.cfg.rows())
	ctx := context.Background()
	switch {
	case key.Matches(km, p.keys.Up):
		p.cursor = max(0, p.cursor-1)
	case key.Matches(km, p.keys.Down):
		p.cursor = min(n-1, p.cursor+1)
	case key.Matches(km, p.keys.Delete):
		if n == 0 {
			return nil
		}
		cmd := p.apply(p.cfg.remove(ctx, p.cursor))
		p.clampCursor()
		if len(p.cfg.rows()) == 0 {
			p.toggleFocus()
		}
		return cmd
	case key.Matches(km, p.keys.Toggle):
		if p.cfg.toggle == nil || n == 0 {
			return nil
		}
		return p.apply(p.cfg.toggle(ctx, p.cursor))
	}
	return nil
}

func (p *listPage) clampCursor() {
	p.cursor = max(0, min(p.cursor, len(p.cfg.rows())-1))
}

// apply shows validation errors inline and sends store errors to the
// status line. The tracker has already kept its last good state.
func (p *listPage) apply(err error) tea.Cmd {
	p.message = ""
	if err == nil {
		return nil
	}
	if form.IsValidation(err) {
		p.message = err.Error()
		return nil
	}
	return reportErr(err)
}

func (p *listPage) View(width, height int) string {
	parts := []string{
		pageHeader(p.spec.Title, p.spec.Description),
		p.inputs.view(),
		inlineError(p.message),
		"",
	}

	rows := p.cfg.rows()
	if len(rows) == 0 {
		parts = append(parts, placeholderStyle.Render(p.cfg.empty))
	}
	visible := max(1, height-len(p.cfg.fields)-8)
	start := 0
	if p.cursor >= visible {
		start = p.cursor - visible + 1
	}
	for i := start; i < len(rows) && i < start+visible; i++ {
		line := "  " + rows[i]
		if p.listFocused && i == p.cursor {
			line = selectedStyle.Render("> " + rows[i])
		}
		parts = append(parts, lipgloss.NewStyle().MaxWidth(width).Render(line))
	}
	if p.cfg.footer != nil {
		parts = append(parts, "", labelStyle.Bold(true).Render(p.cfg.footer()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func newNotesPage(spec widget.Spec, notes *tracker.Notes) *listPage {
	var draft string
	return newListPage(spec, listPageConfig{
		fields: []form.Field{{
			Name: "text", Label: "New note", Placeholder: "Write something",
			Get: func() string { return draft }, Set: func(v string) { draft = v },
		}},
		load:   notes.Load,
		submit: func(ctx context.Context) error { return notes.Add(ctx, draft) },
		remove: notes.Remove,
		rows: func() []string {
			return rowsOf(notes.Items(), func(n model.Note) string {
				return hintStyle.Render(n.CreatedAt.Local().Format("Jan 02 15:04")) + "  " + n.Text
			})
		},
		empty: "No notes yet",
	})
}

func newTodoPage(spec widget.Spec, todo *tracker.Todo) *listPage {
	var draft string
	return newListPage(spec, listPageConfig{
		fields: []form.Field{{
			Name: "title", Label: "New task", Placeholder: "Water the plants",
			Get: func() string { return draft }, Set: func(v string) { draft = v },
		}},
		load:   todo.Load,
		submit: func(ctx context.Context) error { return todo.Add(ctx, draft) },
		remove: todo.Remove,
		toggle: todo.Toggle,
		rows: func() []string {
			return rowsOf(todo.Items(), func(t model.Task) string {
				if t.Done {
					return "[x] " + lipgloss.NewStyle().Strikethrough(true).Render(t.Title)
				}
				return "[ ] " + t.Title
			})
		},
		footer: func() string { return fmt.Sprintf("%d remaining", todo.Remaining()) },
		empty:  "Nothing to do",
	})
}

func newExpensesPage(spec widget.Spec, expenses *tracker.Expenses) *listPage {
	var f tracker.ExpenseForm
	return newListPage(spec, listPageConfig{
		fields: f.Fields(),
		load:   expenses.Load,
		submit: func(ctx context.Context) error {
			draft, ok := f.Validate().Value()
			if !ok {
				return f.Validate().Err()
			}
			return expenses.Add(ctx, draft)
		},
		remove: expenses.Remove,
		rows: func() []string {
			return rowsOf(expenses.Items(), func(e model.Expense) string {
				return fmt.Sprintf("%10.2f  %s", e.Amount, e.Description)
			})
		},
		footer: func() string { return fmt.Sprintf("Total: %.2f", expenses.Total()) },
		empty:  "No expenses logged",
	})
}

func rowsOf[T any](items []T, format func(T) string) []string {
	rows := make([]string, len(items))
	for i, it := range items {
		rows[i] = strings.TrimRight(format(it), " ")
	}
	return rows
}
