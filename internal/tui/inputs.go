package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/widgetdeck/internal/form"
)

// fieldInputs binds one textinput to each form.Field. Every keystroke that
// changes an input is written straight through the field's setter.
type fieldInputs struct {
	fields []form.Field
	inputs []textinput.Model
	focus  int // -1 when no input has focus
}

func newFieldInputs(fields []form.Field) fieldInputs {
	fi := fieldInputs{fields: fields, inputs: make([]textinput.Model, len(fields)), focus: -1}
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Placeholder
		ti.CharLimit = 512
		ti.Width = 32
		ti.SetValue(f.Get())
		fi.inputs[i] = ti
	}
	if len(fields) > 0 {
		fi.setFocus(0)
	}
	return fi
}

func (fi *fieldInputs) len() int { return len(fi.inputs) }

func (fi *fieldInputs) focused() bool { return fi.focus >= 0 && fi.focus < len(fi.inputs) }

// setFocus focuses input i; any i out of range blurs every input.
func (fi *fieldInputs) setFocus(i int) {
	for j := range fi.inputs {
		fi.inputs[j].Blur()
	}
	fi.focus = -1
	if i >= 0 && i < len(fi.inputs) {
		fi.focus = i
		fi.inputs[i].Focus()
	}
}

// move cycles focus by delta and wraps around.
func (fi *fieldInputs) move(delta int) {
	n := len(fi.inputs)
	if n == 0 {
		return
	}
	cur := fi.focus
	if cur < 0 {
		cur = 0
		delta = 0
	}
	fi.setFocus(((cur+delta)%n + n) % n)
}

// navigate handles tab, shift+tab and the arrow keys.
func (fi *fieldInputs) navigate(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		fi.move(1)
	case tea.KeyShiftTab, tea.KeyUp:
		fi.move(-1)
	default:
		return false
	}
	return true
}

// update forwards msg to the focused input and reports whether its value
// changed.
func (fi *fieldInputs) update(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !fi.focused() {
		return false, nil
	}
	before := fi.inputs[fi.focus].Value()
	var cmd tea.Cmd
	fi.inputs[fi.focus], cmd = fi.inputs[fi.focus].Update(msg)
	after := fi.inputs[fi.focus].Value()
	if after == before {
		return false, cmd
	}
	fi.fields[fi.focus].Set(after)
	return true, cmd
}

// sync reloads every input from its field, e.g. after a form Reset.
func (fi *fieldInputs) sync() {
	for i, f := range fi.fields {
		fi.inputs[i].SetValue(f.Get())
	}
}

// clear empties every input and field.
func (fi *fieldInputs) clear() {
	for i, f := range fi.fields {
		f.Set("")
		fi.inputs[i].SetValue("")
	}
}

func (fi *fieldInputs) view() string {
	rows := make([]string, 0, len(fi.inputs))
	for i, f := range fi.fields {
		label := labelStyle.Render(f.Label + ":")
		if i == fi.focus {
			label = selectedStyle.Render(f.Label + ":")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(20).Render(label), fi.inputs[i].View()))
	}
	return strings.Join(rows, "\n")
}
