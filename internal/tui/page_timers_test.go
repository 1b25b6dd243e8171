package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/widgetdeck/internal/calc"
	"github.com/tinytelemetry/widgetdeck/internal/widget"
)

func TestStopwatchPage_DropsStaleTicks(t *testing.T) {
	t.Parallel()

	p := newStopwatchPage(spec(t, widget.IDStopwatch), 100*time.Millisecond)
	if cmd := p.Update(keyOf(tea.KeySpace)); cmd == nil {
		t.Fatal("start should schedule a tick")
	}
	p.Update(tickMsg{page: p.ID(), gen: 1})
	p.Update(tickMsg{page: p.ID(), gen: 1})

	p.Update(keyOf(tea.KeySpace)) // stop
	if cmd := p.Update(tickMsg{page: p.ID(), gen: 1}); cmd != nil {
		t.Fatal("tick after stop should not reschedule")
	}
	if got := p.watch.Elapsed(); got != 200*time.Millisecond {
		t.Fatalf("Elapsed() = %v, want 200ms", got)
	}

	p.Update(keyOf(tea.KeyEnter)) // restart with generation 3
	p.Update(tickMsg{page: p.ID(), gen: 1})
	if got := p.watch.Elapsed(); got != 200*time.Millisecond {
		t.Fatalf("stale tick counted: Elapsed() = %v", got)
	}
	if !strings.Contains(p.View(60, 20), "00:00.2") {
		t.Fatalf("view = %q", p.View(60, 20))
	}

	p.Update(keyOf(tea.KeyCtrlR))
	if p.watch.Running() || p.watch.Elapsed() != 0 {
		t.Fatal("reset should stop and zero the watch")
	}
}

func TestCountdownPage_RunsToZero(t *testing.T) {
	t.Parallel()

	p := newCountdownPage(spec(t, widget.IDCountdown))
	typeInto(p, "2")
	if cmd := p.Update(keyOf(tea.KeyEnter)); cmd == nil {
		t.Fatal("start should schedule a tick")
	}
	if !strings.Contains(p.View(60, 20), "00:00:02") {
		t.Fatalf("view = %q", p.View(60, 20))
	}

	if cmd := p.Update(tickMsg{page: p.ID(), gen: 1}); cmd == nil {
		t.Fatal("countdown should keep ticking above zero")
	}
	if cmd := p.Update(tickMsg{page: p.ID(), gen: 1}); cmd != nil {
		t.Fatal("countdown should stop at zero")
	}
	if !strings.Contains(p.View(60, 20), "Time's up!") {
		t.Fatalf("view = %q", p.View(60, 20))
	}
}

func TestCountdownPage_RejectsBadSeconds(t *testing.T) {
	t.Parallel()

	p := newCountdownPage(spec(t, widget.IDCountdown))
	typeInto(p, "abc")
	if cmd := p.Update(keyOf(tea.KeyEnter)); cmd != nil {
		t.Fatal("invalid input must not start the timer")
	}
	if p.message != calc.MsgCountdownSeconds {
		t.Fatalf("message = %q, want %q", p.message, calc.MsgCountdownSeconds)
	}
}

func TestCountdownPage_ResetDiscardsPendingTick(t *testing.T) {
	t.Parallel()

	p := newCountdownPage(spec(t, widget.IDCountdown))
	typeInto(p, "5")
	p.Update(keyOf(tea.KeyEnter))
	p.Update(keyOf(tea.KeyCtrlR))

	if cmd := p.Update(tickMsg{page: p.ID(), gen: 1}); cmd != nil {
		t.Fatal("tick from before reset should be dropped")
	}
	if p.timer.Remaining() != 0 || p.timer.Done() {
		t.Fatalf("timer after reset = remaining %d done %v", p.timer.Remaining(), p.timer.Done())
	}
}
