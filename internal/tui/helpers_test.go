package tui

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/widgetdeck/internal/widget"
)

type fakeKV struct {
	values  map[string]string
	failSet error
}

func newFakeKV() *fakeKV { return &fakeKV{values: map[string]string{}} }

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	if f.failSet != nil {
		return f.failSet
	}
	f.values[key] = value
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeKV) Keys(context.Context) ([]string, error) {
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

var errDiskFull = errors.New("disk full")

type fixedRand struct{ n int }

func (r fixedRand) IntN(n int) int { return r.n % n }

func testDeps(kv *fakeKV) widget.Deps {
	return widget.Deps{
		KV:   kv,
		Rand: fixedRand{n: 1},
		Now:  func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) },
	}
}

func spec(t *testing.T, id string) widget.Spec {
	t.Helper()
	s, ok := widget.Default().Lookup(id)
	if !ok {
		t.Fatalf("widget %q not registered", id)
	}
	return s
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func keyOf(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

// typeInto sends s to page as a single rune event.
func typeInto(p Page, s string) { p.Update(runes(s)) }

// run executes cmd and returns its message, or nil.
func run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
