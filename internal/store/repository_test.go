package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/tinytelemetry/widgetdeck/internal/model"
)

// mapKV is an in-process model.KV with an optional write failure.
type mapKV struct {
	values  map[string]string
	failSet error
}

func newMapKV() *mapKV { return &mapKV{values: map[string]string{}} }

func (m *mapKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mapKV) Set(_ context.Context, key, value string) error {
	if m.failSet != nil {
		return m.failSet
	}
	m.values[key] = value
	return nil
}

func (m *mapKV) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func (m *mapKV) Keys(_ context.Context) ([]string, error) {
	var keys []string
	for k := range m.values {
		keys = append(keys, k)
	}
	return keys, nil
}

func TestListRepository_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for _, driver := range testDrivers {
		t.Run(driver, func(t *testing.T) {
			repo := NewListRepository[model.Note](newTestStore(t, driver), model.KeyNotes, nil)

			want := []model.Note{
				{ID: "1", Text: "buy milk", CreatedAt: time.Now()},
				{ID: "2", Text: "call bob", CreatedAt: time.Now()},
			}
			if err := repo.Save(ctx, want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := repo.Load(ctx)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(model.Note{}, "ID", "CreatedAt")); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListRepository_MissingAndCorruptAreEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newMapKV()
	repo := NewListRepository[model.Note](kv, model.KeyNotes, nil)

	got, err := repo.Load(ctx)
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("missing Load = %v, %v; want empty non-nil list", got, err)
	}

	kv.values[model.KeyNotes] = "{not json"
	got, err = repo.Load(ctx)
	if err != nil || len(got) != 0 {
		t.Fatalf("corrupt Load = %v, %v; want empty list", got, err)
	}

	kv.values[model.KeyNotes] = `{"an":"object"}`
	got, err = repo.Load(ctx)
	if err != nil || len(got) != 0 {
		t.Fatalf("wrong-shape Load = %v, %v; want empty list", got, err)
	}
}

func TestListRepository_AppendRemoveRewriteWholeList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newMapKV()
	repo := NewListRepository[string](kv, "items", nil)

	items, err := repo.Append(ctx, nil, "a")
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	items, _ = repo.Append(ctx, items, "b")
	items, _ = repo.Append(ctx, items, "c")
	if kv.values["items"] != `["a","b","c"]` {
		t.Fatalf("stored = %s", kv.values["items"])
	}

	items, err = repo.Remove(ctx, items, 1)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if kv.values["items"] != `["a","c"]` || len(items) != 2 {
		t.Fatalf("after remove stored = %s items = %v", kv.values["items"], items)
	}

	if _, err := repo.Remove(ctx, items, 5); err == nil {
		t.Fatal("expected out of range error")
	}
}

func TestListRepository_WriteFailureKeepsLastGoodList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newMapKV()
	repo := NewListRepository[string](kv, "items", nil)

	items, _ := repo.Append(ctx, nil, "a")
	kv.failSet = errors.New("disk full")

	got, err := repo.Append(ctx, items, "b")
	if err == nil {
		t.Fatal("expected write error")
	}
	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("items after failed append = %v, want [a]", got)
	}
}

func TestRepository_MapValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewRepository[model.MoodLog](newMapKV(), model.KeyMood, nil)

	empty, err := repo.Load(ctx)
	if err != nil || len(empty) != 0 {
		t.Fatalf("Load empty = %v, %v", empty, err)
	}
	if err := repo.Save(ctx, model.MoodLog{"2026-10-01": 3}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, _ := repo.Load(ctx)
	if got["2026-10-01"] != 3 {
		t.Fatalf("mood = %v", got)
	}
}
