package tracker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/widgetdeck/internal/calc"
	"github.com/tinytelemetry/widgetdeck/internal/form"
	"github.com/tinytelemetry/widgetdeck/internal/model"
	"github.com/tinytelemetry/widgetdeck/internal/store"
)

type fakeKV struct {
	values  map[string]string
	failGet error
	failSet error
}

func newFakeKV() *fakeKV { return &fakeKV{values: map[string]string{}} }

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	if f.failGet != nil {
		return "", false, f.failGet
	}
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
	return keys, nil
}

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

// testEnv returns an Env with a fixed clock and sequential ids.
func testEnv() Env {
	n := 0
	return Env{
		Now: func() time.Time { return fixedNow },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

func TestNotesPersistAndReload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newFakeKV()

	notes := NewNotes(kv, testEnv())
	notes.Load(ctx)
	require.Empty(t, notes.Items())

	require.NoError(t, notes.Add(ctx, "  buy milk "))
	require.NoError(t, notes.Add(ctx, "call mum"))
	require.NoError(t, notes.Remove(ctx, 0))

	reloaded := NewNotes(kv, testEnv())
	reloaded.Load(ctx)
	want := []model.Note{{ID: "id-2", Text: "call mum", CreatedAt: fixedNow}}
	if diff := cmp.Diff(want, reloaded.Items()); diff != "" {
		t.Fatalf("reloaded notes mismatch (-want +got):\n%s", diff)
	}
}

func TestNotesRejectEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newFakeKV()

	notes := NewNotes(kv, testEnv())
	err := notes.Add(ctx, "   ")
	require.True(t, form.IsValidation(err))
	assert.EqualError(t, err, MsgNoteEmpty)
	assert.Empty(t, kv.values, "invalid note must not be written")
}

func TestWriteFailureKeepsLastGoodState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newFakeKV()

	todo := NewTodo(kv, testEnv())
	require.NoError(t, todo.Add(ctx, "ship it"))

	kv.failSet = errors.New("disk full")
	assert.Error(t, todo.Add(ctx, "second"))
	assert.Error(t, todo.Toggle(ctx, 0))
	assert.Error(t, todo.Remove(ctx, 0))

	items := todo.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "ship it", items[0].Title)
	assert.False(t, items[0].Done)
}

func TestLoadFailureStartsEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newFakeKV()
	kv.values[model.KeyExpenses] = `[{"id":"x","description":"tea","amount":2}]`
	kv.failGet = errors.New("locked")

	exp := NewExpenses(kv, testEnv())
	exp.Load(ctx)
	assert.Empty(t, exp.Items())
}

func TestCorruptValueLoadsEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newFakeKV()
	kv.values[model.KeyTodo] = `{not json`
	kv.values[model.KeyMood] = `[1,2,3]`

	todo := NewTodo(kv, testEnv())
	todo.Load(ctx)
	assert.Empty(t, todo.Items())

	mood := NewMood(kv, testEnv())
	mood.Load(ctx)
	assert.Zero(t, mood.Today())
	assert.Equal(t, [MaxMood + 1]int{}, mood.Counts())
}

func TestTodoToggle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	todo := NewTodo(newFakeKV(), testEnv())
	require.NoError(t, todo.Add(ctx, "a"))
	require.NoError(t, todo.Add(ctx, "b"))
	require.NoError(t, todo.Toggle(ctx, 1))
	assert.Equal(t, 1, todo.Remaining())
	assert.True(t, todo.Items()[1].Done)

	require.NoError(t, todo.Toggle(ctx, 1))
	assert.Equal(t, 2, todo.Remaining())
	assert.Error(t, todo.Toggle(ctx, 5))
	assert.EqualError(t, todo.Add(ctx, ""), MsgTaskEmpty)
}

func TestExpenses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var f ExpenseForm
	f.SetAmount("12.5")
	assert.Equal(t, MsgExpenseDescription, f.Validate().Reason())
	f.SetDescription("Lunch")
	f.SetAmount("0")
	assert.Equal(t, MsgExpenseAmount, f.Validate().Reason())
	f.SetAmount("12.5")
	draft, ok := f.Validate().Value()
	require.True(t, ok)

	exp := NewExpenses(newFakeKV(), testEnv())
	require.NoError(t, exp.Add(ctx, draft))
	require.NoError(t, exp.Add(ctx, ExpenseDraft{Description: "Bus", Amount: 0.1}))
	require.NoError(t, exp.Add(ctx, ExpenseDraft{Description: "Tea", Amount: 0.2}))
	assert.Equal(t, 12.8, exp.Total())

	require.NoError(t, exp.Remove(ctx, 0))
	assert.InDelta(t, 0.3, exp.Total(), 1e-9)
}

func TestExpensesRejectHugeAmounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := ExpenseForm{}
	f.SetDescription("Yacht")
	f.SetAmount("1e17")
	assert.Equal(t, MsgExpenseAmountMax, f.Validate().Reason())
	f.SetAmount("1000000000000")
	draft, ok := f.Validate().Value()
	require.True(t, ok)

	exp := NewExpenses(newFakeKV(), testEnv())
	require.NoError(t, exp.Add(ctx, draft))
	require.NoError(t, exp.Add(ctx, draft))
	assert.Equal(t, 2e12, exp.Total())
}

func TestExpensesTotalOfStoredHugeAmount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := newFakeKV()
	kv.values[model.KeyExpenses] = `[{"id":"a","description":"Legacy","amount":1e17,"createdAt":"2024-06-15T12:00:00Z"}]`
	exp := NewExpenses(kv, testEnv())
	exp.Load(ctx)
	require.Len(t, exp.Items(), 1)
	assert.Equal(t, 1e17, exp.Total())
}

func TestSavedJokesSkipsDuplicates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newFakeKV()

	jokes := NewSavedJokes(kv, testEnv())
	j := calc.Joke{Setup: "Why?", Punchline: "Because."}
	changed, err := jokes.Save(ctx, j)
	require.NoError(t, err)
	assert.True(t, changed)
	changed, err = jokes.Save(ctx, j)
	require.NoError(t, err)
	assert.False(t, changed)
	require.Len(t, jokes.Items(), 1)

	raw, err := store.Lookup(ctx, kv, model.KeySavedJokes)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"id-1","setup":"Why?","punchline":"Because.","savedAt":"2024-06-15T12:00:00Z"}]`, raw)

	require.NoError(t, jokes.Remove(ctx, 0))
	assert.Empty(t, jokes.Items())
}

func TestMood(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newFakeKV()

	mood := NewMood(kv, testEnv())
	mood.Load(ctx)
	require.NoError(t, mood.SetToday(ctx, "4"))
	require.NoError(t, mood.Set(ctx, "2024-06-14", "2"))
	require.NoError(t, mood.Set(ctx, "2024-06-13", "4"))
	require.NoError(t, mood.SetToday(ctx, "5"))

	assert.Equal(t, 5, mood.Today())
	assert.Equal(t, [MaxMood + 1]int{0, 0, 1, 0, 1, 1}, mood.Counts())
	assert.InDelta(t, 11.0/3, mood.Average(), 1e-9)
	assert.Equal(t, []string{"2024-06-15", "2024-06-14", "2024-06-13"}, mood.Days())

	assert.EqualError(t, mood.SetToday(ctx, "6"), MsgMoodRange)
	assert.EqualError(t, mood.SetToday(ctx, "0"), MsgMoodRange)
	assert.Error(t, mood.Set(ctx, "yesterday", "3"))

	reloaded := NewMood(kv, testEnv())
	reloaded.Load(ctx)
	assert.Equal(t, 2, reloaded.On("2024-06-14"))
	assert.Equal(t, 5, reloaded.Today())
}

func TestMoodDropsInvalidEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := newFakeKV()
	kv.values[model.KeyMood] = `{"2024-06-10":3,"2024-06-11":9,"someday":2}`

	mood := NewMood(kv, testEnv())
	mood.Load(ctx)
	assert.Equal(t, []string{"2024-06-10"}, mood.Days())
	assert.Equal(t, 3, mood.On("2024-06-10"))
}
