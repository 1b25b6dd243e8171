package tracker

import (
	"context"
	"fmt"

	"github.com/tinytelemetry/widgetdeck/internal/form"
	"github.com/tinytelemetry/widgetdeck/internal/model"
)

const MsgTaskEmpty = "Task cannot be empty"

// Todo keeps tasks under model.KeyTodo.
type Todo struct {
	list[model.Task]
	env Env
}

func NewTodo(kv model.KV, env Env) *Todo {
	env = env.withDefaults()
	return &Todo{list: newList[model.Task](kv, model.KeyTodo, env.Logger), env: env}
}

func (t *Todo) Load(ctx context.Context) { t.load(ctx) }

func (t *Todo) Items() []model.Task { return t.snapshot() }

func (t *Todo) Add(ctx context.Context, title string) error {
	title, err := form.Required(title, MsgTaskEmpty)
	if err != nil {
		return err
	}
	return t.add(ctx, model.Task{ID: t.env.NewID(), Title: title, CreatedAt: t.env.Now().UTC()})
}

// Toggle flips the done flag of task i.
func (t *Todo) Toggle(ctx context.Context, i int) error {
	if i < 0 || i >= len(t.items) {
		return fmt.Errorf("toggle: index %d out of range", i)
	}
	next := t.snapshot()
	next[i].Done = !next[i].Done
	return t.replace(ctx, next)
}

func (t *Todo) Remove(ctx context.Context, i int) error { return t.remove(ctx, i) }

// Remaining counts tasks not yet done.
func (t *Todo) Remaining() int {
	n := 0
	for _, task := range t.items {
		if !task.Done {
			n++
		}
	}
	return n
}
