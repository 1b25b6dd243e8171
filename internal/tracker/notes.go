package tracker

import (
	"context"

	"github.com/tinytelemetry/widgetdeck/internal/form"
	"github.com/tinytelemetry/widgetdeck/internal/model"
)

const MsgNoteEmpty = "Note cannot be empty"

// Notes keeps free-text notes under model.KeyNotes.
type Notes struct {
	list[model.Note]
	env Env
}

func NewNotes(kv model.KV, env Env) *Notes {
	env = env.withDefaults()
	return &Notes{list: newList[model.Note](kv, model.KeyNotes, env.Logger), env: env}
}

func (n *Notes) Load(ctx context.Context) { n.load(ctx) }

func (n *Notes) Items() []model.Note { return n.snapshot() }

// Add validates text and appends a note. Validation failures are returned
// as *form.ValidationError and leave the list untouched.
func (n *Notes) Add(ctx context.Context, text string) error {
	text, err := form.Required(text, MsgNoteEmpty)
	if err != nil {
		return err
	}
	return n.add(ctx, model.Note{
		ID:        n.env.NewID(),
		Text:      text,
		CreatedAt: n.env.Now().UTC(),
	})
}

func (n *Notes) Remove(ctx context.Context, i int) error { return n.remove(ctx, i) }
