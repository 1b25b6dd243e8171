package tracker

import (
	"context"

	"github.com/tinytelemetry/widgetdeck/internal/calc"
	"github.com/tinytelemetry/widgetdeck/internal/model"
)

// SavedJokes keeps the jokes the user chose to save under model.KeySavedJokes.
type SavedJokes struct {
	list[model.SavedJoke]
	env Env
}

func NewSavedJokes(kv model.KV, env Env) *SavedJokes {
	env = env.withDefaults()
	return &SavedJokes{list: newList[model.SavedJoke](kv, model.KeySavedJokes, env.Logger), env: env}
}

func (s *SavedJokes) Load(ctx context.Context) { s.load(ctx) }

func (s *SavedJokes) Items() []model.SavedJoke { return s.snapshot() }

// Save appends j unless the same joke is already saved. It reports whether
// the list changed.
func (s *SavedJokes) Save(ctx context.Context, j calc.Joke) (bool, error) {
	for _, saved := range s.items {
		if saved.Setup == j.Setup && saved.Punchline == j.Punchline {
			return false, nil
		}
	}
	err := s.add(ctx, model.SavedJoke{
		ID:        s.env.NewID(),
		Setup:     j.Setup,
		Punchline: j.Punchline,
		SavedAt:   s.env.Now().UTC(),
	})
	return err == nil, err
}

func (s *SavedJokes) Remove(ctx context.Context, i int) error { return s.remove(ctx, i) }
