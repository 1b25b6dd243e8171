// Package tracker implements the persisting widgets. Each tracker seeds its
// in-memory state from one store key on Load and rewrites the whole value
// after every change. A failed write leaves the last good state in place.
package tracker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tinytelemetry/widgetdeck/internal/model"
	"github.com/tinytelemetry/widgetdeck/internal/store"
)

// Env carries the trackers' clock, id source and logger.
type Env struct {
	Now    func() time.Time
	NewID  func() string
	Logger *zap.Logger
}

func (e Env) withDefaults() Env {
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.NewID == nil {
		e.NewID = uuid.NewString
	}
	if e.Logger == nil {
		e.Logger = zap.NewNop()
	}
	return e
}

// list is the shared append/remove state behind the list trackers.
type list[T any] struct {
	repo   *store.ListRepository[T]
	items  []T
	logger *zap.Logger
}

func newList[T any](kv model.KV, key string, logger *zap.Logger) list[T] {
	return list[T]{
		repo:   store.NewListRepository[T](kv, key, logger),
		items:  []T{},
		logger: logger,
	}
}

// load seeds items from the store; a failing read counts as an empty list.
func (l *list[T]) load(ctx context.Context) {
	items, err := l.repo.Load(ctx)
	if err != nil {
		l.logger.Warn("load failed, starting empty", zap.String("key", l.repo.Key()), zap.Error(err))
	}
	l.items = items
}

func (l *list[T]) add(ctx context.Context, item T) error {
	items, err := l.repo.Append(ctx, l.items, item)
	l.items = items
	return err
}

func (l *list[T]) remove(ctx context.Context, i int) error {
	items, err := l.repo.Remove(ctx, l.items, i)
	l.items = items
	return err
}

func (l *list[T]) replace(ctx context.Context, next []T) error {
	if err := l.repo.Save(ctx, next); err != nil {
		return err
	}
	l.items = next
	return nil
}

// snapshot returns a copy so callers cannot mutate tracker state.
func (l *list[T]) snapshot() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}
