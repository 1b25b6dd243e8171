package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/tinytelemetry/widgetdeck/internal/model"
)

// Repository round-trips one JSON value under one key. The whole value is
// rewritten on every Save; there is no incremental update or versioning.
type Repository[T any] struct {
	kv     model.KV
	key    string
	logger *zap.Logger
}

// NewRepository binds a repository to key. A nil logger discards logs.
func NewRepository[T any](kv model.KV, key string, logger *zap.Logger) *Repository[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository[T]{kv: kv, key: key, logger: logger}
}

func (r *Repository[T]) Key() string { return r.key }

// Load returns the stored value. A missing or undecodable value yields the
// zero value and no error; only a failing store returns an error.
func (r *Repository[T]) Load(ctx context.Context) (T, error) {
	var zero T
	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, nil
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		r.logger.Warn("discarding corrupt stored value", zap.String("key", r.key), zap.Error(err))
		return zero, nil
	}
	return v, nil
}

// Save serializes v and replaces the stored value.
func (r *Repository[T]) Save(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", r.key, err)
	}
	return r.kv.Set(ctx, r.key, string(data))
}

// ListRepository persists an ordered list of records. Append and Remove
// take the caller's current list, rewrite the whole list, and return the
// new list; on a write failure they return the unchanged list and the error.
type ListRepository[T any] struct {
	repo *Repository[[]T]
}

func NewListRepository[T any](kv model.KV, key string, logger *zap.Logger) *ListRepository[T] {
	return &ListRepository[T]{repo: NewRepository[[]T](kv, key, logger)}
}

func (l *ListRepository[T]) Key() string { return l.repo.Key() }

// Load returns the stored list, never nil.
func (l *ListRepository[T]) Load(ctx context.Context) ([]T, error) {
	items, err := l.repo.Load(ctx)
	if items == nil {
		items = []T{}
	}
	return items, err
}

func (l *ListRepository[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	return l.repo.Save(ctx, items)
}

func (l *ListRepository[T]) Append(ctx context.Context, items []T, item T) ([]T, error) {
	next := make([]T, len(items), len(items)+1)
	copy(next, items)
	next = append(next, item)
	if err := l.Save(ctx, next); err != nil {
		return items, err
	}
	return next, nil
}

// Remove drops the element at index i.
func (l *ListRepository[T]) Remove(ctx context.Context, items []T, i int) ([]T, error) {
	if i < 0 || i >= len(items) {
		return items, fmt.Errorf("remove %q: index %d out of range", l.Key(), i)
	}
	next := make([]T, 0, len(items)-1)
	next = append(next, items[:i]...)
	next = append(next, items[i+1:]...)
	if err := l.Save(ctx, next); err != nil {
		return items, err
	}
	return next, nil
}
