package model

import "context"

// KVReader is the read side of the string-keyed store.
type KVReader interface {
	// Get returns the raw value stored under key; ok is false when absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Keys(ctx context.Context) ([]string, error)
}

// KVWriter replaces or removes whole values.
type KVWriter interface {
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// KV is the full key-value contract behind the persistence shim.
type KV interface {
	KVReader
	KVWriter
}
