package model

import "time"

// Store keys of the persisting widgets. Each widget owns exactly one key.
const (
	KeyNotes      = "notes"
	KeyMood       = "mood"
	KeySavedJokes = "saved-jokes"
	KeyExpenses   = "expenses"
	KeyTodo       = "todo"
)

// Shared defaults used by the TUI and the API server.
const (
	DefaultTickInterval = 100 * time.Millisecond
	DefaultStoreDriver  = "duckdb"
	DefaultAPIAddr      = "127.0.0.1:3000"
)
