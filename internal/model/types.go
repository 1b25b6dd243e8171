package model

import "time"

// Note is one entry of the notes widget.
type Note struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expense is one logged expense.
type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Task is one todo item.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

// SavedJoke is a joke the user kept.
type SavedJoke struct {
	ID        string    `json:"id"`
	Setup     string    `json:"setup"`
	Punchline string    `json:"punchline"`
	SavedAt   time.Time `json:"savedAt"`
}

// MoodLog maps a calendar day (YYYY-MM-DD) to a mood from 1 to 5.
type MoodLog map[string]int
