package models

import "time"

// Word is a vocabulary entry in the catalog. Term is the stable unique key
// used everywhere the scheduler needs to identify an item.
type Word struct {
	ID           int64     `json:"id" db:"id"`
	Term         string    `json:"term" db:"term"`
	Translations []string  `json:"translations"`
	Notes        string    `json:"notes,omitempty" db:"notes"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// WordFilter narrows catalog listings.
type WordFilter struct {
	Search string
	Limit  int
	Offset int
}
