package models

import "time"

// DueStats partitions the catalog for dashboard reporting.
type DueStats struct {
	DueNow     int `json:"due_now"`
	DueSoon    int `json:"due_soon"`
	NewWords   int `json:"new_words"`
	Mastered   int `json:"mastered"`
	TotalWords int `json:"total_words"`
}

// StatsSnapshot is a persisted point-in-time copy of DueStats.
type StatsSnapshot struct {
	ID      int64     `json:"id" db:"id"`
	TakenAt time.Time `json:"taken_at" db:"taken_at"`
	DueStats
}
