package model

import (
	"time"
)

// DailyGoal is an ephemeral per-day checklist item, unrelated to time
// tracking. Priority runs 1 (high) to 3 (low).
type DailyGoal struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"-"`
	Title     string    `db:"title" json:"title"`
	Priority  int       `db:"priority" json:"priority"`
	Date      string    `db:"date" json:"date"`
	Completed bool      `db:"completed" json:"completed"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
