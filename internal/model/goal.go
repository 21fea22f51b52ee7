package model

import (
	"time"
)

// Goal is a user-defined target activity with a daily time budget.
// Priority runs 1 (highest) to 5 (lowest).
type Goal struct {
	ID                 string    `db:"id" json:"id"`
	UserID             string    `db:"user_id" json:"-"`
	Title              string    `db:"title" json:"title"`
	Description        string    `db:"description" json:"description"`
	Category           string    `db:"category" json:"category"`
	DailyTargetMinutes int       `db:"daily_target_minutes" json:"daily_target_minutes"`
	Priority           int       `db:"priority" json:"priority"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}
