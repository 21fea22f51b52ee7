package model

import (
	"time"
)

// DateLayout is the calendar-day form used for all date columns.
const DateLayout = "2006-01-02"

type TimeEntry struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"-"`
	GoalID          string    `db:"goal_id" json:"goal_id"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Date            string    `db:"date" json:"date"`
	Notes           string    `db:"notes" json:"notes"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// TimeEntryWithGoal is a time entry joined with fields of its goal, as the
// log table and analytics consume it. The goal columns are read through a
// LEFT JOIN so a missing goal yields empty strings and a zero target.
type TimeEntryWithGoal struct {
	TimeEntry
	GoalTitle       string `db:"goal_title" json:"goal_title"`
	GoalCategory    string `db:"goal_category" json:"goal_category"`
	GoalDailyTarget int    `db:"goal_daily_target_minutes" json:"goal_daily_target_minutes"`
}
