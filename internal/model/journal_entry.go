package model

import (
	"time"
)

const (
	MoodGreat    = "great"
	MoodGood     = "good"
	MoodNeutral  = "neutral"
	MoodBad      = "bad"
	MoodTerrible = "terrible"
)

// Moods lists the accepted mood values.
var Moods = []string{MoodGreat, MoodGood, MoodNeutral, MoodBad, MoodTerrible}

func ValidMood(mood string) bool {
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// JournalEntry holds one mood + reflection record per user per day.
type JournalEntry struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"-"`
	Date       string    `db:"date" json:"date"`
	Mood       string    `db:"mood" json:"mood"`
	Reflection string    `db:"reflection" json:"reflection"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
