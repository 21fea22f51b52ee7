// Package analytics derives the dashboard chart series from fetched rows.
// Every function is pure: no queries, no mutation, recomputed per request
// from whatever the caller fetched.
package analytics

import (
	"sort"
	"time"

	"github.com/goaltime/goaltime/internal/model"
)

// UncategorizedLabel groups entries whose goal or category is missing.
const UncategorizedLabel = "Uncategorized"

// DailyPoint is one bar of the daily progress chart.
type DailyPoint struct {
	Day    string `json:"day"`
	Actual int    `json:"actual"`
	Target int    `json:"target"`
}

// CompletionPoint is one slice of the goal completion chart.
type CompletionPoint struct {
	Title      string  `json:"title"`
	Percentage float64 `json:"percentage"`
}

// CategoryPoint is one slice of the category distribution chart.
type CategoryPoint struct {
	Category     string `json:"category"`
	TotalMinutes int    `json:"total_minutes"`
}

// WeekStart returns midnight of the most recent startDay at or before now.
func WeekStart(now time.Time, startDay time.Weekday) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	offset := int(day.Weekday()) - int(startDay)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

// DailyProgress builds 7 points from weekStart forward. Actual sums that
// day's durations; target is the daily target of whichever goal the first
// matching entry belongs to, or 0 when the day has no entries.
func DailyProgress(entries []*model.TimeEntryWithGoal, weekStart time.Time) []DailyPoint {
	points := make([]DailyPoint, 0, 7)

	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		date := day.Format(model.DateLayout)

		actual := 0
		target := 0
		first := true
		for _, entry := range entries {
			if entry.Date != date {
				continue
			}
			actual += entry.DurationMinutes
			if first {
				target = entry.GoalDailyTarget
				first = false
			}
		}

		points = append(points, DailyPoint{
			Day:    day.Format("Mon"),
			Actual: actual,
			Target: target,
		})
	}

	return points
}

// GoalCompletion computes, per goal, the share of its weekly target
// (daily target × 7) covered by the fetched entries, as a percentage
// clamped to [0, 100]. Goal order is preserved from the input.
func GoalCompletion(goals []*model.Goal, entries []*model.TimeEntryWithGoal) []CompletionPoint {
	points := make([]CompletionPoint, 0, len(goals))

	for _, goal := range goals {
		total := 0
		for _, entry := range entries {
			if entry.GoalID == goal.ID {
				total += entry.DurationMinutes
			}
		}

		weeklyTarget := goal.DailyTargetMinutes * 7
		var pct float64
		if weeklyTarget > 0 {
			pct = float64(total) / float64(weeklyTarget) * 100
		}
		if pct > 100 {
			pct = 100
		}
		if pct < 0 {
			pct = 0
		}

		points = append(points, CompletionPoint{Title: goal.Title, Percentage: pct})
	}

	return points
}

// CategoryDistribution sums durations per goal category. Entries with no
// goal or an empty category land under UncategorizedLabel. Output order is
// total-descending (name as tiebreak), so the result is invariant under
// reordering of the input.
func CategoryDistribution(entries []*model.TimeEntryWithGoal) []CategoryPoint {
	totals := make(map[string]int)
	for _, entry := range entries {
		category := entry.GoalCategory
		if category == "" {
			category = UncategorizedLabel
		}
		totals[category] += entry.DurationMinutes
	}

	points := make([]CategoryPoint, 0, len(totals))
	for category, total := range totals {
		points = append(points, CategoryPoint{Category: category, TotalMinutes: total})
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].TotalMinutes != points[j].TotalMinutes {
			return points[i].TotalMinutes > points[j].TotalMinutes
		}
		return points[i].Category < points[j].Category
	})

	return points
}
