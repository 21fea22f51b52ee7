package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/goaltime/goaltime/internal/model"
)

func entry(goalID, date, category string, minutes, target int) *model.TimeEntryWithGoal {
	return &model.TimeEntryWithGoal{
		TimeEntry: model.TimeEntry{
			GoalID:          goalID,
			DurationMinutes: minutes,
			Date:            date,
		},
		GoalCategory:    category,
		GoalDailyTarget: target,
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		startDay time.Weekday
		want     string
	}{
		{
			name:     "midweek back to sunday",
			now:      time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC), // Wednesday
			startDay: time.Sunday,
			want:     "2026-08-23",
		},
		{
			name:     "on the start day itself",
			now:      time.Date(2026, 8, 23, 0, 0, 1, 0, time.UTC), // Sunday
			startDay: time.Sunday,
			want:     "2026-08-23",
		},
		{
			name:     "monday start wraps past sunday",
			now:      time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC), // Sunday
			startDay: time.Monday,
			want:     "2026-08-17",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.now, tt.startDay)
			if got.Format(model.DateLayout) != tt.want {
				t.Errorf("WeekStart() = %s, want %s", got.Format(model.DateLayout), tt.want)
			}
			if got.Hour() != 0 || got.Minute() != 0 {
				t.Errorf("WeekStart() not at midnight: %v", got)
			}
		})
	}
}

func TestDailyProgress(t *testing.T) {
	weekStart := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC) // Sunday

	entries := []*model.TimeEntryWithGoal{
		entry("g1", "2026-08-23", "Health", 30, 60),
		entry("g2", "2026-08-23", "Work", 45, 120),
		entry("g1", "2026-08-25", "Health", 60, 60),
	}

	points := DailyProgress(entries, weekStart)
	if len(points) != 7 {
		t.Fatalf("got %d points, want 7", len(points))
	}

	if points[0].Day != "Sun" {
		t.Errorf("first day = %s, want Sun", points[0].Day)
	}

	// Sunday has two entries; target comes from the first entry's goal.
	if points[0].Actual != 75 || points[0].Target != 60 {
		t.Errorf("sunday = %+v, want actual 75 target 60", points[0])
	}

	// Monday has no entries.
	if points[1].Actual != 0 || points[1].Target != 0 {
		t.Errorf("monday = %+v, want zeros", points[1])
	}

	if points[2].Actual != 60 || points[2].Target != 60 {
		t.Errorf("tuesday = %+v, want actual 60 target 60", points[2])
	}
}

func TestGoalCompletion(t *testing.T) {
	goals := []*model.Goal{
		{ID: "g1", Title: "Exercise", DailyTargetMinutes: 30},
		{ID: "g2", Title: "Reading", DailyTargetMinutes: 60},
		{ID: "g3", Title: "Piano", DailyTargetMinutes: 45},
	}

	entries := []*model.TimeEntryWithGoal{
		entry("g1", "2026-08-23", "", 210, 30), // exactly 30*7
		entry("g2", "2026-08-23", "", 180, 60),
		entry("g3", "2026-08-24", "", 9999, 45), // way past target
	}

	points := GoalCompletion(goals, entries)
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}

	if points[0].Title != "Exercise" || points[0].Percentage != 100 {
		t.Errorf("g1 = %+v, want Exercise at 100", points[0])
	}

	// 180 / 420 ≈ 42.857
	want := 180.0 / 420.0 * 100
	if math.Abs(points[1].Percentage-want) > 1e-9 {
		t.Errorf("g2 percentage = %v, want %v", points[1].Percentage, want)
	}

	// Over-achievement clamps to 100.
	if points[2].Percentage != 100 {
		t.Errorf("g3 percentage = %v, want clamped 100", points[2].Percentage)
	}
}

func TestGoalCompletionNoEntries(t *testing.T) {
	goals := []*model.Goal{{ID: "g1", Title: "Exercise", DailyTargetMinutes: 30}}

	points := GoalCompletion(goals, nil)
	if len(points) != 1 || points[0].Percentage != 0 {
		t.Errorf("got %+v, want single zero point", points)
	}
}

func TestCategoryDistribution(t *testing.T) {
	entries := []*model.TimeEntryWithGoal{
		entry("g1", "2026-08-23", "Health", 30, 0),
		entry("g2", "2026-08-23", "Work", 90, 0),
		entry("g1", "2026-08-24", "Health", 40, 0),
		entry("g3", "2026-08-24", "", 15, 0),
	}

	points := CategoryDistribution(entries)
	if len(points) != 3 {
		t.Fatalf("got %d categories, want 3", len(points))
	}

	if points[0].Category != "Work" || points[0].TotalMinutes != 90 {
		t.Errorf("first = %+v, want Work 90", points[0])
	}
	if points[1].Category != "Health" || points[1].TotalMinutes != 70 {
		t.Errorf("second = %+v, want Health 70", points[1])
	}
	if points[2].Category != UncategorizedLabel || points[2].TotalMinutes != 15 {
		t.Errorf("third = %+v, want %s 15", points[2], UncategorizedLabel)
	}
}

func TestCategoryDistributionOrderIndependent(t *testing.T) {
	forward := []*model.TimeEntryWithGoal{
		entry("g1", "2026-08-23", "Health", 30, 0),
		entry("g2", "2026-08-23", "Work", 90, 0),
		entry("g3", "2026-08-24", "Health", 40, 0),
	}
	reversed := []*model.TimeEntryWithGoal{forward[2], forward[1], forward[0]}

	a := CategoryDistribution(forward)
	b := CategoryDistribution(reversed)

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("point %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
