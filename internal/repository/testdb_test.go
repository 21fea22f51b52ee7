package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/goaltime/goaltime/internal/db"
	"github.com/goaltime/goaltime/internal/model"
)

// testDB opens an in-memory sqlite database with migrations applied. The
// pool is pinned to one connection so every query sees the same memory DB.
func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })

	err = db.RunMigrations(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return database
}

func seedUser(t *testing.T, database *sqlx.DB, email string) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: "$2a$10$notarealhash",
		CreatedAt:    time.Now(),
	}
	err := NewUserRepository(database).Create(user)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedGoal(t *testing.T, database *sqlx.DB, userID, title, category string, target, priority int) *model.Goal {
	t.Helper()

	goal := &model.Goal{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Title:              title,
		Category:           category,
		DailyTargetMinutes: target,
		Priority:           priority,
		CreatedAt:          time.Now(),
	}
	err := NewGoalRepository(database).Create(goal)
	if err != nil {
		t.Fatalf("failed to seed goal: %v", err)
	}
	return goal
}

func seedEntry(t *testing.T, database *sqlx.DB, userID, goalID, date string, minutes int) *model.TimeEntry {
	t.Helper()

	entry := &model.TimeEntry{
		ID:              uuid.New().String(),
		UserID:          userID,
		GoalID:          goalID,
		DurationMinutes: minutes,
		Date:            date,
		CreatedAt:       time.Now(),
	}
	err := NewTimeEntryRepository(database).Create(entry)
	if err != nil {
		t.Fatalf("failed to seed time entry: %v", err)
	}
	return entry
}
