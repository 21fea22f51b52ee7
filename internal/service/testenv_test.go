package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/goaltime/goaltime/internal/db"
	"github.com/goaltime/goaltime/internal/model"
	"github.com/goaltime/goaltime/internal/repository"
)

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
	err := repository.NewUserRepository(database).Create(user)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedGoal(t *testing.T, database *sqlx.DB, userID, title string, target int) *model.Goal {
	t.Helper()

	goal := &model.Goal{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Title:              title,
		Category:           "Test",
		DailyTargetMinutes: target,
		Priority:           1,
		CreatedAt:          time.Now(),
	}
	err := repository.NewGoalRepository(database).Create(goal)
	if err != nil {
		t.Fatalf("failed to seed goal: %v", err)
	}
	return goal
}

// fixedClock always returns the same instant unless advanced.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
