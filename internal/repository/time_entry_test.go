package repository

import (
	"errors"
	"testing"
)

func TestEntriesJoinedWithGoal(t *testing.T) {
	database := testDB(t)
	repo := NewTimeEntryRepository(database)

	user := seedUser(t, database, "alice@example.com")
	goal := seedGoal(t, database, user.ID, "Exercise", "Health", 30, 1)
	seedEntry(t, database, user.ID, goal.ID, "2026-08-22", 25)
	seedEntry(t, database, user.ID, goal.ID, "2026-08-23", 40)

	entries, err := repo.Entries(user.ID)
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	// Newest date first.
	if entries[0].Date != "2026-08-23" {
		t.Errorf("first entry date = %s, want 2026-08-23", entries[0].Date)
	}

	if entries[0].GoalTitle != "Exercise" || entries[0].GoalCategory != "Health" || entries[0].GoalDailyTarget != 30 {
		t.Errorf("joined goal fields = %+v", entries[0])
	}
}

func TestWindowBounds(t *testing.T) {
	database := testDB(t)
	repo := NewTimeEntryRepository(database)

	user := seedUser(t, database, "alice@example.com")
	goal := seedGoal(t, database, user.ID, "Exercise", "Health", 30, 1)
	seedEntry(t, database, user.ID, goal.ID, "2026-08-15", 10) // before window
	seedEntry(t, database, user.ID, goal.ID, "2026-08-16", 20) // inclusive from
	seedEntry(t, database, user.ID, goal.ID, "2026-08-20", 30)
	seedEntry(t, database, user.ID, goal.ID, "2026-08-23", 40) // inclusive to
	seedEntry(t, database, user.ID, goal.ID, "2026-08-24", 50) // after window

	entries, err := repo.Window(user.ID, "2026-08-16", "2026-08-23")
	if err != nil {
		t.Fatalf("Window() error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Date != "2026-08-16" || entries[2].Date != "2026-08-23" {
		t.Errorf("window dates = %s .. %s", entries[0].Date, entries[2].Date)
	}
}

func TestTimeEntryUpdate(t *testing.T) {
	database := testDB(t)
	repo := NewTimeEntryRepository(database)

	user := seedUser(t, database, "alice@example.com")
	goal := seedGoal(t, database, user.ID, "Exercise", "Health", 30, 1)
	other := seedGoal(t, database, user.ID, "Reading", "Education", 30, 2)
	entry := seedEntry(t, database, user.ID, goal.ID, "2026-08-23", 30)

	entry.GoalID = other.ID
	entry.DurationMinutes = 90
	entry.Notes = "moved"

	err := repo.Update(entry)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	updated, err := repo.ByID(user.ID, entry.ID)
	if err != nil {
		t.Fatalf("ByID() error: %v", err)
	}
	if updated.GoalID != other.ID || updated.DurationMinutes != 90 || updated.Notes != "moved" {
		t.Errorf("updated = %+v", updated)
	}
	// Date stays as originally logged.
	if updated.Date != "2026-08-23" {
		t.Errorf("date = %s, want 2026-08-23", updated.Date)
	}
}

func TestTimeEntryByIDScopedToUser(t *testing.T) {
	database := testDB(t)
	repo := NewTimeEntryRepository(database)

	alice := seedUser(t, database, "alice@example.com")
	bob := seedUser(t, database, "bob@example.com")
	goal := seedGoal(t, database, bob.ID, "His", "Work", 30, 1)
	entry := seedEntry(t, database, bob.ID, goal.ID, "2026-08-23", 30)

	_, err := repo.ByID(alice.ID, entry.ID)
	if !errors.Is(err, ErrTimeEntryNotFound) {
		t.Errorf("ByID(other user's entry) = %v, want ErrTimeEntryNotFound", err)
	}
}
