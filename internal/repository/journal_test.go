package repository

import (
	"errors"
	"testing"

	"github.com/goaltime/goaltime/internal/model"
)

func TestJournalUpsertOverwrites(t *testing.T) {
	database := testDB(t)
	repo := NewJournalRepository(database)

	user := seedUser(t, database, "alice@example.com")

	err := repo.Upsert(&model.JournalEntry{
		UserID:     user.ID,
		Date:       "2026-08-23",
		Mood:       model.MoodGood,
		Reflection: "First draft",
	})
	if err != nil {
		t.Fatalf("Upsert() error: %v", err)
	}

	// Same day again: overwrites instead of inserting a second row.
	err = repo.Upsert(&model.JournalEntry{
		UserID:     user.ID,
		Date:       "2026-08-23",
		Mood:       model.MoodGreat,
		Reflection: "Second thoughts",
	})
	if err != nil {
		t.Fatalf("second Upsert() error: %v", err)
	}

	entry, err := repo.ByDate(user.ID, "2026-08-23")
	if err != nil {
		t.Fatalf("ByDate() error: %v", err)
	}
	if entry.Mood != model.MoodGreat || entry.Reflection != "Second thoughts" {
		t.Errorf("entry = %+v, want overwritten values", entry)
	}

	var count int
	err = database.Get(&count, `SELECT COUNT(*) FROM journal_entries WHERE user_id = $1`, user.ID)
	if err != nil {
		t.Fatalf("count query error: %v", err)
	}
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
}

func TestJournalDistinctDays(t *testing.T) {
	database := testDB(t)
	repo := NewJournalRepository(database)

	user := seedUser(t, database, "alice@example.com")

	for _, date := range []string{"2026-08-22", "2026-08-23"} {
		err := repo.Upsert(&model.JournalEntry{
			UserID:     user.ID,
			Date:       date,
			Mood:       model.MoodNeutral,
			Reflection: "Entry for " + date,
		})
		if err != nil {
			t.Fatalf("Upsert(%s) error: %v", date, err)
		}
	}

	entry, err := repo.ByDate(user.ID, "2026-08-22")
	if err != nil {
		t.Fatalf("ByDate() error: %v", err)
	}
	if entry.Reflection != "Entry for 2026-08-22" {
		t.Errorf("got %q", entry.Reflection)
	}
}

func TestJournalByDateNotFound(t *testing.T) {
	database := testDB(t)
	repo := NewJournalRepository(database)

	user := seedUser(t, database, "alice@example.com")

	_, err := repo.ByDate(user.ID, "2026-08-23")
	if !errors.Is(err, ErrJournalEntryNotFound) {
		t.Errorf("ByDate(absent) = %v, want ErrJournalEntryNotFound", err)
	}
}
