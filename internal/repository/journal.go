package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/goaltime/goaltime/internal/model"
)

var (
	ErrJournalEntryNotFound = errors.New("journal entry not found")
)

type JournalRepository interface {
	Upsert(entry *model.JournalEntry) error
	ByDate(userID, date string) (*model.JournalEntry, error)
}

type journalRepository struct {
	db *sqlx.DB
}

func NewJournalRepository(db *sqlx.DB) JournalRepository {
	return &journalRepository{db: db}
}

// Upsert writes the day's entry; a second submission for the same
// (user, date) overwrites mood and reflection in place.
func (r *journalRepository) Upsert(entry *model.JournalEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO journal_entries (id, user_id, date, mood, reflection, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, date)
		DO UPDATE SET mood = excluded.mood, reflection = excluded.reflection
	`

	_, err := r.db.Exec(query,
		entry.ID,
		entry.UserID,
		entry.Date,
		entry.Mood,
		entry.Reflection,
		entry.CreatedAt,
	)

	return err
}

func (r *journalRepository) ByDate(userID, date string) (*model.JournalEntry, error) {
	entry := &model.JournalEntry{}
	query := `SELECT * FROM journal_entries WHERE user_id = $1 AND date = $2`

	err := r.db.Get(entry, query, userID, date)
	if err == sql.ErrNoRows {
		return nil, ErrJournalEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	return entry, nil
}
