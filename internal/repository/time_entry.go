package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/goaltime/goaltime/internal/model"
)

var (
	ErrTimeEntryNotFound = errors.New("time entry not found")
)

// joinedColumns selects every entry column plus the goal fields the log table
// and analytics need. LEFT JOIN keeps an entry visible even if its goal row
// is gone; analytics maps the empty category to "Uncategorized".
const joinedColumns = `
	te.id, te.user_id, te.goal_id, te.duration_minutes, te.date, te.notes, te.created_at,
	COALESCE(g.title, '') AS goal_title,
	COALESCE(g.category, '') AS goal_category,
	COALESCE(g.daily_target_minutes, 0) AS goal_daily_target_minutes
`

type TimeEntryRepository interface {
	Create(entry *model.TimeEntry) error
	ByID(userID, entryID string) (*model.TimeEntry, error)
	Update(entry *model.TimeEntry) error
	Entries(userID string) ([]*model.TimeEntryWithGoal, error)
	Window(userID, from, to string) ([]*model.TimeEntryWithGoal, error)
}

type timeEntryRepository struct {
	db *sqlx.DB
}

func NewTimeEntryRepository(db *sqlx.DB) TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

func (r *timeEntryRepository) Create(entry *model.TimeEntry) error {
	query := `INSERT INTO time_entries (id, user_id, goal_id, duration_minutes, date, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		entry.ID,
		entry.UserID,
		entry.GoalID,
		entry.DurationMinutes,
		entry.Date,
		entry.Notes,
		entry.CreatedAt,
	)

	return err
}

func (r *timeEntryRepository) ByID(userID, entryID string) (*model.TimeEntry, error) {
	entry := &model.TimeEntry{}
	query := `SELECT * FROM time_entries WHERE id = $1 AND user_id = $2`

	err := r.db.Get(entry, query, entryID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrTimeEntryNotFound
	}

	return entry, err
}

func (r *timeEntryRepository) Update(entry *model.TimeEntry) error {
	query := `UPDATE time_entries
	          SET goal_id = $1, duration_minutes = $2, notes = $3
	          WHERE id = $4 AND user_id = $5`

	result, err := r.db.Exec(query,
		entry.GoalID,
		entry.DurationMinutes,
		entry.Notes,
		entry.ID,
		entry.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrTimeEntryNotFound
	}

	return nil
}

// Entries lists the user's full log, newest date first.
func (r *timeEntryRepository) Entries(userID string) ([]*model.TimeEntryWithGoal, error) {
	var entries []*model.TimeEntryWithGoal
	query := `SELECT ` + joinedColumns + `
	          FROM time_entries te
	          LEFT JOIN goals g ON g.id = te.goal_id
	          WHERE te.user_id = $1
	          ORDER BY te.date DESC, te.created_at DESC`

	err := r.db.Select(&entries, query, userID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Window returns entries with date in [from, to] inclusive, oldest first.
func (r *timeEntryRepository) Window(userID, from, to string) ([]*model.TimeEntryWithGoal, error) {
	var entries []*model.TimeEntryWithGoal
	query := `SELECT ` + joinedColumns + `
	          FROM time_entries te
	          LEFT JOIN goals g ON g.id = te.goal_id
	          WHERE te.user_id = $1 AND te.date >= $2 AND te.date <= $3
	          ORDER BY te.date ASC, te.created_at ASC`

	err := r.db.Select(&entries, query, userID, from, to)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
