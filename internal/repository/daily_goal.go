package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/goaltime/goaltime/internal/model"
)

var (
	ErrDailyGoalNotFound = errors.New("daily goal not found")
)

type DailyGoalRepository interface {
	Create(goal *model.DailyGoal) error
	ByDate(userID, date string) ([]*model.DailyGoal, error)
	SetCompleted(userID, goalID string, completed bool) error
	Delete(userID, goalID string) error
}

type dailyGoalRepository struct {
	db *sqlx.DB
}

func NewDailyGoalRepository(db *sqlx.DB) DailyGoalRepository {
	return &dailyGoalRepository{db: db}
}

func (r *dailyGoalRepository) Create(goal *model.DailyGoal) error {
	query := `INSERT INTO daily_goals (id, user_id, title, priority, date, completed, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.UserID,
		goal.Title,
		goal.Priority,
		goal.Date,
		goal.Completed,
		goal.CreatedAt,
	)

	return err
}

func (r *dailyGoalRepository) ByDate(userID, date string) ([]*model.DailyGoal, error) {
	var goals []*model.DailyGoal
	query := `SELECT * FROM daily_goals WHERE user_id = $1 AND date = $2 ORDER BY priority ASC, created_at ASC`

	err := r.db.Select(&goals, query, userID, date)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *dailyGoalRepository) SetCompleted(userID, goalID string, completed bool) error {
	query := `UPDATE daily_goals SET completed = $1 WHERE id = $2 AND user_id = $3`

	result, err := r.db.Exec(query, completed, goalID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrDailyGoalNotFound
	}

	return nil
}

func (r *dailyGoalRepository) Delete(userID, goalID string) error {
	query := `DELETE FROM daily_goals WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, goalID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrDailyGoalNotFound
	}

	return nil
}
