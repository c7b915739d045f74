package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/domain"
)

var _ domain.HabitRepository = (*PostgresHabitRepository)(nil)

type PostgresHabitRepository struct {
	db *sqlx.DB
}

func NewPostgresHabitRepository(db *sqlx.DB) *PostgresHabitRepository {
	return &PostgresHabitRepository{db: db}
}

type completionRow struct {
	HabitID     string    `db:"habit_id"`
	CompletedAt time.Time `db:"completed_at"`
}

const habitColumns = `id, name, periodicity, created_at, updated_at`

func (r *PostgresHabitRepository) Create(ctx context.Context, h *domain.Habit) error {
	query := `
        INSERT INTO habits (id, name, periodicity, created_at, updated_at)
        VALUES (:id, :name, :periodicity, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, h); err != nil {
		if pgErrorCode(err) == pgCheckViolation {
			return fmt.Errorf("%w: %v", domain.ErrUnknownPeriodicity, err)
		}
		return fmt.Errorf("failed to insert habit: %w", err)
	}
	return nil
}

func (r *PostgresHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	var h domain.Habit
	query := `SELECT ` + habitColumns + ` FROM habits WHERE id = $1`

	if err := r.db.GetContext(ctx, &h, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}

	completions := []time.Time{}
	err := r.db.SelectContext(ctx, &completions,
		`SELECT completed_at FROM completions WHERE habit_id = $1 ORDER BY completed_at ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("completions query error: %w", err)
	}
	h.Completions = completions

	return &h, nil
}

func (r *PostgresHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	habits := []*domain.Habit{}
	query := `SELECT ` + habitColumns + ` FROM habits ORDER BY created_at ASC, id ASC`

	if err := r.db.SelectContext(ctx, &habits, query); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	rows := []completionRow{}
	err := r.db.SelectContext(ctx, &rows,
		`SELECT habit_id, completed_at FROM completions ORDER BY completed_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("completions query error: %w", err)
	}

	attachCompletions(habits, rows)
	return habits, nil
}

func (r *PostgresHabitRepository) Update(ctx context.Context, h *domain.Habit) error {
	query := `
        UPDATE habits SET name = :name, periodicity = :periodicity, updated_at = :updated_at
        WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, h)
	if err != nil {
		if pgErrorCode(err) == pgCheckViolation {
			return fmt.Errorf("%w: %v", domain.ErrUnknownPeriodicity, err)
		}
		return fmt.Errorf("update query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHabitNotFound
	}
	return nil
}

func (r *PostgresHabitRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHabitNotFound
	}
	return nil
}

func attachCompletions(habits []*domain.Habit, rows []completionRow) {
	byID := make(map[string]*domain.Habit, len(habits))
	for _, h := range habits {
		h.Completions = []time.Time{}
		byID[h.ID] = h
	}
	for _, row := range rows {
		if h, ok := byID[row.HabitID]; ok {
			h.Completions = append(h.Completions, row.CompletedAt)
		}
	}
}
