package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/domain"
)

var _ domain.CompletionRepository = (*PostgresCompletionRepository)(nil)

type PostgresCompletionRepository struct {
	db *sqlx.DB
}

func NewPostgresCompletionRepository(db *sqlx.DB) *PostgresCompletionRepository {
	return &PostgresCompletionRepository{db: db}
}

func (r *PostgresCompletionRepository) Add(ctx context.Context, c *domain.Completion) error {
	query := `
		INSERT INTO completions (id, habit_id, completed_at, created_at)
		VALUES (:id, :habit_id, :completed_at, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		switch pgErrorCode(err) {
		case pgForeignKeyViolation:
			return domain.ErrHabitNotFound
		case pgUniqueViolation:
			return fmt.Errorf("completion %s already recorded: %w", c.ID, err)
		}
		return fmt.Errorf("failed to insert completion: %w", err)
	}
	return nil
}

func (r *PostgresCompletionRepository) ListByHabitID(ctx context.Context, habitID string) ([]*domain.Completion, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM habits WHERE id = $1)`, habitID); err != nil {
		return nil, fmt.Errorf("existence check failed: %w", err)
	}
	if !exists {
		return nil, domain.ErrHabitNotFound
	}

	completions := []*domain.Completion{}
	query := `
		SELECT id, habit_id, completed_at, created_at FROM completions
		WHERE habit_id = $1
		ORDER BY completed_at ASC`

	if err := r.db.SelectContext(ctx, &completions, query, habitID); err != nil {
		return nil, err
	}
	return completions, nil
}

func (r *PostgresCompletionRepository) ListActivity(ctx context.Context) ([]*domain.CompletionActivity, error) {
	activity := []*domain.CompletionActivity{}
	query := `
		SELECT c.habit_id, h.name AS habit_name, c.completed_at
		FROM completions AS c
		JOIN habits AS h ON c.habit_id = h.id
		ORDER BY c.completed_at DESC, c.habit_id ASC`

	if err := r.db.SelectContext(ctx, &activity, query); err != nil {
		return nil, err
	}
	return activity, nil
}
