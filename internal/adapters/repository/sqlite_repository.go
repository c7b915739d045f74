package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/domain"

	_ "modernc.org/sqlite"
)

var (
	_ domain.HabitRepository      = (*SQLiteRepository)(nil)
	_ domain.CompletionRepository = (*SQLiteRepository)(nil)
)

// Fixed width so that text ordering in ORDER BY matches time ordering.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteRepository stores habits and completions in a single SQLite file,
// for running the tracker without a database server.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (or creates) the database file and initializes the schema.
func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRepository) Close() error { return r.db.Close() }

func (r *SQLiteRepository) PingContext(ctx context.Context) error { return r.db.PingContext(ctx) }

func (r *SQLiteRepository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS habits (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		periodicity TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS completions (
		id           TEXT PRIMARY KEY,
		habit_id     TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
		completed_at TEXT NOT NULL,
		created_at   TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_completions_habit ON completions (habit_id, completed_at);
	`
	_, err := r.db.Exec(schema)
	return err
}

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

// parseTime rejects rows that cannot be interpreted instead of guessing.
func parseTime(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, raw)
	}
	return t, nil
}

// lenientTime maps an unreadable value to the zero time, which analytics
// report as an invalid timestamp for that habit only.
func lenientTime(raw, what string) time.Time {
	t, err := parseTime(raw)
	if err != nil {
		log.Printf("[SQLITE] Unreadable %s: %v", what, err)
		return time.Time{}
	}
	return t
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (*domain.Habit, error) {
	var h domain.Habit
	var periodicity, createdAt, updatedAt string

	if err := row.Scan(&h.ID, &h.Name, &periodicity, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	// Unknown tags are kept as stored so analytics can report the habit as skipped.
	h.Periodicity = domain.Periodicity(periodicity)
	h.CreatedAt = lenientTime(createdAt, "created_at of habit "+h.ID)
	h.UpdatedAt = lenientTime(updatedAt, "updated_at of habit "+h.ID)
	return &h, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, h *domain.Habit) error {
	return retryOnContention(func() error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO habits (id, name, periodicity, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			h.ID, h.Name, string(h.Periodicity), formatTime(h.CreatedAt), formatTime(h.UpdatedAt),
		)
		return err
	})
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, periodicity, created_at, updated_at FROM habits WHERE id = ?`, id)

	h, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT completed_at FROM completions WHERE habit_id = ? ORDER BY completed_at ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("completions query error: %w", err)
	}
	defer rows.Close()

	h.Completions = []time.Time{}
	for rows.Next() {
		var completedAt string
		if err := rows.Scan(&completedAt); err != nil {
			return nil, err
		}
		h.Completions = append(h.Completions, lenientTime(completedAt, "completion of habit "+id))
	}
	return h, rows.Err()
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, periodicity, created_at, updated_at FROM habits ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	habits := []*domain.Habit{}
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("row scan error: %w", err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	crows, err := r.db.QueryContext(ctx, `SELECT habit_id, completed_at FROM completions ORDER BY completed_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("completions query error: %w", err)
	}
	defer crows.Close()

	var all []completionRow
	for crows.Next() {
		var row completionRow
		var completedAt string
		if err := crows.Scan(&row.HabitID, &completedAt); err != nil {
			return nil, err
		}
		row.CompletedAt = lenientTime(completedAt, "completion of habit "+row.HabitID)
		all = append(all, row)
	}
	if err := crows.Err(); err != nil {
		return nil, err
	}

	attachCompletions(habits, all)
	return habits, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, h *domain.Habit) error {
	var affected int64
	err := retryOnContention(func() error {
		res, err := r.db.ExecContext(ctx,
			`UPDATE habits SET name = ?, periodicity = ?, updated_at = ? WHERE id = ?`,
			h.Name, string(h.Periodicity), formatTime(h.UpdatedAt), h.ID,
		)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("update query failed: %w", err)
	}
	if affected == 0 {
		return domain.ErrHabitNotFound
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	var affected int64
	err := retryOnContention(func() error {
		res, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = ?`, id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("delete query failed: %w", err)
	}
	if affected == 0 {
		return domain.ErrHabitNotFound
	}
	return nil
}

func (r *SQLiteRepository) Add(ctx context.Context, c *domain.Completion) error {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM habits WHERE id = ?)`, c.HabitID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrHabitNotFound
	}

	return retryOnContention(func() error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO completions (id, habit_id, completed_at, created_at) VALUES (?, ?, ?, ?)`,
			c.ID, c.HabitID, formatTime(c.CompletedAt), formatTime(c.CreatedAt),
		)
		return err
	})
}

func (r *SQLiteRepository) ListByHabitID(ctx context.Context, habitID string) ([]*domain.Completion, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM habits WHERE id = ?)`, habitID).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrHabitNotFound
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, habit_id, completed_at, created_at FROM completions WHERE habit_id = ? ORDER BY completed_at ASC`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	completions := []*domain.Completion{}
	for rows.Next() {
		var c domain.Completion
		var completedAt, createdAt string
		if err := rows.Scan(&c.ID, &c.HabitID, &completedAt, &createdAt); err != nil {
			return nil, err
		}
		if c.CompletedAt, err = parseTime(completedAt); err != nil {
			return nil, err
		}
		if c.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		completions = append(completions, &c)
	}
	return completions, rows.Err()
}

func (r *SQLiteRepository) ListActivity(ctx context.Context) ([]*domain.CompletionActivity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.habit_id, h.name, c.completed_at
		FROM completions AS c
		JOIN habits AS h ON c.habit_id = h.id
		ORDER BY c.completed_at DESC, c.habit_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activity := []*domain.CompletionActivity{}
	for rows.Next() {
		var a domain.CompletionActivity
		var completedAt string
		if err := rows.Scan(&a.HabitID, &a.HabitName, &completedAt); err != nil {
			return nil, err
		}
		if a.CompletedAt, err = parseTime(completedAt); err != nil {
			return nil, err
		}
		activity = append(activity, &a)
	}
	return activity, rows.Err()
}
