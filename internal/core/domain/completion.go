package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCompletion  = errors.New("invalid completion data")
	ErrCompletionInFuture = errors.New("completion cannot be in the future")
)

type Completion struct {
	ID          string    `json:"id" db:"id"`
	HabitID     string    `json:"habit_id" db:"habit_id"`
	CompletedAt time.Time `json:"completed_at" db:"completed_at"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// CompletionActivity is a completion joined with the name of its habit.
type CompletionActivity struct {
	HabitID     string    `json:"habit_id" db:"habit_id"`
	HabitName   string    `json:"habit_name" db:"habit_name"`
	CompletedAt time.Time `json:"completed_at" db:"completed_at"`
}

func NewCompletion(habitID string, at time.Time) *Completion {
	return &Completion{
		ID:          uuid.New().String(),
		HabitID:     habitID,
		CompletedAt: at.UTC(),
		CreatedAt:   time.Now().UTC(),
	}
}

func (c *Completion) Validate() error {
	if strings.TrimSpace(c.HabitID) == "" {
		return errors.Join(ErrInvalidCompletion, errors.New("habit_id is required"))
	}
	if c.CompletedAt.IsZero() {
		return errors.Join(ErrInvalidCompletion, ErrInvalidTimestamp)
	}
	return nil
}
