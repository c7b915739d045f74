package domain

import (
	"context"
)

type HabitRepository interface {
	// Create persists a new habit definition.
	Create(ctx context.Context, habit *Habit) error

	// GetByID retrieves a habit, completions included.
	GetByID(ctx context.Context, id string) (*Habit, error)

	// List returns every habit with its completions, oldest first.
	// Analytics tie-breaking depends on this order being stable.
	List(ctx context.Context) ([]*Habit, error)

	// Update modifies name and periodicity of an existing habit.
	Update(ctx context.Context, habit *Habit) error

	// Delete removes a habit and its completions.
	Delete(ctx context.Context, id string) error
}

type CompletionRepository interface {
	// Add records one completion. The habit must exist.
	Add(ctx context.Context, completion *Completion) error

	// ListByHabitID returns a habit's completions, oldest first.
	ListByHabitID(ctx context.Context, habitID string) ([]*Completion, error)

	// ListActivity returns every completion joined with its habit name, newest first.
	ListActivity(ctx context.Context) ([]*CompletionActivity, error)
}
