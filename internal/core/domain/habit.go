package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrHabitNameEmpty   = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong = errors.New("habit name is too long (max 100 chars)")
	ErrHabitNotFound    = errors.New("habit not found")
	ErrNoChanges        = errors.New("no changes to apply")
)

const (
	MaxNameLen = 100
)

// Habit is a periodic commitment together with every moment it was completed.
// Completions are an unordered multiset: duplicates are allowed and arrival
// order carries no meaning.
type Habit struct {
	ID          string      `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Periodicity Periodicity `json:"periodicity" db:"periodicity"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
	Completions []time.Time `json:"completions,omitempty" db:"-"`
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrHabitNameEmpty
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLen {
		return "", ErrHabitNameTooLong
	}
	return trimmed, nil
}

func NewHabit(name, periodicity string) (*Habit, error) {
	cleanName, err := validateName(name)
	if err != nil {
		return nil, err
	}

	p, err := ParsePeriodicity(periodicity)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Habit{
		ID:          uuid.New().String(),
		Name:        cleanName,
		Periodicity: p,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Edit applies a partial update. Empty arguments keep the current value.
func (h *Habit) Edit(name, periodicity string) error {
	if strings.TrimSpace(name) == "" && strings.TrimSpace(periodicity) == "" {
		return ErrNoChanges
	}

	newName := h.Name
	if strings.TrimSpace(name) != "" {
		cleanName, err := validateName(name)
		if err != nil {
			return err
		}
		newName = cleanName
	}

	newPeriodicity := h.Periodicity
	if strings.TrimSpace(periodicity) != "" {
		p, err := ParsePeriodicity(periodicity)
		if err != nil {
			return err
		}
		newPeriodicity = p
	}

	if newName == h.Name && newPeriodicity == h.Periodicity {
		return ErrNoChanges
	}

	h.Name = newName
	h.Periodicity = newPeriodicity
	h.UpdatedAt = time.Now().UTC()
	return nil
}

// LastCompletion returns the most recent completion, or false if the habit
// was never completed.
func (h *Habit) LastCompletion() (time.Time, bool) {
	var last time.Time
	found := false
	for _, c := range h.Completions {
		if !found || c.After(last) {
			last = c
			found = true
		}
	}
	return last, found
}

// In returns a copy of the habit with every timestamp expressed in loc, so
// calendar bucketing follows the caller's wall clock. Zero timestamps stay zero.
func (h *Habit) In(loc *time.Location) *Habit {
	clone := *h
	if !h.CreatedAt.IsZero() {
		clone.CreatedAt = h.CreatedAt.In(loc)
	}
	clone.Completions = make([]time.Time, len(h.Completions))
	for i, c := range h.Completions {
		if c.IsZero() {
			continue
		}
		clone.Completions[i] = c.In(loc)
	}
	return &clone
}
