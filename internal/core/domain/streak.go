package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidTimestamp    = errors.New("invalid timestamp")
	ErrPeriodicityMismatch = errors.New("period keys belong to different periodicities")
)

// StreakResult is a habit's streak at one evaluation instant. It is never
// persisted.
type StreakResult struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// RankingResult identifies the best performing habit of a set.
type RankingResult struct {
	HabitID   string `json:"habit_id"`
	HabitName string `json:"habit_name"`
	Longest   int    `json:"longest"`
}

type HabitStreak struct {
	HabitID     string       `json:"habit_id"`
	HabitName   string       `json:"habit_name"`
	Periodicity Periodicity  `json:"periodicity"`
	Streak      StreakResult `json:"streak"`
}

// SkippedHabit reports a habit left out of an aggregation and why.
type SkippedHabit struct {
	HabitID   string `json:"habit_id"`
	HabitName string `json:"habit_name"`
	Reason    string `json:"reason"`
}

// StreakBoard lists the streak of every habit that could be evaluated.
type StreakBoard struct {
	EvaluatedAt time.Time      `json:"evaluated_at"`
	Habits      []HabitStreak  `json:"habits"`
	Skipped     []SkippedHabit `json:"skipped"`
}

// LongestReport carries the overall winner, nil when no habit qualifies.
type LongestReport struct {
	EvaluatedAt time.Time      `json:"evaluated_at"`
	Best        *RankingResult `json:"best"`
	Skipped     []SkippedHabit `json:"skipped"`
}

// Milestone is emitted when a habit's current streak reaches a notable length.
type Milestone struct {
	HabitID     string      `json:"habit_id"`
	HabitName   string      `json:"habit_name"`
	Periodicity Periodicity `json:"periodicity"`
	Streak      int         `json:"streak"`
	ReachedAt   time.Time   `json:"reached_at"`
}
