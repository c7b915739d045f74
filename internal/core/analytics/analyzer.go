package analytics

import (
	"strings"
	"time"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/domain"
)

// ListNames returns habit names in input order.
func ListNames(habits []*domain.Habit) []string {
	names := make([]string, 0, len(habits))
	for _, h := range habits {
		names = append(names, h.Name)
	}
	return names
}

// ByPeriodicity keeps the habits tagged p, preserving input order.
func ByPeriodicity(habits []*domain.Habit, p domain.Periodicity) []*domain.Habit {
	filtered := make([]*domain.Habit, 0, len(habits))
	for _, h := range habits {
		if h.Periodicity == p {
			filtered = append(filtered, h)
		}
	}
	return filtered
}

// StreakBoard computes every habit's streak in input order. Habits that
// cannot be evaluated are returned in the skip list instead.
func StreakBoard(habits []*domain.Habit, now time.Time) ([]domain.HabitStreak, []domain.SkippedHabit) {
	board := make([]domain.HabitStreak, 0, len(habits))
	var skipped []domain.SkippedHabit

	for _, h := range habits {
		res, err := ComputeHabitStreak(h, now)
		if err != nil {
			skipped = append(skipped, skip(h, err))
			continue
		}
		board = append(board, domain.HabitStreak{
			HabitID:     h.ID,
			HabitName:   h.Name,
			Periodicity: h.Periodicity,
			Streak:      res,
		})
	}

	return board, skipped
}

// OverallLongest picks the habit with the highest longest streak. On ties the
// habit appearing first wins. The result is nil when no habit could be
// evaluated.
func OverallLongest(habits []*domain.Habit, now time.Time) (*domain.RankingResult, []domain.SkippedHabit) {
	board, skipped := StreakBoard(habits, now)

	var best *domain.RankingResult
	for _, entry := range board {
		if best == nil || entry.Streak.Longest > best.Longest {
			best = &domain.RankingResult{
				HabitID:   entry.HabitID,
				HabitName: entry.HabitName,
				Longest:   entry.Streak.Longest,
			}
		}
	}

	return best, skipped
}

// LongestForName evaluates the first habit whose name matches ignoring case.
// It returns domain.ErrHabitNotFound when nothing matches.
func LongestForName(habits []*domain.Habit, name string, now time.Time) (domain.StreakResult, error) {
	for _, h := range habits {
		if strings.EqualFold(h.Name, name) {
			return ComputeHabitStreak(h, now)
		}
	}
	return domain.StreakResult{}, domain.ErrHabitNotFound
}

func skip(h *domain.Habit, err error) domain.SkippedHabit {
	return domain.SkippedHabit{
		HabitID:   h.ID,
		HabitName: h.Name,
		Reason:    err.Error(),
	}
}
