package analytics

import (
	"fmt"
	"slices"
	"time"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/domain"
)

// ComputeStreak evaluates the current and longest streak of a completion set
// at instant now.
//
// Completions falling into the same period count once. The current streak
// survives one elapsed period without a completion: a daily habit last done
// yesterday is still alive today, one last done two days ago is broken.
func ComputeStreak(p domain.Periodicity, completions []time.Time, now time.Time) (domain.StreakResult, error) {
	if err := p.Validate(); err != nil {
		return domain.StreakResult{}, fmt.Errorf("%w: %q", err, p)
	}
	if now.IsZero() {
		return domain.StreakResult{}, fmt.Errorf("%w: evaluation instant is zero", domain.ErrInvalidTimestamp)
	}
	if len(completions) == 0 {
		return domain.StreakResult{}, nil
	}

	keys, err := distinctKeys(p, completions)
	if err != nil {
		return domain.StreakResult{}, err
	}

	longest := 1
	run := 1
	for i := 1; i < len(keys); i++ {
		if IsSuccessor(keys[i-1], keys[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	// run now holds the length of the trailing run ending at the last key.
	trailing := run

	nowKey, err := KeyFor(p, now)
	if err != nil {
		return domain.StreakResult{}, err
	}

	gap, err := Distance(keys[len(keys)-1], nowKey)
	if err != nil {
		return domain.StreakResult{}, err
	}

	current := 0
	if gap <= 1 {
		current = trailing
	}

	return domain.StreakResult{Current: current, Longest: longest}, nil
}

// ComputeHabitStreak is ComputeStreak over a habit snapshot. A habit without a
// creation time is rejected as malformed.
func ComputeHabitStreak(h *domain.Habit, now time.Time) (domain.StreakResult, error) {
	if h.CreatedAt.IsZero() {
		return domain.StreakResult{}, fmt.Errorf("%w: habit %s has no creation time", domain.ErrInvalidTimestamp, h.ID)
	}
	return ComputeStreak(h.Periodicity, h.Completions, now)
}

func distinctKeys(p domain.Periodicity, completions []time.Time) ([]PeriodKey, error) {
	seen := make(map[PeriodKey]struct{}, len(completions))
	keys := make([]PeriodKey, 0, len(completions))

	for i, c := range completions {
		key, err := KeyFor(p, c)
		if err != nil {
			return nil, fmt.Errorf("completion #%d: %w", i, err)
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	slices.SortFunc(keys, PeriodKey.Compare)

	return keys, nil
}
