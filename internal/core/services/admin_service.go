package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/domain"
)

// demoHabits are created by SeedDemoHabits when missing.
var demoHabits = []struct {
	Name        string
	Periodicity domain.Periodicity
}{
	{"Drink Water", domain.Daily},
	{"Workout", domain.Daily},
	{"Weekly Report", domain.Weekly},
	{"House Cleaning", domain.Weekly},
	{"Budget Review", domain.Monthly},
}

// seedPlan describes how synthetic completions are laid out for one periodicity.
type seedPlan struct {
	step       func(t time.Time, i int) time.Time
	periodDays int
	missChance float64
}

var seedPlans = map[domain.Periodicity]seedPlan{
	domain.Daily: {
		step:       func(t time.Time, i int) time.Time { return t.AddDate(0, 0, -i) },
		periodDays: 1,
		missChance: 0.20,
	},
	domain.Weekly: {
		step:       func(t time.Time, i int) time.Time { return t.AddDate(0, 0, -7*i) },
		periodDays: 7,
		missChance: 0.25,
	},
	domain.Monthly: {
		step:       monthsBack,
		periodDays: 30,
		missChance: 0.33,
	},
}

// monthsBack keeps the day of month, clamped to the length of the target
// month, so a month end never rolls over into the following month.
func monthsBack(t time.Time, i int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m-time.Month(i), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

type HabitSummary struct {
	HabitID     string             `json:"habit_id"`
	Name        string             `json:"name"`
	Periodicity domain.Periodicity `json:"periodicity"`
	Completions int                `json:"completions"`
}

// AdminService generates demonstration data. It only talks to the repositories.
type AdminService struct {
	habitRepo      domain.HabitRepository
	completionRepo domain.CompletionRepository
	clock          Clock

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewAdminService(habitRepo domain.HabitRepository, completionRepo domain.CompletionRepository, clock Clock, rng *rand.Rand) *AdminService {
	if clock == nil {
		clock = SystemClock
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &AdminService{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		clock:          clock,
		rng:            rng,
	}
}

// SeedDemoHabits creates the demo habits whose names are not taken yet,
// comparing names without case.
func (s *AdminService) SeedDemoHabits(ctx context.Context) ([]*domain.Habit, error) {
	existing, err := s.habitRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(existing))
	for _, h := range existing {
		taken[strings.ToLower(h.Name)] = true
	}

	var created []*domain.Habit
	for _, demo := range demoHabits {
		if taken[strings.ToLower(demo.Name)] {
			continue
		}

		habit, err := domain.NewHabit(demo.Name, demo.Periodicity.String())
		if err != nil {
			return created, err
		}
		if err := s.habitRepo.Create(ctx, habit); err != nil {
			return created, fmt.Errorf("seed %q: %w", demo.Name, err)
		}
		created = append(created, habit)
	}

	log.Printf("[SEED] Created %d demo habits", len(created))
	return created, nil
}

// AddFakeCompletions backfills spanDays of history for every habit, randomly
// skipping periods to produce imperfect streaks. It returns how many
// completions were recorded.
func (s *AdminService) AddFakeCompletions(ctx context.Context, spanDays int) (int, error) {
	return s.backfill(ctx, spanDays, true)
}

// AddPerfectStreaks backfills spanDays of history without any missed period.
func (s *AdminService) AddPerfectStreaks(ctx context.Context, spanDays int) (int, error) {
	return s.backfill(ctx, spanDays, false)
}

func (s *AdminService) backfill(ctx context.Context, spanDays int, withMisses bool) (int, error) {
	if spanDays <= 0 {
		return 0, fmt.Errorf("span must be positive, got %d", spanDays)
	}

	habits, err := s.habitRepo.List(ctx)
	if err != nil {
		return 0, err
	}

	now := s.clock()
	recorded := 0

	for _, h := range habits {
		plan, ok := seedPlans[h.Periodicity]
		if !ok {
			log.Printf("[SEED] Skipping habit %s: %v", h.ID, domain.ErrUnknownPeriodicity)
			continue
		}

		iterations := spanDays / plan.periodDays
		for i := 0; i < iterations; i++ {
			if withMisses && s.miss(plan.missChance) {
				continue
			}
			if err := s.completionRepo.Add(ctx, domain.NewCompletion(h.ID, plan.step(now, i))); err != nil {
				return recorded, fmt.Errorf("backfill %s: %w", h.Name, err)
			}
			recorded++
		}
	}

	log.Printf("[SEED] Recorded %d completions over %d days", recorded, spanDays)
	return recorded, nil
}

func (s *AdminService) miss(chance float64) bool {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Float64() < chance
}

func (s *AdminService) Summary(ctx context.Context) ([]HabitSummary, error) {
	habits, err := s.habitRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := make([]HabitSummary, 0, len(habits))
	for _, h := range habits {
		summary = append(summary, HabitSummary{
			HabitID:     h.ID,
			Name:        h.Name,
			Periodicity: h.Periodicity,
			Completions: len(h.Completions),
		})
	}
	return summary, nil
}
