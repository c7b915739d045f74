package services

import (
	"context"
	"strings"
	"time"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/domain"
)

// StreakRecorder observes how many habits an aggregation evaluated and skipped.
type StreakRecorder interface {
	ObserveStreaks(operation string, evaluated, skipped int)
}

// AnalyticsService loads habit snapshots and hands them to the streak engine,
// evaluated at the service clock in the configured location.
type AnalyticsService struct {
	habitRepo domain.HabitRepository
	clock     Clock
	loc       *time.Location
	recorder  StreakRecorder
}

func NewAnalyticsService(habitRepo domain.HabitRepository, clock Clock, loc *time.Location, recorder StreakRecorder) *AnalyticsService {
	if clock == nil {
		clock = SystemClock
	}
	if loc == nil {
		loc = time.UTC
	}
	return &AnalyticsService{
		habitRepo: habitRepo,
		clock:     clock,
		loc:       loc,
		recorder:  recorder,
	}
}

func (s *AnalyticsService) now() time.Time {
	return s.clock().In(s.loc)
}

func (s *AnalyticsService) observe(operation string, evaluated, skipped int) {
	if s.recorder != nil {
		s.recorder.ObserveStreaks(operation, evaluated, skipped)
	}
}

func (s *AnalyticsService) localHabits(ctx context.Context) ([]*domain.Habit, error) {
	habits, err := s.habitRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	local := make([]*domain.Habit, 0, len(habits))
	for _, h := range habits {
		local = append(local, h.In(s.loc))
	}
	return local, nil
}

// Streak evaluates a single habit. Unlike the aggregations it fails when the
// habit cannot be evaluated.
func (s *AnalyticsService) Streak(ctx context.Context, habitID string) (*domain.HabitStreak, error) {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}

	res, err := analytics.ComputeHabitStreak(habit.In(s.loc), s.now())
	if err != nil {
		s.observe("streak", 0, 1)
		return nil, err
	}
	s.observe("streak", 1, 0)

	return &domain.HabitStreak{
		HabitID:     habit.ID,
		HabitName:   habit.Name,
		Periodicity: habit.Periodicity,
		Streak:      res,
	}, nil
}

func (s *AnalyticsService) Board(ctx context.Context) (*domain.StreakBoard, error) {
	habits, err := s.localHabits(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	board, skipped := analytics.StreakBoard(habits, now)
	s.observe("board", len(board), len(skipped))

	return &domain.StreakBoard{
		EvaluatedAt: now,
		Habits:      board,
		Skipped:     skipped,
	}, nil
}

// ByPeriodicity filters habits by tag. It computes no streaks.
func (s *AnalyticsService) ByPeriodicity(ctx context.Context, periodicity string) ([]*domain.Habit, error) {
	p, err := domain.ParsePeriodicity(periodicity)
	if err != nil {
		return nil, err
	}

	habits, err := s.habitRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.ByPeriodicity(habits, p), nil
}

func (s *AnalyticsService) Overall(ctx context.Context) (*domain.LongestReport, error) {
	habits, err := s.localHabits(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	best, skipped := analytics.OverallLongest(habits, now)
	s.observe("overall", len(habits)-len(skipped), len(skipped))

	return &domain.LongestReport{
		EvaluatedAt: now,
		Best:        best,
		Skipped:     skipped,
	}, nil
}

// ForName evaluates the first habit named name, ignoring case. It returns
// domain.ErrHabitNotFound when no habit matches.
func (s *AnalyticsService) ForName(ctx context.Context, name string) (domain.StreakResult, error) {
	if strings.TrimSpace(name) == "" {
		return domain.StreakResult{}, domain.ErrHabitNameEmpty
	}

	habits, err := s.localHabits(ctx)
	if err != nil {
		return domain.StreakResult{}, err
	}

	return analytics.LongestForName(habits, strings.TrimSpace(name), s.now())
}
