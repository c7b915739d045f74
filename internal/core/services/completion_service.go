package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/domain"
)

// StreakNotifier is told which habit changed so streak milestones can be
// evaluated in the background.
type StreakNotifier interface {
	Enqueue(habitID string)
}

type CompletionService struct {
	repo      domain.CompletionRepository
	habitRepo domain.HabitRepository
	notifier  StreakNotifier
	clock     Clock
}

func NewCompletionService(repo domain.CompletionRepository, habitRepo domain.HabitRepository, notifier StreakNotifier, clock Clock) *CompletionService {
	if clock == nil {
		clock = SystemClock
	}
	return &CompletionService{
		repo:      repo,
		habitRepo: habitRepo,
		notifier:  notifier,
		clock:     clock,
	}
}

type CompleteHabitInput struct {
	HabitID string
	// CompletedAt defaults to the current instant when zero.
	CompletedAt time.Time
}

func (s *CompletionService) Complete(ctx context.Context, input CompleteHabitInput) (*domain.Completion, error) {
	now := s.clock()

	at := input.CompletedAt
	if at.IsZero() {
		at = now
	}
	if at.After(now) {
		return nil, domain.ErrCompletionInFuture
	}

	completion := domain.NewCompletion(input.HabitID, at)
	if err := completion.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.habitRepo.GetByID(ctx, input.HabitID); err != nil {
		return nil, err
	}

	if err := s.repo.Add(ctx, completion); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Enqueue(completion.HabitID)
	}

	return completion, nil
}

func (s *CompletionService) History(ctx context.Context, habitID string) ([]*domain.Completion, error) {
	return s.repo.ListByHabitID(ctx, habitID)
}

// Activity lists every completion across habits, newest first.
func (s *CompletionService) Activity(ctx context.Context) ([]*domain.CompletionActivity, error) {
	return s.repo.ListActivity(ctx)
}
