package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/domain"
)

var (
	_ domain.HabitRepository      = (*InMemoryRepository)(nil)
	_ domain.CompletionRepository = (*InMemoryRepository)(nil)
)

// InMemoryRepository keeps habits and completions in process memory. Every
// read hands out copies so callers can never mutate the stored state.
type InMemoryRepository struct {
	habits      map[string]*domain.Habit
	completions map[string][]*domain.Completion

	mu sync.RWMutex
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		habits:      make(map[string]*domain.Habit),
		completions: make(map[string][]*domain.Completion),
	}
}

func (r *InMemoryRepository) snapshot(h *domain.Habit) *domain.Habit {
	clone := *h
	clone.Completions = make([]time.Time, 0, len(r.completions[h.ID]))
	for _, c := range r.completions[h.ID] {
		clone.Completions = append(clone.Completions, c.CompletedAt)
	}
	return &clone
}

func (r *InMemoryRepository) Create(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *habit
	clone.Completions = nil
	r.habits[habit.ID] = &clone
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habit, ok := r.habits[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	return r.snapshot(habit), nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habits := make([]*domain.Habit, 0, len(r.habits))
	for _, h := range r.habits {
		habits = append(habits, r.snapshot(h))
	}

	sort.Slice(habits, func(i, j int) bool {
		if habits[i].CreatedAt.Equal(habits[j].CreatedAt) {
			return habits[i].ID < habits[j].ID
		}
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})

	return habits, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.habits[habit.ID]; !ok {
		return domain.ErrHabitNotFound
	}

	clone := *habit
	clone.Completions = nil
	r.habits[habit.ID] = &clone
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.habits[id]; !ok {
		return domain.ErrHabitNotFound
	}

	delete(r.habits, id)
	delete(r.completions, id)
	return nil
}

func (r *InMemoryRepository) Add(ctx context.Context, completion *domain.Completion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.habits[completion.HabitID]; !ok {
		return domain.ErrHabitNotFound
	}

	clone := *completion
	r.completions[completion.HabitID] = append(r.completions[completion.HabitID], &clone)
	return nil
}

func (r *InMemoryRepository) ListByHabitID(ctx context.Context, habitID string) ([]*domain.Completion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.habits[habitID]; !ok {
		return nil, domain.ErrHabitNotFound
	}

	list := make([]*domain.Completion, 0, len(r.completions[habitID]))
	for _, c := range r.completions[habitID] {
		clone := *c
		list = append(list, &clone)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CompletedAt.Before(list[j].CompletedAt)
	})

	return list, nil
}

func (r *InMemoryRepository) ListActivity(ctx context.Context) ([]*domain.CompletionActivity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var activity []*domain.CompletionActivity
	for habitID, list := range r.completions {
		name := r.habits[habitID].Name
		for _, c := range list {
			activity = append(activity, &domain.CompletionActivity{
				HabitID:     habitID,
				HabitName:   name,
				CompletedAt: c.CompletedAt,
			})
		}
	}

	sort.SliceStable(activity, func(i, j int) bool {
		if !activity[i].CompletedAt.Equal(activity[j].CompletedAt) {
			return activity[i].CompletedAt.After(activity[j].CompletedAt)
		}
		return activity[i].HabitID < activity[j].HabitID
	})

	return activity, nil
}
