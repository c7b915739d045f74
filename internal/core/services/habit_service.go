package services

import (
	"context"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/domain"
)

type HabitService struct {
	repo domain.HabitRepository
}

func NewHabitService(repo domain.HabitRepository) *HabitService {
	return &HabitService{
		repo: repo,
	}
}

type CreateHabitInput struct {
	Name        string
	Periodicity string
}

type UpdateHabitInput struct {
	ID          string
	Name        string
	Periodicity string
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	habit, err := domain.NewHabit(input.Name, input.Periodicity)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) Get(ctx context.Context, id string) (*domain.Habit, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns every habit, optionally restricted to one periodicity.
// An empty periodicity means no filter.
func (s *HabitService) List(ctx context.Context, periodicity string) ([]*domain.Habit, error) {
	var filter domain.Periodicity
	if periodicity != "" {
		p, err := domain.ParsePeriodicity(periodicity)
		if err != nil {
			return nil, err
		}
		filter = p
	}

	habits, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if filter == "" {
		return habits, nil
	}
	return analytics.ByPeriodicity(habits, filter), nil
}

func (s *HabitService) Update(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := habit.Edit(input.Name, input.Periodicity); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
