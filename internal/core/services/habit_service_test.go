package services_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(repo domain.HabitRepository) *services.HabitService {
	return services.NewHabitService(repo)
}

type MockRepo struct {
	store         map[string]*domain.Habit
	simulateError error
}

func NewMockRepo() *MockRepo {
	return &MockRepo{
		store: make(map[string]*domain.Habit),
	}
}

func (m *MockRepo) Create(ctx context.Context, habit *domain.Habit) error {
	if m.simulateError != nil {
		return m.simulateError
	}

	if _, exists := m.store[habit.ID]; exists {
		return errors.New("duplicate key value violates unique constraint")
	}

	clone := *habit
	m.store[habit.ID] = &clone
	return nil
}

func (m *MockRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	h, ok := m.store[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	clone := *h
	return &clone, nil
}

func (m *MockRepo) List(ctx context.Context) ([]*domain.Habit, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	list := make([]*domain.Habit, 0, len(m.store))
	for _, h := range m.store {
		clone := *h
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

func (m *MockRepo) Update(ctx context.Context, habit *domain.Habit) error {
	if m.simulateError != nil {
		return m.simulateError
	}

	if _, ok := m.store[habit.ID]; !ok {
		return domain.ErrHabitNotFound
	}

	clone := *habit
	m.store[habit.ID] = &clone
	return nil
}

func (m *MockRepo) Delete(ctx context.Context, id string) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if _, ok := m.store[id]; !ok {
		return domain.ErrHabitNotFound
	}
	delete(m.store, id)
	return nil
}

func seedHabit(t *testing.T, repo *MockRepo, name, periodicity string, createdAt time.Time) *domain.Habit {
	t.Helper()
	h, err := domain.NewHabit(name, periodicity)
	require.NoError(t, err)
	h.CreatedAt = createdAt
	h.UpdatedAt = createdAt
	require.NoError(t, repo.Create(context.Background(), h))
	return h
}

func TestHabitService_Create(t *testing.T) {
	t.Run("Success: Should create and persist a valid habit", func(t *testing.T) {
		repo := NewMockRepo()
		svc := newTestService(repo)
		ctx := context.Background()

		created, err := svc.Create(ctx, services.CreateHabitInput{
			Name:        "  Read Book ",
			Periodicity: "Daily",
		})

		require.NoError(t, err)
		assert.Equal(t, "Read Book", created.Name)
		assert.Equal(t, domain.Daily, created.Periodicity)
		assert.NotEmpty(t, created.ID)

		stored, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, stored.ID)
	})

	t.Run("Fail: Domain Validation Error (Blocked BEFORE DB)", func(t *testing.T) {
		tests := []struct {
			name        string
			input       services.CreateHabitInput
			expectedErr error
		}{
			{"Empty name", services.CreateHabitInput{Name: " ", Periodicity: "daily"}, domain.ErrHabitNameEmpty},
			{"Unknown periodicity", services.CreateHabitInput{Name: "Run", Periodicity: "hourly"}, domain.ErrUnknownPeriodicity},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := NewMockRepo()
				svc := newTestService(repo)

				_, err := svc.Create(context.Background(), tt.input)

				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, repo.store)
			})
		}
	})

	t.Run("Fail: Repository error is propagated", func(t *testing.T) {
		repo := NewMockRepo()
		repo.simulateError = errors.New("db down")
		svc := newTestService(repo)

		_, err := svc.Create(context.Background(), services.CreateHabitInput{Name: "Run", Periodicity: "daily"})

		assert.EqualError(t, err, "db down")
	})
}

func TestHabitService_Update(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Success: Should rename and retag", func(t *testing.T) {
		repo := NewMockRepo()
		svc := newTestService(repo)
		existing := seedHabit(t, repo, "Old Name", "daily", created)

		updated, err := svc.Update(context.Background(), services.UpdateHabitInput{
			ID:          existing.ID,
			Name:        "New Name",
			Periodicity: "weekly",
		})

		require.NoError(t, err)
		assert.Equal(t, "New Name", updated.Name)
		assert.Equal(t, domain.Weekly, updated.Periodicity)
		assert.Equal(t, "New Name", repo.store[existing.ID].Name)
	})

	t.Run("Fail: Habit Not Found", func(t *testing.T) {
		svc := newTestService(NewMockRepo())

		_, err := svc.Update(context.Background(), services.UpdateHabitInput{ID: "ghost-id", Name: "X"})

		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Fail: Nothing to change", func(t *testing.T) {
		repo := NewMockRepo()
		svc := newTestService(repo)
		existing := seedHabit(t, repo, "Same", "daily", created)

		_, err := svc.Update(context.Background(), services.UpdateHabitInput{ID: existing.ID, Name: "Same"})

		assert.ErrorIs(t, err, domain.ErrNoChanges)
	})
}

func TestHabitService_Delete(t *testing.T) {
	t.Run("Success: Habit is removed", func(t *testing.T) {
		repo := NewMockRepo()
		svc := newTestService(repo)
		h := seedHabit(t, repo, "To Delete", "daily", time.Now())

		require.NoError(t, svc.Delete(context.Background(), h.ID))

		_, err := svc.Get(context.Background(), h.ID)
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Fail: Delete non-existent habit", func(t *testing.T) {
		svc := newTestService(NewMockRepo())

		err := svc.Delete(context.Background(), "ghost-id")

		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})
}

func TestHabitService_List(t *testing.T) {
	repo := NewMockRepo()
	svc := newTestService(repo)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	seedHabit(t, repo, "Water", "daily", base)
	seedHabit(t, repo, "Report", "weekly", base.Add(time.Hour))
	seedHabit(t, repo, "Run", "daily", base.Add(2*time.Hour))

	t.Run("No filter returns everything oldest first", func(t *testing.T) {
		list, err := svc.List(context.Background(), "")

		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "Water", list[0].Name)
		assert.Equal(t, "Run", list[2].Name)
	})

	t.Run("Filter keeps order", func(t *testing.T) {
		list, err := svc.List(context.Background(), "DAILY")

		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Water", list[0].Name)
		assert.Equal(t, "Run", list[1].Name)
	})

	t.Run("Unknown filter is rejected", func(t *testing.T) {
		_, err := svc.List(context.Background(), "yearly")

		assert.ErrorIs(t, err, domain.ErrUnknownPeriodicity)
	})
}
