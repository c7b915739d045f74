package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/domain"
)

var (
	_ domain.HabitRepository      = (*CachedHabitRepository)(nil)
	_ domain.CompletionRepository = (*CachedCompletionRepository)(nil)
)

const (
	habitListCacheKey = "habits:all"
	habitListCacheTTL = 30 * time.Minute
)

func invalidateHabitList(ctx context.Context, cache *redis.Client) {
	if err := cache.Del(ctx, habitListCacheKey).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate habit list: %v", err)
	}
}

// CachedHabitRepository serves List from Redis. Only the habit snapshots
// are cached; streaks are always recomputed by the caller.
type CachedHabitRepository struct {
	next  domain.HabitRepository
	cache *redis.Client
}

func NewCachedHabitRepository(next domain.HabitRepository, cache *redis.Client) *CachedHabitRepository {
	return &CachedHabitRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedHabitRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	val, err := r.cache.Get(ctx, habitListCacheKey).Result()
	if err == nil {
		var habits []*domain.Habit
		if err := json.Unmarshal([]byte(val), &habits); err == nil {
			return habits, nil
		}

		log.Printf("[CACHE] Corrupted habit list, cleaning up key")
		r.cache.Del(ctx, habitListCacheKey)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	habits, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(habits); err == nil {
		if setErr := r.cache.Set(ctx, habitListCacheKey, data, habitListCacheTTL).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return habits, nil
}

func (r *CachedHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Create(ctx, habit); err != nil {
		return err
	}
	invalidateHabitList(ctx, r.cache)
	return nil
}

func (r *CachedHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Update(ctx, habit); err != nil {
		return err
	}
	invalidateHabitList(ctx, r.cache)
	return nil
}

func (r *CachedHabitRepository) Delete(ctx context.Context, id string) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	invalidateHabitList(ctx, r.cache)
	return nil
}

// CachedCompletionRepository invalidates the cached habit list whenever a
// completion is recorded, since the list embeds completions.
type CachedCompletionRepository struct {
	next  domain.CompletionRepository
	cache *redis.Client
}

func NewCachedCompletionRepository(next domain.CompletionRepository, cache *redis.Client) *CachedCompletionRepository {
	return &CachedCompletionRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedCompletionRepository) Add(ctx context.Context, c *domain.Completion) error {
	if err := r.next.Add(ctx, c); err != nil {
		return err
	}
	invalidateHabitList(ctx, r.cache)
	return nil
}

func (r *CachedCompletionRepository) ListByHabitID(ctx context.Context, habitID string) ([]*domain.Completion, error) {
	return r.next.ListByHabitID(ctx, habitID)
}

func (r *CachedCompletionRepository) ListActivity(ctx context.Context) ([]*domain.CompletionActivity, error) {
	return r.next.ListActivity(ctx)
}
