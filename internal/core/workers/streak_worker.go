package workers

import (
	"context"
	"log"
	"time"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/domain"
)

// MilestoneThresholds are the current-streak lengths worth announcing.
var MilestoneThresholds = []int{3, 7, 14, 30, 60, 100, 365}

type HabitRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
}

type MilestonePublisher interface {
	Publish(ctx context.Context, m domain.Milestone) error
}

// LogPublisher announces milestones on the process log.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, m domain.Milestone) error {
	log.Printf("[MILESTONE] %s reached a %d %s streak", m.HabitName, m.Streak, m.Periodicity)
	return nil
}

type StreakJob struct {
	HabitID string
}

// StreakWorker recomputes a habit's streak after each completion and
// publishes a milestone the first time a threshold is crossed. A broken
// streak re-arms the thresholds above its new length.
type StreakWorker struct {
	habitRepo HabitRepository
	publisher MilestonePublisher
	clock     func() time.Time
	loc       *time.Location
	jobs      chan StreakJob

	lastAnnounced map[string]int
}

func NewStreakWorker(hRepo HabitRepository, publisher MilestonePublisher, clock func() time.Time, loc *time.Location) *StreakWorker {
	if publisher == nil {
		publisher = LogPublisher{}
	}
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	if loc == nil {
		loc = time.UTC
	}
	return &StreakWorker{
		habitRepo:     hRepo,
		publisher:     publisher,
		clock:         clock,
		loc:           loc,
		jobs:          make(chan StreakJob, 100),
		lastAnnounced: make(map[string]int),
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Streak Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Streak Worker shutting down...")
				return
			}
		}
	}()
}

func (w *StreakWorker) Enqueue(habitID string) {
	select {
	case w.jobs <- StreakJob{HabitID: habitID}:
	default:
		log.Printf("Streak Worker queue full! Dropping job for habit %s", habitID)
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	habit, err := w.habitRepo.GetByID(ctx, job.HabitID)
	if err != nil {
		log.Printf("Worker Error fetching habit %s: %v", job.HabitID, err)
		return
	}

	now := w.clock().In(w.loc)
	res, err := analytics.ComputeHabitStreak(habit.In(w.loc), now)
	if err != nil {
		log.Printf("Worker Error computing streak for %s: %v", job.HabitID, err)
		return
	}

	threshold, crossed := crossedMilestone(w.lastAnnounced[habit.ID], res.Current)
	if !crossed {
		w.lastAnnounced[habit.ID] = threshold
		return
	}

	milestone := domain.Milestone{
		HabitID:     habit.ID,
		HabitName:   habit.Name,
		Periodicity: habit.Periodicity,
		Streak:      threshold,
		ReachedAt:   now,
	}
	if err := w.publisher.Publish(ctx, milestone); err != nil {
		log.Printf("Worker Failed to publish milestone for %s: %v", job.HabitID, err)
		return
	}
	w.lastAnnounced[habit.ID] = threshold
	log.Printf("Milestone published for %s: Streak=%d", habit.Name, threshold)
}

// crossedMilestone returns the highest threshold not above current and
// whether it is newer than the last one announced.
func crossedMilestone(lastAnnounced, current int) (int, bool) {
	reached := 0
	for _, threshold := range MilestoneThresholds {
		if current >= threshold {
			reached = threshold
		}
	}
	return reached, reached > lastAnnounced
}
