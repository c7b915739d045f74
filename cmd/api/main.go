package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-habit-tracker/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/adapters/messaging"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/config"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/services"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/workers"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/observability"
)

type application struct {
	router  *gin.Engine
	worker  *workers.StreakWorker
	closers []func() error
}

func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}
}

type storage struct {
	habits      domain.HabitRepository
	completions domain.CompletionRepository
	pinger      adapterHTTP.StoragePinger
	close       func() error
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		log.Printf("Opening SQLite database at %s...", cfg.SQLite.Path)
		repo, err := repository.NewSQLiteRepository(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return &storage{habits: repo, completions: repo, pinger: repo, close: repo.Close}, nil

	case config.StoragePostgres:
		log.Println("Connecting to database...")
		db, err := sqlx.Connect(cfg.Postgres.Driver, cfg.Postgres.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err := repository.MigratePostgres(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		log.Println("Database connected successfully.")

		return &storage{
			habits:      repository.NewPostgresHabitRepository(db),
			completions: repository.NewPostgresCompletionRepository(db),
			pinger:      db,
			close:       db.Close,
		}, nil

	default:
		log.Println("Using in-memory storage, data is lost on restart.")
		repo := repository.NewInMemoryRepository()
		return &storage{habits: repo, completions: repo, close: func() error { return nil }}, nil
	}
}

func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	app := &application{}

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, store.close)

	habitRepo := store.habits
	completionRepo := store.completions

	deps := adapterHTTP.RouterDependencies{
		Storage:   store.pinger,
		RateLimit: cfg.RateLimit,
		StartTime: time.Now(),
	}

	if cfg.Redis.Enabled {
		rdb, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			log.Printf("[CACHE] Redis unavailable, running without cache: %v", err)
		} else {
			app.closers = append(app.closers, rdb.Close)
			habitRepo = repository.NewCachedHabitRepository(habitRepo, rdb)
			completionRepo = repository.NewCachedCompletionRepository(completionRepo, rdb)
			deps.Redis = rdb
		}
	}

	var publisher workers.MilestonePublisher = workers.LogPublisher{}
	if cfg.Kafka.Enabled() {
		kafkaPublisher := messaging.NewKafkaMilestonePublisher(cfg.Kafka)
		app.closers = append(app.closers, kafkaPublisher.Close)
		publisher = kafkaPublisher
		log.Printf("[KAFKA] Publishing milestones to %s", cfg.Kafka.MilestoneTopic)
	}

	metrics := observability.NewMetrics()
	deps.Metrics = metrics

	app.worker = workers.NewStreakWorker(habitRepo, publisher, services.SystemClock, cfg.Location)

	habitService := services.NewHabitService(habitRepo)
	completionService := services.NewCompletionService(completionRepo, habitRepo, app.worker, services.SystemClock)
	analyticsService := services.NewAnalyticsService(habitRepo, services.SystemClock, cfg.Location, metrics)
	adminService := services.NewAdminService(habitRepo, completionRepo, services.SystemClock, nil)

	deps.HabitHandler = adapterHTTP.NewHabitHandler(habitService)
	deps.CompletionHandler = adapterHTTP.NewCompletionHandler(completionService)
	deps.AnalyticsHandler = adapterHTTP.NewAnalyticsHandler(analyticsService)
	deps.AdminHandler = adapterHTTP.NewAdminHandler(adminService)

	app.router = adapterHTTP.NewRouter(deps)
	return app, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	app, err := newApplication(ctx, cfg)
	if err != nil {
		log.Fatalf("Critical: %v", err)
	}
	defer app.Close()

	app.worker.Start(ctx)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      app.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Kanso Habit Tracker running on http://localhost:%s (storage=%s, tz=%s)", cfg.Port, cfg.Storage, cfg.Location)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown error: %v", err)
	}
	stop()

	log.Println("Server stopped gracefully.")
}
