// Package config reads the tracker's runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Port     string
	Storage  string
	Location *time.Location

	Postgres  PostgresConfig
	SQLite    SQLiteConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Kafka     KafkaConfig
}

type PostgresConfig struct {
	Driver   string
	User     string
	Password string
	Host     string
	Port     string
	Name     string
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

type SQLiteConfig struct {
	Path string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

type KafkaConfig struct {
	Brokers        []string
	MilestoneTopic string
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load(envFiles...)

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		Storage: strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
		Postgres: PostgresConfig{
			Driver:   getEnv("DB_DRIVER", "pgx"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     os.Getenv("DB_NAME"),
		},
		SQLite: SQLiteConfig{
			Path: getEnv("SQLITE_PATH", "habits.db"),
		},
		Redis: RedisConfig{
			Enabled:  os.Getenv("REDIS_HOST") != "",
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Kafka: KafkaConfig{
			Brokers:        splitList(os.Getenv("KAFKA_BROKERS")),
			MilestoneTopic: getEnv("KAFKA_MILESTONE_TOPIC", "habit.milestones"),
		},
	}

	var err error
	if cfg.Redis.DB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Limit, err = getInt("RATE_LIMIT_REQUESTS", 100); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Window, err = getDuration("RATE_LIMIT_WINDOW", time.Minute); err != nil {
		return nil, err
	}

	switch cfg.Storage {
	case StorageMemory, StorageSQLite, StoragePostgres:
	default:
		return nil, fmt.Errorf("%w: STORAGE_DRIVER %q (must be memory, sqlite or postgres)", ErrInvalidConfig, cfg.Storage)
	}

	switch cfg.Postgres.Driver {
	case "pgx", "postgres":
	default:
		return nil, fmt.Errorf("%w: DB_DRIVER %q (must be pgx or postgres)", ErrInvalidConfig, cfg.Postgres.Driver)
	}

	tz := getEnv("TIMEZONE", "UTC")
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("%w: TIMEZONE %q: %v", ErrInvalidConfig, tz, err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidConfig, key)
	}
	return v, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration", ErrInvalidConfig, key)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
