package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/saras/kosakata/internal/srs"
)

type Config struct {
	Addr     string
	DBPath   string
	LogLevel string

	// Practice queue defaults.
	QueueSize    int
	MaxQueueSize int

	// Background stats snapshots.
	SnapshotInterval    time.Duration
	SnapshotWorkerCount int
	SnapshotQueueSize   int

	// Scheduler tuning; zero values fall back to srs defaults.
	MasteryStreak    int
	RecencyWindowMin int
	OverdueWeight    float64
	AccuracyWeight   float64
	DifficultyWeight float64
	RecencyWeight    float64
	NewWordWeight    float64
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                envOr("ADDR", ":8080"),
		DBPath:              envOr("DB_PATH", "file:kosakata.db"),
		LogLevel:            envOr("LOG_LEVEL", "INFO"),
		QueueSize:           envIntOr("QUEUE_SIZE", 10),
		MaxQueueSize:        envIntOr("MAX_QUEUE_SIZE", 50),
		SnapshotInterval:    time.Duration(envIntOr("SNAPSHOT_INTERVAL_MIN", 60)) * time.Minute,
		SnapshotWorkerCount: envIntOr("SNAPSHOT_WORKER_COUNT", 1),
		SnapshotQueueSize:   envIntOr("SNAPSHOT_QUEUE_SIZE", 8),
		MasteryStreak:       envIntOr("MASTERY_STREAK", 5),
		RecencyWindowMin:    envIntOr("RECENCY_WINDOW_MIN", 30),
		OverdueWeight:       envFloatOr("OVERDUE_WEIGHT", 10),
		AccuracyWeight:      envFloatOr("ACCURACY_WEIGHT", 5),
		DifficultyWeight:    envFloatOr("DIFFICULTY_WEIGHT", 3),
		RecencyWeight:       envFloatOr("RECENCY_WEIGHT", -8),
		NewWordWeight:       envFloatOr("NEW_WORD_WEIGHT", 7),
	}
}

// Validate checks the configuration for values the server cannot run with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("QUEUE_SIZE must be at least 1, got %d", c.QueueSize)
	}
	if c.MaxQueueSize < c.QueueSize {
		return fmt.Errorf("MAX_QUEUE_SIZE (%d) must be >= QUEUE_SIZE (%d)", c.MaxQueueSize, c.QueueSize)
	}
	if c.MasteryStreak < 1 {
		return fmt.Errorf("MASTERY_STREAK must be at least 1, got %d", c.MasteryStreak)
	}
	if c.RecencyWeight > 0 {
		return fmt.Errorf("RECENCY_WEIGHT must be zero or negative, got %v", c.RecencyWeight)
	}
	return nil
}

// SchedulerParams maps the configured tuning onto srs.Params.
func (c Config) SchedulerParams() srs.Params {
	p := srs.DefaultParams()
	if c.MasteryStreak > 0 {
		p.MasteryStreak = c.MasteryStreak
	}
	if c.RecencyWindowMin > 0 {
		p.RecencyWindow = time.Duration(c.RecencyWindowMin) * time.Minute
	}
	p.Weights = srs.Weights{
		Overdue:    c.OverdueWeight,
		Accuracy:   c.AccuracyWeight,
		Difficulty: c.DifficultyWeight,
		Recency:    c.RecencyWeight,
		NewWord:    c.NewWordWeight,
	}
	return p
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %v", key, v, def)
	}
	return def
}
