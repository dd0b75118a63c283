package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/saras/kosakata/internal/config"
	"github.com/saras/kosakata/internal/srs"
)

func validConfig() config.Config {
	return config.Config{
		Addr:             ":8080",
		DBPath:           "test.db",
		LogLevel:         "INFO",
		QueueSize:        10,
		MaxQueueSize:     50,
		SnapshotInterval: time.Hour,
		MasteryStreak:    5,
		RecencyWindowMin: 30,
		OverdueWeight:    10,
		AccuracyWeight:   5,
		DifficultyWeight: 3,
		RecencyWeight:    -8,
		NewWordWeight:    7,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_QueueSizes(t *testing.T) {
	cfg := validConfig()
	cfg.QueueSize = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.MaxQueueSize = cfg.QueueSize - 1
	assert.Error(t, cfg.Validate())
}

func TestValidate_PositiveRecencyWeightRejected(t *testing.T) {
	cfg := validConfig()
	cfg.RecencyWeight = 8

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "RECENCY_WEIGHT")
}

func TestSchedulerParams_MapsTuning(t *testing.T) {
	cfg := validConfig()
	cfg.MasteryStreak = 3
	cfg.RecencyWindowMin = 15
	cfg.OverdueWeight = 12

	p := cfg.SchedulerParams()

	assert.Equal(t, 3, p.MasteryStreak)
	assert.Equal(t, 15*time.Minute, p.RecencyWindow)
	assert.Equal(t, srs.Weights{Overdue: 12, Accuracy: 5, Difficulty: 3, Recency: -8, NewWord: 7}, p.Weights)
}

func TestSchedulerParams_ZeroValuesKeepDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.MasteryStreak = 0
	cfg.RecencyWindowMin = 0

	p := cfg.SchedulerParams()
	defaults := srs.DefaultParams()

	assert.Equal(t, defaults.MasteryStreak, p.MasteryStreak)
	assert.Equal(t, defaults.RecencyWindow, p.RecencyWindow)
}
