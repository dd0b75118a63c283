package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/saras/kosakata/internal/models"
)

func TestBadgeFor(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		progress *models.Progress
		want     string
	}{
		{"no progress record", nil, BadgeNew},
		{"seen zero times", &models.Progress{}, BadgeNew},
		{
			"seen once",
			&models.Progress{TimesSeen: 1, TimesCorrect: 1, LastPracticedAt: now},
			BadgeNew,
		},
		{
			"settled into rotation",
			&models.Progress{TimesSeen: 8, TimesCorrect: 6, Streak: 2},
			BadgeLearning,
		},
		{
			"repeated recent failures",
			&models.Progress{TimesSeen: 8, TimesCorrect: 6, LapseStreak: 2},
			BadgeStruggling,
		},
		{
			"poor lifetime accuracy",
			&models.Progress{TimesSeen: 10, TimesCorrect: 3},
			BadgeStruggling,
		},
		{
			"mastered",
			&models.Progress{TimesSeen: 12, TimesCorrect: 11, Mastered: true, MasteredAt: now},
			BadgeMastered,
		},
		{
			"mastered wins over lapses",
			&models.Progress{TimesSeen: 12, TimesCorrect: 8, Mastered: true, LapseStreak: 3},
			BadgeMastered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, badgeFor(tt.progress))
		})
	}
}
