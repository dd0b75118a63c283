package srs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/saras/kosakata/internal/models"
	"github.com/saras/kosakata/internal/srs"
)

func TestScore_NeverSeenOutranksHistory(t *testing.T) {
	p := srs.DefaultParams()
	now := baseTime

	settled := models.Progress{
		WordTerm:        "rumah",
		TimesSeen:       20,
		TimesCorrect:    20,
		Ease:            p.MaxEase,
		LastPracticedAt: now.Add(-2 * time.Hour),
		DueAt:           now.Add(5 * 24 * time.Hour),
	}

	assert.Greater(t, srs.Score(nil, now, p), srs.Score(&settled, now, p),
		"a brand-new word must beat an accurate, not-overdue one")
}

func TestScore_OverdueGrows(t *testing.T) {
	p := srs.DefaultParams()
	now := baseTime

	prog := models.Progress{
		TimesSeen:       10,
		TimesCorrect:    8,
		Ease:            2.0,
		LastPracticedAt: now.Add(-5 * 24 * time.Hour),
	}

	onTime := prog
	onTime.DueAt = now
	late := prog
	late.DueAt = now.Add(-3 * 24 * time.Hour)

	assert.Greater(t, srs.Score(&late, now, p), srs.Score(&onTime, now, p))
}

func TestScore_LowAccuracyScoresHigher(t *testing.T) {
	p := srs.DefaultParams()
	now := baseTime

	weak := models.Progress{TimesSeen: 10, TimesCorrect: 2, Ease: 2.0, DueAt: now, LastPracticedAt: now.Add(-time.Hour)}
	strong := weak
	strong.TimesCorrect = 9

	assert.Greater(t, srs.Score(&weak, now, p), srs.Score(&strong, now, p))
}

func TestScore_HardWordsScoreHigher(t *testing.T) {
	p := srs.DefaultParams()
	now := baseTime

	hard := models.Progress{TimesSeen: 10, TimesCorrect: 5, Ease: p.MinEase, DueAt: now, LastPracticedAt: now.Add(-time.Hour)}
	easy := hard
	easy.Ease = p.MaxEase

	assert.Greater(t, srs.Score(&hard, now, p), srs.Score(&easy, now, p))
}

func TestScore_RecencySuppression(t *testing.T) {
	p := srs.DefaultParams()
	now := baseTime

	prog := models.Progress{TimesSeen: 10, TimesCorrect: 5, Ease: 2.0, DueAt: now.Add(24 * time.Hour)}

	justAnswered := prog
	justAnswered.LastPracticedAt = now.Add(-time.Minute)
	answeredEarlier := prog
	answeredEarlier.LastPracticedAt = now.Add(-2 * time.Hour)

	assert.Less(t, srs.Score(&justAnswered, now, p), srs.Score(&answeredEarlier, now, p),
		"a word answered a minute ago must be pulled down")
}

func TestScore_NegativeIsAllowed(t *testing.T) {
	p := srs.DefaultParams()
	now := baseTime

	// Accurate, easy, not overdue, answered seconds ago: every positive
	// signal is near zero and the recency penalty dominates.
	prog := models.Progress{
		TimesSeen:       50,
		TimesCorrect:    50,
		Ease:            p.MaxEase,
		DueAt:           now.Add(30 * 24 * time.Hour),
		LastPracticedAt: now.Add(-time.Second),
	}

	assert.Negative(t, srs.Score(&prog, now, p), "the scorer must not clamp to zero")
}

func TestScore_ResidualNewWordBonus(t *testing.T) {
	p := srs.DefaultParams()
	now := baseTime

	young := models.Progress{TimesSeen: 2, TimesCorrect: 2, Ease: 2.5, DueAt: now, LastPracticedAt: now.Add(-time.Hour)}
	established := young
	established.TimesSeen = 10
	established.TimesCorrect = 10

	diff := srs.Score(&young, now, p) - srs.Score(&established, now, p)
	assert.InDelta(t, p.Weights.NewWord, diff, 1e-9,
		"a word with under three answers keeps the flat new-word bonus")
}
