package srs_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/saras/kosakata/internal/models"
	"github.com/saras/kosakata/internal/srs"
)

func catalog(terms ...string) []models.Word {
	words := make([]models.Word, len(terms))
	for i, term := range terms {
		words[i] = models.Word{ID: int64(i + 1), Term: term}
	}
	return words
}

func TestSelect_ExcludesGivenTerms(t *testing.T) {
	words := catalog("rumah", "air", "makan", "tidur")
	exclude := map[string]struct{}{"air": {}, "tidur": {}}

	got := srs.Select(words, nil, 10, exclude, baseTime, nil, srs.DefaultParams())

	require.Len(t, got, 2)
	for _, w := range got {
		assert.NotContains(t, exclude, w.Term)
	}
}

func TestSelect_SizeBound(t *testing.T) {
	words := catalog("rumah", "air", "makan", "tidur", "buku")

	assert.Len(t, srs.Select(words, nil, 3, nil, baseTime, nil, srs.DefaultParams()), 3)
	assert.Len(t, srs.Select(words, nil, 10, nil, baseTime, nil, srs.DefaultParams()), 5)
	assert.Empty(t, srs.Select(words, nil, 0, nil, baseTime, nil, srs.DefaultParams()))
}

func TestSelect_OrdersByUrgency(t *testing.T) {
	p := srs.DefaultParams()
	now := baseTime
	words := catalog("overdue", "fresh", "settled")

	progress := map[string]models.Progress{
		"overdue": {
			TimesSeen: 10, TimesCorrect: 5, Ease: 1.5,
			DueAt:           now.Add(-5 * 24 * time.Hour),
			LastPracticedAt: now.Add(-6 * 24 * time.Hour),
		},
		"settled": {
			TimesSeen: 10, TimesCorrect: 10, Ease: p.MaxEase,
			DueAt:           now.Add(10 * 24 * time.Hour),
			LastPracticedAt: now.Add(-2 * time.Hour),
		},
	}

	got := srs.Select(words, progress, 3, nil, now, nil, p)

	require.Len(t, got, 3)
	assert.Equal(t, "fresh", got[0].Term, "never-seen words come first")
	assert.Equal(t, "overdue", got[1].Term)
	assert.Equal(t, "settled", got[2].Term)
}

func TestSelect_DeterministicWithoutJitter(t *testing.T) {
	words := catalog("rumah", "air", "makan", "tidur", "buku")

	first := srs.Select(words, nil, 5, nil, baseTime, nil, srs.DefaultParams())
	second := srs.Select(words, nil, 5, nil, baseTime, nil, srs.DefaultParams())

	assert.Equal(t, first, second)
}

func TestSelect_SeededJitterIsReproducible(t *testing.T) {
	p := srs.DefaultParams()
	now := baseTime
	words := catalog("rumah", "air", "makan", "tidur", "buku")
	progress := map[string]models.Progress{}
	for i, w := range words {
		progress[w.Term] = models.Progress{
			TimesSeen: 5 + i, TimesCorrect: 3, Ease: 2.0,
			DueAt:           now.Add(-time.Duration(i) * 24 * time.Hour),
			LastPracticedAt: now.Add(-48 * time.Hour),
		}
	}

	first := srs.Select(words, progress, 5, nil, now, rand.New(rand.NewSource(42)), p)
	second := srs.Select(words, progress, 5, nil, now, rand.New(rand.NewSource(42)), p)

	assert.Equal(t, first, second, "same seed, same order")
}

func TestSelect_EverythingExcludedIsEmptyNotError(t *testing.T) {
	words := catalog("rumah", "air")
	exclude := map[string]struct{}{"rumah": {}, "air": {}}

	got := srs.Select(words, nil, 5, exclude, baseTime, nil, srs.DefaultParams())

	assert.Empty(t, got)
}
