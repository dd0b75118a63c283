package srs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/saras/kosakata/internal/srs"
)

func TestQuality_IncorrectAlwaysTwo(t *testing.T) {
	assert.Equal(t, 2, srs.Quality(false, 0))
	assert.Equal(t, 2, srs.Quality(false, 500*time.Millisecond))
	assert.Equal(t, 2, srs.Quality(false, time.Hour))
}

func TestQuality_CorrectBySpeed(t *testing.T) {
	tests := []struct {
		name         string
		responseTime time.Duration
		expected     int
	}{
		{"untimed defaults to 4", 0, 4},
		{"fast answer", 2 * time.Second, 5},
		{"just under fast cutoff", 2999 * time.Millisecond, 5},
		{"at fast cutoff", 3 * time.Second, 4},
		{"moderate answer", 5 * time.Second, 4},
		{"at slow cutoff", 7 * time.Second, 3},
		{"slow answer", 30 * time.Second, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, srs.Quality(true, tt.responseTime))
		})
	}
}

func TestNextEase_Monotonic(t *testing.T) {
	p := srs.DefaultParams()
	for _, ease := range []float64{1.5, 2.0, 2.5} {
		assert.Greater(t, srs.NextEase(ease, 5, p), srs.NextEase(ease, 2, p),
			"higher quality should yield higher ease from %.1f", ease)
	}
}

func TestNextEase_ClampsAtFloor(t *testing.T) {
	p := srs.DefaultParams()
	ease := p.MinEase
	for i := 0; i < 20; i++ {
		ease = srs.NextEase(ease, 2, p)
		assert.GreaterOrEqual(t, ease, p.MinEase)
	}
}

func TestNextEase_ClampsAtCeiling(t *testing.T) {
	p := srs.DefaultParams()
	ease := p.MaxEase
	for i := 0; i < 20; i++ {
		ease = srs.NextEase(ease, 5, p)
		assert.LessOrEqual(t, ease, p.MaxEase)
	}
}

func TestNextInterval_FailureResets(t *testing.T) {
	for _, prev := range []int{0, 1, 6, 100} {
		assert.Equal(t, 1, srs.NextInterval(2, prev, 2.5), "quality below 3 must reset to 1 from prev=%d", prev)
	}
}

func TestNextInterval_Bootstrap(t *testing.T) {
	assert.Equal(t, 1, srs.NextInterval(4, 0, 2.5), "first successful review")
	assert.Equal(t, 6, srs.NextInterval(4, 1, 2.5), "second successful review")
}

func TestNextInterval_GrowsByEase(t *testing.T) {
	assert.Equal(t, 15, srs.NextInterval(4, 6, 2.5))
	assert.Equal(t, 26, srs.NextInterval(5, 10, 2.6))
	assert.Equal(t, 13, srs.NextInterval(3, 10, 1.3))
}
