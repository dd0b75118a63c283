package srs

import (
	"math"
	"time"
)

// Response-speed thresholds for grading correct answers.
const (
	fastAnswer = 3 * time.Second
	slowAnswer = 7 * time.Second
)

// Quality grades an answer on the SM-2 0-5 scale. Incorrect answers always
// grade 2. Correct answers grade by response speed, or 4 when no timing was
// captured.
func Quality(correct bool, responseTime time.Duration) int {
	if !correct {
		return 2
	}
	switch {
	case responseTime <= 0:
		return 4
	case responseTime < fastAnswer:
		return 5
	case responseTime < slowAnswer:
		return 4
	default:
		return 3
	}
}

// NextEase applies the SM-2 easiness update for the given quality and clamps
// the result to [MinEase, MaxEase].
func NextEase(ease float64, quality int, p Params) float64 {
	q := float64(quality)
	ease += 0.1 - (5-q)*(0.08+(5-q)*0.02)
	if ease < p.MinEase {
		ease = p.MinEase
	}
	if ease > p.MaxEase {
		ease = p.MaxEase
	}
	return ease
}

// NextInterval computes the next review interval in days. A failed answer
// resets to daily review; the first two successful reviews use the fixed
// SM-2 bootstrap values 1 and 6; afterwards the interval grows by the
// easiness factor.
func NextInterval(quality, prevDays int, ease float64) int {
	switch {
	case quality < 3:
		return 1
	case prevDays == 0:
		return 1
	case prevDays == 1:
		return 6
	default:
		return int(math.Round(float64(prevDays) * ease))
	}
}
