package srs

import "time"

// Weights control how much each signal contributes to a word's priority
// score. Recency is negative: it suppresses words answered moments ago.
type Weights struct {
	Overdue    float64
	Accuracy   float64
	Difficulty float64
	Recency    float64
	NewWord    float64
}

// Params holds the scheduler tunables. The defaults are reasonable starting
// points, not law; operators override them through configuration.
type Params struct {
	MinEase     float64
	MaxEase     float64
	DefaultEase float64

	// MasteryStreak is the consecutive-correct count that permanently
	// marks a word as mastered.
	MasteryStreak int

	// NewWordSeenCap keeps the new-word bonus applied while a word has
	// fewer than this many answers on record.
	NewWordSeenCap int

	// RecencyWindow is how long after an answer the recency suppression
	// still applies.
	RecencyWindow time.Duration

	// DueSoonWindow bounds the "due soon" bucket in statistics.
	DueSoonWindow time.Duration

	// JitterFraction is the maximum multiplicative score perturbation the
	// selector applies when given a random source.
	JitterFraction float64

	Weights Weights
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		MinEase:        1.3,
		MaxEase:        2.6,
		DefaultEase:    2.5,
		MasteryStreak:  5,
		NewWordSeenCap: 3,
		RecencyWindow:  30 * time.Minute,
		DueSoonWindow:  24 * time.Hour,
		JitterFraction: 0.10,
		Weights: Weights{
			Overdue:    10,
			Accuracy:   5,
			Difficulty: 3,
			Recency:    -8,
			NewWord:    7,
		},
	}
}
