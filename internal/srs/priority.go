package srs

import (
	"time"

	"github.com/saras/kosakata/internal/models"
)

// Score assigns an urgency score to one word; higher means show it sooner.
// prog is nil for never-seen words, which outrank everything with history.
// Scores may go negative for easy, accurate, just-answered words and are
// deliberately not clamped here; filtering is the caller's policy.
func Score(prog *models.Progress, now time.Time, p Params) float64 {
	if prog == nil || prog.TimesSeen == 0 {
		return p.Weights.NewWord * 10
	}

	var score float64

	if overdue := now.Sub(prog.DueAt); overdue > 0 {
		score += p.Weights.Overdue * overdue.Hours() / 24
	}

	score += p.Weights.Accuracy * (1 - prog.Accuracy())

	if span := p.MaxEase - p.MinEase; span > 0 {
		difficulty := (p.MaxEase - prog.Ease) / span
		if difficulty < 0 {
			difficulty = 0
		}
		if difficulty > 1 {
			difficulty = 1
		}
		score += p.Weights.Difficulty * difficulty
	}

	if elapsed := now.Sub(prog.LastPracticedAt); elapsed >= 0 && elapsed < p.RecencyWindow {
		score += p.Weights.Recency * (1 - elapsed.Seconds()/p.RecencyWindow.Seconds())
	}

	// Residual bonus while a word is still transitioning out of "new".
	if prog.TimesSeen < p.NewWordSeenCap {
		score += p.Weights.NewWord
	}

	return score
}
