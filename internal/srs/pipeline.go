package srs

import (
	"math"
	"time"

	"github.com/saras/kosakata/internal/models"
)

// Answer is one practice attempt at a word.
type Answer struct {
	Correct      bool
	GivenAnswer  string
	ResponseTime time.Duration
}

// Apply runs the full answer-recording pipeline and returns the updated
// Progress. prev is nil for a word's first answer; it is never mutated, the
// caller persists the returned value. Mastery is sticky: once set it
// survives any number of later incorrect answers, only the streak resets.
func Apply(term string, prev *models.Progress, ans Answer, now time.Time, p Params) models.Progress {
	cur := models.Progress{WordTerm: term, Ease: p.DefaultEase}
	if prev != nil {
		cur = *prev
		cur.ConfusedWith = copyCounts(prev.ConfusedWith)
	}

	cur.TimesSeen++
	if ans.Correct {
		cur.TimesCorrect++
	}

	quality := Quality(ans.Correct, ans.ResponseTime)
	cur.Ease = NextEase(cur.Ease, quality, p)

	interval := NextInterval(quality, previousIntervalDays(prev), cur.Ease)
	cur.DueAt = now.Add(time.Duration(interval) * 24 * time.Hour)

	if ans.Correct {
		cur.Streak++
		if !cur.Mastered && cur.Streak >= p.MasteryStreak {
			cur.Mastered = true
			cur.MasteredAt = now
		}
		cur.LapseStreak = 0
	} else {
		cur.Streak = 0
		cur.LapseStreak++
		if ans.GivenAnswer != "" {
			if cur.ConfusedWith == nil {
				cur.ConfusedWith = make(map[string]int)
			}
			cur.ConfusedWith[ans.GivenAnswer]++
		}
	}

	cur.LastPracticedAt = now
	return cur
}

// previousIntervalDays recovers the last scheduled interval from the gap
// between the previous answer and its due date.
func previousIntervalDays(prev *models.Progress) int {
	if prev == nil || prev.LastPracticedAt.IsZero() || prev.DueAt.IsZero() {
		return 0
	}
	days := int(math.Round(prev.DueAt.Sub(prev.LastPracticedAt).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

func copyCounts(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
