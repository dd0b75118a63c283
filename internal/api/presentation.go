package api

import (
	"github.com/saras/kosakata/internal/models"
)

// Badge labels shown next to a word in clients.
const (
	BadgeNew        = "new"
	BadgeLearning   = "learning"
	BadgeStruggling = "struggling"
	BadgeMastered   = "mastered"
)

const (
	strugglingLapses   = 2
	strugglingAccuracy = 0.5
	newSeenThreshold   = 3
)

// badgeFor maps a progress record to a display badge. Mastered wins over
// everything else; struggling means repeated recent failures or poor
// lifetime accuracy.
func badgeFor(p *models.Progress) string {
	if p == nil || p.TimesSeen == 0 {
		return BadgeNew
	}
	if p.Mastered {
		return BadgeMastered
	}
	if p.LapseStreak >= strugglingLapses || (p.TimesSeen >= newSeenThreshold && p.Accuracy() < strugglingAccuracy) {
		return BadgeStruggling
	}
	if p.TimesSeen < newSeenThreshold {
		return BadgeNew
	}
	return BadgeLearning
}
