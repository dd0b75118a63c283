package srs

import (
	"time"

	"github.com/saras/kosakata/internal/models"
)

// Overview aggregates the catalog and progress map into due counts. Words
// without a progress record count as new, never as due. Mastered is counted
// independently of due-ness.
func Overview(words []models.Word, progress map[string]models.Progress, now time.Time, p Params) models.DueStats {
	stats := models.DueStats{TotalWords: len(words)}
	soonCutoff := now.Add(p.DueSoonWindow)

	for _, w := range words {
		prog, ok := progress[w.Term]
		if !ok {
			stats.NewWords++
			continue
		}
		if prog.Mastered {
			stats.Mastered++
		}
		switch {
		case !prog.DueAt.After(now):
			stats.DueNow++
		case !prog.DueAt.After(soonCutoff):
			stats.DueSoon++
		}
	}
	return stats
}
