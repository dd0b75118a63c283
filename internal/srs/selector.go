package srs

import (
	"math/rand"
	"sort"
	"time"

	"github.com/saras/kosakata/internal/models"
)

// Select ranks the catalog by priority score and returns up to count words,
// most urgent first. Words whose term is in exclude are skipped. When rng is
// non-nil each score is perturbed by up to ±JitterFraction for variety
// across repeated calls; pass nil for a deterministic ordering. Mastered
// words are not special-cased here, callers filter them upstream.
func Select(words []models.Word, progress map[string]models.Progress, count int, exclude map[string]struct{}, now time.Time, rng *rand.Rand, p Params) []models.Word {
	if count <= 0 {
		return nil
	}

	type scored struct {
		word  models.Word
		score float64
	}
	ranked := make([]scored, 0, len(words))
	for _, w := range words {
		if _, skip := exclude[w.Term]; skip {
			continue
		}
		var prog *models.Progress
		if pr, ok := progress[w.Term]; ok {
			prog = &pr
		}
		s := Score(prog, now, p)
		if rng != nil {
			s *= 1 + (rng.Float64()*2-1)*p.JitterFraction
		}
		ranked = append(ranked, scored{word: w, score: s})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > count {
		ranked = ranked[:count]
	}
	out := make([]models.Word, len(ranked))
	for i, r := range ranked {
		out[i] = r.word
	}
	return out
}
