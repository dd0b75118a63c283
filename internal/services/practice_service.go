package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/saras/kosakata/internal/errors"
	"github.com/saras/kosakata/internal/logger"
	"github.com/saras/kosakata/internal/models"
	"github.com/saras/kosakata/internal/repository"
	"github.com/saras/kosakata/internal/srs"
)

// ReviewResult is the outcome of recording one answer. JustMastered is true
// only on the exact call where the word crossed the mastery threshold, so
// callers can fire a one-time celebration.
type ReviewResult struct {
	Progress     models.Progress `json:"progress"`
	JustMastered bool            `json:"just_mastered"`
}

// PracticeService builds practice queues and records answers
type PracticeService interface {
	NextWords(ctx context.Context, count int, exclude []string) ([]models.Word, error)
	RecordAnswer(ctx context.Context, term string, ans srs.Answer) (*ReviewResult, error)
}

type practiceService struct {
	words    repository.WordRepository
	progress repository.ProgressRepository
	params   srs.Params

	rngMu sync.Mutex
	rng   *rand.Rand

	// Answers are read-modify-write over a single progress row; serialize
	// them per term so concurrent submissions cannot drop an update.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	now func() time.Time
}

// NewPracticeService creates a new PracticeService. rng drives the selector's
// score jitter; pass nil for deterministic ordering.
func NewPracticeService(words repository.WordRepository, progress repository.ProgressRepository, params srs.Params, rng *rand.Rand) PracticeService {
	return &practiceService{
		words:    words,
		progress: progress,
		params:   params,
		rng:      rng,
		locks:    make(map[string]*sync.Mutex),
		now:      time.Now,
	}
}

func (s *practiceService) NextWords(ctx context.Context, count int, exclude []string) ([]models.Word, error) {
	log := logger.FromContext(ctx)
	log.Debug("building practice queue: count=%d, excluded=%d", count, len(exclude))

	if count < 1 {
		return nil, errors.NewValidationError("count", "must be at least 1")
	}

	catalog, err := s.words.List(ctx, models.WordFilter{})
	if err != nil {
		log.Error("failed to load catalog: %v", err)
		return nil, errors.NewInternalError(err)
	}
	progress, err := s.progress.GetAll(ctx)
	if err != nil {
		log.Error("failed to load progress: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// Mastered words leave the rotation here, not inside the selector.
	pool := make([]models.Word, 0, len(catalog))
	for _, w := range catalog {
		if p, ok := progress[w.Term]; ok && p.Mastered {
			continue
		}
		pool = append(pool, w)
	}

	now := s.now()
	queue := s.selectWords(pool, progress, count, toSet(exclude), now)
	if len(queue) == 0 && len(exclude) > 0 {
		// Everything eligible was just shown; better to repeat a word
		// than to return an empty session.
		log.Debug("queue empty after exclusions, retrying without them")
		queue = s.selectWords(pool, progress, count, nil, now)
	}

	log.Debug("selected %d words", len(queue))
	return queue, nil
}

func (s *practiceService) selectWords(pool []models.Word, progress map[string]models.Progress, count int, exclude map[string]struct{}, now time.Time) []models.Word {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return srs.Select(pool, progress, count, exclude, now, s.rng, s.params)
}

func (s *practiceService) RecordAnswer(ctx context.Context, term string, ans srs.Answer) (*ReviewResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("recording answer: term=%s, correct=%v", term, ans.Correct)

	word, err := s.words.GetByTerm(ctx, term)
	if err != nil {
		log.Error("failed to load word: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if word == nil {
		return nil, errors.NewNotFoundError("word", term)
	}

	unlock := s.lockTerm(term)
	defer unlock()

	prev, err := s.progress.Get(ctx, term)
	if err != nil {
		log.Error("failed to load progress: %v", err)
		return nil, errors.NewInternalError(err)
	}

	now := s.now()
	updated := srs.Apply(term, prev, ans, now, s.params)

	if err := s.progress.Put(ctx, updated); err != nil {
		log.Error("failed to save progress: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// History is best effort; a failed log line never fails the review.
	rec := models.AnswerRecord{
		WordTerm:    term,
		Correct:     ans.Correct,
		Quality:     srs.Quality(ans.Correct, ans.ResponseTime),
		ResponseMs:  ans.ResponseTime.Milliseconds(),
		GivenAnswer: ans.GivenAnswer,
		AnsweredAt:  now,
	}
	if err := s.progress.AppendAnswer(ctx, rec); err != nil {
		log.Warn("failed to append answer history: %v", err)
	}

	justMastered := updated.Mastered && (prev == nil || !prev.Mastered)
	if justMastered {
		log.Info("word mastered: term=%s, streak=%d", term, updated.Streak)
	}

	return &ReviewResult{Progress: updated, JustMastered: justMastered}, nil
}

func (s *practiceService) lockTerm(term string) func() {
	s.locksMu.Lock()
	mu, ok := s.locks[term]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[term] = mu
	}
	s.locksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}

func toSet(terms []string) map[string]struct{} {
	if len(terms) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		set[t] = struct{}{}
	}
	return set
}
