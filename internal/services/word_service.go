package services

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"

	"github.com/saras/kosakata/internal/errors"
	"github.com/saras/kosakata/internal/logger"
	"github.com/saras/kosakata/internal/models"
	"github.com/saras/kosakata/internal/repository"
	"github.com/saras/kosakata/internal/repository/sqlite"
)

// WordService handles catalog management
type WordService interface {
	CreateWord(ctx context.Context, word models.Word) (*models.Word, error)
	ListWords(ctx context.Context, filter models.WordFilter) ([]models.Word, int, error)
	DeleteWord(ctx context.Context, term string) error
	WordHistory(ctx context.Context, term string, limit int) ([]models.AnswerRecord, error)
	ResetAllProgress(ctx context.Context) error
}

type wordService struct {
	words    repository.WordRepository
	progress repository.ProgressRepository
}

// NewWordService creates a new WordService
func NewWordService(words repository.WordRepository, progress repository.ProgressRepository) WordService {
	return &wordService{words: words, progress: progress}
}

func (s *wordService) CreateWord(ctx context.Context, word models.Word) (*models.Word, error) {
	log := logger.FromContext(ctx)

	word.Term = strings.TrimSpace(word.Term)
	if word.Term == "" {
		return nil, errors.NewValidationError("term", "cannot be empty")
	}
	translations := make([]string, 0, len(word.Translations))
	for _, tr := range word.Translations {
		if tr = strings.TrimSpace(tr); tr != "" {
			translations = append(translations, tr)
		}
	}
	if len(translations) == 0 {
		return nil, errors.NewValidationError("translations", "at least one translation is required")
	}
	word.Translations = translations

	log.Debug("creating word: term=%s", word.Term)
	id, err := s.words.Insert(ctx, word)
	if err != nil {
		if stderrors.Is(err, sqlite.ErrDuplicateTerm) {
			return nil, errors.NewConflictError("word", word.Term)
		}
		log.Error("failed to create word: %v", err)
		return nil, errors.NewInternalError(err)
	}

	word.ID = id
	log.Info("word created: term=%s, id=%d", word.Term, id)
	return &word, nil
}

func (s *wordService) ListWords(ctx context.Context, filter models.WordFilter) ([]models.Word, int, error) {
	log := logger.FromContext(ctx)

	words, err := s.words.List(ctx, filter)
	if err != nil {
		log.Error("failed to list words: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}
	total, err := s.words.Count(ctx, models.WordFilter{Search: filter.Search})
	if err != nil {
		log.Error("failed to count words: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}
	return words, total, nil
}

func (s *wordService) DeleteWord(ctx context.Context, term string) error {
	log := logger.FromContext(ctx)
	log.Debug("deleting word: term=%s", term)

	if err := s.words.Delete(ctx, term); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NewNotFoundError("word", term)
		}
		log.Error("failed to delete word: %v", err)
		return errors.NewInternalError(err)
	}
	log.Info("word deleted: term=%s", term)
	return nil
}

func (s *wordService) WordHistory(ctx context.Context, term string, limit int) ([]models.AnswerRecord, error) {
	log := logger.FromContext(ctx)

	word, err := s.words.GetByTerm(ctx, term)
	if err != nil {
		log.Error("failed to load word: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if word == nil {
		return nil, errors.NewNotFoundError("word", term)
	}

	recs, err := s.progress.AnswersForWord(ctx, term, limit)
	if err != nil {
		log.Error("failed to load answer history: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return recs, nil
}

func (s *wordService) ResetAllProgress(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Warn("resetting all practice progress")

	if err := s.progress.DeleteAll(ctx); err != nil {
		log.Error("failed to reset progress: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}
