package repository

import (
	"context"

	"github.com/saras/kosakata/internal/models"
)

// WordRepository handles vocabulary catalog access
type WordRepository interface {
	Insert(ctx context.Context, word models.Word) (int64, error)
	GetByTerm(ctx context.Context, term string) (*models.Word, error)
	List(ctx context.Context, filter models.WordFilter) ([]models.Word, error)
	Count(ctx context.Context, filter models.WordFilter) (int, error)
	Delete(ctx context.Context, term string) error
}

// ProgressRepository is the progress store: one record per answered word,
// keyed by term. Get returns (nil, nil) for words never answered.
type ProgressRepository interface {
	Get(ctx context.Context, term string) (*models.Progress, error)
	GetAll(ctx context.Context) (map[string]models.Progress, error)
	Put(ctx context.Context, progress models.Progress) error
	DeleteAll(ctx context.Context) error
	AppendAnswer(ctx context.Context, rec models.AnswerRecord) error
	AnswersForWord(ctx context.Context, term string, limit int) ([]models.AnswerRecord, error)
}

// SnapshotRepository stores periodic due-statistics snapshots
type SnapshotRepository interface {
	Insert(ctx context.Context, snap models.StatsSnapshot) (int64, error)
	Latest(ctx context.Context) (*models.StatsSnapshot, error)
}
