package services

import (
	"context"
	"time"

	"github.com/saras/kosakata/internal/errors"
	"github.com/saras/kosakata/internal/logger"
	"github.com/saras/kosakata/internal/models"
	"github.com/saras/kosakata/internal/repository"
	"github.com/saras/kosakata/internal/srs"
)

// StatsService handles due-statistics reporting and snapshots
type StatsService interface {
	Overview(ctx context.Context) (models.DueStats, error)
	TakeSnapshot(ctx context.Context) (*models.StatsSnapshot, error)
	LatestSnapshot(ctx context.Context) (*models.StatsSnapshot, error)
}

type statsService struct {
	words     repository.WordRepository
	progress  repository.ProgressRepository
	snapshots repository.SnapshotRepository
	params    srs.Params
	now       func() time.Time
}

// NewStatsService creates a new StatsService
func NewStatsService(words repository.WordRepository, progress repository.ProgressRepository, snapshots repository.SnapshotRepository, params srs.Params) StatsService {
	return &statsService{
		words:     words,
		progress:  progress,
		snapshots: snapshots,
		params:    params,
		now:       time.Now,
	}
}

func (s *statsService) Overview(ctx context.Context) (models.DueStats, error) {
	log := logger.FromContext(ctx)

	catalog, err := s.words.List(ctx, models.WordFilter{})
	if err != nil {
		log.Error("failed to load catalog: %v", err)
		return models.DueStats{}, errors.NewInternalError(err)
	}
	progress, err := s.progress.GetAll(ctx)
	if err != nil {
		log.Error("failed to load progress: %v", err)
		return models.DueStats{}, errors.NewInternalError(err)
	}

	return srs.Overview(catalog, progress, s.now(), s.params), nil
}

func (s *statsService) TakeSnapshot(ctx context.Context) (*models.StatsSnapshot, error) {
	log := logger.FromContext(ctx)

	stats, err := s.Overview(ctx)
	if err != nil {
		return nil, err
	}

	snap := models.StatsSnapshot{TakenAt: s.now(), DueStats: stats}
	id, err := s.snapshots.Insert(ctx, snap)
	if err != nil {
		log.Error("failed to store snapshot: %v", err)
		return nil, errors.NewInternalError(err)
	}
	snap.ID = id

	log.Info("stats snapshot stored: due_now=%d, new=%d, mastered=%d, total=%d",
		snap.DueNow, snap.NewWords, snap.Mastered, snap.TotalWords)
	return &snap, nil
}

func (s *statsService) LatestSnapshot(ctx context.Context) (*models.StatsSnapshot, error) {
	log := logger.FromContext(ctx)

	snap, err := s.snapshots.Latest(ctx)
	if err != nil {
		log.Error("failed to load latest snapshot: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return snap, nil
}
