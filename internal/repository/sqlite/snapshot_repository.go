package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/saras/kosakata/internal/logger"
	"github.com/saras/kosakata/internal/models"
	"github.com/saras/kosakata/internal/repository"
)

type snapshotRepository struct {
	db *sqlx.DB
}

// NewSnapshotRepository creates a new SnapshotRepository implementation
func NewSnapshotRepository(db *sqlx.DB) repository.SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Insert(ctx context.Context, snap models.StatsSnapshot) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("snapshot_repo")
	log.Debug("inserting stats snapshot: due_now=%d, total=%d", snap.DueNow, snap.TotalWords)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO stats_snapshots (taken_at, due_now, due_soon, new_words, mastered, total_words)
VALUES (?, ?, ?, ?, ?, ?)
`, snap.TakenAt, snap.DueNow, snap.DueSoon, snap.NewWords, snap.Mastered, snap.TotalWords)
	if err != nil {
		log.Error("failed to insert snapshot: %v", err)
		return 0, err
	}
	return res.LastInsertId()
}

func (r *snapshotRepository) Latest(ctx context.Context) (*models.StatsSnapshot, error) {
	log := logger.FromContext(ctx).WithPrefix("snapshot_repo")

	var snap models.StatsSnapshot
	err := r.db.QueryRowContext(ctx, `
SELECT id, taken_at, due_now, due_soon, new_words, mastered, total_words
FROM stats_snapshots
ORDER BY taken_at DESC, id DESC
LIMIT 1
`).Scan(&snap.ID, &snap.TakenAt, &snap.DueNow, &snap.DueSoon, &snap.NewWords, &snap.Mastered, &snap.TotalWords)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no snapshots yet")
		return nil, nil
	}
	if err != nil {
		log.Error("failed to load latest snapshot: %v", err)
		return nil, err
	}
	return &snap, nil
}
