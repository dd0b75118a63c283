package worker

import (
	"context"

	"github.com/saras/kosakata/internal/services"
)

// SnapshotStatsJob stores a point-in-time copy of the due statistics so
// progress over time can be charted.
type SnapshotStatsJob struct {
	Stats services.StatsService
}

func (j *SnapshotStatsJob) Name() string { return "snapshot_stats" }

func (j *SnapshotStatsJob) Run(ctx context.Context) error {
	_, err := j.Stats.TakeSnapshot(ctx)
	return err
}
