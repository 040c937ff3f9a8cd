package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/standup/internal/models"
)

// PhaseRepository defines phase history operations.
type PhaseRepository interface {
	StartPhase(ctx context.Context, phase models.Phase, planned time.Duration, at time.Time) (int64, error)
	EndPhase(ctx context.Context, id int64, at time.Time) error
	CloseOpenPhases(ctx context.Context, at time.Time) (int64, error)
	ListPhases(ctx context.Context, since, until time.Time) ([]models.PhaseRecord, error)
	Totals(ctx context.Context, since, until time.Time) (map[models.Phase]time.Duration, error)
}

var _ PhaseRepository = (*Database)(nil)
