package database

import (
	"context"
	"sync"
	"time"

	"github.com/akyairhashvil/standup/internal/models"
)

// Recorder writes reminder phase boundaries to the history. It tracks the
// single open phase so every start closes its predecessor.
type Recorder struct {
	repo   PhaseRepository
	mu     sync.Mutex
	openID int64
}

func NewRecorder(repo PhaseRepository) *Recorder {
	return &Recorder{repo: repo}
}

func (r *Recorder) PhaseStarted(ctx context.Context, phase models.Phase, planned time.Duration, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.openID != 0 {
		if err := r.repo.EndPhase(ctx, r.openID, at); err != nil {
			r.openID = 0
			return err
		}
		r.openID = 0
	}
	id, err := r.repo.StartPhase(ctx, phase, planned, at)
	if err != nil {
		return err
	}
	r.openID = id
	return nil
}

func (r *Recorder) PhaseEnded(ctx context.Context, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.openID == 0 {
		return nil
	}
	id := r.openID
	r.openID = 0
	return r.repo.EndPhase(ctx, id, at)
}

// OpenID is the id of the phase currently being recorded, or 0.
func (r *Recorder) OpenID() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.openID
}
