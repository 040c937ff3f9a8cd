package testutil

import (
	"time"

	"github.com/akyairhashvil/standup/internal/models"
)

// PhaseBuilder provides fluent API for creating test phase records.
type PhaseBuilder struct {
	rec models.PhaseRecord
}

func NewPhase() *PhaseBuilder {
	return &PhaseBuilder{
		rec: models.PhaseRecord{
			Phase:          models.PhaseStand,
			PlannedSeconds: 600,
			StartedAt:      time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		},
	}
}

func (b *PhaseBuilder) WithID(id int64) *PhaseBuilder {
	b.rec.ID = id
	return b
}

func (b *PhaseBuilder) WithPhase(p models.Phase) *PhaseBuilder {
	b.rec.Phase = p
	return b
}

func (b *PhaseBuilder) WithPlanned(d time.Duration) *PhaseBuilder {
	b.rec.PlannedSeconds = int(d / time.Second)
	return b
}

func (b *PhaseBuilder) StartedAt(t time.Time) *PhaseBuilder {
	b.rec.StartedAt = t
	return b
}

// EndedAfter closes the record d after its start.
func (b *PhaseBuilder) EndedAfter(d time.Duration) *PhaseBuilder {
	end := b.rec.StartedAt.Add(d)
	b.rec.EndedAt = &end
	return b
}

func (b *PhaseBuilder) Build() models.PhaseRecord {
	return b.rec
}
