package models

import "time"

// Phase is one of the two alternating reminder states.
type Phase string

const (
	PhaseStand Phase = "stand"
	PhaseSit   Phase = "sit"
)

// Other returns the phase that follows p.
func (p Phase) Other() Phase {
	if p == PhaseStand {
		return PhaseSit
	}
	return PhaseStand
}

// Label is the human form used in titles and the status line.
func (p Phase) Label() string {
	if p == PhaseSit {
		return "Sit Down"
	}
	return "Stand Up"
}

// Message is the notification body shown on phase entry.
func (p Phase) Message() string {
	return "Time to " + p.Label() + "!"
}

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	return p == PhaseStand || p == PhaseSit
}

// PhaseRecord is one entry of the phase history.
type PhaseRecord struct {
	ID             int64
	Phase          Phase
	PlannedSeconds int
	StartedAt      time.Time
	EndedAt        *time.Time
}

// Elapsed returns how long the phase ran. Open records are measured against now.
func (r PhaseRecord) Elapsed(now time.Time) time.Duration {
	end := now
	if r.EndedAt != nil {
		end = *r.EndedAt
	}
	if end.Before(r.StartedAt) {
		return 0
	}
	return end.Sub(r.StartedAt)
}
