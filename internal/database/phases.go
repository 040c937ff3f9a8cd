package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akyairhashvil/standup/internal/models"
)

// Timestamps are stored in UTC at second precision so that the text form
// sorts chronologically.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

func (d *Database) StartPhase(ctx context.Context, phase models.Phase, planned time.Duration, at time.Time) (int64, error) {
	if !phase.Valid() {
		return 0, wrapErr(EntityPhase, "start", 0, fmt.Errorf("%w: %q", ErrInvalidPhase, phase))
	}
	return withDBContextResult(d, ctx, func(ctx context.Context) (int64, error) {
		res, err := d.DB.ExecContext(ctx,
			"INSERT INTO phases (phase, planned_seconds, started_at) VALUES (?, ?, ?)",
			string(phase), int64(planned/time.Second), storedTime(at))
		if err != nil {
			return 0, wrapErr(EntityPhase, "start", 0, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, wrapErr(EntityPhase, "start", 0, err)
		}
		return id, nil
	})
}

func (d *Database) EndPhase(ctx context.Context, id int64, at time.Time) error {
	return withDBContext(d, ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx,
			"UPDATE phases SET ended_at = ? WHERE id = ? AND ended_at IS NULL",
			storedTime(at), id)
		if err != nil {
			return wrapErr(EntityPhase, "end", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return wrapErr(EntityPhase, "end", id, err)
		}
		if n == 0 {
			return wrapErr(EntityPhase, "end", id, ErrNoOpenPhase)
		}
		return nil
	})
}

// CloseOpenPhases ends phases left open by a previous run. Each is closed at
// its planned end, or at `at` if that comes first.
func (d *Database) CloseOpenPhases(ctx context.Context, at time.Time) (int64, error) {
	open, err := withDBContextResult(d, ctx, func(ctx context.Context) ([]models.PhaseRecord, error) {
		rows, err := d.DB.QueryContext(ctx,
			"SELECT id, phase, planned_seconds, started_at, ended_at FROM phases WHERE ended_at IS NULL")
		if err != nil {
			return nil, wrapErr(EntityPhase, "list open", 0, err)
		}
		defer rows.Close()
		return scanPhases(rows)
	})
	if err != nil {
		return 0, err
	}
	var closed int64
	for _, rec := range open {
		end := rec.StartedAt.Add(time.Duration(rec.PlannedSeconds) * time.Second)
		if at.Before(end) {
			end = at
		}
		if end.Before(rec.StartedAt) {
			end = rec.StartedAt
		}
		if err := d.EndPhase(ctx, rec.ID, end); err != nil {
			return closed, err
		}
		closed++
	}
	return closed, nil
}

// ListPhases returns phases that started in [since, until), oldest first.
func (d *Database) ListPhases(ctx context.Context, since, until time.Time) ([]models.PhaseRecord, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.PhaseRecord, error) {
		rows, err := d.DB.QueryContext(ctx, `
			SELECT id, phase, planned_seconds, started_at, ended_at
			FROM phases
			WHERE started_at >= ? AND started_at < ?
			ORDER BY started_at ASC, id ASC`, storedTime(since), storedTime(until))
		if err != nil {
			return nil, wrapErr(EntityPhase, "list", 0, err)
		}
		defer rows.Close()
		return scanPhases(rows)
	})
}

// Totals sums time spent per phase for phases started in [since, until).
// Open phases count up to until.
func (d *Database) Totals(ctx context.Context, since, until time.Time) (map[models.Phase]time.Duration, error) {
	records, err := d.ListPhases(ctx, since, until)
	if err != nil {
		return nil, err
	}
	totals := map[models.Phase]time.Duration{
		models.PhaseStand: 0,
		models.PhaseSit:   0,
	}
	for _, rec := range records {
		totals[rec.Phase] += rec.Elapsed(until)
	}
	return totals, nil
}

func scanPhases(rows *sql.Rows) ([]models.PhaseRecord, error) {
	var out []models.PhaseRecord
	for rows.Next() {
		var rec models.PhaseRecord
		var phase string
		var ended sql.NullTime
		if err := rows.Scan(&rec.ID, &phase, &rec.PlannedSeconds, &rec.StartedAt, &ended); err != nil {
			return nil, wrapErr(EntityPhase, "scan", 0, err)
		}
		rec.Phase = models.Phase(phase)
		if ended.Valid {
			t := ended.Time
			rec.EndedAt = &t
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityPhase, "scan", 0, err)
	}
	return out, nil
}
