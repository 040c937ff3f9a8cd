package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/akyairhashvil/standup/internal/models"
	"github.com/akyairhashvil/standup/internal/reminder"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type stubHistory struct {
	phases    []models.PhaseRecord
	totals    map[models.Phase]time.Duration
	err       error
	totalCall int
}

func (h *stubHistory) ListPhases(ctx context.Context, since, until time.Time) ([]models.PhaseRecord, error) {
	return h.phases, h.err
}

func (h *stubHistory) Totals(ctx context.Context, since, until time.Time) (map[models.Phase]time.Duration, error) {
	h.totalCall++
	if h.err != nil {
		return nil, h.err
	}
	return h.totals, nil
}

func setupTestModel(t *testing.T, d reminder.Durations, h History) (MainModel, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	m := NewMainModel(context.Background(), Options{
		Durations:  d,
		Clock:      clock,
		History:    h,
		ReportsDir: t.TempDir(),
	})
	return m, clock
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m MainModel, msg tea.Msg) (MainModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(MainModel)
	if !ok {
		t.Fatalf("expected MainModel, got %T", next)
	}
	return updated, cmd
}
