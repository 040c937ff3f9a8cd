package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/standup/internal/models"
	"github.com/akyairhashvil/standup/internal/reminder"
)

func TestViewStopped(t *testing.T) {
	m, _ := setupTestModel(t, reminder.Durations{Stand: 10, Sit: 10}, nil)
	view := m.View()
	for _, want := range []string{"Stand Up Reminder", "Stand Duration (minutes):", "Sit Duration (minutes):", "[s] Start", "[x] Stop"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q", want)
		}
	}
	if strings.Contains(view, "Time left until next change") {
		t.Fatalf("expected no countdown while stopped")
	}
	if strings.Contains(view, "Today:") {
		t.Fatalf("expected no totals without history")
	}
}

func TestViewRunning(t *testing.T) {
	h := &stubHistory{totals: map[models.Phase]time.Duration{
		models.PhaseStand: 25 * time.Minute,
		models.PhaseSit:   90 * time.Minute,
	}}
	m, clock := setupTestModel(t, reminder.Durations{Stand: 1, Sit: 2}, h)
	m, _ = update(t, m, runes("s"))
	clock.Advance(5 * time.Second)

	view := m.View()
	for _, want := range []string{"It's time to Stand Up!", "Time left until next change: 0:55", "Today: stood 25m, sat 1h 30m"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := setupTestModel(t, reminder.Durations{Stand: 1, Sit: 1}, &stubHistory{})
	if strings.Contains(m.renderHelp(), "pdf report") {
		t.Fatalf("expected short help by default")
	}
	m, _ = update(t, m, runes("?"))
	if !strings.Contains(m.renderHelp(), "[r]pdf report") {
		t.Fatalf("expected full help after toggle, got %q", m.renderHelp())
	}
}

func TestHelpLineSkipsDisabled(t *testing.T) {
	keys := DefaultKeyMap()
	keys.syncEnabled(true, false)
	line := HelpLine(keys.FullHelp())
	if strings.Contains(line, "[s]start") {
		t.Fatalf("expected disabled start to be hidden, got %q", line)
	}
	if !strings.Contains(line, "[x]stop") || !strings.Contains(line, "[q]quit") {
		t.Fatalf("expected enabled bindings, got %q", line)
	}
	if strings.Contains(line, "pdf report") {
		t.Fatalf("expected report hidden without history")
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{-time.Second, "0s"},
		{45 * time.Second, "45s"},
		{10 * time.Minute, "10m"},
		{2 * time.Hour, "2h"},
		{2*time.Hour + 15*time.Minute, "2h 15m"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.d); got != tc.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestSetTheme(t *testing.T) {
	orig := CurrentTheme
	t.Cleanup(func() { CurrentTheme = orig })

	if !SetTheme("dracula") || CurrentTheme.Name != "Dracula" {
		t.Fatalf("expected dracula theme")
	}
	if SetTheme("nope") {
		t.Fatalf("expected unknown theme to be rejected")
	}
	if CurrentTheme.Name != "Dracula" {
		t.Fatalf("expected theme unchanged after rejection")
	}
}

func TestTitleBufferFlush(t *testing.T) {
	var b titleBuffer
	if b.flush() != nil {
		t.Fatalf("expected nil flush when clean")
	}
	b.SetTitle("0:30 - Time to Sit Down")
	b.SetTitle("0:29 - Time to Sit Down")
	if cmd := b.flush(); cmd == nil {
		t.Fatalf("expected flush command")
	}
	if b.pending != "0:29 - Time to Sit Down" {
		t.Fatalf("expected latest title kept, got %q", b.pending)
	}
	if b.flush() != nil {
		t.Fatalf("expected second flush to be nil")
	}
}
