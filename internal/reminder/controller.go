// Package reminder implements the stand/sit phase controller. A single phase
// deadline is the source of truth; remaining time is derived from it on every
// tick, so the countdown never drifts from the moment the phase flips.
package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/akyairhashvil/standup/internal/config"
	"github.com/akyairhashvil/standup/internal/models"
	"github.com/akyairhashvil/standup/internal/notify"
	"github.com/akyairhashvil/standup/internal/util"
)

//go:generate mockgen -destination=mock_notifier_test.go -package=reminder github.com/akyairhashvil/standup/internal/notify Notifier

// Durations holds the configured phase lengths in minutes.
type Durations struct {
	Stand int
	Sit   int
}

// DefaultDurations mirrors the configured defaults.
func DefaultDurations() Durations {
	return Durations{Stand: config.DefaultStandMinutes, Sit: config.DefaultSitMinutes}
}

// Validate rejects phases shorter than a minute.
func (d Durations) Validate() error {
	if d.Stand < config.MinPhaseMinutes {
		return fmt.Errorf("%w: stand is %d", ErrInvalidDuration, d.Stand)
	}
	if d.Sit < config.MinPhaseMinutes {
		return fmt.Errorf("%w: sit is %d", ErrInvalidDuration, d.Sit)
	}
	return nil
}

// For returns the length of phase p.
func (d Durations) For(p models.Phase) time.Duration {
	if p == models.PhaseSit {
		return time.Duration(d.Sit) * time.Minute
	}
	return time.Duration(d.Stand) * time.Minute
}

// Snapshot is a read-only view of the controller for rendering.
type Snapshot struct {
	Running          bool
	Phase            models.Phase
	Durations        Durations
	Remaining        time.Duration
	RemainingSeconds int
	PhaseLength      time.Duration
	Deadline         time.Time
	Session          uint64
	Title            string
}

// Progress is the elapsed fraction of the current phase, in [0, 1].
func (s Snapshot) Progress() float64 {
	if !s.Running || s.PhaseLength <= 0 {
		return 0
	}
	p := 1 - float64(s.Remaining)/float64(s.PhaseLength)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

type Option func(*Controller)

func WithClock(c Clock) Option { return func(r *Controller) { r.clock = c } }

func WithNotifier(n notify.Notifier) Option { return func(r *Controller) { r.notifier = n } }

func WithSound(s SoundPlayer) Option { return func(r *Controller) { r.sound = s } }

func WithTitle(t TitleSetter) Option { return func(r *Controller) { r.title = t } }

func WithRecorder(rec Recorder) Option { return func(r *Controller) { r.recorder = rec } }

func WithContext(ctx context.Context) Option { return func(r *Controller) { r.ctx = ctx } }

// WithDurations sets the initial durations. Invalid values are ignored.
func WithDurations(d Durations) Option {
	return func(r *Controller) {
		if d.Validate() == nil {
			r.durations = d
		}
	}
}

// Controller owns the phase state machine and its two timers: the phase
// deadline and the tick session. Both are cleared whenever it is stopped.
type Controller struct {
	mu sync.Mutex

	ctx      context.Context
	clock    Clock
	notifier notify.Notifier
	sound    SoundPlayer
	title    TitleSetter
	recorder Recorder

	durations Durations
	running   bool
	phase     models.Phase
	deadline  time.Time
	session   uint64
	sessions  uint64
	lastTitle string
}

func New(opts ...Option) *Controller {
	c := &Controller{
		ctx:       context.Background(),
		clock:     RealClock{},
		durations: DefaultDurations(),
		phase:     models.PhaseStand,
		lastTitle: config.IdleTitle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configure replaces the phase durations. Only allowed while stopped.
func (c *Controller) Configure(d Durations) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return ErrRunning
	}
	if err := d.Validate(); err != nil {
		return err
	}
	c.durations = d
	return nil
}

// Start begins counting down the current phase. It reports false, changing
// nothing, when already running.
func (c *Controller) Start() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return false
	}
	now := c.clock.Now()
	c.running = true
	c.sessions++
	c.session = c.sessions
	c.deadline = now.Add(c.durations.For(c.phase))
	c.enterPhase(now, now)
	return true
}

// Stop cancels the deadline and tick session and restores the idle title.
// It reports false, changing nothing, when already stopped.
func (c *Controller) Stop() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return false
	}
	now := c.clock.Now()
	c.running = false
	c.session = 0
	c.deadline = time.Time{}
	if c.recorder != nil {
		util.LogError("record phase end", c.recorder.PhaseEnded(c.ctx, now))
	}
	c.setTitle(config.IdleTitle)
	return true
}

// Tick is the per-second callback of a tick session. Ticks from a session
// other than the live one are ignored, as are ticks while stopped.
func (c *Controller) Tick(session uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running || session == 0 || session != c.session {
		return false
	}
	now := c.clock.Now()
	if !now.Before(c.deadline) {
		c.flip(now)
		return true
	}
	c.setTitle(Title(c.phase, c.remainingSeconds(now)))
	return true
}

// Session identifies the live tick session, or 0 when stopped.
func (c *Controller) Session() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Snapshot{
		Running:     c.running,
		Phase:       c.phase,
		Durations:   c.durations,
		PhaseLength: c.durations.For(c.phase),
		Deadline:    c.deadline,
		Session:     c.session,
		Title:       c.lastTitle,
	}
	if c.running {
		s.RemainingSeconds = c.remainingSeconds(c.clock.Now())
		s.Remaining = time.Duration(s.RemainingSeconds) * time.Second
	} else {
		s.RemainingSeconds = int(s.PhaseLength / time.Second)
		s.Remaining = s.PhaseLength
	}
	return s
}

// flip moves to the other phase. The next deadline is anchored on the
// previous one; after a suspension that overshot it, it restarts from now.
func (c *Controller) flip(now time.Time) {
	ended := c.deadline
	if c.recorder != nil {
		util.LogError("record phase end", c.recorder.PhaseEnded(c.ctx, ended))
	}
	c.phase = c.phase.Other()
	started := ended
	next := ended.Add(c.durations.For(c.phase))
	if !next.After(now) {
		started = now
		next = now.Add(c.durations.For(c.phase))
	}
	c.deadline = next
	c.enterPhase(now, started)
}

func (c *Controller) enterPhase(now, started time.Time) {
	announce(c.ctx, c.notifier, c.phase)
	if c.sound != nil {
		util.LogError("play alert", c.sound.Play())
	}
	if c.recorder != nil {
		util.LogError("record phase start", c.recorder.PhaseStarted(c.ctx, c.phase, c.durations.For(c.phase), started))
	}
	c.setTitle(Title(c.phase, c.remainingSeconds(now)))
}

func (c *Controller) setTitle(title string) {
	c.lastTitle = title
	if c.title != nil {
		c.title.SetTitle(title)
	}
}

// remainingSeconds rounds up, so a phase of D minutes reads D:00 at its start
// and 0:01 during its final second.
func (c *Controller) remainingSeconds(now time.Time) int {
	d := c.deadline.Sub(now)
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
