package reminder

import (
	"context"
	"time"

	"github.com/akyairhashvil/standup/internal/config"
)

// Runner drives a Controller from a wall-clock ticker, for runs without the TUI.
type Runner struct {
	ctrl     *Controller
	interval time.Duration
	onTick   func(Snapshot)
}

type RunnerOption func(*Runner)

// WithInterval overrides the one-second tick period.
func WithInterval(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithTickHook is called with a fresh snapshot after every honored tick.
func WithTickHook(fn func(Snapshot)) RunnerOption {
	return func(r *Runner) { r.onTick = fn }
}

func NewRunner(ctrl *Controller, opts ...RunnerOption) *Runner {
	r := &Runner{ctrl: ctrl, interval: config.TickInterval}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts the controller and ticks it until ctx is done, then stops it.
// A session started elsewhere in the meantime is left running.
func (r *Runner) Run(ctx context.Context) error {
	r.ctrl.Start()
	session := r.ctrl.Session()
	defer func() {
		if r.ctrl.Session() == session {
			r.ctrl.Stop()
		}
	}()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !r.ctrl.Tick(session) {
				// Someone else stopped or restarted the controller.
				return nil
			}
			if r.onTick != nil {
				r.onTick(r.ctrl.Snapshot())
			}
		}
	}
}
