package reminder

import (
	"context"
	"io"
	"time"

	"github.com/akyairhashvil/standup/internal/models"
	"github.com/akyairhashvil/standup/internal/notify"
	"github.com/akyairhashvil/standup/internal/util"
	"github.com/charmbracelet/x/ansi"
)

//go:generate mockgen -source=sinks.go -destination=mock_sinks_test.go -package=reminder

// SoundPlayer plays the phase-entry alert. Playback is best effort.
type SoundPlayer interface {
	Play() error
}

// TitleSetter receives every title refresh, including the idle title on stop.
type TitleSetter interface {
	SetTitle(title string)
}

// Recorder keeps a history of phases. Failures are logged, never surfaced.
type Recorder interface {
	PhaseStarted(ctx context.Context, phase models.Phase, planned time.Duration, at time.Time) error
	PhaseEnded(ctx context.Context, at time.Time) error
}

// TitleFunc adapts a function to TitleSetter.
type TitleFunc func(title string)

func (f TitleFunc) SetTitle(title string) { f(title) }

// TerminalTitle writes the title as an OSC 2 sequence, for runs without the TUI.
type TerminalTitle struct {
	W io.Writer
}

func (t TerminalTitle) SetTitle(title string) {
	if t.W == nil {
		return
	}
	_, err := io.WriteString(t.W, ansi.SetWindowTitle(title))
	util.LogError("write title", err)
}

// announce follows the notification permission protocol: ask once while
// undecided, dispatch only when granted, stay silent otherwise.
func announce(ctx context.Context, n notify.Notifier, phase models.Phase) {
	if n == nil {
		return
	}
	perm := n.Permission()
	if perm == notify.PermissionDefault {
		var err error
		perm, err = n.RequestPermission(ctx)
		if err != nil {
			util.LogError("request notification permission", err)
			return
		}
	}
	if perm != notify.PermissionGranted {
		return
	}
	util.LogError("notify", n.Notify(ctx, notify.DefaultTitle, phase.Message()))
}
