package tui

import (
	"time"

	"github.com/akyairhashvil/standup/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg is one beat of a tick session. Beats from sessions that are no
// longer live are dropped without re-arming.
type TickMsg struct {
	Session uint64
	Time    time.Time
}

func tickCmd(session uint64) tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg {
		return TickMsg{Session: session, Time: t}
	})
}

// titleBuffer receives titles from the controller and hands the latest one
// to the update loop, which owns the terminal.
type titleBuffer struct {
	pending string
	dirty   bool
}

func (b *titleBuffer) SetTitle(title string) {
	b.pending = title
	b.dirty = true
}

func (b *titleBuffer) flush() tea.Cmd {
	if !b.dirty {
		return nil
	}
	b.dirty = false
	return tea.SetWindowTitle(b.pending)
}
