package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the reminder key bindings with built-in help text.
type KeyMap struct {
	Start     key.Binding
	Stop      key.Binding
	NextField key.Binding
	PrevField key.Binding
	Report    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "start"),
		),
		Stop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Report: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "pdf report"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// syncEnabled mirrors the Start/Stop button states. Start and field
// navigation are disabled while running, Stop while stopped.
func (k *KeyMap) syncEnabled(running, hasHistory bool) {
	k.Start.SetEnabled(!running)
	k.Stop.SetEnabled(running)
	k.NextField.SetEnabled(!running)
	k.PrevField.SetEnabled(!running)
	k.Report.SetEnabled(hasHistory)
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.NextField, k.PrevField, k.Report, k.Help, k.Quit}
}

// HelpLine renders enabled bindings as "[key]desc|[key]desc".
func HelpLine(bindings []key.Binding) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Desc == "" || seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		parts = append(parts, "["+h.Key+"]"+h.Desc)
	}
	return strings.Join(parts, "|")
}
