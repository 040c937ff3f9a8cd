package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/standup/internal/config"
	"github.com/akyairhashvil/standup/internal/models"
	"github.com/akyairhashvil/standup/internal/reminder"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m MainModel) View() string {
	snap := m.ctrl.Snapshot()
	var b strings.Builder

	b.WriteString(CurrentTheme.Header.Render(config.IdleTitle))
	b.WriteString("\n\n")
	b.WriteString(m.renderField(fieldStand, "Stand Duration (minutes):", snap.Running))
	b.WriteString("\n")
	b.WriteString(m.renderField(fieldSit, "Sit Duration (minutes):", snap.Running))
	b.WriteString("\n\n")
	b.WriteString(m.renderButtons())
	b.WriteString("\n")

	if snap.Running {
		b.WriteString("\n")
		b.WriteString(m.renderStatus(snap))
		b.WriteString("\n")
	}
	if line := m.renderTotals(); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(CurrentTheme.Error.Render(m.err.Error()))
		b.WriteString("\n")
	} else if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(CurrentTheme.Highlight.Render(m.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return CurrentTheme.Base.Render(b.String())
}

const labelWidth = 27

func (m MainModel) renderField(idx int, label string, running bool) string {
	labelStyle := CurrentTheme.Label
	if running {
		labelStyle = CurrentTheme.Dim
	} else if idx == m.focus {
		labelStyle = CurrentTheme.Focused
	}
	value := m.inputs[idx].View()
	if running {
		value = CurrentTheme.Dim.Render(m.inputs[idx].Value())
	}
	return labelStyle.Width(labelWidth).Render(label) + " " + value
}

func (m MainModel) renderButtons() string {
	return renderButton("Start", m.keys.Start) + "  " + renderButton("Stop", m.keys.Stop)
}

func renderButton(label string, b key.Binding) string {
	text := fmt.Sprintf("[%s] %s", b.Help().Key, label)
	if !b.Enabled() {
		return CurrentTheme.Dim.Render(text)
	}
	return CurrentTheme.Button.Render(text)
}

func (m MainModel) renderStatus(snap reminder.Snapshot) string {
	phaseStyle := CurrentTheme.Stand
	if snap.Phase == models.PhaseSit {
		phaseStyle = CurrentTheme.Sit
	}
	lines := []string{
		"It's time to " + phaseStyle.Render(snap.Phase.Label()) + "!",
		"Time left until next change: " + CurrentTheme.Countdown.Render(reminder.FormatTime(snap.RemainingSeconds)),
		m.progress.ViewAs(snap.Progress()),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m MainModel) renderTotals() string {
	if m.totals == nil {
		return ""
	}
	return CurrentTheme.Dim.Render(fmt.Sprintf("Today: stood %s, sat %s",
		FormatDuration(m.totals[models.PhaseStand]),
		FormatDuration(m.totals[models.PhaseSit])))
}

func (m MainModel) renderHelp() string {
	bindings := m.keys.ShortHelp()
	if m.showHelp {
		bindings = m.keys.FullHelp()
	}
	line := HelpLine(bindings)
	if m.width > 0 {
		line = ansi.Truncate(line, m.width-4, "…")
	}
	return CurrentTheme.Dim.Render(line)
}
