package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Header    lipgloss.Style
	Label     lipgloss.Style
	Stand     lipgloss.Style
	Sit       lipgloss.Style
	Countdown lipgloss.Style
	Button    lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Stand:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Sit:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Countdown: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Button:    lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Stand:     lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Sit:       lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Countdown: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Button:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

// SetTheme switches the active theme; unknown names keep the current one.
func SetTheme(name string) bool {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
		return true
	}
	return false
}
