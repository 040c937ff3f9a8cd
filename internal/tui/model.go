package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/standup/internal/config"
	"github.com/akyairhashvil/standup/internal/models"
	"github.com/akyairhashvil/standup/internal/notify"
	"github.com/akyairhashvil/standup/internal/reminder"
	"github.com/akyairhashvil/standup/internal/util"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// History is the read side of the phase history used for today's totals
// and the PDF report.
type History interface {
	ListPhases(ctx context.Context, since, until time.Time) ([]models.PhaseRecord, error)
	Totals(ctx context.Context, since, until time.Time) (map[models.Phase]time.Duration, error)
}

// Options wires the model to its collaborators. Nil sinks are skipped.
type Options struct {
	Durations  reminder.Durations
	Clock      reminder.Clock
	Notifier   notify.Notifier
	Sound      reminder.SoundPlayer
	Recorder   reminder.Recorder
	History    History
	ReportsDir string
}

const (
	fieldStand = iota
	fieldSit
	fieldCount
)

// MainModel is the root bubbletea model: two duration inputs, start/stop
// controls and the countdown of the running phase.
type MainModel struct {
	ctx      context.Context
	ctrl     *reminder.Controller
	titles   *titleBuffer
	clock    reminder.Clock
	history  History
	reports  string
	keys     KeyMap
	inputs   [fieldCount]textinput.Model
	focus    int
	progress progress.Model
	totals   map[models.Phase]time.Duration
	showHelp bool
	lastSeen models.Phase

	Message string
	err     error
	width   int
	height  int
}

func newMinuteInput(placeholder string, value int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = config.MinuteCharLimit
	ti.Width = config.InputWidth
	ti.Prompt = ""
	ti.SetValue(strconv.Itoa(value))
	ti.Validate = func(s string) error {
		if s == "" {
			return nil
		}
		_, err := parseMinutes(s)
		return err
	}
	return ti
}

func NewMainModel(ctx context.Context, opts Options) MainModel {
	if ctx == nil {
		ctx = context.Background()
	}
	durations := opts.Durations
	if durations.Validate() != nil {
		durations = reminder.DefaultDurations()
	}
	clock := opts.Clock
	if clock == nil {
		clock = reminder.RealClock{}
	}
	titles := &titleBuffer{}
	// Recording outlives the program context so the last phase can still be
	// closed by Shutdown after a cancel.
	ctrlOpts := []reminder.Option{
		reminder.WithContext(context.WithoutCancel(ctx)),
		reminder.WithClock(clock),
		reminder.WithTitle(titles),
		reminder.WithDurations(durations),
	}
	if opts.Notifier != nil {
		ctrlOpts = append(ctrlOpts, reminder.WithNotifier(opts.Notifier))
	}
	if opts.Sound != nil {
		ctrlOpts = append(ctrlOpts, reminder.WithSound(opts.Sound))
	}
	if opts.Recorder != nil {
		ctrlOpts = append(ctrlOpts, reminder.WithRecorder(opts.Recorder))
	}

	m := MainModel{
		ctx:      ctx,
		ctrl:     reminder.New(ctrlOpts...),
		titles:   titles,
		clock:    clock,
		history:  opts.History,
		reports:  opts.ReportsDir,
		keys:     DefaultKeyMap(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(config.ProgressWidth)),
		lastSeen: models.PhaseStand,
	}
	m.inputs[fieldStand] = newMinuteInput("stand", durations.Stand)
	m.inputs[fieldSit] = newMinuteInput("sit", durations.Sit)
	m.inputs[fieldStand].Focus()
	m.keys.syncEnabled(false, m.history != nil)
	m.refreshTotals()
	return m
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle(config.IdleTitle))
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case TickMsg:
		return m.handleTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m MainModel) handleWindowSize(msg tea.WindowSizeMsg) MainModel {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressWidth
		if m.width < config.CompactModeThreshold {
			target = util.Clamp(m.width/2, config.MinProgressWidth, config.ProgressWidth)
		}
		m.progress.Width = target
	}
	return m
}

func (m MainModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.ctrl.Tick(msg.Session) {
		return m, nil
	}
	if phase := m.ctrl.Snapshot().Phase; phase != m.lastSeen {
		m.lastSeen = phase
		m.refreshTotals()
	}
	return m, tea.Batch(tickCmd(msg.Session), m.titles.flush())
}

func (m MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Start):
		return m.start()
	case key.Matches(msg, m.keys.Stop):
		return m.stop()
	case key.Matches(msg, m.keys.NextField):
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case key.Matches(msg, m.keys.Report):
		return m.exportReport(), nil
	}

	if m.ctrl.Running() || !editingKey(msg) {
		return m, nil
	}
	m.Message, m.err = "", nil
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m MainModel) start() (tea.Model, tea.Cmd) {
	if m.ctrl.Running() {
		return m, nil
	}
	d, err := m.readDurations()
	if err != nil {
		m.err = err
		return m, nil
	}
	if err := m.ctrl.Configure(d); err != nil {
		m.err = err
		return m, nil
	}
	if !m.ctrl.Start() {
		return m, nil
	}
	m.err, m.Message = nil, ""
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.lastSeen = m.ctrl.Snapshot().Phase
	m.keys.syncEnabled(true, m.history != nil)
	m.refreshTotals()
	return m, tea.Batch(tickCmd(m.ctrl.Session()), m.titles.flush())
}

func (m MainModel) stop() (tea.Model, tea.Cmd) {
	if !m.ctrl.Stop() {
		return m, nil
	}
	m.keys.syncEnabled(false, m.history != nil)
	m.inputs[m.focus].Focus()
	m.refreshTotals()
	return m, m.titles.flush()
}

func (m MainModel) quit() (tea.Model, tea.Cmd) {
	m.ctrl.Stop()
	if cmd := m.titles.flush(); cmd != nil {
		return m, tea.Sequence(cmd, tea.Quit)
	}
	return m, tea.Quit
}

// Shutdown stops a running reminder so its phase is recorded as ended. Call it
// after the program returns, whether it quit or its context was cancelled.
func (m MainModel) Shutdown() {
	m.ctrl.Stop()
}

func (m *MainModel) setFocus(idx int) {
	m.inputs[m.focus].Blur()
	m.focus = idx
	m.inputs[m.focus].Focus()
}

func (m MainModel) readDurations() (reminder.Durations, error) {
	stand, err := parseMinutes(m.inputs[fieldStand].Value())
	if err != nil {
		return reminder.Durations{}, fmt.Errorf("stand duration: %w", err)
	}
	sit, err := parseMinutes(m.inputs[fieldSit].Value())
	if err != nil {
		return reminder.Durations{}, fmt.Errorf("sit duration: %w", err)
	}
	return reminder.Durations{Stand: stand, Sit: sit}, nil
}

func (m *MainModel) refreshTotals() {
	if m.history == nil {
		return
	}
	now := m.clock.Now()
	totals, err := m.history.Totals(m.ctx, startOfDay(now), now)
	if err != nil {
		m.err = fmt.Errorf("load history: %w", err)
		return
	}
	m.totals = totals
}

func (m MainModel) exportReport() MainModel {
	if m.history == nil {
		return m
	}
	path, err := GeneratePDFReport(m.ctx, m.history, m.clock.Now(), m.reports)
	if err != nil {
		m.Message = fmt.Sprintf("Report failed: %v", err)
		return m
	}
	m.Message = fmt.Sprintf("Report saved: %s", path)
	return m
}

// parseMinutes accepts whole minutes within the configured bounds.
func parseMinutes(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("enter whole minutes")
	}
	if err := config.ValidateMinutes("minutes", n); err != nil {
		return 0, fmt.Errorf("must be between %d and %d", config.MinPhaseMinutes, config.MaxPhaseMinutes)
	}
	return n, nil
}

// editingKey lets digits and cursor editing through to the inputs; letters
// are reserved for commands.
func editingKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return false
			}
		}
		return len(msg.Runes) > 0
	}
	return false
}
