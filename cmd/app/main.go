package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/akyairhashvil/standup/internal/config"
	"github.com/akyairhashvil/standup/internal/database"
	"github.com/akyairhashvil/standup/internal/models"
	"github.com/akyairhashvil/standup/internal/notify"
	"github.com/akyairhashvil/standup/internal/reminder"
	"github.com/akyairhashvil/standup/internal/sound"
	"github.com/akyairhashvil/standup/internal/tui"
	"github.com/akyairhashvil/standup/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type cliFlags struct {
	configPath string
	stand      int
	sit        int
	headless   bool
	mute       bool
	version    bool
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "report" {
		if err := runReport(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var f cliFlags
	flag.StringVar(&f.configPath, "config", "", "path to config file")
	flag.IntVar(&f.stand, "stand", 0, "stand duration in minutes")
	flag.IntVar(&f.sit, "sit", 0, "sit duration in minutes")
	flag.BoolVar(&f.headless, "headless", false, "run without the TUI, updating only the terminal title")
	flag.BoolVar(&f.mute, "mute", false, "disable the sound cue")
	flag.BoolVar(&f.version, "version", false, "print version and exit")
	flag.Parse()

	if f.version {
		fmt.Printf("%s %s\n", config.AppName, tui.VersionLabel())
		return
	}

	settings, err := loadSettings(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if f.headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		err = runHeadless(ctx, settings)
	} else {
		err = runTUI(ctx, settings)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func loadSettings(f cliFlags) (config.Settings, error) {
	settings, err := config.Load(f.configPath, util.ConfigDir(config.AppName))
	if err != nil {
		return settings, err
	}
	if f.stand != 0 {
		settings.StandMinutes = f.stand
	}
	if f.sit != 0 {
		settings.SitMinutes = f.sit
	}
	if f.mute {
		settings.Sound = false
	}
	if err := settings.Validate(); err != nil {
		return settings, err
	}
	if !tui.SetTheme(settings.Theme) {
		log.Printf("unknown theme %q, using default", settings.Theme)
	}
	return settings, nil
}

// openHistory opens the phase log. With closeStale, phases left open by a
// previous run that ended without stopping are closed first.
func openHistory(ctx context.Context, closeStale bool) (*database.Database, error) {
	dbRoot := util.DataDir(config.AppName)
	if err := os.MkdirAll(dbRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := database.Open(ctx, filepath.Join(dbRoot, config.DBFileName))
	if err != nil {
		return nil, err
	}
	if closeStale {
		_, err := db.CloseOpenPhases(ctx, time.Now())
		util.LogError("close stale phases", err)
	}
	return db, nil
}

type sinks struct {
	notifier *notify.Desktop
	sound    reminder.SoundPlayer
	db       *database.Database
	recorder *database.Recorder
}

func newSinks(ctx context.Context, settings config.Settings) (*sinks, error) {
	s := &sinks{
		notifier: notify.NewDesktop(settings.Notifications),
		sound:    sound.Silent{},
	}
	if settings.Sound {
		s.sound = sound.NewPlayer(settings.Volume)
	}
	if settings.History {
		db, err := openHistory(ctx, true)
		if err != nil {
			return nil, err
		}
		s.db = db
		s.recorder = database.NewRecorder(db)
	}
	return s, nil
}

func (s *sinks) close() {
	s.notifier.Wait()
	if s.db != nil {
		util.LogError("close database", s.db.Close())
	}
}

func durations(settings config.Settings) reminder.Durations {
	return reminder.Durations{Stand: settings.StandMinutes, Sit: settings.SitMinutes}
}

func runTUI(ctx context.Context, settings config.Settings) error {
	if settings.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(settings.LogFile), 0o755); err == nil {
			logFile, err := tea.LogToFile(settings.LogFile, config.AppName)
			if err == nil {
				defer logFile.Close()
			}
		}
	}

	s, err := newSinks(ctx, settings)
	if err != nil {
		return err
	}
	defer s.close()

	opts := tui.Options{
		Durations:  durations(settings),
		Notifier:   s.notifier,
		Sound:      s.sound,
		ReportsDir: util.ReportsDir(config.AppName),
	}
	if s.db != nil {
		opts.Recorder = s.recorder
		opts.History = s.db
	}

	model := tui.NewMainModel(ctx, opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	model.Shutdown()
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func runHeadless(ctx context.Context, settings config.Settings) error {
	s, err := newSinks(ctx, settings)
	if err != nil {
		return err
	}
	defer s.close()

	ctrlOpts := []reminder.Option{
		reminder.WithDurations(durations(settings)),
		reminder.WithNotifier(s.notifier),
		reminder.WithSound(s.sound),
	}
	if title := headlessTitle(os.Stderr); title != nil {
		ctrlOpts = append(ctrlOpts, reminder.WithTitle(title))
	}
	if s.recorder != nil {
		ctrlOpts = append(ctrlOpts, reminder.WithRecorder(s.recorder))
	}
	// The recorder outlives ctx so the final phase can still be closed on exit.
	ctrlOpts = append(ctrlOpts, reminder.WithContext(context.Background()))
	ctrl := reminder.New(ctrlOpts...)

	last := models.Phase("")
	report := func(snap reminder.Snapshot) {
		if snap.Phase == last {
			return
		}
		last = snap.Phase
		fmt.Printf("%s  %s (%s)\n", time.Now().Format("15:04:05"), snap.Phase.Message(), reminder.FormatTime(snap.RemainingSeconds))
	}
	report(ctrl.Snapshot())

	runner := reminder.NewRunner(ctrl, reminder.WithTickHook(report))
	return runner.Run(ctx)
}

// headlessTitle returns a title sink writing to w, or nil when w is not a
// terminal and escape sequences would end up in a log.
func headlessTitle(w *os.File) reminder.TitleSetter {
	if !term.IsTerminal(int(w.Fd())) {
		return nil
	}
	return reminder.TerminalTitle{W: w}
}

func runReport(args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	date := fs.String("date", "", "day to report, YYYY-MM-DD (default today)")
	out := fs.String("out", util.ReportsDir(config.AppName), "directory to write the report to")
	if err := fs.Parse(args); err != nil {
		return err
	}

	day := time.Now()
	if *date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid -date %q: %w", *date, err)
		}
		day = parsed.Add(24*time.Hour - time.Second)
	}

	ctx := context.Background()
	db, err := openHistory(ctx, false)
	if err != nil {
		return err
	}
	defer db.Close()

	path, err := tui.GeneratePDFReport(ctx, db, day, *out)
	if err != nil {
		return err
	}
	fmt.Printf("Report saved: %s\n", path)
	return nil
}
