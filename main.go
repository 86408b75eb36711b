package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adrg/xdg"

	"github.com/ferrade/loom/internal/app"
	"github.com/ferrade/loom/internal/autostart"
	"github.com/ferrade/loom/internal/config"
	"github.com/ferrade/loom/internal/i18n"
	"github.com/ferrade/loom/internal/icons"
	"github.com/ferrade/loom/internal/notify"
	"github.com/ferrade/loom/internal/reminder"
	"github.com/ferrade/loom/internal/schedule"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	background := flag.Bool("background", false, "run headless, notifications only")
	autostartLaunch := flag.Bool("autostart", false, "set by the login entry; implies -background")
	console := flag.Bool("console", false, "print notifications to stdout instead of the desktop")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("loom", version)
		return
	}

	if *autostartLaunch && !autostart.Enabled() {
		// Launched from a stale login entry, but the setting is now off.
		// Exit without doing anything.
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	headless := *background || *autostartLaunch

	log, closeLog := setupLogging(cfg.Verbose, headless)
	defer closeLog()

	lang := i18n.Detect(cfg.Language)
	icons.Init(cfg.Icons)

	store, err := reminder.Open()
	if err != nil {
		// Degraded mode: the UI still runs and shows a notice, nothing
		// is scheduled.
		log.Error("failed to open reminder store", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	notifier := pickNotifier(cfg, *console, log)

	var schedStore schedule.Store
	if store != nil {
		schedStore = store
	}
	sched := schedule.New(schedStore, notifier, lang, log)
	sched.SetIntervals(cfg.Intervals())
	sched.SetTimeout(int32(cfg.Notifications.Timeout))

	if headless {
		runHeadless(sched, log)
		return
	}

	var uiStore app.Store
	if store != nil {
		uiStore = store
	}
	m := app.New(uiStore, sched, app.XDGAutostart{}, lang, log)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging builds the logger for the selected mode. Headless runs
// log to stderr; with the UI on the terminal, logs go to a state file
// instead.
func setupLogging(verbose, headless bool) (*slog.Logger, func()) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if headless {
		log := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(log)
		return log, func() {}
	}

	path, err := xdg.StateFile(filepath.Join("loom", "loom.log"))
	if err == nil {
		var f *os.File
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			log := slog.New(slog.NewTextHandler(f, opts))
			slog.SetDefault(log)
			return log, func() { _ = f.Close() }
		}
	}

	// The terminal belongs to the UI; drop logs rather than garble it.
	log := slog.New(slog.NewTextHandler(io.Discard, opts))
	slog.SetDefault(log)
	return log, func() {}
}

func pickNotifier(cfg *config.Config, console bool, log *slog.Logger) notify.Notifier {
	if !cfg.Notifications.Enabled {
		return notify.Disabled()
	}
	if console {
		return notify.NewConsole(os.Stdout)
	}

	n, err := notify.New()
	if err != nil {
		log.Error("failed to connect to the notification service", "error", err)
		return notify.Disabled()
	}
	return n
}

// runHeadless drives the scheduler without a UI until interrupted.
func runHeadless(sched *schedule.Scheduler, log *slog.Logger) {
	sched.SetBackgrounded(true)

	log.Info("running in background mode", "version", version)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	sched.MaybeTick(time.Now())

	for {
		select {
		case now := <-ticker.C:
			sched.MaybeTick(now)
		case sig := <-sigCh:
			log.Info("shutting down", "signal", sig.String())
			return
		}
	}
}
