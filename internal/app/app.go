// Package app contains the root bubbletea model for the terminal UI.
package app

import (
	"log/slog"

	"cloud.google.com/go/civil"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ferrade/loom/internal/autostart"
	"github.com/ferrade/loom/internal/i18n"
	"github.com/ferrade/loom/internal/keymap"
	"github.com/ferrade/loom/internal/reminder"
	"github.com/ferrade/loom/internal/schedule"
	"github.com/ferrade/loom/internal/ui/cursor"
)

// Store is the subset of the reminder store the UI uses.
type Store interface {
	List() ([]reminder.Reminder, error)
	Insert(due civil.Date, note string) (int64, error)
	Delete(id int64) error
}

// Autostart manages the start-with-system login entry.
type Autostart interface {
	Enabled() bool
	SetEnabled(enabled bool) error
}

// XDGAutostart manages the real login entry for the current user.
type XDGAutostart struct{}

func (XDGAutostart) Enabled() bool { return autostart.Enabled() }

func (XDGAutostart) SetEnabled(enabled bool) error { return autostart.SetEnabled(enabled) }

type mode int

const (
	modeList mode = iota
	modeAdd
	modeConfirmDelete
)

// Model is the root application model containing all state.
type Model struct {
	store     Store // nil when the database could not be opened
	scheduler *schedule.Scheduler
	auto      Autostart
	lang      i18n.Language
	log       *slog.Logger

	mode      mode
	reminders []reminder.Reminder
	listErr   bool // last refresh failed
	cursor    cursor.Cursor
	form      addForm
	confirm   confirmDelete

	autostartOn bool
	statusMsg   string

	listKeys *keymap.Resolver
	addKeys  *keymap.Resolver

	width  int
	height int
}

// New creates the application model. store may be nil when the database
// is unavailable; the UI then runs degraded and only shows a notice.
func New(store Store, scheduler *schedule.Scheduler, auto Autostart, lang i18n.Language, log *slog.Logger) Model {
	if log == nil {
		log = slog.Default()
	}

	m := Model{
		store:     store,
		scheduler: scheduler,
		auto:      auto,
		lang:      lang,
		log:       log,
		cursor:    cursor.New(1),
		form:      newAddForm(lang),
		listKeys:  keymap.NewResolver(append(keymap.ByContext("global"), keymap.ByContext("list")...)),
		addKeys:   keymap.NewResolver(keymap.ByContext("add")),
	}

	if auto != nil {
		m.autostartOn = auto.Enabled()
	}

	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return TickCmd()
}

// refresh reloads the reminder list from the store.
func (m *Model) refresh() {
	if m.store == nil {
		return
	}

	rems, err := m.store.List()
	if err != nil {
		m.listErr = true
		m.log.Error("failed to list reminders", "error", err)
		return
	}

	m.listErr = false
	m.reminders = rems
	m.cursor.ClampToBounds(len(rems))
}

// selected returns the reminder under the cursor.
func (m Model) selected() (reminder.Reminder, bool) {
	if len(m.reminders) == 0 {
		return reminder.Reminder{}, false
	}
	return m.reminders[m.cursor.Pos()], true
}
