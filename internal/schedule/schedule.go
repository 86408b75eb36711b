// Package schedule runs the periodic urgency checks and turns newly
// crossed boundaries into desktop notifications.
package schedule

import (
	"log/slog"
	"time"

	"cloud.google.com/go/civil"

	"github.com/ferrade/loom/internal/i18n"
	"github.com/ferrade/loom/internal/notify"
	"github.com/ferrade/loom/internal/reminder"
	"github.com/ferrade/loom/internal/urgency"
)

// Check cadence while the UI is focused versus minimized or headless.
const (
	DefaultForegroundInterval = 10 * time.Second
	DefaultBackgroundInterval = time.Minute
)

// Store is the slice of the reminder store the scheduler consumes.
type Store interface {
	List() ([]reminder.Reminder, error)
	SetNotifiedLevel(id int64, level urgency.Level) error
}

// Pending is a queued boundary announcement awaiting delivery.
type Pending struct {
	Due   civil.Date
	Note  string
	Level urgency.Level
}

// Scheduler scans the reminder store on a cadence, records which
// urgency boundaries each reminder has crossed and hands the resulting
// alerts to a notifier. It is not safe for concurrent use; drive it
// from a single loop.
type Scheduler struct {
	store    Store
	notifier notify.Notifier
	lang     i18n.Language
	log      *slog.Logger

	foreground   time.Duration
	background   time.Duration
	backgrounded bool

	timeout int32

	nextCheckAt time.Time
	queue       []Pending
}

// New creates a scheduler. A nil store puts it in degraded mode: checks
// still tick but never announce anything. A nil log falls back to the
// default logger.
func New(store Store, notifier notify.Notifier, lang i18n.Language, log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		store:      store,
		notifier:   notifier,
		lang:       lang,
		log:        log,
		foreground: DefaultForegroundInterval,
		background: DefaultBackgroundInterval,
	}
}

// SetIntervals overrides the check cadence. Non-positive values keep
// the defaults.
func (s *Scheduler) SetIntervals(foreground, background time.Duration) {
	if foreground > 0 {
		s.foreground = foreground
	}
	if background > 0 {
		s.background = background
	}
}

// SetTimeout sets the expiry passed along with each notification, in
// milliseconds.
func (s *Scheduler) SetTimeout(ms int32) {
	s.timeout = ms
}

// SetBackgrounded switches the cadence used when the next check is
// armed. It does not re-arm a check that is already scheduled.
func (s *Scheduler) SetBackgrounded(backgrounded bool) {
	s.backgrounded = backgrounded
}

// NextCheckAt reports when the next check is due. The zero time means
// a check runs on the first tick.
func (s *Scheduler) NextCheckAt() time.Time {
	return s.nextCheckAt
}

func (s *Scheduler) interval() time.Duration {
	if s.backgrounded {
		return s.background
	}
	return s.foreground
}

// MaybeTick runs a check if one is due at now and reports whether it
// ran. The next check is armed before the scan so a slow scan does not
// drift the cadence by its own duration.
func (s *Scheduler) MaybeTick(now time.Time) bool {
	if now.Before(s.nextCheckAt) {
		return false
	}
	s.nextCheckAt = now.Add(s.interval())
	s.RunOnce(civil.DateOf(now))
	return true
}

// RunOnce performs one full check: detect newly crossed boundaries for
// every reminder, then deliver everything queued.
func (s *Scheduler) RunOnce(today civil.Date) {
	s.detect(today)
	s.dispatch()
}
