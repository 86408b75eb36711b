package schedule

import (
	"fmt"

	"github.com/ferrade/loom/internal/i18n"
	"github.com/ferrade/loom/internal/notify"
	"github.com/ferrade/loom/internal/urgency"
)

// severityFor maps an urgency level onto a notification severity.
// Levels above the defined range present as errors.
func severityFor(level urgency.Level) notify.Severity {
	switch level {
	case urgency.WithinWeek:
		return notify.SeverityInfo
	case urgency.WithinThreeDays:
		return notify.SeverityWarning
	default:
		return notify.SeverityError
	}
}

// dispatch drains the queue in order. Failed deliveries are logged and
// dropped; the persisted level has already advanced, so retrying here
// would only pile up duplicates on a flaky session bus.
func (s *Scheduler) dispatch() {
	for _, p := range s.queue {
		n := notify.Notification{
			Title:    i18n.NotifTitle(s.lang, p.Level),
			Body:     fmt.Sprintf("%s\n%s: %s", p.Note, i18n.DateLabel(s.lang), p.Due),
			Severity: severityFor(p.Level),
			Timeout:  s.timeout,
		}
		if err := s.notifier.Deliver(n); err != nil {
			s.log.Error("failed to deliver notification", "title", n.Title, "error", err)
		}
	}
	s.queue = s.queue[:0]
}
