package schedule

import (
	"cloud.google.com/go/civil"

	"github.com/ferrade/loom/internal/urgency"
)

// detect scans every reminder and queues one announcement per urgency
// boundary newly crossed since the last persisted level. The new level
// is persisted before delivery, so a crash between the two drops the
// alert rather than repeating it; a failed persist does the opposite
// and may repeat the alert on the next check.
func (s *Scheduler) detect(today civil.Date) {
	if s.store == nil {
		return
	}

	rems, err := s.store.List()
	if err != nil {
		s.log.Error("failed to list reminders", "error", err)
		return
	}

	for _, r := range rems {
		current := urgency.Classify(today, r.Due)
		previous := urgency.Clamp(int64(r.NotifiedLevel))
		if current <= previous {
			continue
		}

		// Queue every boundary between the two levels so a stretch of
		// downtime still surfaces each threshold in order.
		for lvl := previous + 1; lvl <= current; lvl++ {
			if lvl == urgency.None {
				continue
			}
			s.queue = append(s.queue, Pending{Due: r.Due, Note: r.Note, Level: lvl})
		}
		s.log.Debug("urgency boundary crossed", "id", r.ID, "from", previous, "to", current)

		if err := s.store.SetNotifiedLevel(r.ID, current); err != nil {
			// The alerts stay queued; the stale stored level means the
			// next check may announce them again.
			s.log.Error("failed to persist notified level", "id", r.ID, "level", current, "error", err)
		}
	}
}
