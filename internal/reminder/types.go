// Package reminder stores dated notes and tracks which urgency
// boundaries have already been announced for each of them.
package reminder

import (
	"cloud.google.com/go/civil"

	"github.com/ferrade/loom/internal/urgency"
)

// Reminder is a single dated note.
type Reminder struct {
	ID   int64
	Due  civil.Date
	Note string

	// NotifiedLevel is the highest urgency level already announced for
	// this reminder. Announcements fire only when the current level
	// exceeds it, so it never moves backwards.
	NotifiedLevel urgency.Level
}
