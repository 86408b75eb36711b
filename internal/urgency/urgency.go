// Package urgency grades how soon a reminder is due.
package urgency

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// Level is an urgency grade derived from the number of days left until a
// due date. Higher levels are more urgent and compare accordingly. The
// zero value means the date is far enough away that nothing should be
// announced yet.
type Level int

const (
	// None means the due date is more than a week away.
	None Level = iota
	// WithinWeek means the due date is at most seven days away.
	WithinWeek
	// WithinThreeDays means the due date is at most three days away.
	WithinThreeDays
	// WithinDay means the due date is tomorrow, today or already past.
	WithinDay
)

// Max is the highest defined level.
const Max = WithinDay

// Classify grades due against today. Dates already past grade as
// WithinDay so overdue reminders keep announcing at full urgency.
func Classify(today, due civil.Date) Level {
	days := due.DaysSince(today)
	switch {
	case days <= 1:
		return WithinDay
	case days <= 3:
		return WithinThreeDays
	case days <= 7:
		return WithinWeek
	default:
		return None
	}
}

// Clamp coerces an arbitrary stored value into the valid level range.
// Rows written by older builds or edited by hand may fall outside it.
func Clamp(v int64) Level {
	if v < int64(None) {
		return None
	}
	if v > int64(Max) {
		return Max
	}
	return Level(v)
}

func (l Level) String() string {
	switch l {
	case None:
		return "none"
	case WithinWeek:
		return "within-week"
	case WithinThreeDays:
		return "within-three-days"
	case WithinDay:
		return "within-day"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}
