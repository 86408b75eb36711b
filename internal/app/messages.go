package app

import "time"

// TickMsg is sent every second to drive the notification scheduler.
// The scheduler decides internally whether a scan is due.
type TickMsg time.Time
