// Package notify delivers reminder alerts to the user.
package notify

// Severity ranks how loudly an alert should be presented.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification contains data for a single alert.
type Notification struct {
	Title    string   // Summary text (required)
	Body     string   // Body text (optional, supports basic markup)
	Severity Severity // Info, Warning, Error
	Timeout  int32    // ms, -1 = server default, 0 = never expire
}

// Notifier delivers notifications. Implementations do not retry: the
// caller treats a failed delivery as dropped.
type Notifier interface {
	Deliver(n Notification) error
}

// Disabled returns a Notifier that silently drops every alert. It
// backs the notifications.enabled=false config switch.
func Disabled() Notifier {
	return disabledNotifier{}
}

type disabledNotifier struct{}

func (disabledNotifier) Deliver(Notification) error { return nil }
