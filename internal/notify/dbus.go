//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

// dbusNotifier delivers alerts as desktop notifications via D-Bus.
type dbusNotifier struct {
	obj dbus.BusObject
}

// New creates a Notifier backed by the desktop notification service.
// Returns a no-op notifier if D-Bus is unavailable.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return &stubNotifier{}, nil //nolint:nilerr // graceful fallback when D-Bus unavailable
	}

	return &dbusNotifier{obj: conn.Object(dbusNotifyDest, dbusNotifyPath)}, nil
}

// dbusUrgency maps alert severity onto the freedesktop urgency hint.
func dbusUrgency(s Severity) byte {
	switch s {
	case SeverityInfo:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// Deliver sends the notification. Every alert is its own notification;
// the server id is not tracked.
func (d *dbusNotifier) Deliver(n Notification) error {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(dbusUrgency(n.Severity)),
		"desktop-entry": dbus.MakeVariant("loom"),
	}

	// D-Bus Notify method signature:
	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := d.obj.Call(
		dbusNotifyInterface+".Notify",
		0,          // flags
		"Loom",     // app_name
		uint32(0),  // replaces_id
		"",         // app_icon
		n.Title,    // summary
		n.Body,     // body
		[]string{}, // actions
		hints,      // hints
		n.Timeout,  // expire_timeout
	)
	if call.Err != nil {
		return call.Err
	}

	var id uint32
	return call.Store(&id)
}

// stubNotifier is used when D-Bus is unavailable.
type stubNotifier struct{}

func (s *stubNotifier) Deliver(_ Notification) error {
	return nil
}
