package notify

import (
	"fmt"
	"io"
	"strings"
)

// ConsoleNotifier writes alerts to a writer instead of the desktop
// notification service. It backs the --console flag and the
// notification smoke-test command.
type ConsoleNotifier struct {
	w io.Writer
}

// NewConsole creates a Notifier that prints alerts to w.
func NewConsole(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

// Deliver prints the alert as a single line.
func (c *ConsoleNotifier) Deliver(n Notification) error {
	body := strings.ReplaceAll(n.Body, "\n", " | ")
	_, err := fmt.Fprintf(c.w, "[%s] %s: %s\n", strings.ToUpper(n.Severity.String()), n.Title, body)
	return err
}
