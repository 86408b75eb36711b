// Test program to push one sample notification per urgency level
// through the notification stack, so the desktop integration can be
// checked without waiting for a real boundary crossing.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"cloud.google.com/go/civil"

	"github.com/ferrade/loom/internal/i18n"
	"github.com/ferrade/loom/internal/notify"
	"github.com/ferrade/loom/internal/urgency"
)

func main() {
	console := flag.Bool("console", false, "print to stdout instead of the desktop")
	langFlag := flag.String("lang", "", "language override (en or pl)")
	timeout := flag.Int("timeout", 5000, "notification expiry in ms")
	flag.Parse()

	lang := i18n.Detect(*langFlag)
	log.Printf("Using language %q", lang)

	var notifier notify.Notifier
	if *console {
		log.Println("Using console notifier")
		notifier = notify.NewConsole(os.Stdout)
	} else {
		log.Println("Connecting to the desktop notification service...")
		n, err := notify.New()
		if err != nil {
			log.Fatalf("Failed to connect: %v", err)
		}
		notifier = n
	}

	today := civil.DateOf(time.Now())

	// One sample per level, with a due date that actually sits inside
	// the level's window.
	samples := []struct {
		level urgency.Level
		due   civil.Date
		note  string
	}{
		{urgency.WithinWeek, today.AddDays(5), "water the plants"},
		{urgency.WithinThreeDays, today.AddDays(2), "renew the car insurance"},
		{urgency.WithinDay, today, "dentist at 14:30"},
	}

	for _, s := range samples {
		n := notify.Notification{
			Title:    i18n.NotifTitle(lang, s.level),
			Body:     fmt.Sprintf("%s\n%s: %s", s.note, i18n.DateLabel(lang), s.due),
			Severity: severityFor(s.level),
			Timeout:  int32(*timeout),
		}

		log.Printf("Delivering %q (%s)...", n.Title, n.Severity)
		if err := notifier.Deliver(n); err != nil {
			log.Printf("  ERROR: %v", err)
			continue
		}
		log.Println("  -> delivered")

		// Give the notification daemon a moment so the three popups
		// do not collapse into one.
		time.Sleep(500 * time.Millisecond)
	}

	log.Println("Done")
}

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
