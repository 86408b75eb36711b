package app

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ferrade/loom/internal/i18n"
	"github.com/ferrade/loom/internal/icons"
	"github.com/ferrade/loom/internal/keymap"
	"github.com/ferrade/loom/internal/reminder"
	"github.com/ferrade/loom/internal/ui/render"
	"github.com/ferrade/loom/internal/ui/styles"
	"github.com/ferrade/loom/internal/urgency"
)

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.mode == modeAdd {
		return m.viewAdd()
	}

	base := m.viewList()
	if m.mode == modeConfirmDelete {
		return m.viewConfirm(base)
	}
	return base
}

func (m Model) viewList() string {
	t := styles.T()
	s := t.S()
	section := s.Accent.Bold(true)

	var b strings.Builder
	b.WriteString(styles.ApplyBoldGradient(i18n.AppTitle(m.lang), t.Primary, t.Secondary))
	b.WriteString("\n\n")

	b.WriteString(section.Render(icons.Settings() + i18n.Settings(m.lang)))
	b.WriteString("\n")
	b.WriteString("  " + m.renderAutostartLine())
	b.WriteString("\n\n")

	b.WriteString(section.Render(icons.Calendar() + i18n.Planned(m.lang)))
	b.WriteString("\n")
	b.WriteString(m.viewReminders())

	b.WriteString("\n")
	b.WriteString(footerHelp("list", "global"))
	b.WriteString("\n")
	if m.statusMsg != "" {
		b.WriteString(s.Error.Render(m.statusMsg))
	}
	return b.String()
}

func (m Model) viewAdd() string {
	t := styles.T()
	s := t.S()
	section := s.Accent.Bold(true)

	var b strings.Builder
	b.WriteString(styles.ApplyBoldGradient(i18n.AppTitle(m.lang), t.Primary, t.Secondary))
	b.WriteString("\n\n")

	b.WriteString(section.Render(icons.Calendar() + i18n.Add(m.lang)))
	b.WriteString("\n")

	dateLabel := i18n.DateLabel(m.lang) + ": "
	dateValue := m.form.date.String()
	if m.form.field == fieldDate {
		b.WriteString("  " + s.Base.Render(dateLabel) + s.Cursor.Render(dateValue))
	} else {
		b.WriteString("  " + s.Muted.Render(dateLabel) + s.Base.Render(dateValue))
	}
	b.WriteString("\n")
	b.WriteString("  " + m.form.note.View())
	b.WriteString("\n\n")
	b.WriteString(footerHelp("add"))
	b.WriteString("\n")
	if m.statusMsg != "" {
		b.WriteString(s.Error.Render(m.statusMsg))
	}
	return b.String()
}

// viewReminders renders exactly listHeight lines, padding when short.
func (m Model) viewReminders() string {
	s := styles.T().S()
	height := m.listHeight()

	lines := make([]string, 0, height)
	switch {
	case m.store == nil:
		lines = append(lines, "  "+s.Warning.Render(i18n.NoDB(m.lang)))
	case m.listErr:
		lines = append(lines, "  "+s.Error.Render(i18n.DBReadError(m.lang)))
	case len(m.reminders) == 0:
		lines = append(lines, "  "+s.Muted.Render(i18n.Empty(m.lang)))
	default:
		today := civil.DateOf(time.Now())
		start, end := m.cursor.VisibleRange(len(m.reminders), height)
		for i := start; i < end; i++ {
			lines = append(lines, m.renderRow(m.reminders[i], today, i == m.cursor.Pos()))
		}
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) renderAutostartLine() string {
	s := styles.T().S()

	style := s.Muted
	if m.autostartOn {
		style = s.Success
	}
	return style.Render(icons.Checkbox(m.autostartOn) + " " + i18n.StartWithSystem(m.lang))
}

// renderRow renders one reminder line, tinted by how soon it is due.
func (m Model) renderRow(r reminder.Reminder, today civil.Date, selected bool) string {
	t := styles.T()
	s := t.S()

	level := urgency.Classify(today, r.Due)
	style := s.Base
	switch level {
	case urgency.WithinWeek:
		style = s.Accent
	case urgency.WithinThreeDays:
		style = s.Warning
	case urgency.WithinDay:
		style = s.Error
	}

	text := fmt.Sprintf("%s  -  %s", r.Due, r.Note)
	if level == urgency.WithinDay {
		text = icons.Bell() + text
	}

	avail := m.width - 2
	if avail < 1 {
		avail = 1
	}
	text = render.Truncate(text, avail)

	if selected {
		// The cursor bar spans the whole list width.
		return "> " + style.Background(t.BgCursor).Render(render.Pad(text, avail))
	}

	row := "  " + style.Render(text)

	// Relative time hint for upcoming reminders, flush right.
	if days := r.Due.DaysSince(today); days > 0 {
		rel := "(" + humanize.Time(r.Due.In(time.Local)) + ")"
		if lipgloss.Width(text)+lipgloss.Width(rel)+3 <= m.width {
			row = render.Row(row, s.Subtle.Render(rel), m.width)
		}
	}
	return row
}

// listHeight returns the number of rows available for the reminder list.
func (m Model) listHeight() int {
	h := m.height - 9
	if h < 1 {
		h = 1
	}
	return h
}

func footerHelp(contexts ...string) string {
	var parts []string
	for _, ctx := range contexts {
		for _, b := range keymap.ByContext(ctx) {
			parts = append(parts, b.Keys[0]+" "+b.Description)
		}
	}
	return styles.T().S().Subtle.Render(strings.Join(parts, " · "))
}
