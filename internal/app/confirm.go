package app

import (
	"fmt"

	"cloud.google.com/go/civil"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ferrade/loom/internal/i18n"
	"github.com/ferrade/loom/internal/ui/popup"
)

// confirmDelete holds the reminder pending delete confirmation.
type confirmDelete struct {
	id   int64
	due  civil.Date
	note string
}

func (m Model) updateConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter", "y", "Y":
		m.mode = modeList
		m.deleteReminder(m.confirm.id)

	case "esc", "n", "N":
		m.mode = modeList
	}
	return m, nil
}

func (m Model) viewConfirm(base string) string {
	dialog := popup.Dialog{
		Title:   i18n.ConfirmDelete(m.lang),
		Content: fmt.Sprintf("%s  -  %s", m.confirm.due, m.confirm.note),
		Footer:  "Enter/Y: confirm, Esc/N: cancel",
	}
	return popup.Compose(base, dialog.Render(m.width, m.height), m.width)
}
