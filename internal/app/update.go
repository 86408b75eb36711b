package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ferrade/loom/internal/errmsg"
	"github.com/ferrade/loom/internal/i18n"
	"github.com/ferrade/loom/internal/keymap"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.FocusMsg:
		m.scheduler.SetBackgrounded(false)
		return m, nil

	case tea.BlurMsg:
		m.scheduler.SetBackgrounded(true)
		return m, nil

	case TickMsg:
		if m.scheduler.MaybeTick(time.Time(msg)) {
			// A scan may have updated notified levels; reload.
			m.refresh()
		}
		return m, TickCmd()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even while typing a note.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	m.statusMsg = ""

	switch m.mode {
	case modeAdd:
		return m.updateAdd(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg.String())
	default:
		return m.updateList(msg.String())
	}
}

func (m Model) updateList(key string) (tea.Model, tea.Cmd) {
	switch m.listKeys.Resolve(key) {
	case keymap.ActionQuit:
		return m, tea.Quit

	case keymap.ActionAdd:
		m.mode = modeAdd
		m.form.open()
		return m, textinput.Blink

	case keymap.ActionDelete:
		if r, ok := m.selected(); ok {
			m.confirm = confirmDelete{id: r.ID, due: r.Due, note: r.Note}
			m.mode = modeConfirmDelete
		}

	case keymap.ActionToggleAutostart:
		m.toggleAutostart()

	case keymap.ActionMoveDown:
		m.cursor.Move(1, len(m.reminders), m.listHeight())

	case keymap.ActionMoveUp:
		m.cursor.Move(-1, len(m.reminders), m.listHeight())
	}

	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.addKeys.Resolve(msg.String())

	// The note field consumes printable keys and arrows, so date
	// adjustments only apply while the date field is focused.
	if m.form.field == fieldNote {
		switch action {
		case keymap.ActionNextField, keymap.ActionSave, keymap.ActionCancel:
		default:
			action = ""
		}
	}

	switch action {
	case keymap.ActionNextField:
		m.form.nextField()

	case keymap.ActionDayPlus:
		m.form.addDays(1)

	case keymap.ActionDayMinus:
		m.form.addDays(-1)

	case keymap.ActionMonthPlus:
		m.form.addMonths(1)

	case keymap.ActionMonthMinus:
		m.form.addMonths(-1)

	case keymap.ActionSave:
		return m.saveReminder()

	case keymap.ActionCancel:
		m.mode = modeList
		m.form.close()

	default:
		if m.form.field == fieldNote {
			var cmd tea.Cmd
			m.form.note, cmd = m.form.note.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m Model) saveReminder() (tea.Model, tea.Cmd) {
	note := strings.TrimSpace(m.form.note.Value())
	if note == "" {
		m.log.Debug("empty note, nothing added")
		return m, nil
	}

	if m.store == nil {
		m.statusMsg = i18n.NoDB(m.lang)
		return m, nil
	}

	id, err := m.store.Insert(m.form.date, note)
	if err != nil {
		m.statusMsg = errmsg.FormatWith(errmsg.OpReminderAdd, note, err)
		m.log.Error("failed to insert reminder", "error", err)
		return m, nil
	}

	m.log.Debug("reminder added", "id", id, "due", m.form.date.String(), "note", note)
	m.form.reset()
	m.mode = modeList
	m.refresh()
	return m, nil
}

func (m *Model) deleteReminder(id int64) {
	if m.store == nil {
		return
	}

	if err := m.store.Delete(id); err != nil {
		m.statusMsg = errmsg.Format(errmsg.OpReminderDelete, err)
		m.log.Error("failed to delete reminder", "id", id, "error", err)
		return
	}

	m.log.Debug("reminder deleted", "id", id)
	m.refresh()
}

func (m *Model) toggleAutostart() {
	if m.auto == nil {
		return
	}

	target := !m.autostartOn
	if err := m.auto.SetEnabled(target); err != nil {
		m.statusMsg = errmsg.Format(errmsg.OpAutostartUpdate, err)
		m.log.Error("failed to update autostart", "enabled", target, "error", err)
		return
	}

	m.autostartOn = target
	m.log.Debug("autostart toggled", "enabled", target)
}
