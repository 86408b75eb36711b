package app

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/ferrade/loom/internal/i18n"
)

type formField int

const (
	fieldNote formField = iota
	fieldDate
)

// addForm holds the state of the reminder entry form. The due date is
// kept between saves so several reminders can be added for the same day.
type addForm struct {
	date  civil.Date
	note  textinput.Model
	field formField
}

func newAddForm(lang i18n.Language) addForm {
	ti := textinput.New()
	ti.Placeholder = i18n.NoteHint(lang)
	ti.CharLimit = 256
	ti.Width = 40

	return addForm{
		date: civil.DateOf(time.Now()),
		note: ti,
	}
}

// open focuses the note field for a new entry.
func (f *addForm) open() {
	f.field = fieldNote
	f.note.Focus()
}

// close drops focus without touching the entered values.
func (f *addForm) close() {
	f.note.Blur()
}

// reset clears the note after a successful save. The date is kept.
func (f *addForm) reset() {
	f.note.SetValue("")
	f.note.Blur()
}

func (f *addForm) nextField() {
	if f.field == fieldNote {
		f.field = fieldDate
		f.note.Blur()
		return
	}
	f.field = fieldNote
	f.note.Focus()
}

func (f *addForm) addDays(n int) {
	f.date = f.date.AddDays(n)
}

func (f *addForm) addMonths(n int) {
	f.date = civil.DateOf(f.date.In(time.UTC).AddDate(0, n, 0))
}
