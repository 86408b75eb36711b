package app

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ferrade/loom/internal/i18n"
	"github.com/ferrade/loom/internal/notify"
	"github.com/ferrade/loom/internal/reminder"
	"github.com/ferrade/loom/internal/schedule"
	"github.com/ferrade/loom/internal/urgency"
)

type mockStore struct {
	rems      []reminder.Reminder
	nextID    int64
	listErr   error
	insertErr error
	deleteErr error
	deleted   []int64
}

func (s *mockStore) List() ([]reminder.Reminder, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]reminder.Reminder, len(s.rems))
	copy(out, s.rems)
	return out, nil
}

func (s *mockStore) Insert(due civil.Date, note string) (int64, error) {
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	s.nextID++
	s.rems = append(s.rems, reminder.Reminder{ID: s.nextID, Due: due, Note: note})
	return s.nextID, nil
}

func (s *mockStore) Delete(id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	for i, r := range s.rems {
		if r.ID == id {
			s.rems = append(s.rems[:i], s.rems[i+1:]...)
			return nil
		}
	}
	return reminder.ErrNotFound
}

func (s *mockStore) SetNotifiedLevel(id int64, level urgency.Level) error {
	for i, r := range s.rems {
		if r.ID == id {
			s.rems[i].NotifiedLevel = level
			return nil
		}
	}
	return reminder.ErrNotFound
}

type mockAutostart struct {
	enabled bool
	err     error
}

func (a *mockAutostart) Enabled() bool { return a.enabled }

func (a *mockAutostart) SetEnabled(enabled bool) error {
	if a.err != nil {
		return a.err
	}
	a.enabled = enabled
	return nil
}

type mockNotifier struct {
	delivered []notify.Notification
}

func (n *mockNotifier) Deliver(notification notify.Notification) error {
	n.delivered = append(n.delivered, notification)
	return nil
}

// newTestModel builds a model around a mock store. A nil store produces
// the degraded mode the real app uses when the database cannot open.
func newTestModel(store *mockStore) (Model, *mockAutostart) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	var uiStore Store
	var schedStore schedule.Store
	if store != nil {
		uiStore = store
		schedStore = store
	}

	sched := schedule.New(schedStore, &mockNotifier{}, i18n.English, log)
	auto := &mockAutostart{}

	m := New(uiStore, sched, auto, i18n.English, log)
	m.width = 80
	m.height = 24
	return m, auto
}

func mustDate(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	if err != nil {
		t.Fatalf("parsing date %q: %v", s, err)
	}
	return d
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// press applies a message and returns the updated model.
func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	result, ok := updated.(Model)
	if !ok {
		t.Fatal("Update should return Model")
	}
	return result
}

func TestNew_LoadsReminders(t *testing.T) {
	store := &mockStore{rems: []reminder.Reminder{
		{ID: 1, Due: mustDate(t, "2030-01-01"), Note: "dentist"},
		{ID: 2, Due: mustDate(t, "2030-02-01"), Note: "vet"},
	}}

	m, _ := newTestModel(store)

	if len(m.reminders) != 2 {
		t.Fatalf("len(reminders) = %d, want 2", len(m.reminders))
	}
	if m.reminders[0].Note != "dentist" {
		t.Errorf("reminders[0].Note = %q, want %q", m.reminders[0].Note, "dentist")
	}
}

func TestNew_DegradedWithoutStore(t *testing.T) {
	m, _ := newTestModel(nil)

	if m.store != nil {
		t.Error("store should stay nil in degraded mode")
	}
	if len(m.reminders) != 0 {
		t.Errorf("len(reminders) = %d, want 0", len(m.reminders))
	}
}

func TestNew_ReadsAutostartState(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	sched := schedule.New(nil, &mockNotifier{}, i18n.English, log)
	auto := &mockAutostart{enabled: true}

	m := New(nil, sched, auto, i18n.English, log)

	if !m.autostartOn {
		t.Error("autostartOn = false, want true")
	}
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m, _ := newTestModel(nil)

	m = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.width != 120 {
		t.Errorf("width = %d, want 120", m.width)
	}
	if m.height != 40 {
		t.Errorf("height = %d, want 40", m.height)
	}
}

func TestUpdate_KeyMsg_Quit(t *testing.T) {
	m, _ := newTestModel(nil)

	_, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit from the list")
	}
}

func TestUpdate_CtrlCQuitsWhileTyping(t *testing.T) {
	m, _ := newTestModel(&mockStore{})
	m = press(t, m, keyRune('a'))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit from the add form")
	}
}

func TestUpdate_QTypesIntoNote(t *testing.T) {
	m, _ := newTestModel(&mockStore{})
	m = press(t, m, keyRune('a'))

	m = press(t, m, keyRune('q'))

	if m.mode != modeAdd {
		t.Fatal("q should not leave the add form")
	}
	if got := m.form.note.Value(); got != "q" {
		t.Errorf("note = %q, want %q", got, "q")
	}
}

func TestUpdate_TickMsg_ArmsSchedulerAndContinues(t *testing.T) {
	m, _ := newTestModel(&mockStore{})
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	updated, cmd := m.Update(TickMsg(now))
	m = updated.(Model)

	if cmd == nil {
		t.Fatal("expected follow-up tick command")
	}
	want := now.Add(schedule.DefaultForegroundInterval)
	if got := m.scheduler.NextCheckAt(); !got.Equal(want) {
		t.Errorf("NextCheckAt = %v, want %v", got, want)
	}
}

func TestUpdate_BlurSwitchesToBackgroundCadence(t *testing.T) {
	m, _ := newTestModel(&mockStore{})
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	m = press(t, m, tea.BlurMsg{})
	m = press(t, m, TickMsg(now))

	want := now.Add(schedule.DefaultBackgroundInterval)
	if got := m.scheduler.NextCheckAt(); !got.Equal(want) {
		t.Errorf("NextCheckAt = %v, want %v", got, want)
	}

	m = press(t, m, tea.FocusMsg{})
	later := now.Add(2 * schedule.DefaultBackgroundInterval)
	m = press(t, m, TickMsg(later))

	want = later.Add(schedule.DefaultForegroundInterval)
	if got := m.scheduler.NextCheckAt(); !got.Equal(want) {
		t.Errorf("NextCheckAt after focus = %v, want %v", got, want)
	}
}

func TestUpdate_TickDeliversDueNotifications(t *testing.T) {
	today := civil.DateOf(time.Now())
	store := &mockStore{rems: []reminder.Reminder{
		{ID: 1, Due: today.AddDays(5), Note: "dentist"},
	}}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := &mockNotifier{}
	sched := schedule.New(store, notifier, i18n.English, log)
	m := New(store, sched, &mockAutostart{}, i18n.English, log)
	m.width = 80
	m.height = 24

	m = press(t, m, TickMsg(time.Now()))

	if len(notifier.delivered) != 1 {
		t.Fatalf("delivered %d notifications, want 1", len(notifier.delivered))
	}
	if want := "Reminder (≤ 7 days)"; notifier.delivered[0].Title != want {
		t.Errorf("Title = %q, want %q", notifier.delivered[0].Title, want)
	}
	if m.reminders[0].NotifiedLevel != urgency.WithinWeek {
		t.Errorf("NotifiedLevel = %v, want %v", m.reminders[0].NotifiedLevel, urgency.WithinWeek)
	}
}

func TestRefresh_ListErrorKeepsPreviousReminders(t *testing.T) {
	store := &mockStore{rems: []reminder.Reminder{
		{ID: 1, Due: mustDate(t, "2030-01-01"), Note: "dentist"},
	}}
	m, _ := newTestModel(store)

	store.listErr = errors.New("disk gone")
	m.refresh()

	if !m.listErr {
		t.Error("listErr = false, want true")
	}
	if len(m.reminders) != 1 {
		t.Errorf("len(reminders) = %d, want 1 (stale list kept)", len(m.reminders))
	}
}
