package reminder

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cloud.google.com/go/civil"
	"github.com/adrg/xdg"

	"github.com/ferrade/loom/internal/db"
	"github.com/ferrade/loom/internal/urgency"
)

const (
	appName    = "loom"
	dbFileName = "loom.db"
)

// ErrNotFound is returned when an operation targets a reminder that
// does not exist.
var ErrNotFound = errors.New("reminder not found")

// Store provides SQLite-backed storage for reminders.
type Store struct {
	db *sql.DB
}

// Open opens the reminder database in the XDG data directory, creating
// it and its schema when missing.
func Open() (*Store, error) {
	path, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}
	return OpenPath(path)
}

// OpenPath opens the reminder database at an explicit path.
func OpenPath(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	sqldb, err := db.Open(path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(sqldb); err != nil {
		sqldb.Close()
		return nil, err
	}

	return &Store{db: sqldb}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns all reminders ordered by due date, then id. Stored
// levels outside the valid range are clamped on the way out.
func (s *Store) List() ([]Reminder, error) {
	rows, err := s.db.Query(`
		SELECT id, due_date, note, notified_level
		FROM reminders
		ORDER BY due_date ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()

	var out []Reminder
	for rows.Next() {
		var (
			r      Reminder
			dueStr string
			rawLvl int64
		)
		if err := rows.Scan(&r.ID, &dueStr, &r.Note, &rawLvl); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		due, err := civil.ParseDate(dueStr)
		if err != nil {
			return nil, fmt.Errorf("parse due date %q: %w", dueStr, err)
		}
		r.Due = due
		r.NotifiedLevel = urgency.Clamp(rawLvl)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Insert adds a new reminder with no announcements recorded and
// returns its assigned id.
func (s *Store) Insert(due civil.Date, note string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO reminders (due_date, note, notified_level)
		VALUES (?, ?, 0)
	`, due.String(), note)
	if err != nil {
		return 0, fmt.Errorf("insert reminder: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert reminder id: %w", err)
	}
	return id, nil
}

// Delete removes a reminder by id.
func (s *Store) Delete(id int64) error {
	res, err := s.db.Exec(`DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete reminder %d: %w", id, err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("delete reminder %d: %w", id, ErrNotFound)
	}
	return nil
}

// SetNotifiedLevel records the highest urgency level announced for a
// reminder so far.
func (s *Store) SetNotifiedLevel(id int64, level urgency.Level) error {
	res, err := s.db.Exec(`
		UPDATE reminders SET notified_level = ? WHERE id = ?
	`, int(level), id)
	if err != nil {
		return fmt.Errorf("set notified level for reminder %d: %w", id, err)
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("set notified level for reminder %d: %w", id, ErrNotFound)
	}
	return nil
}
