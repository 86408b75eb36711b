package reminder

import (
	"database/sql"

	"github.com/ferrade/loom/internal/db"
)

const currentSchemaVersion = 1

func initSchema(sqldb *sql.DB) error {
	err := db.WithTx(sqldb, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY
			);

			CREATE TABLE IF NOT EXISTS reminders (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				due_date TEXT NOT NULL,
				note TEXT NOT NULL,
				notified_level INTEGER NOT NULL DEFAULT 0
			);

			CREATE INDEX IF NOT EXISTS idx_reminders_due_date ON reminders(due_date);
		`); err != nil {
			return err
		}

		// Set initial version if not exists
		_, err := tx.Exec(`
			INSERT OR IGNORE INTO schema_version (version) VALUES (?)
		`, currentSchemaVersion)
		return err
	})
	if err != nil {
		return err
	}

	// Migration: add notified_level column if missing
	_, _ = sqldb.Exec(`ALTER TABLE reminders ADD COLUMN notified_level INTEGER NOT NULL DEFAULT 0`)

	return nil
}
