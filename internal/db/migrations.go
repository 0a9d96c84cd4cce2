package db

import (
	"database/sql"
	"fmt"
)

// The console keeps almost nothing locally: authoritative content lives behind
// the platform API. Local state is the settings table (session signing secret)
// and the notification send history, which was browser-local in the old admin
// panel and is deliberately never synced to any server.
//
// Snowflake IDs, no AUTOINCREMENT.
const baseSchema = `
CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notification_history (
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  message TEXT NOT NULL,
  language_code TEXT NOT NULL,
  success_count INTEGER NOT NULL DEFAULT 0,
  failure_count INTEGER NOT NULL DEFAULT 0,
  result TEXT NOT NULL,
  error_message TEXT,
  sent_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_notification_history_sent_at
  ON notification_history(sent_at DESC);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}
	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: total_count column for sends recorded before the counts
	// were split out of the rendered summary text.
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('notification_history') WHERE name = 'total_count'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check total_count column: %w", err)
	}

	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE notification_history ADD COLUMN total_count INTEGER NOT NULL DEFAULT 0`); err != nil {
			return fmt.Errorf("add total_count column: %w", err)
		}
		if _, err := db.Exec(`UPDATE notification_history SET total_count = success_count + failure_count`); err != nil {
			return fmt.Errorf("backfill total_count: %w", err)
		}
	}

	// Migration 2: index for filtering history by language.
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_notification_history_language ON notification_history(language_code)`); err != nil {
		return fmt.Errorf("create idx_notification_history_language: %w", err)
	}

	return nil
}
