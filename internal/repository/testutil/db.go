// Package testutil provides a throwaway sqlite database for repository tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"kisanbandhu/console/internal/db"
)

// NewTestDB opens a migrated sqlite database in a per-test temp directory.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "console.db")
	conn, err := db.Open(path)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})
	return conn
}
