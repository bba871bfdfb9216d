//go:build sqlite

package store

import (
	"path/filepath"
	"testing"
)

// newTestStore creates a SQLite store in a temp dir and returns a reopen
// function that simulates a process restart against the same file.
func newTestStore(t *testing.T) (Store, func() Store) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	open := func() Store {
		db, err := NewSQLite(dbPath)
		if err != nil {
			t.Fatalf("failed to create test database: %v", err)
		}

		t.Cleanup(func() { _ = db.Close() })

		return db
	}

	db := open()

	reopen := func() Store {
		if err := db.(*SQLite).Close(); err != nil {
			t.Fatalf("failed to close database: %v", err)
		}

		db = open()

		return db
	}

	return db, reopen
}

func TestSQLite_Ping(t *testing.T) {
	db, _ := newTestStore(t)

	if err := db.Ping(); err != nil {
		t.Errorf("Ping() error = %v, want nil", err)
	}
}

// A missing key reads as empty, but any other read failure must surface
// so mutating transactions abort instead of committing over a blob they
// never saw.
func TestSQLite_ReadFailureSurfacesError(t *testing.T) {
	db, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	v, err := db.get(db.db, keyCounter)
	if err != nil {
		t.Fatalf("get() on missing key error = %v, want nil", err)
	}

	if v != nil {
		t.Errorf("get() on missing key = %q, want nil", v)
	}

	if _, err := db.db.Exec(`DROP TABLE kv`); err != nil {
		t.Fatalf("failed to drop table: %v", err)
	}

	if _, err := db.get(db.db, keyRecords); err == nil {
		t.Error("get() after schema loss returned nil error")
	}

	if err := db.Delete("any-id"); err == nil {
		t.Error("Delete() after schema loss returned nil error")
	}

	if err := db.MarkSynced([]string{"any-id"}); err == nil {
		t.Error("MarkSynced() after schema loss returned nil error")
	}
}
