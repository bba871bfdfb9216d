//go:build !sqlite

package store

import (
	"path/filepath"
	"testing"

	"go.etcd.io/bbolt"
)

// newTestStore creates a Bolt store in a temp dir and returns a reopen
// function that simulates a process restart against the same file.
func newTestStore(t *testing.T) (Store, func() Store) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.storage")

	open := func() Store {
		db, err := NewBolt(dbPath)
		if err != nil {
			t.Fatalf("failed to create test database: %v", err)
		}

		t.Cleanup(func() { _ = db.Close() })

		return db
	}

	db := open()

	reopen := func() Store {
		if err := db.(*Bolt).Close(); err != nil {
			t.Fatalf("failed to close database: %v", err)
		}

		db = open()

		return db
	}

	return db, reopen
}

func TestBolt_Ping(t *testing.T) {
	db, _ := newTestStore(t)

	if err := db.Ping(); err != nil {
		t.Errorf("Ping() error = %v, want nil", err)
	}
}

func TestBolt_LoadCorruptBlob(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.storage")

	db, err := NewBolt(dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	defer func() { _ = db.Close() }()

	if _, err := db.Append(sampleRecord("A")); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	// Scribble over the collection blob behind the store's back.
	if err := db.storage.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketRegistry)).Put([]byte(keyRecords), []byte("{not json"))
	}); err != nil {
		t.Fatalf("corrupting blob: %v", err)
	}

	records, err := db.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want soft failure", err)
	}

	if len(records) != 0 {
		t.Errorf("Load() after corruption = %d records, want 0", len(records))
	}

	// Numbering lives under a separate key and must survive the corruption.
	rec, err := db.Append(sampleRecord("B"))
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	if rec.SteleNumber != 2 {
		t.Errorf("SteleNumber after corruption = %d, want 2", rec.SteleNumber)
	}
}
