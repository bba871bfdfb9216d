//go:build sqlite

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/stele/internal/model"
	"github.com/inovacc/stele/internal/params"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLite stores the same three logical keys as the Bolt backend in a
// single kv table, so the full-replacement persistence model is identical
// across backends.
type SQLite struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite store with the given database path.
func NewSQLite(dbPath string) (*SQLite, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite doesn't handle multiple writers well
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value BLOB NOT NULL)`); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func initDB() (Store, error) {
	return NewSQLite(filepath.Join(params.AppdataDir, "stele.db"))
}

func (s *SQLite) Ping() error {
	return s.db.Ping()
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// get returns nil for a missing key; any other read failure is surfaced
// so callers inside a transaction abort instead of committing over a
// blob they never saw.
func (s *SQLite) get(q interface {
	QueryRow(query string, args ...any) *sql.Row
}, key string,
) ([]byte, error) {
	var value []byte
	if err := q.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return value, nil
}

func (s *SQLite) put(e interface {
	Exec(query string, args ...any) (sql.Result, error)
}, key string, value []byte,
) error {
	_, err := e.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)

	return err
}

func (s *SQLite) Load() ([]model.GraveRecord, error) {
	data, err := s.get(s.db, keyRecords)
	if err != nil {
		return nil, err
	}

	return decodeRecords(data), nil
}

func (s *SQLite) Append(rec model.GraveRecord) (model.GraveRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	rec.IsSynced = false

	// Counter increment and collection write share one transaction: a
	// failed append spends no stele number.
	tx, err := s.db.Begin()
	if err != nil {
		return model.GraveRecord{}, err
	}

	defer func() { _ = tx.Rollback() }()

	raw, err := s.get(tx, keyCounter)
	if err != nil {
		return model.GraveRecord{}, err
	}

	current, _ := strconv.Atoi(string(raw))
	next := current + 1

	if err := s.put(tx, keyCounter, []byte(strconv.Itoa(next))); err != nil {
		return model.GraveRecord{}, err
	}

	rec.SteleNumber = next

	blob, err := s.get(tx, keyRecords)
	if err != nil {
		return model.GraveRecord{}, err
	}

	records := decodeRecords(blob)
	records = append([]model.GraveRecord{rec}, records...)

	data, err := encodeRecords(records)
	if err != nil {
		return model.GraveRecord{}, err
	}

	if err := s.put(tx, keyRecords, data); err != nil {
		return model.GraveRecord{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.GraveRecord{}, err
	}

	return rec, nil
}

func (s *SQLite) mutate(fn func(records []model.GraveRecord) ([]model.GraveRecord, error)) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	defer func() { _ = tx.Rollback() }()

	blob, err := s.get(tx, keyRecords)
	if err != nil {
		return err
	}

	records, err := fn(decodeRecords(blob))
	if err != nil {
		return err
	}

	data, err := encodeRecords(records)
	if err != nil {
		return err
	}

	if err := s.put(tx, keyRecords, data); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLite) Update(rec model.GraveRecord) error {
	return s.mutate(func(records []model.GraveRecord) ([]model.GraveRecord, error) {
		if !replaceRecord(records, rec) {
			return nil, ErrNotFound
		}

		return records, nil
	})
}

func (s *SQLite) Delete(id string) error {
	return s.mutate(func(records []model.GraveRecord) ([]model.GraveRecord, error) {
		return removeRecord(records, id), nil
	})
}

func (s *SQLite) Unsynced() ([]model.GraveRecord, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}

	return filterUnsynced(records), nil
}

func (s *SQLite) MarkSynced(ids []string) error {
	return s.mutate(func(records []model.GraveRecord) ([]model.GraveRecord, error) {
		applySynced(records, ids)

		return records, nil
	})
}

func (s *SQLite) GetConfig() (*model.Config, error) {
	v, err := s.get(s.db, keyConfig)
	if err != nil {
		return nil, err
	}

	if v == nil {
		// Return default config if not found
		defaultCfg := model.DefaultConfig()

		return &defaultCfg, nil
	}

	var c model.Config
	if err := json.Unmarshal(v, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *SQLite) SaveConfig(cfg *model.Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	return s.put(s.db, keyConfig, data)
}
