//go:build !sqlite

package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/stele/internal/model"
	"github.com/inovacc/stele/internal/params"
	"go.etcd.io/bbolt"
)

const (
	boltBucketRegistry = "registry" // key: "records" -> collection JSON
	boltBucketMeta     = "meta"     // key: "stele_counter" -> decimal string
	boltBucketConfig   = "config"   // key: "config" -> Config JSON
)

type Bolt struct {
	storage *bbolt.DB
}

// NewBolt creates a new Bolt database at the specified path.
func NewBolt(path string) (*Bolt, error) {
	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketRegistry)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketMeta)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketConfig)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

func initDB() (Store, error) {
	return NewBolt(filepath.Join(params.AppdataDir, "stele.bolt"))
}

func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

func (b *Bolt) Load() ([]model.GraveRecord, error) {
	var records []model.GraveRecord

	err := b.storage.View(func(tx *bbolt.Tx) error {
		registry := tx.Bucket([]byte(boltBucketRegistry))
		records = decodeRecords(registry.Get([]byte(keyRecords)))

		return nil
	})

	return records, err
}

func (b *Bolt) Append(rec model.GraveRecord) (model.GraveRecord, error) {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	rec.IsSynced = false

	// Counter increment and collection write share one transaction: a
	// failed append spends no stele number.
	err := b.storage.Update(func(tx *bbolt.Tx) error {
		meta := tx.Bucket([]byte(boltBucketMeta))

		current, _ := strconv.Atoi(string(meta.Get([]byte(keyCounter))))
		next := current + 1

		if err := meta.Put([]byte(keyCounter), []byte(strconv.Itoa(next))); err != nil {
			return err
		}

		rec.SteleNumber = next

		registry := tx.Bucket([]byte(boltBucketRegistry))
		records := decodeRecords(registry.Get([]byte(keyRecords)))
		records = append([]model.GraveRecord{rec}, records...)

		data, err := encodeRecords(records)
		if err != nil {
			return err
		}

		return registry.Put([]byte(keyRecords), data)
	})
	if err != nil {
		return model.GraveRecord{}, err
	}

	return rec, nil
}

func (b *Bolt) Update(rec model.GraveRecord) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		registry := tx.Bucket([]byte(boltBucketRegistry))
		records := decodeRecords(registry.Get([]byte(keyRecords)))

		if !replaceRecord(records, rec) {
			return ErrNotFound
		}

		data, err := encodeRecords(records)
		if err != nil {
			return err
		}

		return registry.Put([]byte(keyRecords), data)
	})
}

func (b *Bolt) Delete(id string) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		registry := tx.Bucket([]byte(boltBucketRegistry))
		records := decodeRecords(registry.Get([]byte(keyRecords)))
		records = removeRecord(records, id)

		data, err := encodeRecords(records)
		if err != nil {
			return err
		}

		return registry.Put([]byte(keyRecords), data)
	})
}

func (b *Bolt) Unsynced() ([]model.GraveRecord, error) {
	records, err := b.Load()
	if err != nil {
		return nil, err
	}

	return filterUnsynced(records), nil
}

func (b *Bolt) MarkSynced(ids []string) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		registry := tx.Bucket([]byte(boltBucketRegistry))
		records := decodeRecords(registry.Get([]byte(keyRecords)))

		applySynced(records, ids)

		data, err := encodeRecords(records)
		if err != nil {
			return err
		}

		return registry.Put([]byte(keyRecords), data)
	})
}

func (b *Bolt) GetConfig() (*model.Config, error) {
	var cfg *model.Config

	err := b.storage.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketConfig))
		v := bucket.Get([]byte(keyConfig))

		if v == nil {
			// Return default config if not found
			defaultCfg := model.DefaultConfig()
			cfg = &defaultCfg

			return nil
		}

		var c model.Config
		if err := json.Unmarshal(v, &c); err != nil {
			return err
		}

		cfg = &c

		return nil
	})

	return cfg, err
}

func (b *Bolt) SaveConfig(cfg *model.Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketConfig))

		return bucket.Put([]byte(keyConfig), data)
	})
}
