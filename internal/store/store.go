package store

import (
	"encoding/json"
	"errors"

	"github.com/inovacc/stele/internal/model"
)

// ErrNotFound is returned when an operation targets a record id that is not
// in the registry.
var ErrNotFound = errors.New("record not found")

// Store defines the persistence operations used by the app.
type Store interface {
	Ping() error
	Close() error

	// Load returns the full collection, newest first. A missing or corrupt
	// collection blob yields an empty collection, never an error.
	Load() ([]model.GraveRecord, error)

	// Append stamps the record with the next stele number, prepends it to
	// the collection and persists both in one transaction. The returned
	// record carries the assigned number and id.
	Append(rec model.GraveRecord) (model.GraveRecord, error)

	// Update replaces the record with the same id by full-field
	// replacement. Returns ErrNotFound if no record has that id.
	Update(rec model.GraveRecord) error

	// Delete removes the record with the given id. Deleting an unknown id
	// is a no-op. The stele counter is not touched.
	Delete(id string) error

	// Unsynced returns the records with IsSynced == false, in collection
	// order.
	Unsynced() ([]model.GraveRecord, error)

	// MarkSynced sets IsSynced on every record whose id is in ids and
	// persists the collection. Unknown ids are ignored; calling it twice
	// with the same set is a no-op the second time.
	MarkSynced(ids []string) error

	GetConfig() (*model.Config, error)
	SaveConfig(cfg *model.Config) error
}

// Logical keys shared by all backends.
const (
	keyRecords = "records"       // full collection, one JSON array blob
	keyCounter = "stele_counter" // decimal string, last assigned number
	keyConfig  = "config"        // Config JSON
)

// Open creates the backend selected at build time, rooted in the
// application data directory.
func Open() (Store, error) {
	return initDB()
}

// decodeRecords unmarshals a collection blob, failing soft: nil, empty or
// corrupt input yields an empty collection.
func decodeRecords(data []byte) []model.GraveRecord {
	if len(data) == 0 {
		return nil
	}

	var records []model.GraveRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}

	return records
}

func encodeRecords(records []model.GraveRecord) ([]byte, error) {
	if records == nil {
		records = []model.GraveRecord{}
	}

	return json.Marshal(records)
}

// replaceRecord swaps the entry matching rec.ID. Reports whether a match
// was found.
func replaceRecord(records []model.GraveRecord, rec model.GraveRecord) bool {
	for i := range records {
		if records[i].ID == rec.ID {
			records[i] = rec

			return true
		}
	}

	return false
}

// removeRecord drops the entry with the given id, if present.
func removeRecord(records []model.GraveRecord, id string) []model.GraveRecord {
	for i := range records {
		if records[i].ID == id {
			return append(records[:i], records[i+1:]...)
		}
	}

	return records
}

func filterUnsynced(records []model.GraveRecord) []model.GraveRecord {
	var out []model.GraveRecord

	for _, r := range records {
		if !r.IsSynced {
			out = append(out, r)
		}
	}

	return out
}

// applySynced flips IsSynced for every record whose id is in ids.
func applySynced(records []model.GraveRecord, ids []string) {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	for i := range records {
		if _, ok := set[records[i].ID]; ok {
			records[i].IsSynced = true
		}
	}
}
