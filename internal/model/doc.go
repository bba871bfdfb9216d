// Package model defines the data structures used throughout stele.
//
// This package contains the core domain models that represent the survey
// data. These models are shared by the store, sync, export and CLI layers.
//
// # GraveRecord
//
// The [GraveRecord] struct represents one documented grave marker:
//
//	type GraveRecord struct {
//	    ID          string    // Unique identifier (UUID)
//	    SteleNumber int       // Monotonic display number, never reused
//	    AisleNumber string    // Free-text location label
//	    Condition   Condition // Physical state of the marker
//	    PhotoURL    string    // Reference to the marker photo
//	    People      []Person  // Individuals named on the marker, reading order
//	    Timestamp   time.Time // When the record was captured
//	    IsSynced    bool      // Whether the record reached the collector
//	    Lat, Lng    *float64  // Optional GPS coordinates
//	}
//
// # Config
//
// The [Config] struct holds application configuration:
//
//	type Config struct {
//	    WebhookURL      string // Collector endpoint (Google Apps Script web app)
//	    TranscribeModel string // Captioning model for photo transcription
//	}
package model
