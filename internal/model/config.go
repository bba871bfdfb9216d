package model

// DefaultTranscribeModel is the captioning model used when none is configured.
const DefaultTranscribeModel = "gemini-3-flash-preview"

// Config holds the application configuration
type Config struct {
	// WebhookURL is the collector endpoint for batch sync, typically a
	// Google Apps Script web app deployed with anonymous access
	WebhookURL string `json:"webhook_url"`

	// TranscribeModel is the captioning model used for photo transcription
	TranscribeModel string `json:"transcribe_model"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		WebhookURL:      "",
		TranscribeModel: DefaultTranscribeModel,
	}
}
