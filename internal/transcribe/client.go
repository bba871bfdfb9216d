// Package transcribe extracts the inscribed names, dates and epitaphs from
// a marker photo through the Gemini captioning API.
package transcribe

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/inovacc/stele/internal/model"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// prompt asks for one entry per deceased, empty fields when illegible. It
// is kept in French to match the inscriptions being read.
const prompt = "Analyse cette photo de pierre tombale. Il peut y avoir un ou plusieurs défunts. " +
	"Extrais une liste d'objets JSON contenant pour chaque personne : le nom complet, la date de naissance, " +
	"le lieu de naissance (avec code postal si présent), la date de décès, le lieu de décès (avec code postal si présent), " +
	"et l'épitaphe. Si une information est illisible ou absente, laisse le champ vide."

// Client calls the generateContent endpoint with an inline photo.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithBaseURL overrides the API host.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithModel selects the captioning model.
func WithModel(m string) Option {
	return func(c *Client) {
		c.model = m
	}
}

// NewClient creates a transcription client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		baseURL: defaultBaseURL,
		model:   model.DefaultTranscribeModel,
		apiKey:  apiKey,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type part struct {
	InlineData *inlineData `json:"inline_data,omitempty"`
	Text       string      `json:"text,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"response_mime_type"`
	ResponseSchema   map[string]any `json:"response_schema"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// personSchema constrains the model output to the transcription shape.
func personSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"people": map[string]any{
				"type": "ARRAY",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"name":       map[string]any{"type": "STRING"},
						"birthDate":  map[string]any{"type": "STRING"},
						"birthPlace": map[string]any{"type": "STRING"},
						"deathDate":  map[string]any{"type": "STRING"},
						"deathPlace": map[string]any{"type": "STRING"},
						"epitaph":    map[string]any{"type": "STRING"},
					},
					"required": []string{"name", "birthDate", "birthPlace", "deathDate", "deathPlace", "epitaph"},
				},
			},
		},
		"required": []string{"people"},
	}
}

// TranscribePhoto submits a JPEG and returns one Person per deceased found
// on the marker, in reading order.
func (c *Client) TranscribePhoto(ctx context.Context, jpeg []byte) ([]model.Person, error) {
	reqBody := generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{
					MimeType: "image/jpeg",
					Data:     base64.StdEncoding.EncodeToString(jpeg),
				}},
				{Text: prompt},
			},
		}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   personSchema(),
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call captioning endpoint: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)

		return nil, fmt.Errorf("captioning endpoint returned %d: %s", resp.StatusCode, string(respBody))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("captioning endpoint returned no candidates")
	}

	var transcription struct {
		People []model.Person `json:"people"`
	}

	if err := json.Unmarshal([]byte(result.Candidates[0].Content.Parts[0].Text), &transcription); err != nil {
		return nil, fmt.Errorf("failed to parse transcription: %w", err)
	}

	return transcription.People, nil
}
