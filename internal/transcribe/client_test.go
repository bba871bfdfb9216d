package transcribe

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func transcriptionText(t *testing.T, people string) string {
	t.Helper()

	resp := map[string]any{
		"candidates": []map[string]any{{
			"content": map[string]any{
				"parts": []map[string]any{{"text": people}},
			},
		}},
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	return string(data)
}

func TestTranscribePhoto(t *testing.T) {
	photo := []byte{0xff, 0xd8, 0xff, 0xe0, 0x01, 0x02}

	var gotPath, gotQuery string

	var gotReq generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_, _ = w.Write([]byte(transcriptionText(t,
			`{"people":[{"name":"Marie Dupont","birthDate":"04/02/1910","birthPlace":"Lyon 69000","deathDate":"12/12/1999","deathPlace":"","epitaph":"À notre mère"}]}`)))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL), WithModel("gemini-3-flash-preview"))

	people, err := c.TranscribePhoto(context.Background(), photo)
	require.NoError(t, err)
	require.Len(t, people, 1)
	require.Equal(t, "Marie Dupont", people[0].Name)
	require.Equal(t, "Lyon 69000", people[0].BirthPlace)
	require.Equal(t, "À notre mère", people[0].Epitaph)

	require.Equal(t, "/v1beta/models/gemini-3-flash-preview:generateContent", gotPath)
	require.Equal(t, "key=test-key", gotQuery)

	// The photo travels inline, base64-encoded, followed by the prompt.
	require.Len(t, gotReq.Contents, 1)
	parts := gotReq.Contents[0].Parts
	require.Len(t, parts, 2)
	require.NotNil(t, parts[0].InlineData)
	require.Equal(t, "image/jpeg", parts[0].InlineData.MimeType)
	require.Equal(t, base64.StdEncoding.EncodeToString(photo), parts[0].InlineData.Data)
	require.True(t, strings.Contains(parts[1].Text, "pierre tombale"))

	require.Equal(t, "application/json", gotReq.GenerationConfig.ResponseMimeType)
}

func TestTranscribePhoto_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(transcriptionText(t, `{"people":[]}`)))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))

	people, err := c.TranscribePhoto(context.Background(), []byte{0x01})
	require.NoError(t, err)
	require.Empty(t, people)
}

func TestTranscribePhoto_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"API key not valid"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient("bad-key", WithBaseURL(srv.URL))

	_, err := c.TranscribePhoto(context.Background(), []byte{0x01})
	require.ErrorContains(t, err, "400")
}

func TestTranscribePhoto_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))

	_, err := c.TranscribePhoto(context.Background(), []byte{0x01})
	require.ErrorContains(t, err, "no candidates")
}

func TestTranscribePhoto_MalformedTranscription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(transcriptionText(t, `not json at all`)))
	}))
	defer srv.Close()

	c := NewClient("test-key", WithBaseURL(srv.URL))

	_, err := c.TranscribePhoto(context.Background(), []byte{0x01})
	require.ErrorContains(t, err, "parse transcription")
}
