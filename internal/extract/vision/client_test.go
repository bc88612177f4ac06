package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/codemarcinu/pantry-tracker/constants"
	"github.com/codemarcinu/pantry-tracker/internal/extract"
)

func writeTempImage(t *testing.T) string {
	t.Helper()
	// A real decoder never sees the bytes; only the data URL encoding does.
	path := filepath.Join(t.TempDir(), "receipt.jpg")
	if err := os.WriteFile(path, []byte{0xFF, 0xD8, 0xFF, 0xE0}, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func chatResponse(content string) []byte {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return b
}

func TestClientExtract(t *testing.T) {
	path := writeTempImage(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write(chatResponse(`{"lines":[{"text":"LIDL","confidence":0.99},{"text":"SUMA PLN 3,58","confidence":0.95}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	res, err := c.Extract(context.Background(), extract.FileMeta{Path: path, Format: constants.IMAGE})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if res.Failed() {
		t.Fatalf("Extract() failure = %+v", res.Failure)
	}
	if len(res.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(res.Lines))
	}
	if res.Lines[0].Text != "LIDL" || res.Lines[1].Confidence != 0.95 {
		t.Errorf("unexpected lines: %+v", res.Lines)
	}
	if res.Meta.Engine != "vision-teacher" {
		t.Errorf("engine = %q", res.Meta.Engine)
	}
}

func TestClientExtractSchemaFailure(t *testing.T) {
	path := writeTempImage(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(chatResponse(`{"rows":["not the contract"]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	res, err := c.Extract(context.Background(), extract.FileMeta{Path: path, Format: constants.IMAGE})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !res.Failed() {
		t.Fatal("expected failure for schema-invalid payload")
	}
	if res.Failure.Reason != extract.ReasonEngineUnavailable {
		t.Errorf("reason = %q", res.Failure.Reason)
	}
}

func TestClientExtractProviderError(t *testing.T) {
	path := writeTempImage(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
	res, err := c.Extract(context.Background(), extract.FileMeta{Path: path, Format: constants.IMAGE})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !res.Failed() || res.Failure.Reason != extract.ReasonEngineUnavailable {
		t.Fatalf("failure = %+v", res.Failure)
	}
}

func TestClientExtractUnsupportedFile(t *testing.T) {
	c := NewClient(Config{APIKey: "k"}, nil)
	res, err := c.Extract(context.Background(), extract.FileMeta{Path: "notes.txt", Format: constants.IMAGE})
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if !res.Failed() || res.Failure.Reason != extract.ReasonUnsupportedFormat {
		t.Fatalf("failure = %+v", res.Failure)
	}
}
