// Package vision implements the teacher text-extraction backend: a hosted
// vision model that transcribes receipt photos. It is the escalation target
// of the quality gate and the ground-truth source for correction mining.
package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/codemarcinu/pantry-tracker/internal/extract"
)

// Config for the vision client.
type Config struct {
	APIKey  string        // if empty, falls back to env VISION_API_KEY
	BaseURL string        // default https://api.openai.com/v1
	Model   string        // e.g., "gpt-4o-mini"
	Timeout time.Duration // http client timeout
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("VISION_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (c *Client) Name() string { return "vision-teacher" }

const transcribePrompt = `Transcribe every line of this retail receipt exactly as printed.
Return ONLY JSON of the form {"lines":[{"text":"...","confidence":0.0}]} where
confidence is your certainty for that line in [0,1]. Preserve line order, do not
merge, translate or reformat lines.`

// Extract sends the file to the vision endpoint and parses the transcription.
// Network and provider failures come back as extract.Failure values.
func (c *Client) Extract(ctx context.Context, file extract.FileMeta) (extract.Result, error) {
	start := time.Now()

	dataURL, err := encodeDataURL(file.Path)
	if err != nil {
		return extract.Result{Failure: &extract.Failure{
			Reason: extract.ReasonUnsupportedFormat,
			Detail: err.Error(),
		}}, nil
	}

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     0.0,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": transcribePrompt},
			{"role": "user", "content": []map[string]any{
				{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
			}},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, status, err := c.post(ctx, endpoint, body)
	if err != nil {
		reason := extract.ReasonEngineUnavailable
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			reason = extract.ReasonTimeout
		}
		c.logger.Error("vision.extract.http_error",
			"path", file.Path, "status", status, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.Result{Failure: &extract.Failure{Reason: reason, Detail: err.Error()}}, nil
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return extract.Result{Failure: &extract.Failure{
			Reason: extract.ReasonEngineUnavailable,
			Detail: fmt.Sprintf("decode provider response: %v", err),
		}}, nil
	}
	if len(cc.Choices) == 0 {
		return extract.Result{Failure: &extract.Failure{
			Reason: extract.ReasonEngineUnavailable,
			Detail: "no choices in provider response",
		}}, nil
	}

	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))
	if err := validateTranscription(content); err != nil {
		c.logger.Error("vision.extract.schema_validation_failed",
			"path", file.Path, "error", err, "content_bytes", len(content))
		return extract.Result{Failure: &extract.Failure{
			Reason: extract.ReasonEngineUnavailable,
			Detail: "transcription failed schema validation: " + err.Error(),
		}}, nil
	}

	var payload struct {
		Lines []struct {
			Text       string  `json:"text"`
			Confidence float64 `json:"confidence"`
		} `json:"lines"`
	}
	if err := json.Unmarshal(content, &payload); err != nil {
		return extract.Result{Failure: &extract.Failure{
			Reason: extract.ReasonEngineUnavailable,
			Detail: "decode transcription: " + err.Error(),
		}}, nil
	}

	lines := make([]extract.Line, 0, len(payload.Lines))
	for _, l := range payload.Lines {
		text := strings.TrimSpace(l.Text)
		if text == "" {
			continue
		}
		lines = append(lines, extract.Line{Text: text, Confidence: l.Confidence})
	}

	c.logger.Info("vision.extract.ok",
		"path", file.Path,
		"lines", len(lines),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return extract.Result{
		Lines: lines,
		Meta: extract.Meta{
			PageCount: 1,
			Engine:    c.Name(),
			Duration:  time.Since(start),
		},
	}, nil
}

// encodeDataURL inlines the file as a base64 data URL for the vision API.
func encodeDataURL(path string) (string, error) {
	mt := mime.TypeByExtension(filepath.Ext(path))
	if !strings.HasPrefix(mt, "image/") && mt != "application/pdf" {
		return "", fmt.Errorf("unsupported media type for vision API: %q", mt)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
