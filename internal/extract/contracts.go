package extract

import (
	"context"
	"strings"
	"time"
)

// Line is one recognized text line with the engine's confidence in [0,1].
type Line struct {
	Text       string
	Confidence float64
}

// Meta describes the processed file as seen by the engine.
type Meta struct {
	DPI       int
	PageCount int
	Engine    string
	Duration  time.Duration
	Warnings  []string
}

// FailureReason is a stable machine-readable code for a backend failure.
type FailureReason string

const (
	ReasonUnsupportedFormat FailureReason = "unsupported_format"
	ReasonTimeout           FailureReason = "timeout"
	ReasonEngineUnavailable FailureReason = "engine_unavailable"
)

// Failure reports that a backend could not process a file. Backends return
// a Failure value instead of an error for anything the caller can act on;
// the error return is reserved for programmer mistakes.
type Failure struct {
	Reason FailureReason
	Detail string
}

// Result is the output of one extraction attempt.
type Result struct {
	Lines   []Line
	Meta    Meta
	Failure *Failure
}

// Failed reports whether the backend declined or failed to process the file.
func (r Result) Failed() bool { return r.Failure != nil }

// MeanConfidence returns the mean per-line confidence, 0 for empty output.
func (r Result) MeanConfidence() float64 {
	if len(r.Lines) == 0 {
		return 0
	}
	var sum float64
	for _, l := range r.Lines {
		sum += l.Confidence
	}
	return sum / float64(len(r.Lines))
}

// Text joins all lines with newlines.
func (r Result) Text() string {
	parts := make([]string, len(r.Lines))
	for i, l := range r.Lines {
		parts[i] = l.Text
	}
	return strings.Join(parts, "\n")
}

// FileMeta identifies the file handed to a backend.
type FileMeta struct {
	Path   string
	Format string // constants.PDF | constants.IMAGE
	DPI    int    // 0 when unknown before extraction
}

// Backend is a pluggable text-extraction engine: file in, lines out.
type Backend interface {
	Name() string
	Extract(ctx context.Context, file FileMeta) (Result, error)
}

// LinesFromText splits engine plain text into Lines with a uniform
// confidence, dropping blank lines.
func LinesFromText(text string, confidence float64) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, Line{Text: l, Confidence: confidence})
	}
	return lines
}
