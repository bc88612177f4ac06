package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/codemarcinu/pantry-tracker/constants"
	"github.com/codemarcinu/pantry-tracker/internal/extract"
	"github.com/codemarcinu/pantry-tracker/internal/extract/tesseract"
)

// runextract runs the local extraction engine against one file and dumps
// the transcript with per-line confidence. Debug tool; no database.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runextract <receipt-file>")
		os.Exit(2)
	}
	path := os.Args[1]
	format := constants.MapExtToFormat(filepath.Ext(path))
	if format == "" {
		logger.Error("unsupported file format", "path", path)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	engine := tesseract.NewEngine(tesseract.Config{
		TessdataDir: os.Getenv("TESSDATA_PREFIX"),
	}, logger)

	start := time.Now()
	res, err := engine.Extract(ctx, extract.FileMeta{Path: path, Format: format})
	dur := time.Since(start)
	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}
	if res.Failed() {
		logger.Error("extraction failed",
			"path", path,
			"reason", string(res.Failure.Reason),
			"detail", res.Failure.Detail,
		)
		os.Exit(1)
	}

	logger.Info("extraction OK",
		"path", path,
		"engine", res.Meta.Engine,
		"lines", len(res.Lines),
		"mean_confidence", res.MeanConfidence(),
		"dpi", res.Meta.DPI,
		"duration_ms", dur.Milliseconds(),
	)
	for _, line := range res.Lines {
		logger.Info("line", "confidence", line.Confidence, "text", line.Text)
	}
}
