// Package tesseract implements the local text-extraction backend on top of
// the tesseract / poppler command line tools.
package tesseract

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/codemarcinu/pantry-tracker/constants"
	"github.com/codemarcinu/pantry-tracker/internal/extract"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Pdftotext string // if empty -> "pdftotext"
	Pdftoppm  string // if empty -> "pdftoppm"
	Pdfinfo   string // if empty -> "pdfinfo"
	Identify  string // if empty -> "identify"

	TesseractLang string // default "pol+eng"
	TessdataDir   string
	DPI           int // rasterization DPI for scanned PDFs, default 300
	MaxPages      int // 0 = no limit

	PSM int // 6 is good for a uniform block of text
	OEM int // 1 = LSTM; 0 = engine default
}

type Engine struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Pdfinfo == "" {
		cfg.Pdfinfo = "pdfinfo"
	}
	if cfg.Identify == "" {
		cfg.Identify = "identify"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "pol+eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Engine{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

func (e *Engine) Name() string { return "tesseract-local" }

// Extract picks a strategy based on the file format. Failures the caller can
// act on come back as extract.Failure values, never as panics or bare errors.
func (e *Engine) Extract(ctx context.Context, file extract.FileMeta) (extract.Result, error) {
	start := time.Now()
	format := file.Format
	if format == "" {
		format = constants.MapExtToFormat(filepath.Ext(file.Path))
	}
	e.logger.Debug("ocr.extract.start", "path", file.Path, "format", format)

	var res extract.Result
	switch format {
	case constants.PDF:
		res = e.extractPDF(ctx, file.Path)
	case constants.IMAGE:
		res = e.extractImage(ctx, file.Path)
	default:
		res = extract.Result{Failure: &extract.Failure{
			Reason: extract.ReasonUnsupportedFormat,
			Detail: "unsupported extension: " + filepath.Ext(file.Path),
		}}
	}

	res.Meta.Engine = e.Name()
	res.Meta.Duration = time.Since(start)
	if res.Meta.DPI == 0 {
		res.Meta.DPI = file.DPI
	}
	if res.Failure != nil {
		e.logger.Warn("ocr.extract.failed",
			"path", file.Path, "reason", res.Failure.Reason, "detail", res.Failure.Detail)
	} else {
		e.logger.Info("ocr.extract.ok",
			"path", file.Path,
			"lines", len(res.Lines),
			"pages", res.Meta.PageCount,
			"mean_confidence", res.MeanConfidence(),
			"duration_ms", res.Meta.Duration.Milliseconds(),
		)
	}
	return res, nil
}

// failureFor maps exec-level errors onto the stable failure taxonomy.
func failureFor(ctx context.Context, err error, detail string) *extract.Failure {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return &extract.Failure{Reason: extract.ReasonTimeout, Detail: detail}
	case errors.Is(err, exec.ErrNotFound):
		return &extract.Failure{Reason: extract.ReasonEngineUnavailable, Detail: detail}
	default:
		return &extract.Failure{Reason: extract.ReasonEngineUnavailable, Detail: detail}
	}
}
