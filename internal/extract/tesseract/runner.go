package tesseract

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"time"
)

// stderrLogCap bounds how much tool stderr lands in a log record.
const stderrLogCap = 8 << 10

// Runner shells out to the OCR tool chain. Tests stub it to avoid needing
// tesseract and poppler on the machine.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct {
	logger *slog.Logger
}

func (r execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	took := time.Since(start)

	if err != nil {
		r.logger.Warn("ocr.exec.failed",
			"tool", name,
			"args", args,
			"took_ms", took.Milliseconds(),
			"error", err,
			"stderr", clip(stderr.String(), stderrLogCap),
		)
	} else {
		r.logger.Debug("ocr.exec.ok",
			"tool", name,
			"took_ms", took.Milliseconds(),
			"stdout_bytes", stdout.Len(),
		)
	}
	return stdout.Bytes(), stderr.Bytes(), err
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
