package tesseract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/codemarcinu/pantry-tracker/internal/extract"
)

// extractPDF prefers the embedded text layer; scanned PDFs fall back to
// rasterize-then-OCR.
func (e *Engine) extractPDF(ctx context.Context, path string) extract.Result {
	text, pages, warns, err := e.pdfToText(ctx, path)
	if err != nil {
		return extract.Result{
			Meta:    extract.Meta{PageCount: pages, Warnings: warns},
			Failure: failureFor(ctx, err, "pdftotext: "+err.Error()),
		}
	}

	text = normalizeText(text)
	if strings.TrimSpace(text) != "" {
		// Embedded text carries no engine confidence; it is as good as the
		// producing application, so score it by receipt-shaped content.
		conf := heuristicConfidence(text)
		return extract.Result{
			Lines: extract.LinesFromText(text, conf),
			Meta:  extract.Meta{PageCount: pages, DPI: e.cfg.DPI, Warnings: warns},
		}
	}

	return e.pdfToOCR(ctx, path)
}

func (e *Engine) pdfToText(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}
	text = string(out)
	// A form-feed \f is used as page separator by default
	pages = 1 + strings.Count(text, "\f")
	return text, pages, nil, nil
}

func (e *Engine) pdfToOCR(ctx context.Context, path string) extract.Result {
	tmpDir, err := os.MkdirTemp("", "pt-pp-*")
	if err != nil {
		return extract.Result{Failure: failureFor(ctx, err, err.Error())}
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			e.logger.Warn("ocr.pdf.tmp_cleanup_failed", "dir", tmpDir, "error", rmErr)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return extract.Result{
			Meta:    extract.Meta{Warnings: []string{string(errb)}},
			Failure: failureFor(ctx, err, "pdftoppm: "+err.Error()),
		}
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return extract.Result{Failure: &extract.Failure{
			Reason: extract.ReasonEngineUnavailable,
			Detail: "pdftoppm produced no images",
		}}
	}

	var lines []extract.Line
	var warns []string
	for _, img := range matches {
		pageLines, w, err := e.tesseractLines(ctx, img)
		warns = append(warns, w...)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		lines = append(lines, pageLines...)
	}
	return extract.Result{
		Lines: lines,
		Meta:  extract.Meta{PageCount: len(matches), DPI: e.cfg.DPI, Warnings: warns},
	}
}
