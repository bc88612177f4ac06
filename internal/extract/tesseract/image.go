package tesseract

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/codemarcinu/pantry-tracker/internal/extract"
)

func (e *Engine) extractImage(ctx context.Context, path string) extract.Result {
	lines, warns, err := e.tesseractLines(ctx, path)
	if err != nil {
		return extract.Result{
			Meta:    extract.Meta{Warnings: warns},
			Failure: failureFor(ctx, err, "tesseract: "+err.Error()),
		}
	}
	dpi, dpiWarns := e.probeDPI(ctx, path)
	warns = append(warns, dpiWarns...)
	return extract.Result{
		Lines: lines,
		Meta:  extract.Meta{PageCount: 1, DPI: dpi, Warnings: warns},
	}
}

// tesseractLines runs tesseract in TSV mode and groups words into lines,
// each carrying the mean word confidence in 0..1.
func (e *Engine) tesseractLines(ctx context.Context, path string) ([]extract.Line, []string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return nil, []string{string(errb)}, fmt.Errorf("tesseract TSV: %w", err)
	}
	return parseTSVLines(string(out)), nil, nil
}

// parseTSVLines turns tesseract TSV output into per-line text+confidence.
// TSV columns: level page block par line word left top width height conf text.
func parseTSVLines(tsv string) []extract.Line {
	type lineKey struct{ page, block, par, line string }

	var order []lineKey
	words := map[lineKey][]string{}
	confSum := map[lineKey]float64{}
	confN := map[lineKey]int{}

	rows := strings.Split(tsv, "\n")
	for i, row := range rows {
		if i == 0 || row == "" {
			continue // header
		}
		cols := strings.Split(row, "\t")
		if len(cols) < 12 {
			continue
		}
		text := strings.TrimSpace(cols[11])
		if text == "" {
			continue
		}
		conf, err := strconv.ParseFloat(cols[10], 64)
		if err != nil || conf < 0 {
			continue
		}
		k := lineKey{cols[1], cols[2], cols[3], cols[4]}
		if _, seen := words[k]; !seen {
			order = append(order, k)
		}
		words[k] = append(words[k], text)
		confSum[k] += conf
		confN[k]++
	}

	lines := make([]extract.Line, 0, len(order))
	for _, k := range order {
		text := normalizeText(strings.Join(words[k], " "))
		if text == "" {
			continue
		}
		lines = append(lines, extract.Line{
			Text:       text,
			Confidence: confSum[k] / float64(confN[k]) / 100.0,
		})
	}
	return lines
}

// probeDPI reads the image's horizontal resolution with ImageMagick's
// identify. When the tool is missing or the density is unparseable the DPI
// stays unknown and the quality gate falls back to confidence alone.
func (e *Engine) probeDPI(ctx context.Context, path string) (int, []string) {
	out, _, err := e.runner.Run(ctx, e.cfg.Identify, "-format", "%x", path)
	if err != nil {
		return 0, nil
	}
	fields := strings.Fields(string(out))
	if len(fields) == 0 {
		return 0, nil
	}
	dpi, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || dpi <= 0 {
		return 0, []string{"identify returned unparseable density: " + string(out)}
	}
	return int(dpi), nil
}
