package tesseract

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	reBoxNoise   = regexp.MustCompile(`(?m)^\s*[_\-]{3,}\s*$`)
)

// normalizeText collapses noisy whitespace and strips ruled-line artifacts.
// Conservative: keeps line breaks; collapses >2 newlines into a single blank line.
func normalizeText(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reBoxNoise.ReplaceAllString(s, "")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

var (
	reDate   = regexp.MustCompile(`\b(20\d{2}[-./]\d{2}[-./]\d{2}|\d{2}[-./]\d{2}[-./]20\d{2})\b`)
	reCurr   = regexp.MustCompile(`\b(pln|zł|eur|usd)\b|[$£€]`)
	reAmount = regexp.MustCompile(`\b\d{1,4}[,.]\d{2}\b`)
)

// heuristicConfidence scores text by receipt-shaped content when the engine
// reports no confidence of its own (embedded PDF text layers).
func heuristicConfidence(txt string) float64 {
	txtL := strings.ToLower(txt)
	score := 0.5 // base: a text layer beats raster OCR
	if reDate.MatchString(txtL) {
		score += 0.15
	}
	if reCurr.MatchString(txtL) {
		score += 0.15
	}
	if reAmount.MatchString(txtL) {
		score += 0.1
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
