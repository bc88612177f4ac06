package parsing

import (
	"regexp"
	"strings"
)

// LineClass buckets raw receipt lines before any grammar runs.
type LineClass int

const (
	ClassProductCandidate LineClass = iota
	ClassTax
	ClassSummary
	ClassNoise
)

var (
	// Tax rows: "PTU A 25,39", "Kwota A 23,00% 4,75", "PODATEK ...".
	taxLineRe   = regexp.MustCompile(`(?i)^\s*(PTU|KWOTA)\s+[A-G]\b`)
	taxRateRe   = regexp.MustCompile(`(?i)\b\d{1,2}[.,]\d{2}\s*%`)
	taxHeaderRe = regexp.MustCompile(`(?i)^\s*(PODATEK|SPRZEDA[ŻZ]\s+OPODATK)`)

	// Section markers that end the product list.
	summaryRe = regexp.MustCompile(`(?i)^\s*(SUMA|RAZEM|SUBTOTAL|TOTAL|DO\s+ZAP[ŁL]ATY)\b`)

	// Payment and footer noise below the summary block.
	footerRe = regexp.MustCompile(`(?i)^\s*(GOT[ÓO]WKA|KARTA|RESZTA|P[ŁL]ATNO[ŚS][ĆC]|NR\s+SYS|BDO|PARAGON\s+FISKALNY)\b`)

	priceShapeRe = regexp.MustCompile(`\d+[.,]\d{2}`)
)

// Classify assigns a raw line to a bucket. Tax and summary detection runs
// before any price grammar is consulted: a tax row like "PTU A 25,39" is a
// structurally valid product line, and classifying it after grammar matching
// would turn tax amounts into phantom products.
func Classify(line string) LineClass {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ClassNoise
	}
	if taxLineRe.MatchString(trimmed) || taxHeaderRe.MatchString(trimmed) {
		return ClassTax
	}
	if taxRateRe.MatchString(trimmed) && !hasLowerLetters(trimmed) {
		// Uppercase-only rate lines are part of the tax block even without
		// the PTU/Kwota keyword.
		return ClassTax
	}
	if summaryRe.MatchString(trimmed) {
		return ClassSummary
	}
	if footerRe.MatchString(trimmed) {
		return ClassNoise
	}
	return ClassProductCandidate
}

// EndsProductSection reports whether the line starts the tax/summary block.
// Everything after this boundary is never a product, whatever it looks like.
func EndsProductSection(line string) bool {
	c := Classify(line)
	return c == ClassTax || c == ClassSummary
}

func hasLowerLetters(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' || strings.ContainsRune("ąćęłńóśźż", r) {
			return true
		}
	}
	return false
}
