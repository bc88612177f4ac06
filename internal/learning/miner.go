// Package learning mines OCR correction patterns from pairs of weak-engine
// and strong-engine transcripts of the same receipt.
package learning

import (
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

// Candidate is a proposed rewrite extracted from one transcript pair.
type Candidate struct {
	From       string
	To         string
	Confidence float64
}

// minWordSimilarity separates a misread word from a genuinely different
// word. Below this the pair is noise, not an OCR error.
const minWordSimilarity = 0.6

// MineCandidates aligns the two transcripts line by line and extracts
// word-level substitutions where the strong engine disagrees with the weak
// one. Words containing digits are never mined; amounts and quantities are
// off-limits for rewriting.
func MineCandidates(weakText, strongText string) []Candidate {
	weakLines := splitLines(weakText)
	strongLines := splitLines(strongText)

	m := difflib.NewMatcher(weakLines, strongLines)
	var out []Candidate
	for _, op := range m.GetOpCodes() {
		if op.Tag != 'r' {
			continue
		}
		// Only pair up equal-count line replacements; an unequal block
		// means the engines saw different line structure.
		if op.I2-op.I1 != op.J2-op.J1 {
			continue
		}
		for k := 0; k < op.I2-op.I1; k++ {
			out = append(out, mineLine(weakLines[op.I1+k], strongLines[op.J1+k])...)
		}
	}
	return out
}

func mineLine(weak, strong string) []Candidate {
	weakWords := strings.Fields(weak)
	strongWords := strings.Fields(strong)

	m := difflib.NewMatcher(weakWords, strongWords)
	var out []Candidate
	for _, op := range m.GetOpCodes() {
		if op.Tag != 'r' || op.I2-op.I1 != op.J2-op.J1 {
			continue
		}
		for k := 0; k < op.I2-op.I1; k++ {
			w, s := weakWords[op.I1+k], strongWords[op.J1+k]
			if c, ok := wordCandidate(w, s); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

func wordCandidate(weak, strong string) (Candidate, bool) {
	if weak == strong || len(weak) < 2 || len(strong) < 2 {
		return Candidate{}, false
	}
	if hasDigit(weak) || hasDigit(strong) {
		return Candidate{}, false
	}
	sim := wordSimilarity(weak, strong)
	if sim < minWordSimilarity {
		return Candidate{}, false
	}
	return Candidate{From: weak, To: strong, Confidence: sim}, true
}

// wordSimilarity is the rune-level match ratio between two words.
func wordSimilarity(a, b string) float64 {
	m := difflib.NewMatcher(explode(a), explode(b))
	return m.Ratio()
}

func explode(s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}
