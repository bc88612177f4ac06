// Package matching resolves parsed product names to catalog products:
// normalization, token-set fuzzy scoring and ghost creation for misses.
package matching

import (
	"regexp"
	"sort"
	"strings"
)

// Normalizer canonicalizes product names before comparison. The
// substitution table handles store abbreviations and recurring OCR quirks
// that survive correction ("maslo ekstr" -> "maslo ekstra").
type Normalizer struct {
	substitutions map[string]string
}

// defaultSubstitutions covers common Polish receipt abbreviations.
var defaultSubstitutions = map[string]string{
	"sok pomar": "sok pomaranczowy",
	"jog nat":   "jogurt naturalny",
	"czek":      "czekolada",
	"pom":       "pomidor",
}

var (
	unitSuffixRe = regexp.MustCompile(`(?i)\b\d+(?:[.,]\d+)?\s*(?:kg|g|l|ml|szt|opak|sz|x)\b\.?`)
	bareUnitRe   = regexp.MustCompile(`(?i)\b(?:kg|g|l|ml|szt|opak)\b\.?`)
	percentRe    = regexp.MustCompile(`\d+(?:[.,]\d+)?\s*%`)
	punctRe      = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	bareNumberRe = regexp.MustCompile(`\b\d+\b`)
	spacesRe     = regexp.MustCompile(`\s+`)
)

func NewNormalizer(substitutions map[string]string) *Normalizer {
	if substitutions == nil {
		substitutions = defaultSubstitutions
	}
	return &Normalizer{substitutions: substitutions}
}

// Normalize lowercases, strips units, fat percentages and punctuation,
// collapses whitespace, then applies the substitution table on the result.
func (n *Normalizer) Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = foldPolish(s)
	s = percentRe.ReplaceAllString(s, " ")
	s = unitSuffixRe.ReplaceAllString(s, " ")
	s = bareUnitRe.ReplaceAllString(s, " ")
	s = punctRe.ReplaceAllString(s, " ")
	// Sizes and counts left over after unit stripping carry no identity.
	s = bareNumberRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))

	if sub, ok := n.substitutions[s]; ok {
		return sub
	}
	return s
}

// TokenSet returns the sorted unique tokens of a normalized name.
func TokenSet(normalized string) []string {
	fields := strings.Fields(normalized)
	seen := make(map[string]bool, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

var polishFold = strings.NewReplacer(
	"ą", "a", "ć", "c", "ę", "e", "ł", "l", "ń", "n",
	"ó", "o", "ś", "s", "ź", "z", "ż", "z",
)

// foldPolish maps Polish diacritics to ASCII so an OCR pass that dropped
// them still compares equal.
func foldPolish(s string) string {
	return polishFold.Replace(s)
}
