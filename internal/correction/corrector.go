// Package correction applies learned OCR fix-up patterns to extracted text
// before parsing. Patterns come from the learning miner; the corrector only
// executes them.
package correction

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/codemarcinu/pantry-tracker/internal/entity"
)

// priceToken matches monetary amounts as printed on receipts. A pattern that
// would rewrite one of these is always skipped: a misread letter is cheap to
// fix, a misread price silently corrupts totals.
var priceToken = regexp.MustCompile(`\d+[.,]\d{2}`)

// Applied records one pattern application for audit and usage counting.
type Applied struct {
	PatternID   string
	From        string
	To          string
	Occurrences int
}

type Corrector struct {
	logger *slog.Logger
}

func NewCorrector(logger *slog.Logger) *Corrector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Corrector{logger: logger}
}

// Apply rewrites text using the active patterns, most confident first.
// Each pattern is applied at most once per run, so a pattern whose output
// contains its own input cannot loop.
func (c *Corrector) Apply(text string, patterns []entity.CorrectionPattern) (string, []Applied) {
	active := make([]entity.CorrectionPattern, 0, len(patterns))
	for _, p := range patterns {
		if p.IsActive && !p.HumanDeactivated {
			active = append(active, p)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Confidence > active[j].Confidence
	})

	var applied []Applied
	for _, p := range active {
		next, n, err := applyOne(text, p)
		if err != nil {
			c.logger.Warn("correction.pattern_invalid",
				"pattern_id", p.ID.String(), "error", err)
			continue
		}
		if n == 0 || next == text {
			continue
		}
		if priceTokensChanged(text, next) {
			c.logger.Debug("correction.pattern_skipped_price_guard",
				"pattern_id", p.ID.String(), "from", p.ErrorPattern)
			continue
		}
		applied = append(applied, Applied{
			PatternID:   p.ID.String(),
			From:        p.ErrorPattern,
			To:          p.CorrectPattern,
			Occurrences: n,
		})
		text = next
	}
	return text, applied
}

// ApplyLines runs Apply per line, keeping line boundaries intact.
func (c *Corrector) ApplyLines(lines []string, patterns []entity.CorrectionPattern) ([]string, []Applied) {
	out := make([]string, len(lines))
	var all []Applied
	for i, line := range lines {
		fixed, applied := c.Apply(line, patterns)
		out[i] = fixed
		all = append(all, applied...)
	}
	return out, all
}

func applyOne(text string, p entity.CorrectionPattern) (string, int, error) {
	if p.IsRegex {
		re, err := regexp.Compile(p.ErrorPattern)
		if err != nil {
			return text, 0, err
		}
		n := len(re.FindAllStringIndex(text, -1))
		if n == 0 {
			return text, 0, nil
		}
		return re.ReplaceAllString(text, p.CorrectPattern), n, nil
	}
	out, n := replaceLiteral(text, p.ErrorPattern, p.CorrectPattern)
	return out, n, nil
}

// replaceLiteral substitutes from with to, skipping occurrences of from
// that already sit inside an occurrence of to. Mined patterns often repair
// a dropped character, so the weak form is a substring of the corrected
// form ("ekstr" -> "ekstra"); a plain ReplaceAll would rewrite corrected
// text again on every pass.
func replaceLiteral(text, from, to string) (string, int) {
	if !strings.Contains(to, from) {
		n := strings.Count(text, from)
		if n == 0 {
			return text, 0
		}
		return strings.ReplaceAll(text, from, to), n
	}

	var b strings.Builder
	n := 0
	i := 0
	for i < len(text) {
		ti := strings.Index(text[i:], to)
		fi := strings.Index(text[i:], from)
		if fi < 0 {
			b.WriteString(text[i:])
			break
		}
		if ti >= 0 && ti <= fi {
			// The corrected form comes first; copy it untouched.
			b.WriteString(text[i : i+ti+len(to)])
			i += ti + len(to)
			continue
		}
		b.WriteString(text[i : i+fi])
		b.WriteString(to)
		i += fi + len(from)
		n++
	}
	if n == 0 {
		return text, 0
	}
	return b.String(), n
}

// priceTokensChanged reports whether the set of monetary tokens differs
// between the original and corrected text.
func priceTokensChanged(before, after string) bool {
	a := priceToken.FindAllString(before, -1)
	b := priceToken.FindAllString(after, -1)
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		if a[i] != b[i] {
			return true
		}
	}
	return false
}
