package parsing

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Candidate is one structurally parsed product line, before matching.
type Candidate struct {
	RawText     string
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
	VATCode     string // single letter, empty when absent
	Grammar     string
	Confidence  float64
}

// Grammar is one store line format. Grammars are pure data: adding a store
// means appending an entry to the registry, not writing new control flow.
type Grammar struct {
	Name       string
	Confidence float64
	re         *regexp.Regexp
}

const (
	GrammarLidl      = "lidl"
	GrammarBiedronka = "biedronka"
	GrammarGeneric   = "generic"
)

var (
	// Lidl-style: NAME QTY * UNIT_PRICE LINE_TOTAL [VAT]
	//   "Baton Protein Nuts 2 * 1,79 3,58 B"
	lidlLineRe = regexp.MustCompile(
		`^(?P<name>.+?)\s+(?P<qty>\d+(?:[.,]\d+)?)\s*\*\s*(?P<unit>\d+[.,]\d{2})\s+(?P<total>\d+[.,]\d{2})\s*(?P<vat>[A-G])?$`)

	// Biedronka-style: NAME QTY x UNIT_PRICE LINE_TOTAL [VAT]
	//   "Mleko UHT 3,2% 2 x3,19 6,38A"
	biedronkaLineRe = regexp.MustCompile(
		`^(?P<name>.+?)\s+(?P<qty>\d+(?:[.,]\d+)?)\s*[xX]\s*(?P<unit>\d+[.,]\d{2})\s+(?P<total>\d+[.,]\d{2})\s*(?P<vat>[A-G])?$`)

	// Generic fallback: NAME LINE_TOTAL [VAT], quantity defaults to 1.
	//   "Chleb żytni 4,50 A"
	genericLineRe = regexp.MustCompile(
		`^(?P<name>.+?)\s+(?P<total>\d+[.,]\d{2})\s*(?P<vat>[A-G])?$`)
)

func (g Grammar) match(line string) (Candidate, bool) {
	m := g.re.FindStringSubmatch(line)
	if m == nil {
		return Candidate{}, false
	}
	groups := make(map[string]string, len(m))
	for i, name := range g.re.SubexpNames() {
		if name != "" {
			groups[name] = m[i]
		}
	}

	name := strings.TrimSpace(groups["name"])
	if name == "" || !hasLetter(name) {
		return Candidate{}, false
	}

	total, err := parseDecimal(groups["total"])
	if err != nil {
		return Candidate{}, false
	}

	qty := decimal.NewFromInt(1)
	if raw := groups["qty"]; raw != "" {
		qty, err = parseDecimal(raw)
		if err != nil || qty.IsZero() {
			return Candidate{}, false
		}
	}

	unit := total
	if raw := groups["unit"]; raw != "" {
		unit, err = parseDecimal(raw)
		if err != nil {
			return Candidate{}, false
		}
	} else if !qty.Equal(decimal.NewFromInt(1)) {
		unit = total.DivRound(qty, 2)
	}

	return Candidate{
		RawText:     line,
		ProductName: name,
		Quantity:    qty,
		UnitPrice:   unit,
		LineTotal:   total,
		VATCode:     groups["vat"],
		Grammar:     g.Name,
		Confidence:  g.Confidence,
	}, true
}

// storeGrammars maps a detected store to its preferred grammar order. The
// generic grammar always closes the list.
var storeGrammars = map[string][]Grammar{
	GrammarLidl: {
		{Name: GrammarLidl, Confidence: 0.95, re: lidlLineRe},
	},
	GrammarBiedronka: {
		{Name: GrammarBiedronka, Confidence: 0.95, re: biedronkaLineRe},
	},
}

var fallbackGrammars = []Grammar{
	{Name: GrammarLidl, Confidence: 0.85, re: lidlLineRe},
	{Name: GrammarBiedronka, Confidence: 0.85, re: biedronkaLineRe},
	{Name: GrammarGeneric, Confidence: 0.6, re: genericLineRe},
}

// GrammarsFor returns the grammar chain for a store tag, store-specific
// first, generic last. Unknown stores get the full fallback chain.
func GrammarsFor(store string) []Grammar {
	specific, ok := storeGrammars[store]
	if !ok {
		return fallbackGrammars
	}
	out := make([]Grammar, 0, len(specific)+len(fallbackGrammars))
	out = append(out, specific...)
	for _, g := range fallbackGrammars {
		if g.Name != store {
			out = append(out, g)
		}
	}
	return out
}

// MatchLine tries grammars in order and returns the first structural match.
func MatchLine(line string, grammars []Grammar) (Candidate, bool) {
	trimmed := strings.TrimSpace(line)
	for _, g := range grammars {
		if c, ok := g.match(trimmed); ok {
			return c, true
		}
	}
	return Candidate{}, false
}

func hasLetter(s string) bool {
	for _, r := range s {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || strings.ContainsRune("ąćęłńóśźżĄĆĘŁŃÓŚŹŻ", r) {
			return true
		}
	}
	return false
}
