package parsing

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Header carries receipt-level facts pulled from outside the product list.
type Header struct {
	StoreName   string
	StoreFormat string // grammar registry key, empty for unknown stores
	TaxID       string // NIP, digits only
	PurchasedAt *time.Time
	Total       *decimal.Decimal
	Currency    string
}

// storeSignatures maps header keywords to (display name, grammar key).
var storeSignatures = []struct {
	keyword string
	name    string
	format  string
}{
	{"LIDL", "Lidl", GrammarLidl},
	{"BIEDRONKA", "Biedronka", GrammarBiedronka},
	{"ŻABKA", "Żabka", ""},
	{"ZABKA", "Żabka", ""},
	{"KAUFLAND", "Kaufland", ""},
	{"AUCHAN", "Auchan", ""},
	{"CARREFOUR", "Carrefour", ""},
	{"NETTO", "Netto", ""},
	{"ALDI", "Aldi", ""},
}

// headerScanLines limits store detection to the top of the receipt; a store
// name inside a product description must not flip the grammar.
const headerScanLines = 8

var (
	nipRe = regexp.MustCompile(`(?i)\bNIP\W*(\d[\d\s-]{8,12}\d)`)

	// 2024-03-15, 15.03.2024, 15-03-2024, optionally followed by HH:MM.
	dateISORe = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	dateEURe  = regexp.MustCompile(`\b(\d{2})[.-](\d{2})[.-](\d{4})\b`)
	timeRe    = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)

	totalAmountRe = regexp.MustCompile(`(?i)^\s*(?:SUMA|RAZEM|DO\s+ZAP[ŁL]ATY)\b.*?(\d+[.,]\d{2})\s*$`)
	currencyRe    = regexp.MustCompile(`(?i)\b(PLN|EUR|USD|GBP|CZK)\b`)
)

// ParseHeader extracts store identity, purchase date, tax id, currency and
// the declared total from the raw lines. Everything is best effort; an
// unrecognized store just means the generic grammar chain.
func ParseHeader(lines []string) Header {
	h := Header{Currency: "PLN"}

	top := lines
	if len(top) > headerScanLines {
		top = top[:headerScanLines]
	}
	for _, line := range top {
		upper := strings.ToUpper(line)
		for _, sig := range storeSignatures {
			if strings.Contains(upper, sig.keyword) {
				h.StoreName = sig.name
				h.StoreFormat = sig.format
				break
			}
		}
		if h.StoreName != "" {
			break
		}
	}

	for _, line := range lines {
		if h.TaxID == "" {
			if m := nipRe.FindStringSubmatch(line); m != nil {
				h.TaxID = digitsOnly(m[1])
			}
		}
		if h.PurchasedAt == nil {
			if ts := parseDate(line); ts != nil {
				h.PurchasedAt = ts
			}
		}
		if h.Total == nil {
			if m := totalAmountRe.FindStringSubmatch(line); m != nil {
				if d, err := parseDecimal(m[1]); err == nil {
					h.Total = &d
				}
			}
		}
		if m := currencyRe.FindStringSubmatch(line); m != nil {
			h.Currency = strings.ToUpper(m[1])
		}
	}
	return h
}

func parseDate(line string) *time.Time {
	var year, month, day int
	if m := dateISORe.FindStringSubmatch(line); m != nil {
		year, month, day = atoi(m[1]), atoi(m[2]), atoi(m[3])
	} else if m := dateEURe.FindStringSubmatch(line); m != nil {
		day, month, year = atoi(m[1]), atoi(m[2]), atoi(m[3])
	} else {
		return nil
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}

	hour, minute := 0, 0
	if m := timeRe.FindStringSubmatch(line); m != nil {
		if h, mm := atoi(m[1]), atoi(m[2]); h < 24 && mm < 60 {
			hour, minute = h, mm
		}
	}
	ts := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	return &ts
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
