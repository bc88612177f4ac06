package parsing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseDecimal reads a receipt number. Polish receipts print decimal commas;
// both comma and period are accepted. Amounts stay fixed-point end to end.
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	return decimal.NewFromString(s)
}

func mustDecimal(s string) decimal.Decimal {
	d, err := parseDecimal(s)
	if err != nil {
		panic("parsing: bad literal decimal " + s)
	}
	return d
}
