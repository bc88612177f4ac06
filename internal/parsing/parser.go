// Package parsing turns corrected OCR lines into structured receipt data:
// header facts, priced product candidates and a total reconciliation.
package parsing

import (
	"log/slog"

	"github.com/shopspring/decimal"
)

// Config bounds the total reconciliation.
type Config struct {
	// TotalTolerance is the allowed absolute difference between the sum of
	// line totals and the declared receipt total.
	TotalTolerance decimal.Decimal
	// LineTolerance is the allowed absolute difference between
	// quantity*unit_price and line_total on a single line.
	LineTolerance decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		TotalTolerance: mustDecimal("0.05"),
		LineTolerance:  mustDecimal("0.05"),
	}
}

// Result is one fully parsed receipt.
type Result struct {
	Header    Header
	Lines     []Candidate
	SumTotal  decimal.Decimal
	TotalDiff *decimal.Decimal // sum - declared; nil when no declared total
	// NeedsReview is set when the declared total and the line sum disagree
	// beyond tolerance. Parsing still succeeds.
	NeedsReview bool
	// Dropped counts candidate lines no grammar could parse.
	Dropped int
}

type Parser struct {
	cfg    Config
	logger *slog.Logger
}

func NewParser(cfg Config, logger *slog.Logger) *Parser {
	if cfg.TotalTolerance.IsZero() {
		cfg.TotalTolerance = mustDecimal("0.05")
	}
	if cfg.LineTolerance.IsZero() {
		cfg.LineTolerance = mustDecimal("0.05")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{cfg: cfg, logger: logger}
}

// Parse runs the full pass: header extraction, line classification, grammar
// matching and total reconciliation.
//
// Classification happens before grammar matching and the product section
// closes at the first tax/summary marker. Both rules are load-bearing:
// tax rows are structurally valid price lines and would otherwise parse as
// products.
func (p *Parser) Parse(lines []string, declaredTotal *decimal.Decimal) Result {
	header := ParseHeader(lines)
	grammars := GrammarsFor(header.StoreFormat)

	res := Result{Header: header, SumTotal: decimal.Zero}

	inProducts := true
	for _, line := range lines {
		if inProducts && EndsProductSection(line) {
			inProducts = false
		}
		if !inProducts {
			continue
		}
		switch Classify(line) {
		case ClassProductCandidate:
		default:
			continue
		}

		cand, ok := MatchLine(line, grammars)
		if !ok {
			if looksPriced(line) {
				res.Dropped++
				p.logger.Debug("parsing.line_dropped", "line", line)
			}
			continue
		}
		p.checkLineArithmetic(&cand)
		res.Lines = append(res.Lines, cand)
		res.SumTotal = res.SumTotal.Add(cand.LineTotal)
	}

	declared := declaredTotal
	if declared == nil {
		declared = header.Total
	}
	if declared != nil {
		diff := res.SumTotal.Sub(*declared)
		res.TotalDiff = &diff
		if diff.Abs().GreaterThan(p.cfg.TotalTolerance) {
			res.NeedsReview = true
			p.logger.Warn("parsing.total_mismatch",
				"declared", declared.String(),
				"sum", res.SumTotal.String(),
				"diff", diff.String())
		}
	}

	p.logger.Info("parsing.done",
		"store", header.StoreName,
		"lines", len(res.Lines),
		"dropped", res.Dropped,
		"sum", res.SumTotal.String(),
		"needs_review", res.NeedsReview)
	return res
}

// checkLineArithmetic verifies quantity*unit against the printed line total.
// A violation lowers confidence but the line is kept; receipts round in ways
// regexes cannot predict.
func (p *Parser) checkLineArithmetic(c *Candidate) {
	expected := c.UnitPrice.Mul(c.Quantity)
	if expected.Sub(c.LineTotal).Abs().GreaterThan(p.cfg.LineTolerance) {
		c.Confidence *= 0.7
		p.logger.Debug("parsing.line_arith_mismatch",
			"line", c.RawText,
			"expected", expected.String(),
			"printed", c.LineTotal.String())
	}
}

// looksPriced reports whether a line carries a money-shaped token, so only
// plausible product lines count as parse failures.
func looksPriced(line string) bool {
	return priceShapeRe.MatchString(line)
}
