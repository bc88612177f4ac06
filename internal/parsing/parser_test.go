package parsing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return mustDecimal(s) }

func TestParseLidlReceipt(t *testing.T) {
	lines := []string{
		"LIDL sp. z o.o. sp. k.",
		"ul. Poznańska 48, 62-080 Jankowice",
		"NIP 781-18-97-358",
		"2024-03-15 14:32",
		"PARAGON FISKALNY",
		"Baton Protein Nuts 2 * 1,79 3,58 B",
		"Mleko UHT 3,2% 1 * 3,19 3,19 C",
		"Chleb żytni 4,50 A",
		"SUMA PLN 11,27",
		"PTU A 25,39",
		"Kwota A 23,00% 4,75",
		"GOTÓWKA 20,00",
	}

	p := NewParser(DefaultConfig(), nil)
	res := p.Parse(lines, nil)

	if res.Header.StoreName != "Lidl" {
		t.Errorf("store = %q", res.Header.StoreName)
	}
	if res.Header.TaxID != "7811897358" {
		t.Errorf("tax id = %q", res.Header.TaxID)
	}
	if res.Header.PurchasedAt == nil || res.Header.PurchasedAt.Format("2006-01-02 15:04") != "2024-03-15 14:32" {
		t.Errorf("purchased at = %v", res.Header.PurchasedAt)
	}
	if res.Header.Total == nil || !res.Header.Total.Equal(dec("11.27")) {
		t.Errorf("declared total = %v", res.Header.Total)
	}
	if res.Header.Currency != "PLN" {
		t.Errorf("currency = %q", res.Header.Currency)
	}

	if len(res.Lines) != 3 {
		t.Fatalf("lines = %d: %+v", len(res.Lines), res.Lines)
	}

	baton := res.Lines[0]
	if baton.ProductName != "Baton Protein Nuts" {
		t.Errorf("name = %q", baton.ProductName)
	}
	if !baton.Quantity.Equal(dec("2")) {
		t.Errorf("qty = %s", baton.Quantity)
	}
	if !baton.UnitPrice.Equal(dec("1.79")) {
		t.Errorf("unit = %s", baton.UnitPrice)
	}
	if !baton.LineTotal.Equal(dec("3.58")) {
		t.Errorf("total = %s", baton.LineTotal)
	}
	if baton.VATCode != "B" {
		t.Errorf("vat = %q", baton.VATCode)
	}
	if baton.Grammar != GrammarLidl {
		t.Errorf("grammar = %q", baton.Grammar)
	}

	if res.Lines[2].Grammar != GrammarGeneric {
		t.Errorf("fallback grammar = %q", res.Lines[2].Grammar)
	}
	if !res.Lines[2].Quantity.Equal(dec("1")) {
		t.Errorf("defaulted qty = %s", res.Lines[2].Quantity)
	}

	if !res.SumTotal.Equal(dec("11.27")) {
		t.Errorf("sum = %s", res.SumTotal)
	}
	if res.TotalDiff == nil || !res.TotalDiff.IsZero() {
		t.Errorf("diff = %v", res.TotalDiff)
	}
	if res.NeedsReview {
		t.Error("receipt flagged for review despite matching total")
	}
}

func TestTaxLinesNeverBecomeProducts(t *testing.T) {
	// Both rows structurally match a price grammar; exclusion must win.
	lines := []string{
		"Mleko UHT 3,19 A",
		"PTU A 25,39",
		"Kwota A 23,00% 4,75",
	}
	p := NewParser(DefaultConfig(), nil)
	res := p.Parse(lines, nil)

	if len(res.Lines) != 1 {
		t.Fatalf("lines = %+v", res.Lines)
	}
	if res.Lines[0].ProductName != "Mleko UHT" {
		t.Errorf("name = %q", res.Lines[0].ProductName)
	}
}

func TestProductSectionEndsAtSummary(t *testing.T) {
	// A perfectly product-shaped line after SUMA must be ignored.
	lines := []string{
		"Chleb żytni 4,50 A",
		"SUMA PLN 4,50",
		"Rabat lojalnościowy 2,00 A",
	}
	p := NewParser(DefaultConfig(), nil)
	res := p.Parse(lines, nil)

	if len(res.Lines) != 1 {
		t.Fatalf("lines = %+v", res.Lines)
	}
}

func TestTotalMismatchFlagsReview(t *testing.T) {
	p := NewParser(DefaultConfig(), nil)
	declared := dec("45.20")

	t.Run("within tolerance", func(t *testing.T) {
		res := p.Parse([]string{"Kawa ziarnista 45,18 A"}, &declared)
		if res.NeedsReview {
			t.Error("0.02 discrepancy flagged for review")
		}
		if res.TotalDiff == nil || !res.TotalDiff.Equal(dec("-0.02")) {
			t.Errorf("diff = %v", res.TotalDiff)
		}
	})

	t.Run("beyond tolerance", func(t *testing.T) {
		res := p.Parse([]string{"Kawa ziarnista 44,00 A"}, &declared)
		if !res.NeedsReview {
			t.Error("1.20 discrepancy not flagged")
		}
	})
}

func TestBiedronkaGrammar(t *testing.T) {
	lines := []string{
		"BIEDRONKA Codziennie niskie ceny",
		"Ser Gouda plastry 2 x 4,99 9,98 A",
	}
	p := NewParser(DefaultConfig(), nil)
	res := p.Parse(lines, nil)

	if res.Header.StoreName != "Biedronka" {
		t.Errorf("store = %q", res.Header.StoreName)
	}
	if len(res.Lines) != 1 {
		t.Fatalf("lines = %+v", res.Lines)
	}
	l := res.Lines[0]
	if l.Grammar != GrammarBiedronka || !l.Quantity.Equal(dec("2")) || !l.UnitPrice.Equal(dec("4.99")) {
		t.Errorf("line = %+v", l)
	}
}

func TestLineArithmeticMismatchLowersConfidence(t *testing.T) {
	p := NewParser(DefaultConfig(), nil)

	good, ok := MatchLine("Baton 2 * 1,79 3,58 B", GrammarsFor(""))
	if !ok {
		t.Fatal("no match")
	}
	bad, ok := MatchLine("Baton 2 * 1,79 4,99 B", GrammarsFor(""))
	if !ok {
		t.Fatal("no match")
	}
	p.checkLineArithmetic(&good)
	p.checkLineArithmetic(&bad)
	if bad.Confidence >= good.Confidence {
		t.Errorf("mismatch confidence %v, clean %v", bad.Confidence, good.Confidence)
	}
}

func TestUnparseableLinesAreDroppedNotFatal(t *testing.T) {
	lines := []string{
		"Mleko UHT 3,19 A",
		"!@# 9,99 %% garbage 1,23,45", // money-shaped but no grammar
	}
	p := NewParser(DefaultConfig(), nil)
	res := p.Parse(lines, nil)

	if len(res.Lines) != 1 {
		t.Fatalf("lines = %+v", res.Lines)
	}
	if res.Dropped != 1 {
		t.Errorf("dropped = %d", res.Dropped)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want LineClass
	}{
		{"PTU A 25,39", ClassTax},
		{"Kwota A 23,00% 4,75", ClassTax},
		{"SPRZEDAŻ OPODATK. A 25,39", ClassTax},
		{"SUMA PLN 45,20", ClassSummary},
		{"RAZEM 45,20", ClassSummary},
		{"DO ZAPŁATY 45,20", ClassSummary},
		{"GOTÓWKA 50,00", ClassNoise},
		{"", ClassNoise},
		{"Baton Protein Nuts 2 * 1,79 3,58 B", ClassProductCandidate},
		{"Mleko UHT 3,2% 3,19 A", ClassProductCandidate},
	}
	for _, tt := range tests {
		if got := Classify(tt.line); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
