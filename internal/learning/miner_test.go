package learning

import "testing"

func TestMineCandidates(t *testing.T) {
	weak := "Melko UHT 3,2% 3,19\nChleb zytni 4,50\nSUMA PLN 7,69"
	strong := "Mleko UHT 3,2% 3,19\nChleb żytni 4,50\nSUMA PLN 7,69"

	got := MineCandidates(weak, strong)
	want := map[string]string{
		"Melko": "Mleko",
		"zytni": "żytni",
	}
	if len(got) != len(want) {
		t.Fatalf("candidates = %+v, want %d entries", got, len(want))
	}
	for _, c := range got {
		if want[c.From] != c.To {
			t.Errorf("candidate %q -> %q, want -> %q", c.From, c.To, want[c.From])
		}
		if c.Confidence < minWordSimilarity || c.Confidence >= 1 {
			t.Errorf("candidate %q confidence = %v", c.From, c.Confidence)
		}
	}
}

func TestMineCandidatesDroppedTrailingLetter(t *testing.T) {
	// A dropped final character yields a candidate whose To contains its
	// From; the corrector must stay idempotent under this shape.
	got := MineCandidates("Maslo ekstr 7,99", "Maslo ekstra 7,99")
	if len(got) != 1 {
		t.Fatalf("candidates = %+v, want 1", got)
	}
	if got[0].From != "ekstr" || got[0].To != "ekstra" {
		t.Errorf("candidate = %q -> %q", got[0].From, got[0].To)
	}
}

func TestMineCandidatesSkipsDigits(t *testing.T) {
	// A misread amount must never become a pattern.
	got := MineCandidates("Chleb 4,5O", "Chleb 4,50")
	if len(got) != 0 {
		t.Errorf("candidates = %+v, want none", got)
	}
}

func TestMineCandidatesSkipsUnrelatedWords(t *testing.T) {
	// "Maslo" vs "Herbata" is a different product, not a misread.
	got := MineCandidates("Maslo extra", "Herbata extra")
	if len(got) != 0 {
		t.Errorf("candidates = %+v, want none", got)
	}
}

func TestMineCandidatesIdenticalText(t *testing.T) {
	text := "Mleko UHT 3,19\nSUMA PLN 3,19"
	if got := MineCandidates(text, text); len(got) != 0 {
		t.Errorf("candidates = %+v, want none", got)
	}
}

func TestMineCandidatesUnequalLineBlocks(t *testing.T) {
	// The strong engine saw an extra line; nothing pairwise to mine.
	got := MineCandidates("Mleko 3,19", "Mleko 3,19\nRabat -0,50")
	if len(got) != 0 {
		t.Errorf("candidates = %+v, want none", got)
	}
}
