package correction

import (
	"testing"

	"github.com/google/uuid"

	"github.com/codemarcinu/pantry-tracker/internal/entity"
)

func pattern(from, to string, confidence float64) entity.CorrectionPattern {
	return entity.CorrectionPattern{
		ID:             uuid.New(),
		ErrorPattern:   from,
		CorrectPattern: to,
		Confidence:     confidence,
		IsActive:       true,
	}
}

func TestApply(t *testing.T) {
	c := NewCorrector(nil)

	t.Run("literal replacement", func(t *testing.T) {
		got, applied := c.Apply("Mleko UHT 3.2proc", []entity.CorrectionPattern{
			pattern("proc", "%", 0.9),
		})
		if got != "Mleko UHT 3.2%" {
			t.Errorf("got %q", got)
		}
		if len(applied) != 1 || applied[0].Occurrences != 1 {
			t.Errorf("applied = %+v", applied)
		}
	})

	t.Run("higher confidence wins ordering", func(t *testing.T) {
		// Both patterns touch the same token; the confident one runs first
		// and consumes it.
		got, applied := c.Apply("Ser zolty", []entity.CorrectionPattern{
			pattern("zolty", "żółty", 0.95),
			pattern("zolty", "złoty", 0.60),
		})
		if got != "Ser żółty" {
			t.Errorf("got %q", got)
		}
		if len(applied) != 1 {
			t.Errorf("applied = %+v", applied)
		}
	})

	t.Run("inactive and deactivated patterns skipped", func(t *testing.T) {
		inactive := pattern("Mleko", "XXX", 0.99)
		inactive.IsActive = false
		vetoed := pattern("Mleko", "YYY", 0.99)
		vetoed.HumanDeactivated = true

		got, applied := c.Apply("Mleko 2%", []entity.CorrectionPattern{inactive, vetoed})
		if got != "Mleko 2%" || len(applied) != 0 {
			t.Errorf("got %q, applied %+v", got, applied)
		}
	})

	t.Run("price guard blocks amount rewrites", func(t *testing.T) {
		got, applied := c.Apply("Chleb 4,50", []entity.CorrectionPattern{
			pattern("4,50", "4,58", 0.9),
		})
		if got != "Chleb 4,50" {
			t.Errorf("price token rewritten: %q", got)
		}
		if len(applied) != 0 {
			t.Errorf("applied = %+v", applied)
		}
	})

	t.Run("price guard blocks digit swaps inside amounts", func(t *testing.T) {
		// O->0 is a common OCR fix but must not touch existing amounts.
		got, _ := c.Apply("Woda 2,5O", []entity.CorrectionPattern{
			pattern("O", "0", 0.9),
		})
		if got != "Woda 2,5O" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("regex pattern", func(t *testing.T) {
		re := pattern(`\bMelko\b`, "Mleko", 0.9)
		re.IsRegex = true
		got, applied := c.Apply("Melko UHT Melkowy", []entity.CorrectionPattern{re})
		if got != "Mleko UHT Melkowy" {
			t.Errorf("got %q", got)
		}
		if len(applied) != 1 || applied[0].Occurrences != 1 {
			t.Errorf("applied = %+v", applied)
		}
	})

	t.Run("invalid regex is skipped not fatal", func(t *testing.T) {
		bad := pattern(`[unclosed`, "x", 0.9)
		bad.IsRegex = true
		got, applied := c.Apply("text", []entity.CorrectionPattern{bad})
		if got != "text" || len(applied) != 0 {
			t.Errorf("got %q, applied %+v", got, applied)
		}
	})

	t.Run("idempotent on already-corrected text", func(t *testing.T) {
		ps := []entity.CorrectionPattern{pattern("Mlko", "Mleko", 0.9)}
		once, _ := c.Apply("Mlko UHT", ps)
		twice, applied := c.Apply(once, ps)
		if twice != once {
			t.Errorf("second pass changed text: %q -> %q", once, twice)
		}
		if len(applied) != 0 {
			t.Errorf("second pass applied = %+v", applied)
		}
	})

	t.Run("idempotent when replacement contains its source", func(t *testing.T) {
		// The miner emits this shape for a dropped trailing letter.
		ps := []entity.CorrectionPattern{pattern("ekstr", "ekstra", 0.91)}
		once, applied := c.Apply("Maslo ekstr", ps)
		if once != "Maslo ekstra" || len(applied) != 1 {
			t.Fatalf("first pass = %q, applied %+v", once, applied)
		}
		twice, applied := c.Apply(once, ps)
		if twice != once {
			t.Errorf("second pass changed text: %q -> %q", once, twice)
		}
		if len(applied) != 0 {
			t.Errorf("second pass applied = %+v", applied)
		}
	})

	t.Run("already-correct text untouched by prefix pattern", func(t *testing.T) {
		got, applied := c.Apply("Maslo ekstra", []entity.CorrectionPattern{
			pattern("ekstr", "ekstra", 0.91),
		})
		if got != "Maslo ekstra" {
			t.Errorf("correct text rewritten: %q", got)
		}
		if len(applied) != 0 {
			t.Errorf("applied = %+v", applied)
		}
	})

	t.Run("mixed correct and broken occurrences", func(t *testing.T) {
		got, applied := c.Apply("Maslo ekstra Maslo ekstr", []entity.CorrectionPattern{
			pattern("ekstr", "ekstra", 0.91),
		})
		if got != "Maslo ekstra Maslo ekstra" {
			t.Errorf("got %q", got)
		}
		if len(applied) != 1 || applied[0].Occurrences != 1 {
			t.Errorf("applied = %+v", applied)
		}
	})
}

func TestApplyLines(t *testing.T) {
	c := NewCorrector(nil)
	lines, applied := c.ApplyLines(
		[]string{"Mlko 3,19", "Chleb 4,50"},
		[]entity.CorrectionPattern{pattern("Mlko", "Mleko", 0.9)},
	)
	if lines[0] != "Mleko 3,19" || lines[1] != "Chleb 4,50" {
		t.Errorf("lines = %v", lines)
	}
	if len(applied) != 1 {
		t.Errorf("applied = %+v", applied)
	}
}
