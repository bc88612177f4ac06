package learning

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/codemarcinu/pantry-tracker/internal/entity"
)

// PatternStore is the persistence surface the learner needs. The repository
// layer implements it.
type PatternStore interface {
	SaveSample(ctx context.Context, sample entity.TrainingSample) error
	FindPatternByError(ctx context.Context, errorPattern string) (*entity.CorrectionPattern, error)
	CreatePattern(ctx context.Context, p entity.CorrectionPattern) error
	UpdatePattern(ctx context.Context, p entity.CorrectionPattern) error
}

// Service turns transcript pairs into persisted correction patterns.
type Service struct {
	store      PatternStore
	minSamples int
	logger     *slog.Logger
}

func NewService(store PatternStore, minSamples int, logger *slog.Logger) *Service {
	if minSamples <= 0 {
		minSamples = 2
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, minSamples: minSamples, logger: logger}
}

// Learn stores the transcript pair as a training sample, mines candidates
// and updates pattern counters. A candidate becomes an active pattern once
// it has been seen in at least minSamples distinct samples. Patterns an
// operator deactivated stay off no matter how often they recur.
func (s *Service) Learn(ctx context.Context, receiptID uuid.UUID, weakText, strongText string) error {
	if err := s.store.SaveSample(ctx, entity.TrainingSample{
		ID:         uuid.New(),
		ReceiptID:  receiptID,
		WeakText:   weakText,
		StrongText: strongText,
	}); err != nil {
		return fmt.Errorf("save training sample: %w", err)
	}

	candidates := dedupe(MineCandidates(weakText, strongText))
	s.logger.Info("learning.mine",
		"receipt_id", receiptID.String(), "candidates", len(candidates))

	for _, c := range candidates {
		if err := s.record(ctx, c); err != nil {
			return fmt.Errorf("record candidate %q: %w", c.From, err)
		}
	}
	return nil
}

func (s *Service) record(ctx context.Context, c Candidate) error {
	existing, err := s.store.FindPatternByError(ctx, c.From)
	if err != nil {
		return err
	}
	if existing == nil {
		return s.store.CreatePattern(ctx, entity.CorrectionPattern{
			ID:             uuid.New(),
			ErrorPattern:   c.From,
			CorrectPattern: c.To,
			Confidence:     c.Confidence,
			SampleCount:    1,
			IsActive:       s.minSamples <= 1,
		})
	}
	if existing.HumanDeactivated {
		s.logger.Debug("learning.skip_deactivated", "pattern", c.From)
		return nil
	}
	existing.SampleCount++
	// Keep the highest-confidence correction seen for this misread.
	if c.Confidence > existing.Confidence {
		existing.Confidence = c.Confidence
		existing.CorrectPattern = c.To
	}
	if !existing.IsActive && existing.SampleCount >= s.minSamples {
		existing.IsActive = true
		s.logger.Info("learning.pattern_promoted",
			"pattern", existing.ErrorPattern,
			"correction", existing.CorrectPattern,
			"samples", existing.SampleCount)
	}
	return s.store.UpdatePattern(ctx, *existing)
}

// dedupe keeps one candidate per From within a single sample so a word
// misread five times on one receipt still counts as one observation.
func dedupe(in []Candidate) []Candidate {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, c := range in {
		if seen[c.From] {
			continue
		}
		seen[c.From] = true
		out = append(out, c)
	}
	return out
}
