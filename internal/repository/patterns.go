package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/codemarcinu/pantry-tracker/gen/ent"
	"github.com/codemarcinu/pantry-tracker/gen/ent/correctionpattern"
	"github.com/codemarcinu/pantry-tracker/internal/entity"
	"github.com/codemarcinu/pantry-tracker/internal/utils"
)

// PatternRepository stores learned correction patterns. Patterns are
// deactivated, never deleted.
type PatternRepository interface {
	ActivePatterns(ctx context.Context) ([]entity.CorrectionPattern, error)
	ListAll(ctx context.Context) ([]entity.CorrectionPattern, error)
	FindPatternByError(ctx context.Context, errorPattern string) (*entity.CorrectionPattern, error)
	CreatePattern(ctx context.Context, p entity.CorrectionPattern) error
	UpdatePattern(ctx context.Context, p entity.CorrectionPattern) error
	IncrementUsage(ctx context.Context, ids []uuid.UUID) error
	Deactivate(ctx context.Context, id uuid.UUID, byHuman bool) error
}

type patternRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPatternRepository(client *ent.Client, logger *slog.Logger) PatternRepository {
	return &patternRepository{client: client, logger: logger}
}

func (r *patternRepository) ActivePatterns(ctx context.Context) ([]entity.CorrectionPattern, error) {
	rows, err := r.client.CorrectionPattern.Query().
		Where(correctionpattern.IsActive(true)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.CorrectionPattern, len(rows))
	for i, row := range rows {
		out[i] = utils.ToPattern(row)
	}
	return out, nil
}

func (r *patternRepository) ListAll(ctx context.Context) ([]entity.CorrectionPattern, error) {
	rows, err := r.client.CorrectionPattern.Query().
		Order(correctionpattern.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.CorrectionPattern, len(rows))
	for i, row := range rows {
		out[i] = utils.ToPattern(row)
	}
	return out, nil
}

func (r *patternRepository) FindPatternByError(ctx context.Context, errorPattern string) (*entity.CorrectionPattern, error) {
	row, err := r.client.CorrectionPattern.Query().
		Where(correctionpattern.ErrorPattern(errorPattern)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p := utils.ToPattern(row)
	return &p, nil
}

func (r *patternRepository) CreatePattern(ctx context.Context, p entity.CorrectionPattern) error {
	err := r.client.CorrectionPattern.Create().
		SetErrorPattern(p.ErrorPattern).
		SetCorrectPattern(p.CorrectPattern).
		SetIsRegex(p.IsRegex).
		SetConfidence(p.Confidence).
		SetSampleCount(p.SampleCount).
		SetIsActive(p.IsActive).
		Exec(ctx)
	if ent.IsConstraintError(err) {
		// Another worker mined the same pattern first; its counters win.
		r.logger.Debug("pattern already exists", "pattern", p.ErrorPattern)
		return nil
	}
	return err
}

func (r *patternRepository) UpdatePattern(ctx context.Context, p entity.CorrectionPattern) error {
	return r.client.CorrectionPattern.UpdateOneID(p.ID).
		SetCorrectPattern(p.CorrectPattern).
		SetConfidence(p.Confidence).
		SetSampleCount(p.SampleCount).
		SetIsActive(p.IsActive).
		Exec(ctx)
}

// IncrementUsage bumps times_applied for the patterns used on one receipt.
func (r *patternRepository) IncrementUsage(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.client.CorrectionPattern.Update().
		Where(correctionpattern.IDIn(ids...)).
		AddTimesApplied(1).
		Exec(ctx)
}

func (r *patternRepository) Deactivate(ctx context.Context, id uuid.UUID, byHuman bool) error {
	return r.client.CorrectionPattern.UpdateOneID(id).
		SetIsActive(false).
		SetHumanDeactivated(byHuman).
		Exec(ctx)
}
