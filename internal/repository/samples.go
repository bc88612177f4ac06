package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/codemarcinu/pantry-tracker/gen/ent"
	"github.com/codemarcinu/pantry-tracker/gen/ent/trainingsample"
	"github.com/codemarcinu/pantry-tracker/internal/entity"
)

// SampleRepository stores weak/strong transcript pairs. Append-only.
type SampleRepository interface {
	SaveSample(ctx context.Context, sample entity.TrainingSample) error
	ListByReceipt(ctx context.Context, receiptID uuid.UUID) ([]entity.TrainingSample, error)
}

type sampleRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSampleRepository(client *ent.Client, logger *slog.Logger) SampleRepository {
	return &sampleRepository{client: client, logger: logger}
}

func (r *sampleRepository) SaveSample(ctx context.Context, s entity.TrainingSample) error {
	err := r.client.TrainingSample.Create().
		SetReceiptID(s.ReceiptID).
		SetWeakText(s.WeakText).
		SetStrongText(s.StrongText).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to save training sample",
			"receipt_id", s.ReceiptID, "error", err)
	}
	return err
}

func (r *sampleRepository) ListByReceipt(ctx context.Context, receiptID uuid.UUID) ([]entity.TrainingSample, error) {
	rows, err := r.client.TrainingSample.Query().
		Where(trainingsample.ReceiptID(receiptID)).
		Order(trainingsample.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.TrainingSample, len(rows))
	for i, row := range rows {
		out[i] = entity.TrainingSample{
			ID:         row.ID,
			ReceiptID:  row.ReceiptID,
			WeakText:   row.WeakText,
			StrongText: row.StrongText,
			CreatedAt:  row.CreatedAt,
		}
	}
	return out, nil
}

// LearningStore bundles the two repositories the learning service writes
// through.
type LearningStore struct {
	PatternRepository
	SampleRepository
}
