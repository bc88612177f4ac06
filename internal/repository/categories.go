package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/codemarcinu/pantry-tracker/gen/ent"
	"github.com/codemarcinu/pantry-tracker/gen/ent/category"
	"github.com/codemarcinu/pantry-tracker/internal/entity"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	GetOrCreate(ctx context.Context, name string, meta entity.CategoryMeta) (*entity.Category, error)
	// ExpiryOffsetDays implements the finalizer's metadata read. Nil means
	// no offset configured for the category.
	ExpiryOffsetDays(ctx context.Context, categoryID uuid.UUID) (*int, error)
}

type categoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCategoryRepository(client *ent.Client, logger *slog.Logger) CategoryRepository {
	return &categoryRepository{client: client, logger: logger}
}

func (r *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.client.Category.Query().Order(category.ByName()).All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Category, len(rows))
	for i, row := range rows {
		out[i] = toCategory(row)
	}
	return out, nil
}

func (r *categoryRepository) GetOrCreate(ctx context.Context, name string, meta entity.CategoryMeta) (*entity.Category, error) {
	row, err := r.client.Category.Create().
		SetName(name).
		SetMeta(meta).
		Save(ctx)
	if err == nil {
		return toCategory(row), nil
	}
	if !ent.IsConstraintError(err) {
		return nil, err
	}
	existing, qerr := r.client.Category.Query().
		Where(category.Name(name)).
		Only(ctx)
	if qerr != nil {
		return nil, qerr
	}
	return toCategory(existing), nil
}

func (r *categoryRepository) ExpiryOffsetDays(ctx context.Context, categoryID uuid.UUID) (*int, error) {
	row, err := r.client.Category.Get(ctx, categoryID)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if row.Meta.ExpiryOffsetDays <= 0 {
		return nil, nil
	}
	days := row.Meta.ExpiryOffsetDays
	return &days, nil
}

func toCategory(c *ent.Category) *entity.Category {
	return &entity.Category{
		ID:       c.ID,
		Name:     c.Name,
		ParentID: c.ParentID,
		Meta:     c.Meta,
	}
}
