package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/codemarcinu/pantry-tracker/gen/ent"
	"github.com/codemarcinu/pantry-tracker/gen/ent/inventoryitem"
	"github.com/codemarcinu/pantry-tracker/internal/entity"
	"github.com/codemarcinu/pantry-tracker/internal/utils"
)

type InventoryRepository interface {
	// CreateBatch writes all items in one transaction; on any failure no
	// item is persisted.
	CreateBatch(ctx context.Context, items []entity.InventoryItem) error
	BatchExists(ctx context.Context, batchID string) (bool, error)
	List(ctx context.Context, productID *uuid.UUID, expiringBefore *time.Time) ([]entity.InventoryItem, error)
	ListByBatch(ctx context.Context, batchID string) ([]entity.InventoryItem, error)
	Consume(ctx context.Context, itemID uuid.UUID, qty decimal.Decimal, notes string) (*entity.InventoryItem, error)
}

type inventoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInventoryRepository(client *ent.Client, logger *slog.Logger) InventoryRepository {
	return &inventoryRepository{client: client, logger: logger}
}

func (r *inventoryRepository) CreateBatch(ctx context.Context, items []entity.InventoryItem) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	for _, it := range items {
		builder := tx.InventoryItem.Create().
			SetProductID(it.ProductID).
			SetPurchaseDate(it.PurchaseDate).
			SetQuantityRemaining(it.Quantity.InexactFloat64()).
			SetUnit(string(it.Unit)).
			SetStorageLocation(string(it.Storage)).
			SetBatchID(it.BatchID)
		if it.ExpiryDate != nil {
			builder = builder.SetExpiryDate(*it.ExpiryDate)
		}
		if _, err := builder.Save(ctx); err != nil {
			r.logger.Error("inventory batch insert failed",
				"product_id", it.ProductID, "error", err)
			return rollback(tx, err)
		}
	}
	return tx.Commit()
}

func (r *inventoryRepository) BatchExists(ctx context.Context, batchID string) (bool, error) {
	return r.client.InventoryItem.Query().
		Where(inventoryitem.BatchID(batchID)).
		Exist(ctx)
}

func (r *inventoryRepository) List(ctx context.Context, productID *uuid.UUID, expiringBefore *time.Time) ([]entity.InventoryItem, error) {
	q := r.client.InventoryItem.Query().
		Where(inventoryitem.QuantityRemainingGT(0))
	if productID != nil {
		q = q.Where(inventoryitem.ProductID(*productID))
	}
	if expiringBefore != nil {
		q = q.Where(inventoryitem.ExpiryDateLTE(*expiringBefore))
	}
	rows, err := q.Order(inventoryitem.ByExpiryDate()).All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.InventoryItem, len(rows))
	for i, row := range rows {
		out[i] = utils.ToInventoryItem(row)
	}
	return out, nil
}

func (r *inventoryRepository) ListByBatch(ctx context.Context, batchID string) ([]entity.InventoryItem, error) {
	rows, err := r.client.InventoryItem.Query().
		Where(inventoryitem.BatchID(batchID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.InventoryItem, len(rows))
	for i, row := range rows {
		out[i] = utils.ToInventoryItem(row)
	}
	return out, nil
}

// Consume decrements the remaining quantity and records the event in the
// same transaction.
func (r *inventoryRepository) Consume(ctx context.Context, itemID uuid.UUID, qty decimal.Decimal, notes string) (*entity.InventoryItem, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	row, err := tx.InventoryItem.Get(ctx, itemID)
	if err != nil {
		return nil, rollback(tx, err)
	}
	remaining := decimal.NewFromFloat(row.QuantityRemaining).Sub(qty)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	updated, err := tx.InventoryItem.UpdateOneID(itemID).
		SetQuantityRemaining(remaining.InexactFloat64()).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, err)
	}
	if _, err := tx.ConsumptionEvent.Create().
		SetInventoryItemID(itemID).
		SetConsumedQty(qty.InexactFloat64()).
		SetNotes(notes).
		Save(ctx); err != nil {
		return nil, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	item := utils.ToInventoryItem(updated)
	return &item, nil
}
