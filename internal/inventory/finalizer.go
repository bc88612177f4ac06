// Package inventory materializes matched receipt lines into stock entries
// with inferred expiry dates.
package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codemarcinu/pantry-tracker/constants"
	"github.com/codemarcinu/pantry-tracker/internal/common"
	"github.com/codemarcinu/pantry-tracker/internal/entity"
)

// Store persists inventory items. CreateBatch is all-or-nothing for one
// receipt; a partial write would leave phantom stock.
type Store interface {
	CreateBatch(ctx context.Context, items []entity.InventoryItem) error
	BatchExists(ctx context.Context, batchID string) (bool, error)
}

// CategoryMetaProvider reads expiry metadata for a product's category.
// A nil offset means "no expiry knowledge", never a default guess.
type CategoryMetaProvider interface {
	ExpiryOffsetDays(ctx context.Context, categoryID uuid.UUID) (*int, error)
}

type Finalizer struct {
	store      Store
	categories CategoryMetaProvider
	logger     *slog.Logger
}

func NewFinalizer(store Store, categories CategoryMetaProvider, logger *slog.Logger) *Finalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Finalizer{store: store, categories: categories, logger: logger}
}

// AlreadyFinalized reports whether the receipt's inventory batch exists,
// so a resumed review does not double-write stock.
func (f *Finalizer) AlreadyFinalized(ctx context.Context, receipt *entity.Receipt) (bool, error) {
	return f.store.BatchExists(ctx, receipt.ID.String())
}

// Finalize creates one InventoryItem per matched line, transactionally.
// products maps line MatchedID values to their Product rows. On failure the
// returned error wraps ErrFinalizationFailure and names the failing line so
// the receipt's error state carries a diagnosis.
func (f *Finalizer) Finalize(ctx context.Context, receipt *entity.Receipt, lines []entity.LineItem, products map[uuid.UUID]*entity.Product) ([]entity.InventoryItem, error) {
	purchase := time.Now().UTC()
	if receipt.PurchasedAt != nil {
		purchase = *receipt.PurchasedAt
	}
	batch := receipt.ID.String()

	items := make([]entity.InventoryItem, 0, len(lines))
	for _, line := range lines {
		if line.MatchedID == nil {
			return nil, fmt.Errorf("line %q has no matched product: %w",
				line.RawText, common.ErrFinalizationFailure)
		}
		product := products[*line.MatchedID]

		item := entity.InventoryItem{
			ID:           uuid.New(),
			ProductID:    *line.MatchedID,
			PurchaseDate: purchase,
			Quantity:     line.Quantity,
			Unit:         InferUnit(line.ProductName),
			Storage:      inferStorage(product),
			BatchID:      batch,
		}

		expiry, err := f.inferExpiry(ctx, purchase, product)
		if err != nil {
			return nil, fmt.Errorf("expiry for line %q: %w (%w)",
				line.RawText, err, common.ErrFinalizationFailure)
		}
		item.ExpiryDate = expiry
		items = append(items, item)
	}

	if err := f.store.CreateBatch(ctx, items); err != nil {
		return nil, fmt.Errorf("persist inventory batch for receipt %s: %w (%w)",
			batch, err, common.ErrFinalizationFailure)
	}

	f.logger.Info("inventory.finalized",
		"receipt_id", batch, "items", len(items))
	return items, nil
}

func (f *Finalizer) inferExpiry(ctx context.Context, purchase time.Time, product *entity.Product) (*time.Time, error) {
	if product == nil || product.CategoryID == nil || f.categories == nil {
		return nil, nil
	}
	offset, err := f.categories.ExpiryOffsetDays(ctx, *product.CategoryID)
	if err != nil {
		return nil, err
	}
	if offset == nil {
		return nil, nil
	}
	expiry := purchase.AddDate(0, 0, *offset)
	return &expiry, nil
}

// unitHints maps name fragments to the unit the store most likely sold in.
// Checked in order; first hit wins.
var unitHints = []struct {
	fragment string
	unit     constants.Unit
}{
	{"kg", constants.UnitKg},
	{"luz", constants.UnitKg}, // sold loose, priced by weight
	{"ml", constants.UnitMl},
	{"woda", constants.UnitLiter},
	{"sok", constants.UnitLiter},
	{"mleko", constants.UnitLiter},
	{"napój", constants.UnitLiter},
	{"napoj", constants.UnitLiter},
	{"opak", constants.UnitPack},
}

// InferUnit guesses the stock unit from the product name. Receipts rarely
// print an explicit unit; an unrecognized name falls back to pieces.
func InferUnit(name string) constants.Unit {
	lower := strings.ToLower(name)
	for _, h := range unitHints {
		if strings.Contains(lower, h.fragment) {
			return h.unit
		}
	}
	return constants.UnitPiece
}

// storageHints routes well-known perishables to cold storage.
var storageHints = []struct {
	fragment string
	location constants.StorageLocation
}{
	{"mleko", constants.StorageFridge},
	{"jogurt", constants.StorageFridge},
	{"ser", constants.StorageFridge},
	{"masło", constants.StorageFridge},
	{"maslo", constants.StorageFridge},
	{"wędlin", constants.StorageFridge},
	{"wedlin", constants.StorageFridge},
	{"mrożon", constants.StorageFreezer},
	{"mrozon", constants.StorageFreezer},
	{"lody", constants.StorageFreezer},
}

func inferStorage(product *entity.Product) constants.StorageLocation {
	if product == nil {
		return constants.StoragePantry
	}
	lower := strings.ToLower(product.Name)
	for _, h := range storageHints {
		if strings.Contains(lower, h.fragment) {
			return h.location
		}
	}
	return constants.StoragePantry
}
