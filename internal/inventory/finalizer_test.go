package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/codemarcinu/pantry-tracker/constants"
	"github.com/codemarcinu/pantry-tracker/internal/common"
	"github.com/codemarcinu/pantry-tracker/internal/entity"
)

type fakeStore struct {
	batches [][]entity.InventoryItem
	err     error
}

func (f *fakeStore) CreateBatch(_ context.Context, items []entity.InventoryItem) error {
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, items)
	return nil
}

func (f *fakeStore) BatchExists(_ context.Context, _ string) (bool, error) {
	return len(f.batches) > 0, nil
}

type fakeCategories struct {
	offsets map[uuid.UUID]int
}

func (f *fakeCategories) ExpiryOffsetDays(_ context.Context, id uuid.UUID) (*int, error) {
	if d, ok := f.offsets[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func line(name string, qty string, productID uuid.UUID) entity.LineItem {
	id := productID
	return entity.LineItem{
		ID:          uuid.New(),
		RawText:     name,
		ProductName: name,
		Quantity:    decimal.RequireFromString(qty),
		MatchedID:   &id,
	}
}

func TestFinalize(t *testing.T) {
	dairyCat := uuid.New()
	purchase := time.Date(2024, 3, 15, 14, 32, 0, 0, time.UTC)

	milkID := uuid.New()
	milk := &entity.Product{ID: milkID, Name: "Mleko UHT", CategoryID: &dairyCat, IsActive: true}
	snackID := uuid.New()
	snack := &entity.Product{ID: snackID, Name: "Baton Protein Nuts", IsActive: true}

	receipt := &entity.Receipt{ID: uuid.New(), PurchasedAt: &purchase}
	store := &fakeStore{}
	f := NewFinalizer(store, &fakeCategories{offsets: map[uuid.UUID]int{dairyCat: 14}}, nil)

	items, err := f.Finalize(context.Background(), receipt,
		[]entity.LineItem{
			line("Mleko UHT", "1", milkID),
			line("Baton Protein Nuts", "2", snackID),
		},
		map[uuid.UUID]*entity.Product{milkID: milk, snackID: snack},
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d", len(items))
	}

	got := items[0]
	if got.ProductID != milkID {
		t.Errorf("product = %s", got.ProductID)
	}
	if !got.PurchaseDate.Equal(purchase) {
		t.Errorf("purchase date = %v", got.PurchaseDate)
	}
	wantExpiry := purchase.AddDate(0, 0, 14)
	if got.ExpiryDate == nil || !got.ExpiryDate.Equal(wantExpiry) {
		t.Errorf("expiry = %v, want %v", got.ExpiryDate, wantExpiry)
	}
	if got.Unit != constants.UnitLiter {
		t.Errorf("unit = %q", got.Unit)
	}
	if got.Storage != constants.StorageFridge {
		t.Errorf("storage = %q", got.Storage)
	}
	if got.BatchID != receipt.ID.String() {
		t.Errorf("batch = %q", got.BatchID)
	}

	// No category on the snack: expiry stays unknown, never guessed.
	if items[1].ExpiryDate != nil {
		t.Errorf("snack expiry = %v, want nil", items[1].ExpiryDate)
	}
	if items[1].Unit != constants.UnitPiece {
		t.Errorf("snack unit = %q", items[1].Unit)
	}

	if len(store.batches) != 1 {
		t.Errorf("batches = %d, want one transactional write", len(store.batches))
	}
}

func TestFinalizeStoreFailure(t *testing.T) {
	productID := uuid.New()
	receipt := &entity.Receipt{ID: uuid.New()}
	store := &fakeStore{err: errors.New("connection reset")}
	f := NewFinalizer(store, nil, nil)

	_, err := f.Finalize(context.Background(), receipt,
		[]entity.LineItem{line("Mleko", "1", productID)},
		map[uuid.UUID]*entity.Product{productID: {ID: productID, Name: "Mleko"}},
	)
	if !errors.Is(err, common.ErrFinalizationFailure) {
		t.Errorf("err = %v", err)
	}
}

func TestFinalizeUnmatchedLineFails(t *testing.T) {
	receipt := &entity.Receipt{ID: uuid.New()}
	store := &fakeStore{}
	f := NewFinalizer(store, nil, nil)

	_, err := f.Finalize(context.Background(), receipt,
		[]entity.LineItem{{ID: uuid.New(), RawText: "Mleko", Quantity: decimal.NewFromInt(1)}},
		nil,
	)
	if !errors.Is(err, common.ErrFinalizationFailure) {
		t.Errorf("err = %v", err)
	}
	if len(store.batches) != 0 {
		t.Error("batch written despite failure")
	}
}

func TestInferUnit(t *testing.T) {
	tests := []struct {
		name string
		want constants.Unit
	}{
		{"Mleko UHT 3,2%", constants.UnitLiter},
		{"Banany luz", constants.UnitKg},
		{"Sok pomarańczowy", constants.UnitLiter},
		{"Baton Protein Nuts", constants.UnitPiece},
	}
	for _, tt := range tests {
		if got := InferUnit(tt.name); got != tt.want {
			t.Errorf("InferUnit(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
