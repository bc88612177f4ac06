package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/codemarcinu/pantry-tracker/constants"
	"github.com/codemarcinu/pantry-tracker/internal/entity"
	"github.com/codemarcinu/pantry-tracker/internal/repository"
)

type fakeInventory struct {
	repository.InventoryRepository
	items []entity.InventoryItem
}

func (f *fakeInventory) List(_ context.Context, _ *uuid.UUID, _ *time.Time) ([]entity.InventoryItem, error) {
	return f.items, nil
}

type fakeProducts struct {
	repository.ProductRepository
	products []*entity.Product
}

func (f *fakeProducts) List(_ context.Context, _ bool) ([]*entity.Product, error) {
	return f.products, nil
}

func TestExportInventoryXLSX(t *testing.T) {
	milkID := uuid.New()
	expiry := time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC)

	inv := &fakeInventory{items: []entity.InventoryItem{
		{
			ID:           uuid.New(),
			ProductID:    milkID,
			PurchaseDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			ExpiryDate:   &expiry,
			Quantity:     decimal.RequireFromString("2"),
			Unit:         constants.UnitLiter,
			Storage:      constants.StorageFridge,
			BatchID:      "batch-1",
		},
		{
			ID:           uuid.New(),
			ProductID:    uuid.New(), // not in catalog; falls back to the ID
			PurchaseDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Quantity:     decimal.RequireFromString("1"),
			Unit:         constants.UnitPiece,
			Storage:      constants.StoragePantry,
			BatchID:      "batch-1",
		},
	}}
	prods := &fakeProducts{products: []*entity.Product{
		{ID: milkID, Name: "Mleko UHT 3,2%", Brand: "Łaciate"},
	}}

	svc := NewService(inv, prods, nil)
	data, err := svc.ExportInventoryXLSX(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("ExportInventoryXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Inventory")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 items", len(rows))
	}
	if rows[0][0] != "Product" {
		t.Errorf("header[0] = %q, want Product", rows[0][0])
	}
	if rows[1][0] != "Łaciate Mleko UHT 3,2%" {
		t.Errorf("product cell = %q", rows[1][0])
	}
	if rows[1][5] != "2024-03-29" {
		t.Errorf("expiry cell = %q, want 2024-03-29", rows[1][5])
	}
	// second item has no expiry and an unknown product
	if rows[2][0] != inv.items[1].ProductID.String() {
		t.Errorf("unknown product cell = %q, want product id", rows[2][0])
	}
	if len(rows[2]) > 5 && rows[2][5] != "" {
		t.Errorf("expiry cell = %q, want empty", rows[2][5])
	}
}
