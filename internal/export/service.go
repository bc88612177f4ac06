package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/codemarcinu/pantry-tracker/internal/entity"
	"github.com/codemarcinu/pantry-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	inventoryRepo repository.InventoryRepository
	productsRepo  repository.ProductRepository
	logger        *slog.Logger
}

func NewService(inv repository.InventoryRepository, prods repository.ProductRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{inventoryRepo: inv, productsRepo: prods, logger: logger}
}

// ExportInventoryXLSX returns an XLSX workbook (as bytes) listing current
// stock. If expiringBefore is set, only items expiring on or before that
// date are included.
func (s *Service) ExportInventoryXLSX(ctx context.Context, productID *uuid.UUID, expiringBefore *time.Time) ([]byte, error) {
	start := time.Now()

	var cutoff *time.Time
	if expiringBefore != nil {
		c := time.Date(expiringBefore.Year(), expiringBefore.Month(), expiringBefore.Day(), 23, 59, 59, 0, time.UTC)
		cutoff = &c
	}

	items, err := s.inventoryRepo.List(ctx, productID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}

	// Resolve product names once; the catalog is small compared to stock.
	names := make(map[uuid.UUID]string)
	products, err := s.productsRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	for _, p := range products {
		names[p.ID] = productLabel(p)
	}

	f := excelize.NewFile()
	const sheet = "Inventory"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Product",
		"Quantity",
		"Unit",
		"Storage",
		"Purchase Date",
		"Expiry Date",
		"Batch",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, it := range items {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		name := names[it.ProductID]
		if name == "" {
			name = it.ProductID.String()
		}
		write(1, name)
		write(2, it.Quantity.String())
		write(3, string(it.Unit))
		write(4, string(it.Storage))
		write(5, it.PurchaseDate.Format("2006-01-02"))
		if it.ExpiryDate != nil {
			write(6, it.ExpiryDate.Format("2006-01-02"))
		} else {
			write(6, "")
		}
		write(7, it.BatchID)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32) // product
	_ = f.SetColWidth(sheet, "B", "C", 10) // quantity, unit
	_ = f.SetColWidth(sheet, "D", "D", 12) // storage
	_ = f.SetColWidth(sheet, "E", "F", 14) // dates
	_ = f.SetColWidth(sheet, "G", "G", 38) // batch

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func productLabel(p *entity.Product) string {
	if p.Brand != "" {
		return p.Brand + " " + p.Name
	}
	return p.Name
}
