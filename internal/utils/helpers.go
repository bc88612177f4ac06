package utils

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/codemarcinu/pantry-tracker/constants"
	"github.com/codemarcinu/pantry-tracker/gen/ent"
	pantrypb "github.com/codemarcinu/pantry-tracker/gen/proto/pantry/v1"
	"github.com/codemarcinu/pantry-tracker/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func decPtr(p *float64) *decimal.Decimal {
	if p == nil {
		return nil
	}
	d := decimal.NewFromFloat(*p)
	return &d
}

// ToReceipt converts an ent row to the transport-neutral entity.
func ToReceipt(r *ent.Receipt) *entity.Receipt {
	return &entity.Receipt{
		ID:              r.ID,
		StoreName:       r.StoreName,
		PurchasedAt:     r.PurchasedAt,
		Total:           decPtr(r.Total),
		Currency:        r.Currency,
		RawExtraction:   r.RawExtraction,
		SourcePath:      r.SourcePath,
		ContentHash:     r.ContentHash,
		Status:          constants.ReceiptStatus(r.Status),
		ProcessingNotes: r.ProcessingNotes,
		TotalDiff:       decPtr(r.TotalDiff),
		Cancelled:       r.Cancelled,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func ToLineItem(l *ent.ReceiptLineItem) entity.LineItem {
	return entity.LineItem{
		ID:          l.ID,
		ReceiptID:   l.ReceiptID,
		RawText:     l.RawText,
		ProductName: l.ProductName,
		Quantity:    decimal.NewFromFloat(l.Quantity),
		UnitPrice:   decimal.NewFromFloat(l.UnitPrice),
		LineTotal:   decimal.NewFromFloat(l.LineTotal),
		VATCode:     l.VatCode,
		MatchedID:   l.MatchedProductID,
		Meta:        l.Meta,
	}
}

func ToProduct(p *ent.Product) *entity.Product {
	return &entity.Product{
		ID:         p.ID,
		Name:       p.Name,
		Brand:      p.Brand,
		Barcode:    p.Barcode,
		CategoryID: p.CategoryID,
		IsActive:   p.IsActive,
		Aliases:    p.Aliases,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func ToInventoryItem(i *ent.InventoryItem) entity.InventoryItem {
	return entity.InventoryItem{
		ID:           i.ID,
		ProductID:    i.ProductID,
		PurchaseDate: i.PurchaseDate,
		ExpiryDate:   i.ExpiryDate,
		Quantity:     decimal.NewFromFloat(i.QuantityRemaining),
		Unit:         constants.Unit(i.Unit),
		Storage:      constants.StorageLocation(i.StorageLocation),
		BatchID:      i.BatchID,
		CreatedAt:    i.CreatedAt,
	}
}

func ToPattern(p *ent.CorrectionPattern) entity.CorrectionPattern {
	return entity.CorrectionPattern{
		ID:               p.ID,
		ErrorPattern:     p.ErrorPattern,
		CorrectPattern:   p.CorrectPattern,
		IsRegex:          p.IsRegex,
		Confidence:       p.Confidence,
		TimesApplied:     p.TimesApplied,
		SampleCount:      p.SampleCount,
		IsActive:         p.IsActive,
		HumanDeactivated: p.HumanDeactivated,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func ToPBReceiptFromEntity(r *entity.Receipt) *pantrypb.Receipt {
	pb := &pantrypb.Receipt{
		Id:              r.ID.String(),
		StoreName:       strOrEmpty(r.StoreName),
		Currency:        r.Currency,
		Status:          string(r.Status),
		ProcessingNotes: r.ProcessingNotes,
		SourcePath:      r.SourcePath,
		Cancelled:       r.Cancelled,
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if r.PurchasedAt != nil {
		pb.PurchasedAt = r.PurchasedAt.UTC().Format(time.RFC3339)
	}
	if r.Total != nil {
		pb.Total = r.Total.StringFixed(2)
	}
	if r.TotalDiff != nil {
		pb.TotalDiff = r.TotalDiff.StringFixed(2)
	}
	return pb
}

func ToPBLineItem(l *entity.LineItem) *pantrypb.LineItem {
	pb := &pantrypb.LineItem{
		Id:          l.ID.String(),
		ReceiptId:   l.ReceiptID.String(),
		RawText:     l.RawText,
		ProductName: l.ProductName,
		Quantity:    l.Quantity.String(),
		UnitPrice:   l.UnitPrice.StringFixed(2),
		LineTotal:   l.LineTotal.StringFixed(2),
		VatCode:     strOrEmpty(l.VATCode),
	}
	if l.MatchedID != nil {
		pb.MatchedProductId = l.MatchedID.String()
	}
	if len(l.Meta) > 0 {
		pb.Meta = string(l.Meta)
	}
	return pb
}

func ToPBProduct(p *entity.Product) *pantrypb.Product {
	pb := &pantrypb.Product{
		Id:       p.ID.String(),
		Name:     p.Name,
		Brand:    p.Brand,
		Barcode:  strOrEmpty(p.Barcode),
		IsActive: p.IsActive,
		Aliases:  p.Aliases,
	}
	if p.CategoryID != nil {
		pb.CategoryId = p.CategoryID.String()
	}
	return pb
}

func ToPBInventoryItem(i *entity.InventoryItem) *pantrypb.InventoryItem {
	pb := &pantrypb.InventoryItem{
		Id:           i.ID.String(),
		ProductId:    i.ProductID.String(),
		PurchaseDate: i.PurchaseDate.Format("2006-01-02"),
		Quantity:     i.Quantity.String(),
		Unit:         string(i.Unit),
		Storage:      string(i.Storage),
		BatchId:      i.BatchID,
	}
	if i.ExpiryDate != nil {
		pb.ExpiryDate = i.ExpiryDate.Format("2006-01-02")
	}
	return pb
}

func ToPBPattern(p *entity.CorrectionPattern) *pantrypb.CorrectionPattern {
	return &pantrypb.CorrectionPattern{
		Id:               p.ID.String(),
		ErrorPattern:     p.ErrorPattern,
		CorrectPattern:   p.CorrectPattern,
		IsRegex:          p.IsRegex,
		Confidence:       p.Confidence,
		TimesApplied:     int32(p.TimesApplied),
		SampleCount:      int32(p.SampleCount),
		IsActive:         p.IsActive,
		HumanDeactivated: p.HumanDeactivated,
	}
}

// ParseYMD parses a calendar date, normalized to midnight UTC to match DATE
// column semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
