package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/codemarcinu/pantry-tracker/constants"
)

// Receipt represents an uploaded receipt document for data transfer between layers.
type Receipt struct {
	ID              uuid.UUID               `json:"id"`
	StoreName       *string                 `json:"store_name,omitempty"`
	PurchasedAt     *time.Time              `json:"purchased_at,omitempty"`
	Total           *decimal.Decimal        `json:"total,omitempty"`
	Currency        string                  `json:"currency"`
	RawExtraction   json.RawMessage         `json:"raw_extraction,omitempty"`
	SourcePath      string                  `json:"source_path"`
	ContentHash     string                  `json:"content_hash,omitempty"`
	Status          constants.ReceiptStatus `json:"status"`
	ProcessingNotes string                  `json:"processing_notes"`
	TotalDiff       *decimal.Decimal        `json:"total_diff,omitempty"`
	Cancelled       bool                    `json:"cancelled"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// LineItem is one parsed candidate row from a receipt. Owned by its receipt;
// immutable after matching except for the matched-product link.
type LineItem struct {
	ID           uuid.UUID       `json:"id"`
	ReceiptID    uuid.UUID       `json:"receipt_id"`
	RawText      string          `json:"raw_text"`
	ProductName  string          `json:"product_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	LineTotal    decimal.Decimal `json:"line_total"`
	VATCode      *string         `json:"vat_code,omitempty"`
	MatchedID    *uuid.UUID      `json:"matched_product_id,omitempty"`
	Meta         json.RawMessage `json:"meta,omitempty"`
}
