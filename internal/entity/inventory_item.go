package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/codemarcinu/pantry-tracker/constants"
)

// InventoryItem is one stock entry created from a matched receipt line.
// The pipeline never mutates it after creation; consumption events
// (external) decrement the remaining quantity.
type InventoryItem struct {
	ID           uuid.UUID                 `json:"id"`
	ProductID    uuid.UUID                 `json:"product_id"`
	PurchaseDate time.Time                 `json:"purchase_date"`
	ExpiryDate   *time.Time                `json:"expiry_date,omitempty"`
	Quantity     decimal.Decimal           `json:"quantity_remaining"`
	Unit         constants.Unit            `json:"unit"`
	Storage      constants.StorageLocation `json:"storage_location"`
	BatchID      string                    `json:"batch_id,omitempty"`
	CreatedAt    time.Time                 `json:"created_at"`
}

// Expired reports whether the item is past its expiry date at the given time.
func (i *InventoryItem) Expired(now time.Time) bool {
	return i.ExpiryDate != nil && now.After(*i.ExpiryDate)
}
