package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog entry. A ghost product (IsActive=false) is an
// auto-created placeholder for an unmatched receipt line; its aliases
// accumulate raw receipt strings to improve future matches.
type Product struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Brand      string     `json:"brand,omitempty"`
	Barcode    *string    `json:"barcode,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	IsActive   bool       `json:"is_active"`
	Aliases    []string   `json:"aliases,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// AllNames returns every name the product may appear under on a receipt.
func (p *Product) AllNames() []string {
	names := make([]string, 0, len(p.Aliases)+2)
	names = append(names, p.Name)
	if p.Brand != "" {
		names = append(names, p.Brand+" "+p.Name)
	}
	names = append(names, p.Aliases...)
	return names
}

// Category is a hierarchical product grouping carrying expiry-inference
// metadata consumed by the inventory finalizer.
type Category struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	ParentID *uuid.UUID     `json:"parent_id,omitempty"`
	Meta     CategoryMeta   `json:"meta"`
}

// CategoryMeta holds per-category knobs read by the pipeline.
type CategoryMeta struct {
	// ExpiryOffsetDays is added to the purchase date to infer expiry.
	// Zero means not configured: expiry stays unknown.
	ExpiryOffsetDays int `json:"expiry_offset_days,omitempty"`
}
