package entity

import (
	"time"

	"github.com/google/uuid"
)

// CorrectionPattern is a learned text rewrite rule applied to raw OCR lines
// before parsing. Patterns are deactivated, never deleted, to preserve the
// audit trail.
type CorrectionPattern struct {
	ID             uuid.UUID `json:"id"`
	ErrorPattern   string    `json:"error_pattern"`
	CorrectPattern string    `json:"correct_pattern"`
	IsRegex        bool      `json:"is_regex"`
	Confidence     float64   `json:"confidence"`
	TimesApplied   int       `json:"times_applied"`
	SampleCount    int       `json:"sample_count"`
	IsActive       bool      `json:"is_active"`
	// HumanDeactivated marks patterns switched off by an operator; the
	// learning service must never re-promote these.
	HumanDeactivated bool      `json:"human_deactivated"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TrainingSample pairs weak-engine and strong-engine text for one receipt.
// Append-only; used only to regenerate correction patterns.
type TrainingSample struct {
	ID         uuid.UUID `json:"id"`
	ReceiptID  uuid.UUID `json:"receipt_id"`
	WeakText   string    `json:"weak_text"`
	StrongText string    `json:"strong_text"`
	CreatedAt  time.Time `json:"created_at"`
}
