package constants

// ReceiptStatus is the canonical pipeline status for rows in receipts.
type ReceiptStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPendingOCR          ReceiptStatus = "pending_ocr"
	StatusOCRInProgress       ReceiptStatus = "ocr_in_progress"
	StatusOCRCompleted        ReceiptStatus = "ocr_completed"
	StatusParsingInProgress   ReceiptStatus = "parsing_in_progress"
	StatusParsingCompleted    ReceiptStatus = "parsing_completed"
	StatusMatchingInProgress  ReceiptStatus = "matching_in_progress"
	StatusMatchingCompleted   ReceiptStatus = "matching_completed"
	StatusFinalizingInventory ReceiptStatus = "finalizing_inventory"
	StatusCompleted           ReceiptStatus = "completed"
	StatusReviewPending       ReceiptStatus = "review_pending"
	StatusError               ReceiptStatus = "error"
	StatusCancelled           ReceiptStatus = "cancelled"
)

// nextStatus holds the single forward transition out of each state.
// review_pending, error and cancelled are reachable from any in-progress
// state and are not listed here.
var nextStatus = map[ReceiptStatus]ReceiptStatus{
	StatusPendingOCR:          StatusOCRInProgress,
	StatusOCRInProgress:       StatusOCRCompleted,
	StatusOCRCompleted:        StatusParsingInProgress,
	StatusParsingInProgress:   StatusParsingCompleted,
	StatusParsingCompleted:    StatusMatchingInProgress,
	StatusMatchingInProgress:  StatusMatchingCompleted,
	StatusMatchingCompleted:   StatusFinalizingInventory,
	StatusFinalizingInventory: StatusCompleted,
}

// Next returns the forward transition target for s, if one exists.
func (s ReceiptStatus) Next() (ReceiptStatus, bool) {
	n, ok := nextStatus[s]
	return n, ok
}

// Terminal reports whether no further pipeline work may happen in s.
// review_pending is not terminal: an external reprocess may resume it.
func (s ReceiptStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusError || s == StatusCancelled
}

// CanTransition validates a move from s to to. Transitions are one-directional;
// side branches (review_pending, error, cancelled) are allowed from any
// non-terminal state. A reviewed receipt resumes either into finalization
// (stock not yet written) or straight to completed (stock already written).
func (s ReceiptStatus) CanTransition(to ReceiptStatus) bool {
	if s.Terminal() {
		return false
	}
	switch to {
	case StatusReviewPending, StatusError, StatusCancelled:
		return true
	}
	if s == StatusReviewPending {
		return to == StatusFinalizingInventory || to == StatusCompleted
	}
	n, ok := nextStatus[s]
	return ok && n == to
}
