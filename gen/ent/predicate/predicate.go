// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// ConsumptionEvent is the predicate function for consumptionevent builders.
type ConsumptionEvent func(*sql.Selector)

// CorrectionPattern is the predicate function for correctionpattern builders.
type CorrectionPattern func(*sql.Selector)

// InventoryItem is the predicate function for inventoryitem builders.
type InventoryItem func(*sql.Selector)

// Product is the predicate function for product builders.
type Product func(*sql.Selector)

// Receipt is the predicate function for receipt builders.
type Receipt func(*sql.Selector)

// ReceiptLineItem is the predicate function for receiptlineitem builders.
type ReceiptLineItem func(*sql.Selector)

// TrainingSample is the predicate function for trainingsample builders.
type TrainingSample func(*sql.Selector)
