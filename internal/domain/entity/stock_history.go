package entity

import (
	"time"

	"github.com/google/uuid"
)

// StockHistoryEntry is one row of the append-only stock ledger, written
// whenever a product quantity changes through a tracked path.
// Invariant: NewQuantity = PreviousQuantity + QuantityChange, NewQuantity >= 0.
type StockHistoryEntry struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Barcode          string     `gorm:"size:64;not null;index" json:"barcode"`
	QuantityChange   int        `gorm:"not null" json:"quantity_change"`
	PreviousQuantity int        `gorm:"not null" json:"previous_quantity"`
	NewQuantity      int        `gorm:"not null" json:"new_quantity"`
	Reason           string     `gorm:"size:255" json:"reason"`
	ActorID          *uuid.UUID `gorm:"type:uuid" json:"actor_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// TableName returns the table name for the StockHistoryEntry model
func (StockHistoryEntry) TableName() string {
	return "stock_history"
}
