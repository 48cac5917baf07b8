package entity

import (
	"encoding/json"
	"time"
)

// CartLine is one in-progress-sale item. At most one line exists per
// barcode; re-adding the same barcode merges by summing quantity.
type CartLine struct {
	Barcode    string    `gorm:"primaryKey;size:64" json:"barcode"`
	Name       string    `gorm:"size:255;not null" json:"product_name"`
	PriceCents int64     `gorm:"not null;default:0" json:"-"` // Stored in cents
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	Details    string    `gorm:"type:text" json:"details"`
	AddedAt    time.Time `gorm:"column:added_at;index" json:"added_at"`
}

// TableName returns the table name for the CartLine model
func (CartLine) TableName() string {
	return "cart_lines"
}

// GetPriceDecimal returns the unit price as a decimal
func (c *CartLine) GetPriceDecimal() float64 {
	return float64(c.PriceCents) / 100
}

// LineTotalCents returns the rounded per-line total in cents
func (c *CartLine) LineTotalCents() int64 {
	return c.PriceCents * int64(c.Quantity)
}

// MarshalJSON converts CartLine to JSON with decimal amounts
func (c CartLine) MarshalJSON() ([]byte, error) {
	type Alias CartLine
	return json.Marshal(&struct {
		Alias
		Price     float64 `json:"price"`
		LineTotal float64 `json:"line_total"`
	}{
		Alias:     Alias(c),
		Price:     c.GetPriceDecimal(),
		LineTotal: float64(c.LineTotalCents()) / 100,
	})
}
