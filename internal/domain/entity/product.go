package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Product represents an inventory record keyed by its barcode. The
// barcode is immutable once the row exists.
type Product struct {
	Barcode      string     `gorm:"primaryKey;size:64" json:"barcode"`
	Name         string     `gorm:"size:255;not null" json:"product_name"`
	PriceCents   int64      `gorm:"not null;default:0" json:"-"` // Stored in cents
	Quantity     int        `gorm:"not null;default:0" json:"quantity"`
	Details      string     `gorm:"type:text" json:"details"`
	ReorderPoint int        `gorm:"not null;default:0" json:"reorder_point"`
	CategoryID   *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	LastModified time.Time  `gorm:"column:last_modified;autoUpdateTime" json:"last_modified"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPriceDecimal returns the price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.PriceCents) / 100
}

// SetPriceFromDecimal sets the price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.PriceCents = int64(price*100 + 0.5)
}

// IsLowStock reports whether the product sits at or below its reorder point
func (p *Product) IsLowStock() bool {
	return p.ReorderPoint > 0 && p.Quantity <= p.ReorderPoint
}

// MarshalJSON converts Product to JSON with a decimal price and the
// low-stock flag
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		Price      float64 `json:"price"`
		IsLowStock bool    `json:"is_low_stock"`
	}{
		Alias:      Alias(p),
		Price:      p.GetPriceDecimal(),
		IsLowStock: p.IsLowStock(),
	})
}
