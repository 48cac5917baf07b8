package entity

import (
	"encoding/json"
	"time"

	"github.com/kipsang/scanpos-api/internal/domain/enum"
)

// Bill is a point-in-time receipt. Rows are created only by checkout and
// are never updated or deleted.
type Bill struct {
	ID            uint               `gorm:"primaryKey" json:"bill_id"`
	CashierName   string             `gorm:"size:255" json:"cashier_name,omitempty"`
	SubtotalCents int64              `gorm:"not null;default:0" json:"-"` // Stored in cents
	DiscountCents int64              `gorm:"not null;default:0" json:"-"`
	TaxCents      int64              `gorm:"not null;default:0" json:"-"`
	TotalCents    int64              `gorm:"not null;default:0" json:"-"`
	PaymentMethod enum.PaymentMethod `gorm:"size:50;not null;default:cash" json:"payment_method"`
	RenderedText  string             `gorm:"type:text" json:"-"`
	FilePath      string             `gorm:"size:512" json:"file_path"`
	CreatedAt     time.Time          `gorm:"index" json:"created_at"`
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// GetTotalDecimal returns the total as a decimal
func (b *Bill) GetTotalDecimal() float64 {
	return float64(b.TotalCents) / 100
}

// MarshalJSON converts cents to decimals for API responses
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	return json.Marshal(&struct {
		Alias
		Subtotal       float64 `json:"subtotal"`
		DiscountAmount float64 `json:"discount_amount"`
		TaxAmount      float64 `json:"tax_amount"`
		TotalAmount    float64 `json:"total_amount"`
	}{
		Alias:          Alias(b),
		Subtotal:       float64(b.SubtotalCents) / 100,
		DiscountAmount: float64(b.DiscountCents) / 100,
		TaxAmount:      float64(b.TaxCents) / 100,
		TotalAmount:    float64(b.TotalCents) / 100,
	})
}
