package request

// GenerateBillRequest represents a checkout request. Discount and tax
// are optional; a fixed discount amount takes precedence over a
// percentage when both are supplied.
type GenerateBillRequest struct {
	CashierName     string   `json:"cashier_name" binding:"omitempty,max=255"`
	DiscountPercent *float64 `json:"discount_percent" binding:"omitempty,min=0,max=100"`
	DiscountAmount  *float64 `json:"discount_amount" binding:"omitempty,min=0"`
	TaxPercent      *float64 `json:"tax_percent" binding:"omitempty,min=0,max=100"`
	PaymentMethod   string   `json:"payment_method"`
}

// BillFilterRequest represents bill archive filter parameters. Dates
// use the 2006-01-02 layout.
type BillFilterRequest struct {
	StartDate   string   `form:"start_date"`
	EndDate     string   `form:"end_date"`
	CashierName string   `form:"cashier_name"`
	MinAmount   *float64 `form:"min_amount"`
	MaxAmount   *float64 `form:"max_amount"`
	Page        int      `form:"page"`
	PerPage     int      `form:"page_size"`
}
