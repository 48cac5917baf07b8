package repository

import (
	"context"
	"time"

	"github.com/kipsang/scanpos-api/internal/domain/entity"
	"github.com/kipsang/scanpos-api/pkg/pagination"
)

// BillRepository defines read access to the bill archive. Bills are
// inserted only through the checkout transaction (see CheckoutStore)
// and never mutated afterwards.
type BillRepository interface {
	GetByID(ctx context.Context, id uint) (*entity.Bill, error)
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
	DailySummary(ctx context.Context, day time.Time, cashierName string) (*DailySummary, error)
}

// BillFilterParams contains filtering parameters for archive queries
type BillFilterParams struct {
	Pagination  *pagination.PaginationParams
	StartDate   *time.Time
	EndDate     *time.Time
	CashierName string
	MinAmount   *float64
	MaxAmount   *float64
}

// DailySummary aggregates one day of bills
type DailySummary struct {
	TotalBills    int64
	SubtotalCents int64
	DiscountCents int64
	TaxCents      int64
	TotalCents    int64
	AvgBillCents  int64
	Payments      []PaymentBreakdown
}

// PaymentBreakdown is the per-payment-method slice of a daily summary
type PaymentBreakdown struct {
	PaymentMethod string
	Count         int64
	TotalCents    int64
}
