package service

import (
	"context"
	"os"
	"time"

	"github.com/kipsang/scanpos-api/internal/domain/entity"
	"github.com/kipsang/scanpos-api/internal/domain/repository"
	"github.com/kipsang/scanpos-api/pkg/apperror"
	"github.com/kipsang/scanpos-api/pkg/pagination"
)

// BillService provides read access to the bill archive
type BillService struct {
	billRepo repository.BillRepository
}

// NewBillService creates a new bill service
func NewBillService(billRepo repository.BillRepository) *BillService {
	return &BillService{billRepo: billRepo}
}

// GetBill retrieves a single archived bill
func (s *BillService) GetBill(ctx context.Context, id uint) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// GetBillTicket returns the rendered ticket text of a bill. The archived
// copy in the database is authoritative; the file on disk is a
// convenience artifact.
func (s *BillService) GetBillTicket(ctx context.Context, id uint) (string, error) {
	bill, err := s.GetBill(ctx, id)
	if err != nil {
		return "", err
	}
	if bill.RenderedText != "" {
		return bill.RenderedText, nil
	}

	data, err := os.ReadFile(bill.FilePath)
	if err != nil {
		return "", apperror.NewNotFoundError("Bill ticket file")
	}
	return string(data), nil
}

// ListBills retrieves archived bills matching the given filters,
// newest first
func (s *BillService) ListBills(ctx context.Context, params *repository.BillFilterParams) (*pagination.PaginatedResult[entity.Bill], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	if params.StartDate != nil && params.EndDate != nil && params.EndDate.Before(*params.StartDate) {
		return nil, apperror.NewBadRequestError("end_date must not be before start_date")
	}
	if params.MinAmount != nil && *params.MinAmount < 0 {
		return nil, apperror.NewBadRequestError("min_amount must not be negative")
	}
	if params.MinAmount != nil && params.MaxAmount != nil && *params.MaxAmount < *params.MinAmount {
		return nil, apperror.NewBadRequestError("max_amount must not be less than min_amount")
	}

	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bills, meta), nil
}

// DailyReport is the sales summary for a single day
type DailyReport struct {
	Date          string               `json:"date"`
	CashierName   string               `json:"cashier_name,omitempty"`
	TotalBills    int64                `json:"total_bills"`
	Subtotal      float64              `json:"subtotal"`
	Discount      float64              `json:"discount"`
	Tax           float64              `json:"tax"`
	Total         float64              `json:"total"`
	AvgBillAmount float64              `json:"avg_bill_amount"`
	Payments      []DailyReportPayment `json:"payments"`
}

// DailyReportPayment is the per-payment-method slice of a daily report
type DailyReportPayment struct {
	PaymentMethod string  `json:"payment_method"`
	Count         int64   `json:"count"`
	Total         float64 `json:"total"`
}

// GetDailyReport aggregates bills for one calendar day, optionally
// limited to a single cashier
func (s *BillService) GetDailyReport(ctx context.Context, day time.Time, cashierName string) (*DailyReport, error) {
	summary, err := s.billRepo.DailySummary(ctx, day, cashierName)
	if err != nil {
		return nil, err
	}

	report := &DailyReport{
		Date:          day.Format("2006-01-02"),
		CashierName:   cashierName,
		TotalBills:    summary.TotalBills,
		Subtotal:      centsToDecimal(summary.SubtotalCents),
		Discount:      centsToDecimal(summary.DiscountCents),
		Tax:           centsToDecimal(summary.TaxCents),
		Total:         centsToDecimal(summary.TotalCents),
		AvgBillAmount: centsToDecimal(summary.AvgBillCents),
		Payments:      make([]DailyReportPayment, 0, len(summary.Payments)),
	}
	for _, p := range summary.Payments {
		report.Payments = append(report.Payments, DailyReportPayment{
			PaymentMethod: p.PaymentMethod,
			Count:         p.Count,
			Total:         centsToDecimal(p.TotalCents),
		})
	}
	return report, nil
}

// centsToDecimal converts a cent amount to a decimal
func centsToDecimal(cents int64) float64 {
	return float64(cents) / 100
}
