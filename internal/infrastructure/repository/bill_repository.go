package repository

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/kipsang/scanpos-api/internal/domain/entity"
	domainRepo "github.com/kipsang/scanpos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill archive repository
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) GetByID(ctx context.Context, id uint) (*entity.Bill, error) {
	var bill entity.Bill
	err := r.db.WithContext(ctx).First(&bill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) List(ctx context.Context, params *domainRepo.BillFilterParams) ([]entity.Bill, int64, error) {
	var bills []entity.Bill
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Bill{})

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at < ?", *params.EndDate)
	}

	if params.CashierName != "" {
		query = query.Where("LOWER(cashier_name) LIKE LOWER(?)", "%"+params.CashierName+"%")
	}

	if params.MinAmount != nil {
		query = query.Where("total_cents >= ?", int64(math.Round(*params.MinAmount*100)))
	}

	if params.MaxAmount != nil {
		query = query.Where("total_cents <= ?", int64(math.Round(*params.MaxAmount*100)))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC, id DESC").
		Find(&bills).Error

	return bills, total, err
}

func (r *billRepository) DailySummary(ctx context.Context, day time.Time, cashierName string) (*domainRepo.DailySummary, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	query := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd)

	if cashierName != "" {
		query = query.Where("cashier_name = ?", cashierName)
	}

	var agg struct {
		TotalBills    int64
		SubtotalCents int64
		DiscountCents int64
		TaxCents      int64
		TotalCents    int64
	}
	err := query.Select(
		"COUNT(*) AS total_bills, " +
			"COALESCE(SUM(subtotal_cents), 0) AS subtotal_cents, " +
			"COALESCE(SUM(discount_cents), 0) AS discount_cents, " +
			"COALESCE(SUM(tax_cents), 0) AS tax_cents, " +
			"COALESCE(SUM(total_cents), 0) AS total_cents").
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}

	summary := &domainRepo.DailySummary{
		TotalBills:    agg.TotalBills,
		SubtotalCents: agg.SubtotalCents,
		DiscountCents: agg.DiscountCents,
		TaxCents:      agg.TaxCents,
		TotalCents:    agg.TotalCents,
	}
	if agg.TotalBills > 0 {
		summary.AvgBillCents = agg.TotalCents / agg.TotalBills
	}

	breakdownQuery := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd)
	if cashierName != "" {
		breakdownQuery = breakdownQuery.Where("cashier_name = ?", cashierName)
	}

	var payments []struct {
		PaymentMethod string
		Count         int64
		TotalCents    int64
	}
	err = breakdownQuery.
		Select("payment_method, COUNT(*) AS count, COALESCE(SUM(total_cents), 0) AS total_cents").
		Group("payment_method").
		Scan(&payments).Error
	if err != nil {
		return nil, err
	}

	for _, p := range payments {
		summary.Payments = append(summary.Payments, domainRepo.PaymentBreakdown{
			PaymentMethod: p.PaymentMethod,
			Count:         p.Count,
			TotalCents:    p.TotalCents,
		})
	}

	return summary, nil
}
