package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kipsang/scanpos-api/internal/domain/entity"
	"github.com/kipsang/scanpos-api/internal/domain/enum"
	"github.com/kipsang/scanpos-api/internal/domain/repository"
	infraRepo "github.com/kipsang/scanpos-api/internal/infrastructure/repository"
	"github.com/kipsang/scanpos-api/pkg/apperror"
)

func seedBill(t *testing.T, db *gorm.DB, cashier string, totalCents int64, method enum.PaymentMethod, at time.Time) *entity.Bill {
	t.Helper()

	bill := &entity.Bill{
		CashierName:   cashier,
		SubtotalCents: totalCents,
		TotalCents:    totalCents,
		PaymentMethod: method,
		CreatedAt:     at,
	}
	require.NoError(t, db.Create(bill).Error)
	return bill
}

func TestGetBill(t *testing.T) {
	db := newTestDB(t)
	svc := NewBillService(infraRepo.NewBillRepository(db))

	seeded := seedBill(t, db, "alice", 1000, enum.PaymentMethodCash, time.Now())

	bill, err := svc.GetBill(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, bill.ID)

	_, err = svc.GetBill(context.Background(), 9999)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestListBillsFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewBillService(infraRepo.NewBillRepository(db))

	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedBill(t, db, "alice", 1000, enum.PaymentMethodCash, day)
	seedBill(t, db, "bob", 5000, enum.PaymentMethodCard, day.Add(2*time.Hour))
	seedBill(t, db, "alice", 300, enum.PaymentMethodCash, day.AddDate(0, 0, -3))

	byCashier, err := svc.ListBills(context.Background(), &repository.BillFilterParams{
		CashierName: "alice",
	})
	require.NoError(t, err)
	assert.Len(t, byCashier.Items, 2)

	start := day.Truncate(24 * time.Hour)
	byDate, err := svc.ListBills(context.Background(), &repository.BillFilterParams{
		StartDate: &start,
	})
	require.NoError(t, err)
	assert.Len(t, byDate.Items, 2)

	byAmount, err := svc.ListBills(context.Background(), &repository.BillFilterParams{
		MinAmount: floatPtr(9),
		MaxAmount: floatPtr(60),
	})
	require.NoError(t, err)
	require.Len(t, byAmount.Items, 2)
	// Newest first
	assert.Equal(t, int64(5000), byAmount.Items[0].TotalCents)

	// A bound equal to a bill total matches it exactly; the cent
	// conversion cannot lose a cent to float truncation
	seedBill(t, db, "carol", 1999, enum.PaymentMethodCash, day.Add(time.Hour))
	exact, err := svc.ListBills(context.Background(), &repository.BillFilterParams{
		MinAmount: floatPtr(19.99),
		MaxAmount: floatPtr(19.99),
	})
	require.NoError(t, err)
	require.Len(t, exact.Items, 1)
	assert.Equal(t, int64(1999), exact.Items[0].TotalCents)

	end := day.AddDate(0, 0, -5)
	_, err = svc.ListBills(context.Background(), &repository.BillFilterParams{
		StartDate: &start,
		EndDate:   &end,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestDailyReportAggregates(t *testing.T) {
	db := newTestDB(t)
	svc := NewBillService(infraRepo.NewBillRepository(db))

	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	seedBill(t, db, "alice", 1000, enum.PaymentMethodCash, day)
	seedBill(t, db, "alice", 3000, enum.PaymentMethodCard, day.Add(time.Hour))
	seedBill(t, db, "bob", 2000, enum.PaymentMethodCash, day.Add(2*time.Hour))
	// Outside the day window
	seedBill(t, db, "alice", 9900, enum.PaymentMethodCash, day.AddDate(0, 0, 1))

	report, err := svc.GetDailyReport(context.Background(), day, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), report.TotalBills)
	assert.InDelta(t, 60.00, report.Total, 0.001)
	assert.InDelta(t, 20.00, report.AvgBillAmount, 0.001)
	require.Len(t, report.Payments, 2)

	filtered, err := svc.GetDailyReport(context.Background(), day, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), filtered.TotalBills)
	assert.InDelta(t, 40.00, filtered.Total, 0.001)

	empty, err := svc.GetDailyReport(context.Background(), day.AddDate(0, 1, 0), "")
	require.NoError(t, err)
	assert.Zero(t, empty.TotalBills)
	assert.Zero(t, empty.Total)
}
