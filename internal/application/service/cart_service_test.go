package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kipsang/scanpos-api/pkg/apperror"
)

func TestAddToCartDefaultsFromProduct(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "1111", "Milk", 250, 10)
	svc := newTestCartService(t, db)

	line, err := svc.AddOrMerge(context.Background(), &AddCartLineInput{Barcode: "1111"})
	require.NoError(t, err)

	assert.Equal(t, "Milk", line.Name)
	assert.Equal(t, int64(250), line.PriceCents)
	assert.Equal(t, 1, line.Quantity)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newTestCartService(t, db)

	_, err := svc.AddOrMerge(context.Background(), &AddCartLineInput{Barcode: "9999"})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestAddToCartInvalidBarcode(t *testing.T) {
	db := newTestDB(t)
	svc := newTestCartService(t, db)

	_, err := svc.AddOrMerge(context.Background(), &AddCartLineInput{Barcode: "has spaces"})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestRescanMergesIntoExistingLine(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "1111", "Milk", 250, 10)
	svc := newTestCartService(t, db)

	first, err := svc.AddOrMerge(context.Background(), &AddCartLineInput{
		Barcode:  "1111",
		Quantity: intPtr(2),
	})
	require.NoError(t, err)

	// Re-scan with no explicit fields: quantity sums, the rest stays
	merged, err := svc.AddOrMerge(context.Background(), &AddCartLineInput{Barcode: "1111"})
	require.NoError(t, err)

	assert.Equal(t, 3, merged.Quantity)
	assert.Equal(t, "Milk", merged.Name)
	assert.Equal(t, int64(250), merged.PriceCents)
	assert.False(t, merged.AddedAt.Before(first.AddedAt))

	// Only one line exists for the barcode
	lines, _, err := svc.ListLines(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 1)
}

func TestRescanOverridesOnlySuppliedFields(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "1111", "Milk", 250, 10)
	svc := newTestCartService(t, db)

	_, err := svc.AddOrMerge(context.Background(), &AddCartLineInput{Barcode: "1111"})
	require.NoError(t, err)

	merged, err := svc.AddOrMerge(context.Background(), &AddCartLineInput{
		Barcode: "1111",
		Price:   floatPtr(1.99),
		Details: "promo price",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, merged.Quantity)
	assert.Equal(t, int64(199), merged.PriceCents)
	assert.Equal(t, "Milk", merged.Name)
	assert.Equal(t, "promo price", merged.Details)
}

func TestUpdateCartLine(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "1111", "Milk", 250, 10)
	svc := newTestCartService(t, db)
	addToCart(t, svc, "1111", 1)

	line, err := svc.UpdateLine(context.Background(), "1111", &UpdateCartLineInput{
		Quantity: intPtr(4),
		Name:     strPtr("Whole Milk"),
	})
	require.NoError(t, err)
	assert.Equal(t, 4, line.Quantity)
	assert.Equal(t, "Whole Milk", line.Name)

	_, err = svc.UpdateLine(context.Background(), "1111", &UpdateCartLineInput{
		Quantity: intPtr(0),
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	_, err = svc.UpdateLine(context.Background(), "9999", &UpdateCartLineInput{})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestRemoveCartLine(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "1111", "Milk", 250, 10)
	svc := newTestCartService(t, db)
	addToCart(t, svc, "1111", 1)

	require.NoError(t, svc.RemoveLine(context.Background(), "1111"))

	err := svc.RemoveLine(context.Background(), "1111")
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestListLinesComputesTotal(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "1111", "Milk", 250, 10)
	seedProduct(t, db, "2222", "Bread", 199, 10)
	svc := newTestCartService(t, db)
	addToCart(t, svc, "1111", 2)
	addToCart(t, svc, "2222", 1)

	lines, totalCents, err := svc.ListLines(context.Background())
	require.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.Equal(t, int64(699), totalCents)
}

func TestClearCart(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "1111", "Milk", 250, 10)
	seedProduct(t, db, "2222", "Bread", 199, 10)
	svc := newTestCartService(t, db)
	addToCart(t, svc, "1111", 1)
	addToCart(t, svc, "2222", 1)

	cleared, err := svc.Clear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), cleared)

	cleared, err = svc.Clear(context.Background())
	require.NoError(t, err)
	assert.Zero(t, cleared)
}
