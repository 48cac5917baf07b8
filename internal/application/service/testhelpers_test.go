package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kipsang/scanpos-api/internal/domain/entity"
	"github.com/kipsang/scanpos-api/internal/infrastructure/database"
	infraRepo "github.com/kipsang/scanpos-api/internal/infrastructure/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, barcode, name string, priceCents int64, quantity int) *entity.Product {
	t.Helper()

	product := &entity.Product{
		Barcode:  barcode,
		Name:     name,
		Quantity: quantity,
	}
	product.PriceCents = priceCents
	require.NoError(t, db.Create(product).Error)
	return product
}

func newTestCartService(t *testing.T, db *gorm.DB) *CartService {
	t.Helper()
	return NewCartService(infraRepo.NewCartRepository(db), infraRepo.NewProductRepository(db))
}

func addToCart(t *testing.T, svc *CartService, barcode string, quantity int) {
	t.Helper()

	_, err := svc.AddOrMerge(context.Background(), &AddCartLineInput{
		Barcode:  barcode,
		Quantity: &quantity,
	})
	require.NoError(t, err)
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
