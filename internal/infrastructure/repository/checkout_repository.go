package repository

import (
	"context"
	"errors"

	"github.com/kipsang/scanpos-api/internal/domain/entity"
	domainRepo "github.com/kipsang/scanpos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type checkoutRepository struct {
	db *gorm.DB
}

// NewCheckoutRepository creates the repository owning the checkout
// transaction boundary
func NewCheckoutRepository(db *gorm.DB) domainRepo.CheckoutRepository {
	return &checkoutRepository{db: db}
}

func (r *checkoutRepository) WithinTransaction(ctx context.Context, fn func(store domainRepo.CheckoutStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&checkoutStore{tx: tx})
	})
}

// checkoutStore runs every operation against one open transaction.
type checkoutStore struct {
	tx *gorm.DB
}

func (s *checkoutStore) LockCartLines(ctx context.Context) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := forUpdate(s.tx.WithContext(ctx)).
		Order("added_at ASC").
		Find(&lines).Error
	return lines, err
}

func (s *checkoutStore) LockProduct(ctx context.Context, barcode string) (*entity.Product, error) {
	var product entity.Product
	err := forUpdate(s.tx.WithContext(ctx)).
		First(&product, "barcode = ?", barcode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *checkoutStore) SaveProduct(ctx context.Context, product *entity.Product) error {
	return s.tx.WithContext(ctx).Save(product).Error
}

func (s *checkoutStore) CreateStockEntry(ctx context.Context, entry *entity.StockHistoryEntry) error {
	return s.tx.WithContext(ctx).Create(entry).Error
}

func (s *checkoutStore) CreateBill(ctx context.Context, bill *entity.Bill) error {
	return s.tx.WithContext(ctx).Create(bill).Error
}

func (s *checkoutStore) ClearCart(ctx context.Context) (int64, error) {
	result := s.tx.WithContext(ctx).Where("1 = 1").Delete(&entity.CartLine{})
	return result.RowsAffected, result.Error
}
