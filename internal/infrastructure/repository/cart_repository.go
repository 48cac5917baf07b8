package repository

import (
	"context"
	"errors"

	"github.com/kipsang/scanpos-api/internal/domain/entity"
	domainRepo "github.com/kipsang/scanpos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) domainRepo.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(ctx context.Context, line *entity.CartLine) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *cartRepository) GetByBarcode(ctx context.Context, barcode string) (*entity.CartLine, error) {
	var line entity.CartLine
	err := r.db.WithContext(ctx).First(&line, "barcode = ?", barcode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *cartRepository) Update(ctx context.Context, line *entity.CartLine) error {
	return r.db.WithContext(ctx).Save(line).Error
}

func (r *cartRepository) Delete(ctx context.Context, barcode string) error {
	return r.db.WithContext(ctx).Delete(&entity.CartLine{}, "barcode = ?", barcode).Error
}

func (r *cartRepository) ListAll(ctx context.Context) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := r.db.WithContext(ctx).
		Order("added_at DESC").
		Find(&lines).Error
	return lines, err
}

func (r *cartRepository) Clear(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&entity.CartLine{})
	return result.RowsAffected, result.Error
}
