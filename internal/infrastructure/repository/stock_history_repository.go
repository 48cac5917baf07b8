package repository

import (
	"context"

	"github.com/kipsang/scanpos-api/internal/domain/entity"
	domainRepo "github.com/kipsang/scanpos-api/internal/domain/repository"
	"github.com/kipsang/scanpos-api/pkg/pagination"
	"gorm.io/gorm"
)

type stockHistoryRepository struct {
	db *gorm.DB
}

// NewStockHistoryRepository creates a new stock history repository
func NewStockHistoryRepository(db *gorm.DB) domainRepo.StockHistoryRepository {
	return &stockHistoryRepository{db: db}
}

func (r *stockHistoryRepository) Create(ctx context.Context, entry *entity.StockHistoryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *stockHistoryRepository) ListByBarcode(ctx context.Context, barcode string, params *pagination.PaginationParams) ([]entity.StockHistoryEntry, int64, error) {
	var entries []entity.StockHistoryEntry
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StockHistoryEntry{}).
		Where("barcode = ?", barcode)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC, id DESC").
		Find(&entries).Error

	return entries, total, err
}
