package repository

import (
	"context"

	"github.com/kipsang/scanpos-api/internal/domain/entity"
	"github.com/kipsang/scanpos-api/pkg/pagination"
)

// StockHistoryRepository defines access to the append-only stock ledger
type StockHistoryRepository interface {
	Create(ctx context.Context, entry *entity.StockHistoryEntry) error
	ListByBarcode(ctx context.Context, barcode string, params *pagination.PaginationParams) ([]entity.StockHistoryEntry, int64, error)
}
