package repository

import (
	"context"

	"github.com/kipsang/scanpos-api/internal/domain/entity"
)

// CartRepository defines the interface for cart data operations
type CartRepository interface {
	Create(ctx context.Context, line *entity.CartLine) error
	GetByBarcode(ctx context.Context, barcode string) (*entity.CartLine, error)
	Update(ctx context.Context, line *entity.CartLine) error
	Delete(ctx context.Context, barcode string) error
	// ListAll returns every cart line ordered by recency (newest first)
	ListAll(ctx context.Context) ([]entity.CartLine, error)
	// Clear removes all cart lines and returns the count removed
	Clear(ctx context.Context) (int64, error)
}
