package repository

import (
	"context"

	"github.com/kipsang/scanpos-api/internal/domain/entity"
)

// CheckoutStore is the transaction-scoped data access used by the
// billing engine. Every method runs against the same open transaction;
// locks taken by LockCartLines and LockProduct are held until the
// transaction ends. Lock order is fixed: cart lines first, then
// products, so concurrent checkouts cannot deadlock.
type CheckoutStore interface {
	// LockCartLines reads all cart lines under an exclusive row lock,
	// oldest first.
	LockCartLines(ctx context.Context) ([]entity.CartLine, error)
	// LockProduct re-reads one product under an exclusive row lock.
	// Returns nil when the product no longer exists.
	LockProduct(ctx context.Context, barcode string) (*entity.Product, error)
	SaveProduct(ctx context.Context, product *entity.Product) error
	CreateStockEntry(ctx context.Context, entry *entity.StockHistoryEntry) error
	CreateBill(ctx context.Context, bill *entity.Bill) error
	ClearCart(ctx context.Context) (int64, error)
}

// CheckoutRepository owns the multi-table transaction boundary of the
// billing engine. Any error returned by fn rolls back everything.
type CheckoutRepository interface {
	WithinTransaction(ctx context.Context, fn func(store CheckoutStore) error) error
}
