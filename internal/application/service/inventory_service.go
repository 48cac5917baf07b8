package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kipsang/scanpos-api/internal/domain/entity"
	"github.com/kipsang/scanpos-api/internal/domain/repository"
	"github.com/kipsang/scanpos-api/pkg/apperror"
	"github.com/kipsang/scanpos-api/pkg/pagination"
	"github.com/kipsang/scanpos-api/pkg/utils"
)

// InventoryService handles product catalog business logic
type InventoryService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	historyRepo  repository.StockHistoryRepository
	cartRepo     repository.CartRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	historyRepo repository.StockHistoryRepository,
	cartRepo repository.CartRepository,
) *InventoryService {
	return &InventoryService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		historyRepo:  historyRepo,
		cartRepo:     cartRepo,
	}
}

// CreateProductInput represents the input for creating a product
type CreateProductInput struct {
	Barcode      string
	Name         string
	Price        float64
	Quantity     int
	Details      string
	ReorderPoint int
	CategoryID   *uuid.UUID
}

// CreateProduct registers a new inventory record. An initial non-zero
// quantity is recorded in the stock ledger as the opening entry.
func (s *InventoryService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	var fieldErrors []apperror.FieldError
	if !utils.IsValidBarcode(input.Barcode) {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "barcode", Message: "must be 1-64 alphanumeric characters or dashes",
		})
	}
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "product_name", Message: "is required",
		})
	}
	if input.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "price", Message: "must not be negative",
		})
	}
	if input.Quantity < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "quantity", Message: "must not be negative",
		})
	}
	if input.ReorderPoint < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "reorder_point", Message: "must not be negative",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	existing, err := s.productRepo.GetByBarcode(ctx, input.Barcode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product with this barcode already exists")
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	product := &entity.Product{
		Barcode:      input.Barcode,
		Name:         input.Name,
		Quantity:     input.Quantity,
		Details:      input.Details,
		ReorderPoint: input.ReorderPoint,
		CategoryID:   input.CategoryID,
	}
	product.SetPriceFromDecimal(input.Price)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	if input.Quantity > 0 {
		entry := &entity.StockHistoryEntry{
			Barcode:          product.Barcode,
			QuantityChange:   input.Quantity,
			PreviousQuantity: 0,
			NewQuantity:      input.Quantity,
			Reason:           "initial stock",
		}
		if err := s.historyRepo.Create(ctx, entry); err != nil {
			return nil, err
		}
	}

	return product, nil
}

// GetProduct retrieves a product by barcode
func (s *InventoryService) GetProduct(ctx context.Context, barcode string) (*entity.Product, error) {
	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents the input for updating a product.
// The barcode itself cannot change.
type UpdateProductInput struct {
	Name         *string
	Price        *float64
	Quantity     *int
	Details      *string
	ReorderPoint *int
	CategoryID   *uuid.UUID
	Reason       string
}

// UpdateProduct applies a partial update. A quantity change is recorded
// in the stock ledger with the supplied reason.
func (s *InventoryService) UpdateProduct(ctx context.Context, barcode string, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "price", Message: "must not be negative"},
			})
		}
		product.SetPriceFromDecimal(*input.Price)
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "quantity", Message: "must not be negative"},
		})
	}
	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "product_name", Message: "must not be empty"},
			})
		}
		product.Name = *input.Name
	}
	if input.Details != nil {
		product.Details = *input.Details
	}
	if input.ReorderPoint != nil {
		if *input.ReorderPoint < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "reorder_point", Message: "must not be negative"},
			})
		}
		product.ReorderPoint = *input.ReorderPoint
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		product.CategoryID = input.CategoryID
	}

	previous := product.Quantity
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if input.Quantity != nil && *input.Quantity != previous {
		reason := input.Reason
		if reason == "" {
			reason = "manual adjustment"
		}
		entry := &entity.StockHistoryEntry{
			Barcode:          product.Barcode,
			QuantityChange:   product.Quantity - previous,
			PreviousQuantity: previous,
			NewQuantity:      product.Quantity,
			Reason:           reason,
		}
		if err := s.historyRepo.Create(ctx, entry); err != nil {
			return nil, err
		}
	}

	return product, nil
}

// DeleteProduct removes a product. Products still sitting in the cart
// cannot be deleted.
func (s *InventoryService) DeleteProduct(ctx context.Context, barcode string) error {
	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	line, err := s.cartRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return err
	}
	if line != nil {
		return apperror.NewConflictError("Product is in the cart and cannot be deleted")
	}

	return s.productRepo.Delete(ctx, barcode)
}

// ListProducts retrieves products matching the given filters
func (s *InventoryService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()
	if params.MinPrice != nil && *params.MinPrice < 0 {
		return nil, apperror.NewBadRequestError("min_price must not be negative")
	}
	if params.MinPrice != nil && params.MaxPrice != nil && *params.MaxPrice < *params.MinPrice {
		return nil, apperror.NewBadRequestError("max_price must not be less than min_price")
	}

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, meta), nil
}

// GetLowStockProducts retrieves products at or below their reorder point
func (s *InventoryService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

// GetStockHistory retrieves the stock ledger of one product, newest first
func (s *InventoryService) GetStockHistory(ctx context.Context, barcode string, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.StockHistoryEntry], error) {
	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	params.Validate()
	entries, total, err := s.historyRepo.ListByBarcode(ctx, barcode, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(entries, meta), nil
}

// RecordRestock raises the product quantity by the given amount and
// appends a ledger entry
func (s *InventoryService) RecordRestock(ctx context.Context, barcode string, amount int, reason string) (*entity.Product, error) {
	if amount < 1 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "amount", Message: "must be at least 1"},
		})
	}

	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	previous := product.Quantity
	product.Quantity = previous + amount
	product.LastModified = time.Now()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if reason == "" {
		reason = "restock"
	}
	entry := &entity.StockHistoryEntry{
		Barcode:          product.Barcode,
		QuantityChange:   amount,
		PreviousQuantity: previous,
		NewQuantity:      product.Quantity,
		Reason:           reason,
	}
	if err := s.historyRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return product, nil
}
