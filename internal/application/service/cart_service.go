package service

import (
	"context"
	"time"

	"github.com/kipsang/scanpos-api/internal/domain/entity"
	"github.com/kipsang/scanpos-api/internal/domain/repository"
	"github.com/kipsang/scanpos-api/pkg/apperror"
	"github.com/kipsang/scanpos-api/pkg/utils"
)

// CartService handles the in-progress sale
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddCartLineInput represents the input for adding an item to the cart.
// Nil fields mean "not supplied": on a merge they leave the existing
// line value alone, on a fresh add they fall back to the product record.
type AddCartLineInput struct {
	Barcode  string
	Name     *string
	Price    *float64
	Quantity *int
	Details  string
}

// AddOrMerge adds a product to the cart. Re-scanning a barcode already
// in the cart merges into the existing line: quantities sum, supplied
// fields overwrite, and the line moves to the top of the cart.
func (s *CartService) AddOrMerge(ctx context.Context, input *AddCartLineInput) (*entity.CartLine, error) {
	if !utils.IsValidBarcode(input.Barcode) {
		return nil, apperror.NewBadRequestError("Invalid barcode format")
	}
	if input.Quantity != nil && *input.Quantity < 1 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "quantity", Message: "must be at least 1"},
		})
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "price", Message: "must not be negative"},
		})
	}

	product, err := s.productRepo.GetByBarcode(ctx, input.Barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	existing, err := s.cartRepo.GetByBarcode(ctx, input.Barcode)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Quantity += quantity
		if input.Name != nil {
			existing.Name = *input.Name
		}
		if input.Price != nil {
			existing.PriceCents = decimalToCents(*input.Price)
		}
		if input.Details != "" {
			existing.Details = input.Details
		}
		existing.AddedAt = time.Now()

		if err := s.cartRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	line := &entity.CartLine{
		Barcode:    input.Barcode,
		Name:       product.Name,
		PriceCents: product.PriceCents,
		Quantity:   quantity,
		Details:    product.Details,
		AddedAt:    time.Now(),
	}
	if input.Name != nil {
		line.Name = *input.Name
	}
	if input.Price != nil {
		line.PriceCents = decimalToCents(*input.Price)
	}
	if input.Details != "" {
		line.Details = input.Details
	}

	if err := s.cartRepo.Create(ctx, line); err != nil {
		return nil, err
	}
	return line, nil
}

// UpdateCartLineInput represents the input for updating a cart line
type UpdateCartLineInput struct {
	Name     *string
	Price    *float64
	Quantity *int
	Details  *string
}

// UpdateLine modifies an existing cart line in place
func (s *CartService) UpdateLine(ctx context.Context, barcode string, input *UpdateCartLineInput) (*entity.CartLine, error) {
	line, err := s.cartRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, apperror.NewNotFoundError("Cart item")
	}

	if input.Quantity != nil {
		if *input.Quantity < 1 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "quantity", Message: "must be at least 1"},
			})
		}
		line.Quantity = *input.Quantity
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "price", Message: "must not be negative"},
			})
		}
		line.PriceCents = decimalToCents(*input.Price)
	}
	if input.Name != nil {
		line.Name = *input.Name
	}
	if input.Details != nil {
		line.Details = *input.Details
	}

	if err := s.cartRepo.Update(ctx, line); err != nil {
		return nil, err
	}
	return line, nil
}

// RemoveLine deletes one line from the cart
func (s *CartService) RemoveLine(ctx context.Context, barcode string) error {
	line, err := s.cartRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return err
	}
	if line == nil {
		return apperror.NewNotFoundError("Cart item")
	}
	return s.cartRepo.Delete(ctx, barcode)
}

// ListLines returns the full cart, newest first, with a running total
func (s *CartService) ListLines(ctx context.Context) ([]entity.CartLine, int64, error) {
	lines, err := s.cartRepo.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	var totalCents int64
	for i := range lines {
		totalCents += lines[i].LineTotalCents()
	}
	return lines, totalCents, nil
}

// Clear empties the cart and reports how many lines were removed
func (s *CartService) Clear(ctx context.Context) (int64, error) {
	return s.cartRepo.Clear(ctx)
}

// decimalToCents converts a decimal amount to cents
func decimalToCents(v float64) int64 {
	return int64(v*100 + 0.5)
}
