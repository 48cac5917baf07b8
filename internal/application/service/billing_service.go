package service

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/kipsang/scanpos-api/internal/domain/entity"
	"github.com/kipsang/scanpos-api/internal/domain/enum"
	"github.com/kipsang/scanpos-api/internal/domain/repository"
	"github.com/kipsang/scanpos-api/pkg/apperror"
	"github.com/kipsang/scanpos-api/pkg/receipt"
)

// BillingService converts the current cart into a finalized bill. It is
// the only component that touches cart, inventory and the bill archive
// in one atomic unit.
type BillingService struct {
	checkoutRepo repository.CheckoutRepository
	receipts     *receipt.Store
}

// NewBillingService creates a new billing service
func NewBillingService(checkoutRepo repository.CheckoutRepository, receipts *receipt.Store) *BillingService {
	return &BillingService{
		checkoutRepo: checkoutRepo,
		receipts:     receipts,
	}
}

// CheckoutInput represents the checkout input. Pointer fields
// distinguish "not supplied" from zero.
type CheckoutInput struct {
	CashierName     string
	DiscountPercent *float64
	DiscountAmount  *float64
	TaxPercent      *float64
	PaymentMethod   string
}

// Checkout runs the bill-generation transaction:
//
//	lock cart rows -> compute totals -> render ticket -> write artifact ->
//	insert bill -> decrement inventory (cart lock order first, products
//	second) -> clear cart -> commit.
//
// Any failure in between rolls back everything, including the case where
// the ticket file cannot be written: a sale that cannot be durably
// recorded is not a sale.
func (s *BillingService) Checkout(ctx context.Context, input *CheckoutInput) (*entity.Bill, error) {
	if fieldErrors := validateCheckoutInput(input); len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	paymentMethod, _ := enum.ParsePaymentMethod(input.PaymentMethod)

	var bill *entity.Bill
	err := s.checkoutRepo.WithinTransaction(ctx, func(store repository.CheckoutStore) error {
		lines, err := store.LockCartLines(ctx)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return apperror.ErrEmptyCart
		}

		// Per-line rounding happens naturally in cents: each line total
		// is exact, matching a physical receipt.
		var subtotalCents int64
		for i := range lines {
			subtotalCents += lines[i].LineTotalCents()
		}

		discountCents := resolveDiscount(subtotalCents, input)
		var taxCents int64
		if input.TaxPercent != nil {
			taxCents = roundCents(float64(subtotalCents-discountCents) * *input.TaxPercent / 100)
		}
		totalCents := subtotalCents - discountCents + taxCents

		now := time.Now()
		ticket := buildTicket(lines, now, input.CashierName, subtotalCents, discountCents, taxCents, totalCents, paymentMethod)
		renderedText := ticket.Render()

		filePath, err := s.receipts.Write(renderedText, now)
		if err != nil {
			return apperror.NewStorageError("Error saving bill file: " + err.Error())
		}

		b := &entity.Bill{
			CashierName:   input.CashierName,
			SubtotalCents: subtotalCents,
			DiscountCents: discountCents,
			TaxCents:      taxCents,
			TotalCents:    totalCents,
			PaymentMethod: paymentMethod,
			RenderedText:  renderedText,
			FilePath:      filePath,
			CreatedAt:     now,
		}
		if err := store.CreateBill(ctx, b); err != nil {
			return err
		}

		for i := range lines {
			line := &lines[i]
			product, err := store.LockProduct(ctx, line.Barcode)
			if err != nil {
				return err
			}
			if product == nil {
				// Deleted mid-flight. The sale still stands; only the
				// stock decrement is skipped.
				log.Printf("Warning: product %s missing during checkout, skipping stock decrement", line.Barcode)
				continue
			}

			previous := product.Quantity
			newQuantity := previous - line.Quantity
			if newQuantity < 0 {
				newQuantity = 0
			}

			product.Quantity = newQuantity
			if err := store.SaveProduct(ctx, product); err != nil {
				return err
			}

			entry := &entity.StockHistoryEntry{
				Barcode:          line.Barcode,
				QuantityChange:   newQuantity - previous,
				PreviousQuantity: previous,
				NewQuantity:      newQuantity,
				Reason:           "sale",
			}
			if err := store.CreateStockEntry(ctx, entry); err != nil {
				return err
			}
		}

		if _, err := store.ClearCart(ctx); err != nil {
			return err
		}

		bill = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Bill %d generated: %s", bill.ID, bill.FilePath)
	return bill, nil
}

// resolveDiscount prefers a fixed amount over a percentage and clamps
// the result to the subtotal so the total never goes negative.
func resolveDiscount(subtotalCents int64, input *CheckoutInput) int64 {
	var discountCents int64
	switch {
	case input.DiscountAmount != nil:
		discountCents = roundCents(*input.DiscountAmount * 100)
	case input.DiscountPercent != nil:
		discountCents = roundCents(float64(subtotalCents) * *input.DiscountPercent / 100)
	}
	if discountCents > subtotalCents {
		discountCents = subtotalCents
	}
	return discountCents
}

func buildTicket(lines []entity.CartLine, at time.Time, cashier string,
	subtotalCents, discountCents, taxCents, totalCents int64,
	paymentMethod enum.PaymentMethod) *receipt.Ticket {

	ticket := &receipt.Ticket{
		Date:          at,
		Cashier:       cashier,
		SubtotalCents: subtotalCents,
		DiscountCents: discountCents,
		TaxCents:      taxCents,
		TotalCents:    totalCents,
		PaymentMethod: paymentMethod.String(),
	}
	for i := range lines {
		ticket.Lines = append(ticket.Lines, receipt.Line{
			Name:           lines[i].Name,
			Quantity:       lines[i].Quantity,
			UnitPriceCents: lines[i].PriceCents,
			TotalCents:     lines[i].LineTotalCents(),
		})
	}
	return ticket
}

func validateCheckoutInput(input *CheckoutInput) []apperror.FieldError {
	var fieldErrors []apperror.FieldError

	if input.DiscountPercent != nil && (*input.DiscountPercent < 0 || *input.DiscountPercent > 100) {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "discount_percent", Message: "must be between 0 and 100",
		})
	}
	if input.DiscountAmount != nil && *input.DiscountAmount < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "discount_amount", Message: "must not be negative",
		})
	}
	if input.TaxPercent != nil && (*input.TaxPercent < 0 || *input.TaxPercent > 100) {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "tax_percent", Message: "must be between 0 and 100",
		})
	}
	if _, ok := enum.ParsePaymentMethod(input.PaymentMethod); !ok {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field: "payment_method", Message: "must be one of cash, card, mobile, other",
		})
	}

	return fieldErrors
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}
