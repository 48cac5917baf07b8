package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/kipsang/scanpos-api/internal/domain/entity"
	"github.com/kipsang/scanpos-api/internal/domain/repository"
	"github.com/kipsang/scanpos-api/pkg/apperror"
	"github.com/kipsang/scanpos-api/pkg/scanner"
	"github.com/kipsang/scanpos-api/pkg/utils"
)

// Placeholder values for products scanned before being registered.
const (
	unknownProductName    = "Unknown Product"
	unknownProductDetails = "to fill"
)

// ScanService bridges the barcode reader and the inventory
type ScanService struct {
	reader      scanner.Reader
	productRepo repository.ProductRepository
	timeout     time.Duration
}

// NewScanService creates a new scan service
func NewScanService(reader scanner.Reader, productRepo repository.ProductRepository, timeout time.Duration) *ScanService {
	return &ScanService{
		reader:      reader,
		productRepo: productRepo,
		timeout:     timeout,
	}
}

// ScanResult reports the product a scan resolved to and whether the
// product record was created by the scan itself
type ScanResult struct {
	Product *entity.Product `json:"product"`
	Created bool            `json:"created"`
}

// ScanNext waits for the next scan from the reader and resolves it to a
// product. An unknown barcode creates a placeholder record so the sale
// can proceed and the details filled in later.
func (s *ScanService) ScanNext(ctx context.Context) (*ScanResult, error) {
	code, err := s.reader.ReadNext(ctx, s.timeout)
	if err != nil {
		switch {
		case errors.Is(err, scanner.ErrTimeout):
			return nil, apperror.NewBadRequestError("No barcode scanned before timeout")
		case errors.Is(err, scanner.ErrDevice):
			return nil, apperror.NewBadRequestError("Scanner device unavailable: " + err.Error())
		default:
			return nil, err
		}
	}

	return s.Resolve(ctx, code)
}

// Resolve looks up a scanned barcode, creating a placeholder product
// when it is not in the inventory yet
func (s *ScanService) Resolve(ctx context.Context, barcode string) (*ScanResult, error) {
	if !utils.IsValidBarcode(barcode) {
		return nil, apperror.NewBadRequestError("Invalid barcode format")
	}

	product, err := s.productRepo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product != nil {
		return &ScanResult{Product: product}, nil
	}

	product = &entity.Product{
		Barcode:  barcode,
		Name:     unknownProductName,
		Quantity: 1,
		Details:  unknownProductDetails,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	log.Printf("Unknown barcode %s registered as placeholder product", barcode)
	return &ScanResult{Product: product, Created: true}, nil
}
