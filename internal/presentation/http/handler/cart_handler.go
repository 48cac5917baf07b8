package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kipsang/scanpos-api/internal/application/service"
	"github.com/kipsang/scanpos-api/internal/presentation/http/dto/request"
	"github.com/kipsang/scanpos-api/internal/presentation/http/dto/response"
)

// CartHandler handles cart HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Add handles adding a product to the cart, merging on a repeat scan
func (h *CartHandler) Add(c *gin.Context) {
	var req request.AddCartItemRequest

	// Scanner clients post the barcode as a query parameter with no
	// body; bind the body only when one is present.
	if barcode := c.Query("barcode"); barcode != "" {
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				response.BadRequest(c, "Invalid request body: "+err.Error())
				return
			}
		}
		req.Barcode = barcode
	} else if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	line, err := h.cartService.AddOrMerge(c.Request.Context(), &service.AddCartLineInput{
		Barcode:  req.Barcode,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
		Details:  req.Details,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product added to cart", line)
}

// List handles listing the cart, newest first
func (h *CartHandler) List(c *gin.Context) {
	lines, totalCents, err := h.cartService.ListLines(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved successfully", gin.H{
		"items":       lines,
		"items_count": len(lines),
		"cart_total":  float64(totalCents) / 100,
	})
}

// Update handles updating a cart line
func (h *CartHandler) Update(c *gin.Context) {
	barcode := c.Param("barcode")
	if barcode == "" {
		response.BadRequest(c, "Barcode is required")
		return
	}

	var req request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	line, err := h.cartService.UpdateLine(c.Request.Context(), barcode, &service.UpdateCartLineInput{
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
		Details:  req.Details,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart item updated successfully", line)
}

// Delete handles removing one line from the cart
func (h *CartHandler) Delete(c *gin.Context) {
	barcode := c.Param("barcode")
	if barcode == "" {
		response.BadRequest(c, "Barcode is required")
		return
	}

	if err := h.cartService.RemoveLine(c.Request.Context(), barcode); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Clear handles emptying the cart
func (h *CartHandler) Clear(c *gin.Context) {
	cleared, err := h.cartService.Clear(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart cleared successfully", gin.H{
		"items_cleared": cleared,
	})
}

// ScanHandler handles barcode reader HTTP requests
type ScanHandler struct {
	scanService *service.ScanService
}

// NewScanHandler creates a new scan handler
func NewScanHandler(scanService *service.ScanService) *ScanHandler {
	return &ScanHandler{scanService: scanService}
}

// Scan waits for the next scan from the reader and resolves it to a
// product, creating a placeholder record for unknown barcodes
func (h *ScanHandler) Scan(c *gin.Context) {
	result, err := h.scanService.ScanNext(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Barcode scanned successfully"
	if result.Created {
		message = "Unknown barcode registered as placeholder product"
	}
	response.OK(c, message, result)
}
