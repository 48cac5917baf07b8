package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Barcode      string     `json:"barcode" binding:"max=64"`
	Name         string     `json:"product_name" binding:"required,min=1,max=255"`
	Price        float64    `json:"price" binding:"min=0"`
	Quantity     int        `json:"quantity" binding:"min=0"`
	Details      string     `json:"details"`
	ReorderPoint int        `json:"reorder_point" binding:"min=0"`
	CategoryID   *uuid.UUID `json:"category_id"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name         *string    `json:"product_name" binding:"omitempty,min=1,max=255"`
	Price        *float64   `json:"price" binding:"omitempty,min=0"`
	Quantity     *int       `json:"quantity" binding:"omitempty,min=0"`
	Details      *string    `json:"details"`
	ReorderPoint *int       `json:"reorder_point" binding:"omitempty,min=0"`
	CategoryID   *uuid.UUID `json:"category_id"`
	Reason       string     `json:"reason"`
}

// RestockRequest represents a stock increase request
type RestockRequest struct {
	Amount int    `json:"amount" binding:"required,min=1"`
	Reason string `json:"reason"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string   `form:"search"`
	CategoryID string   `form:"category_id"`
	MinPrice   *float64 `form:"min_price"`
	MaxPrice   *float64 `form:"max_price"`
	LowStock   bool     `form:"low_stock"`
	Page       int      `form:"page"`
	PerPage    int      `form:"page_size"`
}
