package request

// AddCartItemRequest represents a request to add an item to the cart.
// Only the barcode is required; omitted fields default from the product
// record, and on a re-scan they leave the existing line untouched.
type AddCartItemRequest struct {
	Barcode  string   `json:"barcode" binding:"max=64"`
	Name     *string  `json:"product_name" binding:"omitempty,min=1,max=255"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
	Quantity *int     `json:"quantity" binding:"omitempty,min=1"`
	Details  string   `json:"details"`
}

// UpdateCartItemRequest represents a cart line update request
type UpdateCartItemRequest struct {
	Name     *string  `json:"product_name" binding:"omitempty,min=1,max=255"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
	Quantity *int     `json:"quantity" binding:"omitempty,min=1"`
	Details  *string  `json:"details"`
}
