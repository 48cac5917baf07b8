package request

// CreateUserRequest represents a user creation request. Username and
// password are optional; together they give the cashier a login.
type CreateUserRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Username *string `json:"username" binding:"omitempty,min=1,max=100"`
	Password string  `json:"password" binding:"omitempty,min=8"`
	Role     string  `json:"role" binding:"omitempty,oneof=cashier manager admin"`
}

// UpdateUserRequest represents a user update request
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Username *string `json:"username" binding:"omitempty,min=1,max=100"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Role     *string `json:"role" binding:"omitempty,oneof=cashier manager admin"`
}
