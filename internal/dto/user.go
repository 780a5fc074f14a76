package dto

// RegisterRequest defines the data required to register an account.
type RegisterRequest struct {
	Username string `json:"username" form:"username" binding:"required,max=20" validate:"required,max=20"`
	Email    string `json:"email" form:"email" binding:"required,email,max=120" validate:"required,email,max=120"`
	Password string `json:"password" form:"password" binding:"required,min=8,max=72" validate:"required,min=8,max=72"`
}

// LoginRequest defines the credentials used to log in.
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
