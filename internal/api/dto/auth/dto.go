package auth

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID      int64           `json:"id"`
	Email   string          `json:"email"`
	Balance decimal.Decimal `json:"balance"`
	IsAdmin bool            `json:"is_admin"`
}

type LogoutResponse struct {
	OK bool `json:"ok"`
}
