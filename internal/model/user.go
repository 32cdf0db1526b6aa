package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

// StartingBalance - баланс нового аккаунта
var StartingBalance = decimal.NewFromInt(100)

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Balance      decimal.Decimal
	IsAdmin      bool
	CreatedAt    time.Time
}

type Credentials struct {
	Email    string
	Password string
}

type AuthData struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

type SessionClaims struct {
	jwt.RegisteredClaims
}
