package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"casino_web/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken подписывает токен сессии: jti - ID сессии, sub - ID пользователя
func GenerateSessionToken(session *model.Session, secretKey []byte) (string, error) {
	claims := model.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   strconv.FormatInt(session.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.SessionClaims)
	if !ok || claims.ID == "" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
