package model

import "time"

type Session struct {
	ID        string
	UserID    int64
	ExpiresAt time.Time
}

// Identity - аутентифицированный пользователь текущего запроса
type Identity struct {
	UserID    int64
	SessionID string
}
