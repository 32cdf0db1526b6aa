package middleware

import (
	"crypto/subtle"
	"net/http"

	"casino_web/internal/api/apierr"
	"casino_web/internal/service"
	"casino_web/internal/svcerr"
)

const (
	SessionCookieName = "session_id"
	AdminSecretHeader = "X-Admin-Secret"
)

// Auth пропускает запрос только с действующей сессией
func Auth(serv service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(SessionCookieName)
			if err != nil || c.Value == "" {
				apierr.Write(w, r, svcerr.ErrUnauthenticated)
				return
			}

			identity, err := serv.Authenticate(r.Context(), c.Value)
			if err != nil {
				apierr.Write(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), *identity)))
		})
	}
}

// AdminSecret проверяет общий секрет администратора в заголовке X-Admin-Secret
func AdminSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminSecretHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				apierr.Write(w, r, svcerr.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
