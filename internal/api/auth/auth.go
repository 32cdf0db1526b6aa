package auth

import (
	"net/http"
	"time"

	"casino_web/internal/api/apierr"
	dto "casino_web/internal/api/dto/auth"
	"casino_web/internal/converter"
	"casino_web/internal/logger"
	"casino_web/internal/middleware"
	"casino_web/internal/model"
	"casino_web/internal/service"
	"casino_web/pkg/req"
	"casino_web/pkg/resp"
)

type HandlerDeps struct {
	Serv         service.AuthService
	CookieSecure bool
}

type Handler struct {
	serv         service.AuthService
	cookieSecure bool
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:         deps.Serv,
		cookieSecure: deps.CookieSecure,
	}
}

// Register создаёт пользователя с балансом 100, открывает сессию
// и возвращает session_id через cookie
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		apierr.BadRequest(w, r, apierr.MsgInvalidRequest)
		return
	}
	if err = req.Validate(requestBody); err != nil {
		apierr.BadRequest(w, r, apierr.MsgCredsRequired)
		return
	}

	data, err := h.serv.Register(r.Context(), converter.RegisterRequestToCredentials(&requestBody))
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	h.setSessionCookie(w, data)

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUserResponse(data.User))
}

// Login открывает новую сессию и возвращает session_id через cookie
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		apierr.BadRequest(w, r, apierr.MsgInvalidRequest)
		return
	}
	if err = req.Validate(requestBody); err != nil {
		apierr.BadRequest(w, r, apierr.MsgCredsRequired)
		return
	}

	data, err := h.serv.Login(r.Context(), converter.LoginRequestToCredentials(&requestBody))
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	h.setSessionCookie(w, data)

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUserResponse(data.User))
}

// Logout закрывает сессию по session_id. Отвечает ok даже без сессии.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if err = h.serv.Logout(r.Context(), c.Value); err != nil {
			logger.FromContext(r.Context()).Warn("logout: delete session", "error", err)
		}
	}

	h.deleteSessionCookie(w)

	resp.WriteJSONResponse(w, http.StatusOK, dto.LogoutResponse{OK: true})
}

// Me - текущий пользователь
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.serv.Me(r.Context())
	if err != nil {
		apierr.Write(w, r, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUserResponse(user))
}

// setSessionCookie устанавливает cookie с session_id до истечения сессии
func (h *Handler) setSessionCookie(w http.ResponseWriter, data *model.AuthData) {
	maxAge := int(time.Until(data.ExpiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    data.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		Expires:  data.ExpiresAt,
		MaxAge:   maxAge,
	})
}

// deleteSessionCookie удаляет cookie с session_id
func (h *Handler) deleteSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
