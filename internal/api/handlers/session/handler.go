package session

import (
	"errors"
	"net/http"

	"github.com/m04kA/incubator-booking/internal/api/handlers"
	"github.com/m04kA/incubator-booking/internal/api/middleware"
	"github.com/m04kA/incubator-booking/internal/service/auth"
	"github.com/m04kA/incubator-booking/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredential  = "неверный пароль"
)

// Handler вход и выход сотрудников
type Handler struct {
	service      AuthService
	secureCookie bool
	logger       Logger
}

func NewHandler(service AuthService, secureCookie bool, logger Logger) *Handler {
	return &Handler{
		service:      service,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// Login POST /api/v1/admin/login
// Сессия возвращается в теле и в HttpOnly cookie
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredential):
			h.logger.Warn("POST /admin/login - Invalid credential from %s", r.RemoteAddr)
			handlers.RespondUnauthorized(w, msgInvalidCredential)

		default:
			h.logger.Error("POST /admin/login - Failed to create session: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /admin/login - Staff session created")
	handlers.RespondJSON(w, http.StatusOK, session)
}

// Logout POST /api/v1/admin/logout
func (h *Handler) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /admin/logout - Staff session closed")
	handlers.RespondNoContent(w)
}
