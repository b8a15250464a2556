package middleware

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/incubator-booking/internal/api/handlers"
)

const (
	// SessionCookie cookie с сессией сотрудника
	SessionCookie = "staff_session"

	// LoginPath точка входа для сотрудников
	LoginPath = "/api/v1/admin/login"

	msgAuthRequired = "требуется авторизация"
)

// Authorizer проверка сессии сотрудника
type Authorizer interface {
	Authorized(token string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth пропускает только запросы с валидной сессией (cookie или Bearer)
// Иначе 401 и Location на страницу входа
func Auth(gate Authorizer, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !gate.Authorized(SessionToken(r)) {
				log.Warn("%s %s - Unauthorized staff request", r.Method, r.URL.Path)
				w.Header().Set("Location", LoginPath)
				handlers.RespondUnauthorized(w, msgAuthRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionToken достает токен сессии из заголовка Authorization или cookie
func SessionToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}
