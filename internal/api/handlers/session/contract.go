package session

import (
	"github.com/m04kA/incubator-booking/internal/service/auth/models"
)

type AuthService interface {
	Login(req *models.LoginRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
