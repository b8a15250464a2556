package models

import "time"

// LoginRequest запрос на вход в панель сотрудников
type LoginRequest struct {
	Password string `json:"password"`
}

// SessionResponse выданная сессия
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
