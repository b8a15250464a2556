package auth

import "errors"

var (
	// ErrInvalidCredential возвращается при неверном пароле
	ErrInvalidCredential = errors.New("auth: incorrect credential")

	// ErrInvalidSession возвращается для просроченной или поддельной сессии
	ErrInvalidSession = errors.New("auth: invalid session")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
