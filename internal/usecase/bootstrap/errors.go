package bootstrap

import "errors"

var (
	// ErrMigrate возвращается, если не удалось применить схему
	ErrMigrate = errors.New("bootstrap: failed to apply schema")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("bootstrap: internal error")
)
