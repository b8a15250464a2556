package pages

import "errors"

var (
	// ErrPageNotFound возвращается, когда страница не найдена
	ErrPageNotFound = errors.New("pages: page not found")

	// ErrSlugTaken возвращается, когда slug уже занят
	ErrSlugTaken = errors.New("pages: slug already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("pages: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("pages: internal error")
)
