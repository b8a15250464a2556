package review_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("review_booking: booking not found")

	// ErrInvalidTransition возвращается, когда решение нельзя применить к текущему статусу
	ErrInvalidTransition = errors.New("review_booking: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("review_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("review_booking: internal error")
)
