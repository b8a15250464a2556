package manage_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда токен не соответствует ни одному бронированию
	ErrBookingNotFound = errors.New("manage_booking: booking not found")

	// ErrInvalidTransition возвращается, когда действие нельзя применить к текущему статусу
	ErrInvalidTransition = errors.New("manage_booking: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("manage_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("manage_booking: internal error")
)
