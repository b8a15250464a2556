package bookings

import (
	"context"

	"github.com/m04kA/incubator-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetDetailsByCancelToken(ctx context.Context, token string) (*domain.BookingDetails, error)
	GetDetailsByID(ctx context.Context, id int64) (*domain.BookingDetails, error)
	ListDetails(ctx context.Context, filter domain.BookingFilter) ([]*domain.BookingDetails, error)
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error)
}

// LocationRepository интерфейс репозитория площадок
type LocationRepository interface {
	Count(ctx context.Context) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
