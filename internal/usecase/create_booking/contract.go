package create_booking

import (
	"context"

	"github.com/m04kA/incubator-booking/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	MarkBooked(ctx context.Context, id int64) error
}

// LocationRepository интерфейс репозитория площадок
type LocationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Location, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Notifier отправка подтверждения созданного бронирования
type Notifier interface {
	Notify(ctx context.Context, details *domain.BookingDetails) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TokenGenerator генератор токенов отмены
type TokenGenerator interface {
	NewToken() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
