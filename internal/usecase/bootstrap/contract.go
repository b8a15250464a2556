package bootstrap

import (
	"context"

	"github.com/m04kA/incubator-booking/internal/domain"
)

// Migrator применяет схему хранилища
type Migrator interface {
	Migrate(ctx context.Context) error
}

// LocationRepository интерфейс репозитория площадок
type LocationRepository interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, location *domain.Location) (*domain.Location, error)
}

// PageRepository интерфейс репозитория страниц
type PageRepository interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, page *domain.Page) (*domain.Page, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
