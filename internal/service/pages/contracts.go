package pages

import (
	"context"

	"github.com/m04kA/incubator-booking/internal/domain"
)

// PageRepository интерфейс репозитория страниц
type PageRepository interface {
	Create(ctx context.Context, page *domain.Page) (*domain.Page, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Page, error)
	List(ctx context.Context) ([]*domain.Page, error)
	UpdateBySlug(ctx context.Context, slug string, page *domain.Page) (*domain.Page, error)
	DeleteBySlug(ctx context.Context, slug string) error
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
