package pages

import (
	"context"

	"github.com/m04kA/incubator-booking/internal/service/pages/models"
)

type PageService interface {
	List(ctx context.Context) (*models.PageListResponse, error)
	GetBySlug(ctx context.Context, slug string) (*models.PageResponse, error)
	Create(ctx context.Context, req *models.CreatePageRequest) (*models.PageResponse, error)
	Update(ctx context.Context, slug string, req *models.UpdatePageRequest) (*models.PageResponse, error)
	Delete(ctx context.Context, slug string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
