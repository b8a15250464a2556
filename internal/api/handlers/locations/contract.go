package locations

import (
	"context"

	"github.com/m04kA/incubator-booking/internal/service/locations/models"
)

type LocationService interface {
	List(ctx context.Context) (*models.LocationListResponse, error)
	GetByID(ctx context.Context, id int64) (*models.LocationResponse, error)
	Create(ctx context.Context, req *models.CreateLocationRequest) (*models.LocationResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateLocationRequest) (*models.LocationResponse, error)
	Delete(ctx context.Context, id int64) (*models.DeleteLocationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
