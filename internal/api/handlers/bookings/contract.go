package bookings

import (
	"context"

	"github.com/m04kA/incubator-booking/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id int64) (*models.BookingResponse, error)
	List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error)
	Dashboard(ctx context.Context) (*models.DashboardResponse, error)
	Export(ctx context.Context) ([]models.ExportRow, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
