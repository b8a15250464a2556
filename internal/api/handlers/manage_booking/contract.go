package manage_booking

import (
	"context"

	manageBooking "github.com/m04kA/incubator-booking/internal/usecase/manage_booking"
)

type ManageBookingUseCase interface {
	Execute(ctx context.Context, req *manageBooking.Request) (*manageBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
