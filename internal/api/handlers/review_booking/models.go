package review_booking

import (
	"time"

	bookingModels "github.com/m04kA/incubator-booking/internal/service/bookings/models"
	reviewBooking "github.com/m04kA/incubator-booking/internal/usecase/review_booking"
)

// ReviewBookingResponse HTTP response model
type ReviewBookingResponse struct {
	Booking *bookingModels.BookingResponse `json:"booking"`
	Changed bool                           `json:"changed"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Токен отмены сотрудникам не отдается
func FromUseCaseResponse(resp *reviewBooking.Response, tz *time.Location) *ReviewBookingResponse {
	booking := bookingModels.FromDomainDetails(resp.Details, tz)
	booking.CancelToken = ""
	return &ReviewBookingResponse{
		Booking: booking,
		Changed: resp.Changed,
	}
}
