package manage_booking

import (
	"time"

	bookingModels "github.com/m04kA/incubator-booking/internal/service/bookings/models"
	manageBooking "github.com/m04kA/incubator-booking/internal/usecase/manage_booking"
)

// ManageBookingRequest HTTP request model
type ManageBookingRequest struct {
	Action string `json:"action"` // "cancel" или "reschedule"
}

// ManageBookingResponse HTTP response model
// LocationID заполняется только для переноса: там выбирается новый слот
type ManageBookingResponse struct {
	Booking    *bookingModels.BookingResponse `json:"booking"`
	Changed    bool                           `json:"changed"`
	LocationID int64                          `json:"locationId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ManageBookingRequest) ToUseCaseRequest(token string) *manageBooking.Request {
	return &manageBooking.Request{
		Token:  token,
		Action: manageBooking.Action(r.Action),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *manageBooking.Response, tz *time.Location) *ManageBookingResponse {
	return &ManageBookingResponse{
		Booking:    bookingModels.FromDomainDetails(resp.Details, tz),
		Changed:    resp.Changed,
		LocationID: resp.LocationID,
	}
}
