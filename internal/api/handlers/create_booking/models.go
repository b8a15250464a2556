package create_booking

import (
	"strings"
	"time"

	bookingModels "github.com/m04kA/incubator-booking/internal/service/bookings/models"
	createBooking "github.com/m04kA/incubator-booking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	City         string `json:"city,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	ProjectStage string `json:"projectStage,omitempty"`
	Sector       string `json:"sector,omitempty"`
	Description  string `json:"description,omitempty"`
	Needs        string `json:"needs,omitempty"`
}

// CreateBookingResponse HTTP response model
// CancelURL - ссылка для управления бронированием, её же получает посетитель в письме
type CreateBookingResponse struct {
	Booking   *bookingModels.BookingResponse `json:"booking"`
	CancelURL string                         `json:"cancelUrl"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(slotID int64) *createBooking.Request {
	return &createBooking.Request{
		SlotID:       slotID,
		Name:         r.Name,
		Surname:      r.Surname,
		Email:        r.Email,
		Phone:        r.Phone,
		City:         r.City,
		PostalCode:   r.PostalCode,
		ProjectStage: r.ProjectStage,
		Sector:       r.Sector,
		Description:  r.Description,
		Needs:        r.Needs,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response, publicURL string, tz *time.Location) *CreateBookingResponse {
	booking := bookingModels.FromDomainDetails(resp.Details, tz)
	return &CreateBookingResponse{
		Booking:   booking,
		CancelURL: strings.TrimRight(publicURL, "/") + "/cancel/" + booking.CancelToken,
	}
}
