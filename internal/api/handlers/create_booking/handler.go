package create_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/incubator-booking/internal/api/handlers"
	createBooking "github.com/m04kA/incubator-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidInput       = "заполните обязательные поля: имя, фамилия, email, телефон"
	msgSlotNotFound       = "слот не найден"
	msgSlotNotAvailable   = "выбранный слот уже занят"
)

type Handler struct {
	useCase   CreateBookingUseCase
	publicURL string
	tz        *time.Location
	logger    Logger
}

func NewHandler(useCase CreateBookingUseCase, publicURL string, tz *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		publicURL: publicURL,
		tz:        tz,
		logger:    logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /slots/{id}/bookings - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(slotID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /slots/{id}/bookings - Invalid input: slot_id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{id}/bookings - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /slots/{id}/bookings - Slot not available: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /slots/{id}/bookings - Failed to create booking: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{id}/bookings - Booking created successfully: booking_id=%d, slot_id=%d",
		result.Details.Booking.ID, slotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, h.publicURL, h.tz))
}
