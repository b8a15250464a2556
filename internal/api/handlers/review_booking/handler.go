package review_booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/incubator-booking/internal/api/handlers"
	reviewBooking "github.com/m04kA/incubator-booking/internal/usecase/review_booking"
)

const (
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgInvalidDecision   = "решение должно быть accept или refuse"
	msgNotFound          = "бронирование не найдено"
	msgInvalidTransition = "решение недоступно для текущего статуса бронирования"
)

type Handler struct {
	useCase ReviewBookingUseCase
	tz      *time.Location
	logger  Logger
}

func NewHandler(useCase ReviewBookingUseCase, tz *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		tz:      tz,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings/{bookingId}/{decision}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/bookings/{id}/{decision} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}
	decision := reviewBooking.Decision(vars["decision"])

	result, err := h.useCase.Execute(r.Context(), &reviewBooking.Request{
		BookingID: bookingID,
		Decision:  decision,
	})
	if err != nil {
		switch {
		case errors.Is(err, reviewBooking.ErrInvalidInput):
			h.logger.Warn("POST /admin/bookings/{id}/{decision} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDecision)

		case errors.Is(err, reviewBooking.ErrBookingNotFound):
			h.logger.Warn("POST /admin/bookings/{id}/{decision} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reviewBooking.ErrInvalidTransition):
			h.logger.Warn("POST /admin/bookings/{id}/{decision} - Invalid transition: booking_id=%d, decision=%s",
				bookingID, decision)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /admin/bookings/{id}/{decision} - Failed to review booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/{id}/{decision} - Booking reviewed: booking_id=%d, decision=%s, changed=%t",
		bookingID, decision, result.Changed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.tz))
}
