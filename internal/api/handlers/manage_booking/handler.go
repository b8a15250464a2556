package manage_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/incubator-booking/internal/api/handlers"
	manageBooking "github.com/m04kA/incubator-booking/internal/usecase/manage_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAction      = "действие должно быть cancel или reschedule"
	msgNotFound           = "бронирование не найдено"
	msgInvalidTransition  = "действие недоступно для текущего статуса бронирования"
)

type Handler struct {
	useCase ManageBookingUseCase
	tz      *time.Location
	logger  Logger
}

func NewHandler(useCase ManageBookingUseCase, tz *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		tz:      tz,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{token}/actions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var req ManageBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{token}/actions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(token))
	if err != nil {
		switch {
		case errors.Is(err, manageBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{token}/actions - Invalid input: action=%q, error=%v", req.Action, err)
			handlers.RespondBadRequest(w, msgInvalidAction)

		case errors.Is(err, manageBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{token}/actions - Booking not found")
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, manageBooking.ErrInvalidTransition):
			h.logger.Warn("POST /bookings/{token}/actions - Invalid transition: action=%s", req.Action)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("POST /bookings/{token}/actions - Failed to apply action: action=%s, error=%v", req.Action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{token}/actions - Action applied: booking_id=%d, action=%s, changed=%t",
		result.Details.Booking.ID, req.Action, result.Changed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.tz))
}
