package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/incubator-booking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/incubator-booking/internal/usecase/get_available_slots"
)

const (
	msgInvalidLocationID = "некорректный ID площадки"
	msgInvalidAt         = "некорректный параметр at, ожидается RFC3339"
	msgLocationNotFound  = "площадка не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	tz      *time.Location
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, tz *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		tz:      tz,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/slots
// Query params: at (optional, RFC3339)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/slots - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(locationID, r.URL.Query().Get("at"))
	if err != nil {
		h.logger.Warn("GET /locations/{id}/slots - Invalid reference instant: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /locations/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLocationID)

		case errors.Is(err, getAvailableSlots.ErrLocationNotFound):
			h.logger.Warn("GET /locations/{id}/slots - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("GET /locations/{id}/slots - Failed to get slots: location_id=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locations/{id}/slots - Slots retrieved successfully: location_id=%d, slots_count=%d",
		locationID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.tz))
}
