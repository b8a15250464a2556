package generate_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/incubator-booking/internal/api/handlers"
	generateSlots "github.com/m04kA/incubator-booking/internal/usecase/generate_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLocationID  = "некорректный ID площадки"
	msgInvalidDateTime    = "некорректный формат, ожидается дата YYYY-MM-DD и время HH:MM"
	msgInvalidTimeRange   = "время окончания должно быть позже времени начала"
	msgLocationNotFound   = "площадка не найдена"
	msgOverlappingSlots   = "новые слоты пересекаются с существующими"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	tz      *time.Location
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, tz *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		tz:      tz,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/locations/{locationId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/locations/{id}/slots - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/locations/{id}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(locationID)
	if err != nil {
		h.logger.Warn("POST /admin/locations/{id}/slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrInvalidTimeRange):
			h.logger.Warn("POST /admin/locations/{id}/slots - Invalid time range: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, generateSlots.ErrInvalidInput):
			h.logger.Warn("POST /admin/locations/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		case errors.Is(err, generateSlots.ErrLocationNotFound):
			h.logger.Warn("POST /admin/locations/{id}/slots - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, generateSlots.ErrOverlappingSlots):
			h.logger.Warn("POST /admin/locations/{id}/slots - Overlapping slots: location_id=%d", locationID)
			handlers.RespondConflict(w, msgOverlappingSlots)

		default:
			h.logger.Error("POST /admin/locations/{id}/slots - Failed to generate slots: location_id=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/locations/{id}/slots - Slots generated: location_id=%d, count=%d", locationID, result.Count())
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result, h.tz))
}
