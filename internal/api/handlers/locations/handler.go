package locations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/incubator-booking/internal/api/handlers"
	"github.com/m04kA/incubator-booking/internal/service/locations"
	"github.com/m04kA/incubator-booking/internal/service/locations/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLocationID  = "некорректный ID площадки"
	msgInvalidInput       = "название площадки обязательно"
	msgNotFound           = "площадка не найдена"
)

// Handler обработчики площадок: список публичный, изменения только для сотрудников
type Handler struct {
	service LocationService
	logger  Logger
}

func NewHandler(service LocationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/locations
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /locations - Failed to list locations: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /locations - Locations retrieved: count=%d", len(resp.Locations))
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Get GET /api/v1/locations/{locationId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.locationID(w, r, "GET /locations/{id}")
	if !ok {
		return
	}

	resp, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /locations/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Create POST /api/v1/admin/locations
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/locations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/locations", 0, err)
		return
	}

	h.logger.Info("POST /admin/locations - Location created: location_id=%d", resp.ID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// Update PATCH /api/v1/admin/locations/{locationId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.locationID(w, r, "PATCH /admin/locations/{id}")
	if !ok {
		return
	}

	var req models.UpdateLocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/locations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PATCH /admin/locations/{id}", id, err)
		return
	}

	h.logger.Info("PATCH /admin/locations/{id} - Location updated: location_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Delete DELETE /api/v1/admin/locations/{locationId}
// Удаляет площадку вместе со слотами и бронированиями
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.locationID(w, r, "DELETE /admin/locations/{id}")
	if !ok {
		return
	}

	resp, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.respondError(w, "DELETE /admin/locations/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /admin/locations/{id} - Location deleted: location_id=%d, slots=%d, bookings=%d",
		id, resp.DeletedSlots, resp.DeletedBookings)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) locationID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid location ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, id int64, err error) {
	switch {
	case errors.Is(err, locations.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, locations.ErrLocationNotFound):
		h.logger.Warn("%s - Location not found: location_id=%d", route, id)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("%s - Service error: location_id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
