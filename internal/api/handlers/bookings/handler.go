package bookings

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/incubator-booking/internal/api/handlers"
	"github.com/m04kA/incubator-booking/internal/service/bookings"
	"github.com/m04kA/incubator-booking/internal/service/bookings/models"
)

// ExportFilename имя файла выгрузки
const ExportFilename = "bookings.csv"

const (
	msgInvalidBookingID  = "некорректный ID бронирования"
	msgInvalidLocationID = "некорректный ID площадки"
	msgInvalidStatus     = "неизвестный статус бронирования"
	msgNotFound          = "бронирование не найдено"
)

// Handler обработчики бронирований для сотрудников
type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/admin/bookings
// Query params: status (optional), locationId (optional)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if raw := query.Get("locationId"); raw != "" {
		locationID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid location ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLocationID)
			return
		}
		req.LocationID = &locationID
	}

	resp, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved: count=%d", len(resp.Bookings))
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Get GET /api/v1/admin/bookings/{bookingId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /admin/bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	resp, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /admin/bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /admin/bookings/{id} - Failed to get booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Dashboard GET /api/v1/admin/dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Dashboard(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to build dashboard: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Export GET /api/v1/admin/bookings/export
// CSV: заголовок и по одной строке на бронирование
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Export(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/bookings/export - Failed to export bookings: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFilename+`"`)
	w.WriteHeader(http.StatusOK)

	// Заголовки уже отправлены, ошибки записи только логируем
	writer := csv.NewWriter(w)
	if err := writer.Write(models.ExportHeader); err != nil {
		h.logger.Warn("GET /admin/bookings/export - Failed to write header: %v", err)
		return
	}
	for _, row := range rows {
		if err := writer.Write(row.Record()); err != nil {
			h.logger.Warn("GET /admin/bookings/export - Failed to write row: booking_id=%d, error=%v", row.ID, err)
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		h.logger.Warn("GET /admin/bookings/export - Failed to flush: %v", err)
		return
	}

	h.logger.Info("GET /admin/bookings/export - Bookings exported: count=%d", len(rows))
}
