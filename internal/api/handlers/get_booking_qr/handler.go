package get_booking_qr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"

	"github.com/m04kA/incubator-booking/internal/api/handlers"
	"github.com/m04kA/incubator-booking/internal/service/bookings"
)

// qrSize сторона PNG в пикселях
const qrSize = 256

const (
	msgMissingToken = "токен бронирования обязателен"
	msgNotFound     = "бронирование не найдено"
)

type Handler struct {
	service   BookingService
	publicURL string
	logger    Logger
}

func NewHandler(service BookingService, publicURL string, logger Logger) *Handler {
	return &Handler{
		service:   service,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}
}

// Handle GET /api/v1/bookings/{token}/qr
// PNG с QR-кодом ссылки на управление бронированием
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if token == "" {
		h.logger.Warn("GET /bookings/{token}/qr - Missing token")
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	// QR отдаем только для существующих бронирований
	if _, err := h.service.GetByToken(r.Context(), token); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{token}/qr - Booking not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/{token}/qr - Failed to get booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	png, err := qrcode.Encode(h.publicURL+"/cancel/"+token, qrcode.Medium, qrSize)
	if err != nil {
		h.logger.Error("GET /bookings/{token}/qr - Failed to encode QR code: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.Warn("GET /bookings/{token}/qr - Failed to write response: %v", err)
	}
}
