package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/m04kA/incubator-booking/internal/api/handlers"
	bookingsHandler "github.com/m04kA/incubator-booking/internal/api/handlers/bookings"
	createBookingHandler "github.com/m04kA/incubator-booking/internal/api/handlers/create_booking"
	generateSlotsHandler "github.com/m04kA/incubator-booking/internal/api/handlers/generate_slots"
	getAvailableSlotsHandler "github.com/m04kA/incubator-booking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/incubator-booking/internal/api/handlers/get_booking"
	getBookingQRHandler "github.com/m04kA/incubator-booking/internal/api/handlers/get_booking_qr"
	locationsHandler "github.com/m04kA/incubator-booking/internal/api/handlers/locations"
	manageBookingHandler "github.com/m04kA/incubator-booking/internal/api/handlers/manage_booking"
	pagesHandler "github.com/m04kA/incubator-booking/internal/api/handlers/pages"
	reviewBookingHandler "github.com/m04kA/incubator-booking/internal/api/handlers/review_booking"
	sessionHandler "github.com/m04kA/incubator-booking/internal/api/handlers/session"
	slotsHandler "github.com/m04kA/incubator-booking/internal/api/handlers/slots"
	"github.com/m04kA/incubator-booking/internal/api/middleware"
	"github.com/m04kA/incubator-booking/pkg/metrics"
)

// Handlers все обработчики API
type Handlers struct {
	Locations      *locationsHandler.Handler
	AvailableSlots *getAvailableSlotsHandler.Handler
	CreateBooking  *createBookingHandler.Handler
	GetBooking     *getBookingHandler.Handler
	BookingQR      *getBookingQRHandler.Handler
	ManageBooking  *manageBookingHandler.Handler
	Pages          *pagesHandler.Handler
	Session        *sessionHandler.Handler
	GenerateSlots  *generateSlotsHandler.Handler
	Slots          *slotsHandler.Handler
	Bookings       *bookingsHandler.Handler
	ReviewBooking  *reviewBookingHandler.Handler
}

// Options инфраструктура роутера; nil Metrics и RateLimiter отключают соответствующие middleware
type Options struct {
	Gate           middleware.Authorizer
	Metrics        *metrics.Metrics
	MetricsPath    string
	RateLimiter    *middleware.RateLimiter
	AllowedOrigins []string
}

// NewRouter собирает маршруты API
func NewRouter(h *Handlers, opts Options, log middleware.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	limited := func(fn http.HandlerFunc) http.Handler {
		if opts.RateLimiter == nil {
			return fn
		}
		return opts.RateLimiter.Middleware(log)(fn)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// --- Площадки и слоты ---
	api.HandleFunc("/locations", h.Locations.List).Methods(http.MethodGet)
	api.HandleFunc("/locations/{locationId:[0-9]+}", h.Locations.Get).Methods(http.MethodGet)
	api.HandleFunc("/locations/{locationId:[0-9]+}/slots", h.AvailableSlots.Handle).Methods(http.MethodGet)

	// --- Бронирования (доступ по токену) ---
	api.Handle("/slots/{slotId:[0-9]+}/bookings", limited(h.CreateBooking.Handle)).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{token}", h.GetBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{token}/qr", h.BookingQR.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{token}/actions", h.ManageBooking.Handle).Methods(http.MethodPost)

	// --- Информационные страницы ---
	api.HandleFunc("/pages", h.Pages.List).Methods(http.MethodGet)
	api.HandleFunc("/pages/{slug}", h.Pages.Get).Methods(http.MethodGet)

	// --- Сессия сотрудника ---
	api.Handle("/admin/login", limited(h.Session.Login)).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", h.Session.Logout).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (требуют сессию)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(opts.Gate, log))

	admin.HandleFunc("/dashboard", h.Bookings.Dashboard).Methods(http.MethodGet)

	// --- Площадки ---
	admin.HandleFunc("/locations", h.Locations.List).Methods(http.MethodGet)
	admin.HandleFunc("/locations", h.Locations.Create).Methods(http.MethodPost)
	admin.HandleFunc("/locations/{locationId:[0-9]+}", h.Locations.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/locations/{locationId:[0-9]+}", h.Locations.Delete).Methods(http.MethodDelete)

	// --- Слоты ---
	admin.HandleFunc("/locations/{locationId:[0-9]+}/slots", h.GenerateSlots.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/slots", h.Slots.List).Methods(http.MethodGet)
	admin.HandleFunc("/slots/{slotId:[0-9]+}", h.Slots.Delete).Methods(http.MethodDelete)

	// --- Бронирования ---
	admin.HandleFunc("/bookings", h.Bookings.List).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/export", h.Bookings.Export).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}", h.Bookings.Get).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId:[0-9]+}/{decision:accept|refuse}", h.ReviewBooking.Handle).Methods(http.MethodPost)

	// --- Страницы ---
	admin.HandleFunc("/pages", h.Pages.Create).Methods(http.MethodPost)
	admin.HandleFunc("/pages/{slug}", h.Pages.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/pages/{slug}", h.Pages.Delete).Methods(http.MethodDelete)

	if len(opts.AllowedOrigins) == 0 {
		return r
	}

	return cors.New(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)
}
