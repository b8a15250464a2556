package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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
	"github.com/m04kA/incubator-booking/internal/infra/storage/memory"
	"github.com/m04kA/incubator-booking/internal/integrations/notifier"
	authService "github.com/m04kA/incubator-booking/internal/service/auth"
	authModels "github.com/m04kA/incubator-booking/internal/service/auth/models"
	bookingsService "github.com/m04kA/incubator-booking/internal/service/bookings"
	bookingModels "github.com/m04kA/incubator-booking/internal/service/bookings/models"
	locationsService "github.com/m04kA/incubator-booking/internal/service/locations"
	locationModels "github.com/m04kA/incubator-booking/internal/service/locations/models"
	pagesService "github.com/m04kA/incubator-booking/internal/service/pages"
	pageModels "github.com/m04kA/incubator-booking/internal/service/pages/models"
	slotsService "github.com/m04kA/incubator-booking/internal/service/slots"
	createBookingUC "github.com/m04kA/incubator-booking/internal/usecase/create_booking"
	generateSlotsUC "github.com/m04kA/incubator-booking/internal/usecase/generate_slots"
	getAvailableSlotsUC "github.com/m04kA/incubator-booking/internal/usecase/get_available_slots"
	manageBookingUC "github.com/m04kA/incubator-booking/internal/usecase/manage_booking"
	reviewBookingUC "github.com/m04kA/incubator-booking/internal/usecase/review_booking"
	"github.com/m04kA/incubator-booking/pkg/logger"
)

const (
	testPassword  = "staff-pass"
	testPublicURL = "https://rdv.example.org"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	tz, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	log := logger.NewNop()
	store := memory.NewStore()
	tx := store.TxManager()

	auth, err := authService.NewService(testPassword, "test-secret", time.Hour, log)
	require.NoError(t, err)

	notify := notifier.New(notifier.NewRenderer(testPublicURL, tz), log, notifier.NewLogChannel(log))

	locationSvc := locationsService.NewService(store.Locations(), store.Slots(), store.Bookings(), tx, log)
	slotSvc := slotsService.NewService(store.Slots(), store.Bookings(), tx, tz, log)
	bookingSvc := bookingsService.NewService(store.Bookings(), store.Locations(), tz, log)
	pageSvc := pagesService.NewService(store.Pages(), tx, log)

	// 07:00 UTC = 08:00 по Парижу, до первого сгенерированного слота
	clock := fixedClock{t: time.Date(2030, 3, 1, 7, 0, 0, 0, time.UTC)}

	h := &Handlers{
		Locations: locationsHandler.NewHandler(locationSvc, log),
		AvailableSlots: getAvailableSlotsHandler.NewHandler(
			getAvailableSlotsUC.NewUseCase(store.Locations(), store.Slots(), log).WithTimeProvider(clock), tz, log),
		CreateBooking: createBookingHandler.NewHandler(
			createBookingUC.NewUseCase(store.Slots(), store.Locations(), store.Bookings(), notify, tx, log), testPublicURL, tz, log),
		GetBooking: getBookingHandler.NewHandler(bookingSvc, log),
		BookingQR:  getBookingQRHandler.NewHandler(bookingSvc, testPublicURL, log),
		ManageBooking: manageBookingHandler.NewHandler(
			manageBookingUC.NewUseCase(store.Bookings(), store.Slots(), tx, log), tz, log),
		Pages:   pagesHandler.NewHandler(pageSvc, log),
		Session: sessionHandler.NewHandler(auth, false, log),
		GenerateSlots: generateSlotsHandler.NewHandler(
			generateSlotsUC.NewUseCase(store.Locations(), store.Slots(), tx, tz, false, log), tz, log),
		Slots:    slotsHandler.NewHandler(slotSvc, log),
		Bookings: bookingsHandler.NewHandler(bookingSvc, log),
		ReviewBooking: reviewBookingHandler.NewHandler(
			reviewBookingUC.NewUseCase(store.Bookings(), store.Slots(), tx, log), tz, log),
	}

	return NewRouter(h, Options{Gate: auth}, log)
}

func do(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(dst))
}

func login(t *testing.T, router http.Handler) string {
	t.Helper()

	rec := do(t, router, http.MethodPost, "/api/v1/admin/login", "", authModels.LoginRequest{Password: testPassword})
	require.Equal(t, http.StatusOK, rec.Code)

	var session authModels.SessionResponse
	decode(t, rec, &session)
	require.NotEmpty(t, session.Token)
	return session.Token
}

// setupLocation создает площадку с тремя слотами 09:00-12:00
func setupLocation(t *testing.T, router http.Handler, token string) (locationID int64, slotIDs []int64) {
	t.Helper()

	rec := do(t, router, http.MethodPost, "/api/v1/admin/locations", token,
		locationModels.CreateLocationRequest{Name: "Lyon", City: "Lyon"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var loc locationModels.LocationResponse
	decode(t, rec, &loc)

	rec = do(t, router, http.MethodPost, fmt.Sprintf("/api/v1/admin/locations/%d/slots", loc.ID), token,
		generateSlotsHandler.GenerateSlotsRequest{Date: "2030-03-01", StartTime: "09:00", EndTime: "12:00"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var generated generateSlotsHandler.GenerateSlotsResponse
	decode(t, rec, &generated)
	require.Equal(t, 3, generated.Count)
	assert.Equal(t, "3 créneaux créés", generated.Message)

	for _, s := range generated.Slots {
		slotIDs = append(slotIDs, s.ID)
	}
	return loc.ID, slotIDs
}

func book(t *testing.T, router http.Handler, slotID int64) *httptest.ResponseRecorder {
	t.Helper()
	return do(t, router, http.MethodPost, fmt.Sprintf("/api/v1/slots/%d/bookings", slotID), "",
		createBookingHandler.CreateBookingRequest{
			Name:    "Claire",
			Surname: "Martin",
			Email:   "claire@example.org",
			Phone:   "+33 6 00 00 00 00",
			Sector:  "Agritech",
		})
}

func availableSlots(t *testing.T, router http.Handler, locationID int64) []int64 {
	t.Helper()

	rec := do(t, router, http.MethodGet, fmt.Sprintf("/api/v1/locations/%d/slots", locationID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp getAvailableSlotsHandler.AvailableSlotsResponse
	decode(t, rec, &resp)

	ids := make([]int64, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_VisitorBookingFlow(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)
	locationID, slotIDs := setupLocation(t, router, token)

	assert.Equal(t, slotIDs, availableSlots(t, router, locationID))

	// Бронирование второго слота
	rec := book(t, router, slotIDs[1])
	require.Equal(t, http.StatusCreated, rec.Code)
	var created createBookingHandler.CreateBookingResponse
	decode(t, rec, &created)

	cancelToken := created.Booking.CancelToken
	require.Len(t, cancelToken, 32)
	assert.Equal(t, testPublicURL+"/cancel/"+cancelToken, created.CancelURL)
	assert.Equal(t, "pending", created.Booking.Status)
	assert.Equal(t, "10:00", created.Booking.Slot.StartTime)
	assert.Equal(t, "Lyon", created.Booking.Location.Name)

	// Повторное бронирование того же слота
	rec = book(t, router, slotIDs[1])
	assert.Equal(t, http.StatusConflict, rec.Code)

	assert.Equal(t, []int64{slotIDs[0], slotIDs[2]}, availableSlots(t, router, locationID))

	// Подтверждение по токену
	rec = do(t, router, http.MethodGet, "/api/v1/bookings/"+cancelToken, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched bookingModels.BookingResponse
	decode(t, rec, &fetched)
	assert.Equal(t, created.Booking.ID, fetched.ID)

	rec = do(t, router, http.MethodGet, "/api/v1/bookings/"+cancelToken+"/qr", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec = do(t, router, http.MethodGet, "/api/v1/bookings/unknown-token", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Отмена освобождает слот
	rec = do(t, router, http.MethodPost, "/api/v1/bookings/"+cancelToken+"/actions", "",
		manageBookingHandler.ManageBookingRequest{Action: "cancel"})
	require.Equal(t, http.StatusOK, rec.Code)
	var cancelled manageBookingHandler.ManageBookingResponse
	decode(t, rec, &cancelled)
	assert.True(t, cancelled.Changed)
	assert.Equal(t, "cancelled", cancelled.Booking.Status)

	assert.Equal(t, slotIDs, availableSlots(t, router, locationID))

	// Перенос отмененного бронирования невозможен
	rec = do(t, router, http.MethodPost, "/api/v1/bookings/"+cancelToken+"/actions", "",
		manageBookingHandler.ManageBookingRequest{Action: "reschedule"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouter_Reschedule(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)
	locationID, slotIDs := setupLocation(t, router, token)

	rec := book(t, router, slotIDs[0])
	require.Equal(t, http.StatusCreated, rec.Code)
	var created createBookingHandler.CreateBookingResponse
	decode(t, rec, &created)

	rec = do(t, router, http.MethodPost, "/api/v1/bookings/"+created.Booking.CancelToken+"/actions", "",
		manageBookingHandler.ManageBookingRequest{Action: "reschedule"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp manageBookingHandler.ManageBookingResponse
	decode(t, rec, &resp)
	assert.Equal(t, locationID, resp.LocationID)
	assert.Equal(t, "cancelled", resp.Booking.Status)

	assert.Equal(t, slotIDs, availableSlots(t, router, locationID))
}

func TestRouter_BookingValidation(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)
	_, slotIDs := setupLocation(t, router, token)

	rec := do(t, router, http.MethodPost, fmt.Sprintf("/api/v1/slots/%d/bookings", slotIDs[0]), "",
		createBookingHandler.CreateBookingRequest{Name: "Claire", Email: "claire@example.org"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, fmt.Sprintf("/api/v1/slots/%d/bookings", slotIDs[0]), "",
		map[string]string{"unknown": "field"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = book(t, router, 999)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_StaffRequiresSession(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
	}{
		{name: "no session", method: http.MethodGet, path: "/api/v1/admin/bookings"},
		{name: "forged session", method: http.MethodGet, path: "/api/v1/admin/dashboard", token: "forged"},
		{name: "create location", method: http.MethodPost, path: "/api/v1/admin/locations"},
		{name: "export", method: http.MethodGet, path: "/api/v1/admin/bookings/export"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, tt.method, tt.path, tt.token, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}

	rec := do(t, router, http.MethodPost, "/api/v1/admin/login", "", authModels.LoginRequest{Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_LoginSetsCookie(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/v1/admin/login", "", authModels.LoginRequest{Password: testPassword})
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
	req.AddCookie(cookies[0])
	dashboard := httptest.NewRecorder()
	router.ServeHTTP(dashboard, req)
	assert.Equal(t, http.StatusOK, dashboard.Code)
}

func TestRouter_ReviewAndExport(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)
	_, slotIDs := setupLocation(t, router, token)

	rec := book(t, router, slotIDs[0])
	require.Equal(t, http.StatusCreated, rec.Code)
	var created createBookingHandler.CreateBookingResponse
	decode(t, rec, &created)
	bookingID := created.Booking.ID

	rec = do(t, router, http.MethodPost, fmt.Sprintf("/api/v1/admin/bookings/%d/accept", bookingID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var reviewed reviewBookingHandler.ReviewBookingResponse
	decode(t, rec, &reviewed)
	assert.Equal(t, "accepted", reviewed.Booking.Status)
	assert.Empty(t, reviewed.Booking.CancelToken)

	rec = do(t, router, http.MethodGet, "/api/v1/admin/bookings?status=accepted", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list bookingModels.BookingListResponse
	decode(t, rec, &list)
	require.Len(t, list.Bookings, 1)
	assert.Empty(t, list.Bookings[0].CancelToken)

	rec = do(t, router, http.MethodGet, "/api/v1/admin/bookings?status=unknown", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/admin/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dashboard bookingModels.DashboardResponse
	decode(t, rec, &dashboard)
	assert.Equal(t, 1, dashboard.Locations)
	assert.Equal(t, 1, dashboard.Total)
	assert.Equal(t, 1, dashboard.ByStatus["accepted"])

	rec = do(t, router, http.MethodGet, "/api/v1/admin/bookings/export", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "bookings.csv")

	records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, bookingModels.ExportHeader, records[0])
	assert.Equal(t, "Lyon", records[1][1])
	assert.Equal(t, "2030-03-01 09:00", records[1][2])
	assert.Equal(t, "accepted", records[1][14])
}

func TestRouter_DeleteLocationCascades(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)
	locationID, slotIDs := setupLocation(t, router, token)

	require.Equal(t, http.StatusCreated, book(t, router, slotIDs[0]).Code)

	rec := do(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/admin/locations/%d", locationID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var deleted locationModels.DeleteLocationResponse
	decode(t, rec, &deleted)
	assert.Equal(t, int64(3), deleted.DeletedSlots)
	assert.Equal(t, int64(1), deleted.DeletedBookings)

	rec = do(t, router, http.MethodGet, fmt.Sprintf("/api/v1/locations/%d/slots", locationID), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Pages(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	rec := do(t, router, http.MethodPost, "/api/v1/admin/pages", token,
		pageModels.CreatePageRequest{Slug: "a-propos", Title: "À propos", Content: "L'incubateur"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/v1/admin/pages", token,
		pageModels.CreatePageRequest{Slug: "a-propos", Title: "Doublon", Content: "..."})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/pages/a-propos", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page pageModels.PageResponse
	decode(t, rec, &page)
	assert.Equal(t, "À propos", page.Title)

	rec = do(t, router, http.MethodDelete, "/api/v1/admin/pages/a-propos", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/pages/a-propos", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
