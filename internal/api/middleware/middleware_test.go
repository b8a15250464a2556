package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/incubator-booking/pkg/logger"
	"github.com/m04kA/incubator-booking/pkg/metrics"
)

type staticGate string

func (g staticGate) Authorized(token string) bool { return token != "" && token == string(g) }

func okHandler(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestAuth(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Auth(staticGate("valid"), logger.NewNop()))
	r.HandleFunc("/admin/bookings", okHandler)

	tests := []struct {
		name   string
		setup  func(req *http.Request)
		status int
	}{
		{name: "no session", setup: func(*http.Request) {}, status: http.StatusUnauthorized},
		{name: "bearer", setup: func(req *http.Request) { req.Header.Set("Authorization", "Bearer valid") }, status: http.StatusOK},
		{name: "cookie", setup: func(req *http.Request) { req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "valid"}) }, status: http.StatusOK},
		{name: "wrong cookie", setup: func(req *http.Request) { req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "forged"}) }, status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
			tt.setup(req)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusUnauthorized {
				assert.Equal(t, LoginPath, w.Header().Get("Location"))
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	l := NewRateLimiter(60, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"))

	now = now.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"))
}

func TestRateLimiter_Middleware(t *testing.T) {
	l := NewRateLimiter(1, 1)
	h := l.Middleware(logger.NewNop())(http.HandlerFunc(okHandler))

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/slots/1/bookings", nil)
		req.RemoteAddr = "192.0.2.1:5555"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}

func TestRecovery(t *testing.T) {
	h := Recovery(logger.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/locations/{locationId}/available-slots", okHandler)

	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/locations/"+id+"/available-slots", nil))
	}

	counter := m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/locations/{locationId}/available-slots", "200")
	var metric dto.Metric
	require.NoError(t, counter.Write(&metric))
	assert.Equal(t, float64(3), metric.GetCounter().GetValue())
}
