package http_test

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/kanso-habit-tracker/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/services"
	"github.com/comitanigiacomo/kanso-habit-tracker/internal/observability"
)

type stubPinger struct {
	err error
}

func (s stubPinger) PingContext(ctx context.Context) error { return s.err }

func newFullRouter(storage adapterHTTP.StoragePinger) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewInMemoryRepository()
	clock := func() time.Time { return testNow }
	metrics := observability.NewMetrics()

	return adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		HabitHandler:      adapterHTTP.NewHabitHandler(services.NewHabitService(repo)),
		CompletionHandler: adapterHTTP.NewCompletionHandler(services.NewCompletionService(repo, repo, nil, clock)),
		AnalyticsHandler:  adapterHTTP.NewAnalyticsHandler(services.NewAnalyticsService(repo, clock, time.UTC, metrics)),
		AdminHandler:      adapterHTTP.NewAdminHandler(services.NewAdminService(repo, repo, clock, rand.New(rand.NewSource(1)))),
		Storage:           storage,
		Metrics:           metrics,
		StartTime:         time.Now(),
	})
}

func TestRouter_Health(t *testing.T) {
	tests := []struct {
		name       string
		storage    adapterHTTP.StoragePinger
		wantCode   int
		wantStatus string
	}{
		{"In-memory store", nil, http.StatusOK, `"database":"in-memory"`},
		{"Database reachable", stubPinger{}, http.StatusOK, `"database":"connected"`},
		{"Database down", stubPinger{err: errors.New("connection refused")}, http.StatusServiceUnavailable, `"database":"unreachable"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newFullRouter(tt.storage)

			w := perform(router, "GET", "/health", "")

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantStatus)
			assert.Contains(t, w.Body.String(), `"redis":"disabled"`)
		})
	}
}

func TestRouter_MetricsAndCORS(t *testing.T) {
	router := newFullRouter(nil)

	require.Equal(t, http.StatusOK, perform(router, "GET", "/api/v1/analytics/streaks", "").Code)

	w := perform(router, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{route="/api/v1/analytics/streaks",status="200"} 1`)
	assert.Contains(t, w.Body.String(), `habit_streaks_evaluated_total{operation="board"} 0`)

	w = perform(router, "OPTIONS", "/api/v1/habits", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	for _, method := range []string{"GET", "POST", "PUT", "PATCH", "DELETE"} {
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), method)
	}
}

func TestRouter_Swagger(t *testing.T) {
	router := newFullRouter(nil)

	w := perform(router, "GET", "/swagger/doc.json", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/analytics/streaks")
}
