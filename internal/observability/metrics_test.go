package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_GinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()

	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/habits/:id", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/habits/"+id, nil))
		require.Equal(t, http.StatusNotFound, w.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("/habits/:id", "404")))
}

func TestMetrics_ObserveStreaks(t *testing.T) {
	m := NewMetrics()

	m.ObserveStreaks("board", 3, 1)
	m.ObserveStreaks("board", 2, 0)

	assert.Equal(t, 5.0, testutil.ToFloat64(m.streaksEvaluated.WithLabelValues("board")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.habitsSkipped.WithLabelValues("board")))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.ObserveStreaks("board", 1, 1) })
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObserveStreaks("overall", 4, 0)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `habit_streaks_evaluated_total{operation="overall"} 4`)
}
