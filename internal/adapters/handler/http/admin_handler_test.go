package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/services"
)

func TestAdminSeed(t *testing.T) {
	t.Run("Perfect seed", func(t *testing.T) {
		router, _ := setupRouter()

		w := perform(router, "POST", "/api/v1/admin/seed", `{"span_days": 60, "mode": "perfect"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"habits_created": 5, "completions_recorded": 138}`, w.Body.String())

		w = perform(router, "GET", "/api/v1/admin/summary", "")
		require.Equal(t, http.StatusOK, w.Code)

		var summary []services.HabitSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		assert.Len(t, summary, 5)
	})

	t.Run("Habits only", func(t *testing.T) {
		router, _ := setupRouter()

		w := perform(router, "POST", "/api/v1/admin/seed", `{"mode": "none"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"habits_created": 5, "completions_recorded": 0}`, w.Body.String())
	})

	t.Run("Default body seeds random history", func(t *testing.T) {
		router, _ := setupRouter()

		w := perform(router, "POST", "/api/v1/admin/seed", "")

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"habits_created":5`)
	})

	tests := []struct {
		name string
		body string
	}{
		{"Unknown mode", `{"mode": "chaos"}`},
		{"Negative span", `{"span_days": -3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupRouter()

			w := perform(router, "POST", "/api/v1/admin/seed", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
