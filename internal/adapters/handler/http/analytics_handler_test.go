package http_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/domain"
)

func daysBefore(n ...int) []time.Time {
	out := make([]time.Time, 0, len(n))
	for _, d := range n {
		out = append(out, testNow.AddDate(0, 0, -d))
	}
	return out
}

func TestAnalyticsEndpoints(t *testing.T) {
	router, repo := setupRouter()
	water := createHabit(t, repo, "Drink Water", "daily", daysBefore(0, 1, 2)...)
	createHabit(t, repo, "Run", "daily", daysBefore(20, 19, 18, 17, 10)...)

	t.Run("Single habit streak", func(t *testing.T) {
		w := perform(router, "GET", "/api/v1/habits/"+water.ID+"/streak", "")

		require.Equal(t, http.StatusOK, w.Code)

		var res domain.HabitStreak
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, domain.StreakResult{Current: 3, Longest: 3}, res.Streak)
	})

	t.Run("Streak of unknown habit", func(t *testing.T) {
		w := perform(router, "GET", "/api/v1/habits/ghost/streak", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Board", func(t *testing.T) {
		w := perform(router, "GET", "/api/v1/analytics/streaks", "")

		require.Equal(t, http.StatusOK, w.Code)

		var board domain.StreakBoard
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
		assert.Len(t, board.Habits, 2)
		assert.Empty(t, board.Skipped)
	})

	t.Run("Overall longest", func(t *testing.T) {
		w := perform(router, "GET", "/api/v1/analytics/longest", "")

		require.Equal(t, http.StatusOK, w.Code)

		var report domain.LongestReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		require.NotNil(t, report.Best)
		assert.Equal(t, "Run", report.Best.HabitName)
		assert.Equal(t, 4, report.Best.Longest)
	})

	t.Run("By name", func(t *testing.T) {
		w := perform(router, "GET", "/api/v1/analytics/longest/by-name?name=drink%20water", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"name": "drink water", "current": 3, "longest": 3}`, w.Body.String())
	})

	t.Run("By name without match", func(t *testing.T) {
		w := perform(router, "GET", "/api/v1/analytics/longest/by-name?name=swim", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("By name without a name", func(t *testing.T) {
		w := perform(router, "GET", "/api/v1/analytics/longest/by-name", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAnalyticsEndpoints_NoHabits(t *testing.T) {
	router, _ := setupRouter()

	w := perform(router, "GET", "/api/v1/analytics/longest", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"best":null`)
}
