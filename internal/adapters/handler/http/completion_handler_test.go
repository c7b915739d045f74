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

func TestCompleteHabit(t *testing.T) {
	t.Run("Success: Empty body completes now", func(t *testing.T) {
		router, repo := setupRouter()
		h := createHabit(t, repo, "Run", "daily")

		w := perform(router, "POST", "/api/v1/habits/"+h.ID+"/completions", "")

		require.Equal(t, http.StatusCreated, w.Code)

		var c domain.Completion
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
		assert.True(t, c.CompletedAt.Equal(testNow))
	})

	t.Run("Success: Backdated completion", func(t *testing.T) {
		router, repo := setupRouter()
		h := createHabit(t, repo, "Run", "daily")

		w := perform(router, "POST", "/api/v1/habits/"+h.ID+"/completions", `{"completed_at": "2024-03-10T08:00:00+01:00"}`)

		require.Equal(t, http.StatusCreated, w.Code)

		var c domain.Completion
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
		assert.True(t, c.CompletedAt.Equal(time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC)))
	})

	t.Run("Fail: 422 Future completion", func(t *testing.T) {
		router, repo := setupRouter()
		h := createHabit(t, repo, "Run", "daily")

		w := perform(router, "POST", "/api/v1/habits/"+h.ID+"/completions", `{"completed_at": "2030-01-01T00:00:00Z"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Fail: 400 Bad timestamp", func(t *testing.T) {
		router, repo := setupRouter()
		h := createHabit(t, repo, "Run", "daily")

		w := perform(router, "POST", "/api/v1/habits/"+h.ID+"/completions", `{"completed_at": "yesterday"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 404 Unknown habit", func(t *testing.T) {
		router, _ := setupRouter()

		w := perform(router, "POST", "/api/v1/habits/ghost/completions", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCompletionListings(t *testing.T) {
	router, repo := setupRouter()
	run := createHabit(t, repo, "Run", "daily", testNow.Add(-48*time.Hour), testNow.Add(-time.Hour))
	createHabit(t, repo, "Read", "daily", testNow.Add(-24*time.Hour))

	t.Run("History is oldest first", func(t *testing.T) {
		w := perform(router, "GET", "/api/v1/habits/"+run.ID+"/completions", "")

		require.Equal(t, http.StatusOK, w.Code)

		var list []domain.Completion
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 2)
		assert.True(t, list[0].CompletedAt.Before(list[1].CompletedAt))
	})

	t.Run("Activity is newest first across habits", func(t *testing.T) {
		w := perform(router, "GET", "/api/v1/completions", "")

		require.Equal(t, http.StatusOK, w.Code)

		var list []domain.CompletionActivity
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 3)
		assert.Equal(t, "Run", list[0].HabitName)
		assert.Equal(t, "Read", list[1].HabitName)
	})

	t.Run("History of unknown habit is 404", func(t *testing.T) {
		w := perform(router, "GET", "/api/v1/habits/ghost/completions", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
