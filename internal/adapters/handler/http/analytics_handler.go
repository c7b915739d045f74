package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/services"
)

type AnalyticsHandler struct {
	svc *services.AnalyticsService
}

func NewAnalyticsHandler(svc *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/habits/:id/streak", h.Streak)

	analytics := r.Group("/analytics")
	{
		analytics.GET("/streaks", h.Board)
		analytics.GET("/longest", h.Overall)
		analytics.GET("/longest/by-name", h.ForName)
	}
}

// Streak godoc
// @Summary  Current and longest streak of one habit
// @Tags     analytics
// @Produce  json
// @Param    id path string true "Habit ID"
// @Success  200 {object} domain.HabitStreak
// @Failure  404 {object} map[string]string
// @Failure  422 {object} map[string]string
// @Router   /habits/{id}/streak [get]
func (h *AnalyticsHandler) Streak(c *gin.Context) {
	res, err := h.svc.Streak(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// Board godoc
// @Summary  Streaks of every habit
// @Tags     analytics
// @Produce  json
// @Success  200 {object} domain.StreakBoard
// @Router   /analytics/streaks [get]
func (h *AnalyticsHandler) Board(c *gin.Context) {
	board, err := h.svc.Board(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// Overall godoc
// @Summary  Habit with the longest streak ever
// @Tags     analytics
// @Produce  json
// @Success  200 {object} domain.LongestReport
// @Router   /analytics/longest [get]
func (h *AnalyticsHandler) Overall(c *gin.Context) {
	report, err := h.svc.Overall(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ForName godoc
// @Summary  Streak of the habit with the given name, case insensitive
// @Tags     analytics
// @Produce  json
// @Param    name query string true "Habit name"
// @Success  200 {object} domain.StreakResult
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /analytics/longest/by-name [get]
func (h *AnalyticsHandler) ForName(c *gin.Context) {
	name := c.Query("name")

	res, err := h.svc.ForName(c.Request.Context(), name)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":    name,
		"current": res.Current,
		"longest": res.Longest,
	})
}
