package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/services"
)

const defaultSeedSpanDays = 60

type AdminHandler struct {
	svc *services.AdminService
}

func NewAdminHandler(svc *services.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

type seedRequest struct {
	SpanDays int    `json:"span_days"`
	Mode     string `json:"mode" binding:"omitempty,oneof=random perfect none"`
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	{
		admin.POST("/seed", h.Seed)
		admin.GET("/summary", h.Summary)
	}
}

// Seed godoc
// @Summary  Create demo habits and backfill completions
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    seed body seedRequest false "span_days defaults to 60, mode to random"
// @Success  201 {object} map[string]int
// @Failure  400 {object} map[string]string
// @Router   /admin/seed [post]
func (h *AdminHandler) Seed(c *gin.Context) {
	req := seedRequest{SpanDays: defaultSeedSpanDays, Mode: "random"}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
			return
		}
	}
	if req.SpanDays <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "span_days must be positive"})
		return
	}

	ctx := c.Request.Context()

	created, err := h.svc.SeedDemoHabits(ctx)
	if err != nil {
		handleError(c, err)
		return
	}

	recorded := 0
	switch req.Mode {
	case "perfect":
		recorded, err = h.svc.AddPerfectStreaks(ctx, req.SpanDays)
	case "random", "":
		recorded, err = h.svc.AddFakeCompletions(ctx, req.SpanDays)
	}
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"habits_created":       len(created),
		"completions_recorded": recorded,
	})
}

// Summary godoc
// @Summary  Completion count per habit
// @Tags     admin
// @Produce  json
// @Success  200 {array} services.HabitSummary
// @Router   /admin/summary [get]
func (h *AdminHandler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
