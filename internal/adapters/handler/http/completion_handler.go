package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-habit-tracker/internal/core/services"
)

type CompletionHandler struct {
	svc *services.CompletionService
}

func NewCompletionHandler(svc *services.CompletionService) *CompletionHandler {
	return &CompletionHandler{
		svc: svc,
	}
}

// completeHabitRequest is optional; an empty body completes the habit now.
type completeHabitRequest struct {
	CompletedAt *time.Time `json:"completed_at"`
}

func (h *CompletionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/habits/:id/completions", h.Complete)
	router.GET("/habits/:id/completions", h.History)
	router.GET("/completions", h.Activity)
}

// Complete godoc
// @Summary  Mark a habit as completed
// @Tags     completions
// @Accept   json
// @Produce  json
// @Param    id         path string               true  "Habit ID"
// @Param    completion body completeHabitRequest false "Completion instant (RFC 3339), defaults to now"
// @Success  201 {object} domain.Completion
// @Failure  404 {object} map[string]string
// @Failure  422 {object} map[string]string
// @Router   /habits/{id}/completions [post]
func (h *CompletionHandler) Complete(c *gin.Context) {
	var req completeHabitRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
			return
		}
	}

	input := services.CompleteHabitInput{HabitID: c.Param("id")}
	if req.CompletedAt != nil {
		input.CompletedAt = *req.CompletedAt
	}

	completion, err := h.svc.Complete(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, completion)
}

// History godoc
// @Summary  List a habit's completions, oldest first
// @Tags     completions
// @Produce  json
// @Param    id path string true "Habit ID"
// @Success  200 {array} domain.Completion
// @Failure  404 {object} map[string]string
// @Router   /habits/{id}/completions [get]
func (h *CompletionHandler) History(c *gin.Context) {
	list, err := h.svc.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Activity godoc
// @Summary  List every completion, newest first
// @Tags     completions
// @Produce  json
// @Success  200 {array} domain.CompletionActivity
// @Router   /completions [get]
func (h *CompletionHandler) Activity(c *gin.Context) {
	list, err := h.svc.Activity(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
