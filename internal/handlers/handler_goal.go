package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/dto"
	"github.com/pfdash/pfdash_backend/internal/middleware"
)

// goalHandler handles HTTP requests related to goals.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

func newGoalHandler(gs portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{goalService: gs}
}

// registerGoalRoutes registers routes related to goals.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/:id", h.getGoal)
		goals.PUT("/:id", h.updateGoal)
		goals.DELETE("/:id", h.deleteGoal)
	}
}

// referenceDate resolves the optional referenceDate query parameter that
// anchors recurring-goal evaluation windows.
func referenceDate(c *gin.Context) (time.Time, bool) {
	var params dto.ListGoalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return time.Time{}, false
	}
	if params.ReferenceDate != nil {
		return params.ReferenceDate.UTC(), true
	}
	return time.Now().UTC(), true
}

// createGoal godoc
// @Summary Create a goal
// @Description Creates a financial goal. LONG_TERM period pairs only with the
// @Description LONG_TERM goal type; recurring goals recompute their progress
// @Description from transactions on every read.
// @Tags goals
// @Accept json
// @Produce json
// @Param goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input or period/type pairing"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		handleServiceError(c, logger, err, "create goal")
		return
	}

	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

// listGoals godoc
// @Summary List goals
// @Description Retrieves all goals with progress evaluated against the
// @Description reference date (defaults to today, UTC)
// @Tags goals
// @Produce json
// @Param referenceDate query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {object} dto.ListGoalsResponse
// @Failure 400 {object} map[string]string "Invalid reference date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ref, ok := referenceDate(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reference date: expected YYYY-MM-DD"})
		return
	}

	goals, err := h.goalService.ListGoals(c.Request.Context(), userID, ref)
	if err != nil {
		handleServiceError(c, logger, err, "list goals")
		return
	}

	c.JSON(http.StatusOK, dto.ToListGoalsResponse(goals))
}

// getGoal godoc
// @Summary Get a goal by ID
// @Description Retrieves one goal with progress evaluated against the
// @Description reference date (defaults to today, UTC)
// @Tags goals
// @Produce json
// @Param id path string true "Goal ID"
// @Param referenceDate query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid reference date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Goal not found"
// @Security BearerAuth
// @Router /goals/{id} [get]
func (h *goalHandler) getGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ref, ok := referenceDate(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reference date: expected YYYY-MM-DD"})
		return
	}

	goal, err := h.goalService.GetGoalByID(c.Request.Context(), userID, c.Param("id"), ref)
	if err != nil {
		handleServiceError(c, logger, err, "retrieve goal")
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// updateGoal godoc
// @Summary Update a goal
// @Description Updates a goal. The stored current amount only moves for
// @Description long-term goals; the response carries the evaluated amount.
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param goal body dto.UpdateGoalRequest true "Fields to update"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Goal not found"
// @Security BearerAuth
// @Router /goals/{id} [put]
func (h *goalHandler) updateGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), userID, c.Param("id"), req, time.Now().UTC())
	if err != nil {
		handleServiceError(c, logger, err, "update goal")
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// deleteGoal godoc
// @Summary Delete a goal
// @Description Deletes one of the user's goals
// @Tags goals
// @Param id path string true "Goal ID"
// @Success 204 "Goal deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Goal not found"
// @Security BearerAuth
// @Router /goals/{id} [delete]
func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.goalService.DeleteGoal(c.Request.Context(), userID, c.Param("id")); err != nil {
		handleServiceError(c, logger, err, "delete goal")
		return
	}

	c.Status(http.StatusNoContent)
}
