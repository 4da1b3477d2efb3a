package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/dto"
	"github.com/pfdash/pfdash_backend/internal/middleware"
)

// reportingHandler serves the read-only aggregation endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/monthly", h.getMonthlyBreakdown)
	}
}

// getSummary godoc
// @Summary Aggregate summary for a window
// @Description Aggregates the user's transactions within the requested
// @Description window. Exactly one of month, year or from/to may be given;
// @Description none means all time.
// @Tags reports
// @Produce json
// @Param month query string false "Month (YYYY-MM)"
// @Param year query int false "Calendar year"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD), inclusive"
// @Success 200 {object} domain.Summary
// @Failure 400 {object} map[string]string "Conflicting or invalid window parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid window parameters: " + err.Error()})
		return
	}
	window, err := params.Window()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), userID, window)
	if err != nil {
		handleServiceError(c, logger, err, "compute summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getMonthlyBreakdown godoc
// @Summary Per-month totals for a year
// @Description Produces one summary row per calendar month of the year,
// @Description including empty months
// @Tags reports
// @Produce json
// @Param year query int true "Calendar year"
// @Success 200 {object} dto.MonthlyBreakdownResponse
// @Failure 400 {object} map[string]string "Missing or invalid year"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlyBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.MonthlyBreakdownParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year: " + err.Error()})
		return
	}

	months, err := h.reportingService.MonthlyBreakdown(c.Request.Context(), userID, params.Year)
	if err != nil {
		handleServiceError(c, logger, err, "compute monthly breakdown")
		return
	}

	c.JSON(http.StatusOK, dto.MonthlyBreakdownResponse{Year: params.Year, Months: months})
}
