package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/dto"
	"github.com/pfdash/pfdash_backend/internal/middleware"
)

// insightHandler serves the generative insight endpoints. The service never
// fails; when the model is unavailable each flow answers with its static
// fallback payload, so these handlers only ever return 200 or 400.
type insightHandler struct {
	insightService portssvc.InsightSvcFacade
}

func newInsightHandler(is portssvc.InsightSvcFacade) *insightHandler {
	return &insightHandler{insightService: is}
}

// registerInsightRoutes registers the insight routes.
func registerInsightRoutes(rg *gin.RouterGroup, insightService portssvc.InsightSvcFacade) {
	h := newInsightHandler(insightService)

	insights := rg.Group("/insights")
	{
		insights.POST("/personalized", h.personalizedInsights)
		insights.POST("/budget-suggestions", h.budgetSuggestions)
		insights.POST("/transaction-summary", h.transactionSummary)
	}
}

// personalizedInsights godoc
// @Summary Personalized financial commentary
// @Description Turns the caller's income, spending patterns and goals into
// @Description free-text commentary. Degrades to a static message when the
// @Description model is unavailable.
// @Tags insights
// @Accept json
// @Produce json
// @Param snapshot body dto.PersonalizedInsightsRequest true "Financial snapshot"
// @Success 200 {object} dto.PersonalizedInsightsResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /insights/personalized [post]
func (h *insightHandler) personalizedInsights(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.PersonalizedInsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.insightService.GeneratePersonalizedInsights(c.Request.Context(), userID, req))
}

// budgetSuggestions godoc
// @Summary Suggested per-category budgets
// @Description Proposes budget amounts with rationales from the reference
// @Description month's spending. Degrades to static suggestions when the
// @Description model is unavailable.
// @Tags insights
// @Produce json
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Success 200 {object} dto.BudgetSuggestionsResponse
// @Failure 400 {object} map[string]string "Invalid month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /insights/budget-suggestions [post]
func (h *insightHandler) budgetSuggestions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ref := time.Now().UTC()
	if monthParam := c.Query("month"); monthParam != "" {
		m, err := dto.ParseMonth(monthParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month: expected YYYY-MM"})
			return
		}
		ref = m
	}

	c.JSON(http.StatusOK, h.insightService.GenerateBudgetSuggestions(c.Request.Context(), userID, ref))
}

// transactionSummary godoc
// @Summary Review of recent transactions
// @Description Reviews the recent transaction set for unusual activity and
// @Description recommendations. Degrades to a static overview when the model
// @Description is unavailable.
// @Tags insights
// @Produce json
// @Param referenceDate query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.TransactionSummaryResponse
// @Failure 400 {object} map[string]string "Invalid reference date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /insights/transaction-summary [post]
func (h *insightHandler) transactionSummary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ref := time.Now().UTC()
	if dateParam := c.Query("referenceDate"); dateParam != "" {
		d, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reference date: expected YYYY-MM-DD"})
			return
		}
		ref = d.UTC()
	}

	c.JSON(http.StatusOK, h.insightService.GenerateTransactionSummary(c.Request.Context(), userID, ref))
}
