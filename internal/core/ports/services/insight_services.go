package services

import (
	"context"
	"time"

	"github.com/pfdash/pfdash_backend/internal/dto"
)

// InsightSvcFacade defines the three prompt-template flows against the
// generative model. Every method degrades to a static fallback payload on any
// model failure; none of them ever returns an error to the caller.
type InsightSvcFacade interface {
	// GeneratePersonalizedInsights turns income, spending patterns and goals
	// into free-text commentary.
	GeneratePersonalizedInsights(ctx context.Context, userID string, req dto.PersonalizedInsightsRequest) dto.PersonalizedInsightsResponse

	// GenerateBudgetSuggestions proposes per-category budget amounts with
	// rationales from the reference month's spending.
	GenerateBudgetSuggestions(ctx context.Context, userID string, ref time.Time) dto.BudgetSuggestionsResponse

	// GenerateTransactionSummary reviews the recent transaction set for
	// unusual activity and recommendations.
	GenerateTransactionSummary(ctx context.Context, userID string, ref time.Time) dto.TransactionSummaryResponse
}
