package dto

// PersonalizedInsightsRequest carries the financial snapshot the model
// comments on. All fields are free text by design; callers derive them from
// the summary screens.
type PersonalizedInsightsRequest struct {
	Income           string   `json:"income" binding:"required"`
	SpendingPatterns string   `json:"spendingPatterns" binding:"required"`
	FinancialGoals   []string `json:"financialGoals"`
}

// PersonalizedInsightsResponse is unstructured commentary.
type PersonalizedInsightsResponse struct {
	Insights string `json:"insights"`
	// Fallback is true when the model was unavailable and a static message
	// was substituted.
	Fallback bool `json:"fallback,omitempty"`
}

// BudgetSuggestion is one proposed per-category budget.
type BudgetSuggestion struct {
	Category  string `json:"category"`
	Amount    string `json:"amount"`
	Rationale string `json:"rationale"`
}

// BudgetSuggestionsResponse wraps the model's proposed budgets.
type BudgetSuggestionsResponse struct {
	Suggestions []BudgetSuggestion `json:"suggestions"`
	Fallback    bool               `json:"fallback,omitempty"`
}

// TransactionSummaryResponse is the model's review of recent activity.
type TransactionSummaryResponse struct {
	Overview            string   `json:"overview"`
	UnusualTransactions []string `json:"unusualTransactions"`
	Recommendations     []string `json:"recommendations"`
	Fallback            bool     `json:"fallback,omitempty"`
}
