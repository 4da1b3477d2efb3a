package dto

import (
	"time"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthLayout is the wire format for budget months.
const MonthLayout = "2006-01"

// ParseMonth parses a YYYY-MM string into a first-of-month UTC timestamp.
func ParseMonth(s string) (time.Time, error) {
	return time.Parse(MonthLayout, s)
}

// CreateBudgetRequest defines the data needed to create a budget.
// Month uses the custom "month" validator (YYYY-MM).
type CreateBudgetRequest struct {
	CategoryID  string          `json:"categoryID" binding:"required"`
	LimitAmount decimal.Decimal `json:"limitAmount" binding:"required"`
	Month       string          `json:"month" binding:"required,month"`
}

// UpdateBudgetRequest updates a budget's limit.
type UpdateBudgetRequest struct {
	LimitAmount decimal.Decimal `json:"limitAmount" binding:"required"`
}

// ListBudgetsParams defines query parameters for listing budgets.
type ListBudgetsParams struct {
	Month string `form:"month" binding:"omitempty,month"`
}

// BudgetProgressParams defines query parameters for the progress report.
type BudgetProgressParams struct {
	Month string `form:"month" binding:"required,month"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID     string          `json:"budgetID"`
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName,omitempty"`
	LimitAmount  decimal.Decimal `json:"limitAmount"`
	Month        string          `json:"month"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:     b.BudgetID,
		CategoryID:   b.CategoryID,
		CategoryName: b.CategoryName,
		LimitAmount:  b.LimitAmount,
		Month:        b.Month.Format(MonthLayout),
	}
}

// ListBudgetsResponse wraps the list of budgets.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToListBudgetsResponse converts a slice of budgets to DTOs.
func ToListBudgetsResponse(budgets []domain.Budget) ListBudgetsResponse {
	res := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		res[i] = ToBudgetResponse(&b)
	}
	return ListBudgetsResponse{Budgets: res}
}

// BudgetProgressResponse wraps the budget-vs-actual rows for a month.
type BudgetProgressResponse struct {
	Month string                  `json:"month"`
	Rows  []domain.BudgetProgress `json:"rows"`
}
