package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a per-category spending limit for a specific month. Month is
// normalized to the first day of the month at midnight UTC; (user, category,
// month) is unique.
type Budget struct {
	BudgetID     string          `json:"budgetID"`
	UserID       string          `json:"userID"`
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName,omitempty"` // joined at read time
	LimitAmount  decimal.Decimal `json:"limitAmount"`
	Month        time.Time       `json:"month"`
	AuditFields
}

// BudgetProgress is one row of the budget-vs-actual join for a month.
type BudgetProgress struct {
	BudgetID        string          `json:"budgetID"`
	CategoryID      string          `json:"categoryID"`
	CategoryName    string          `json:"categoryName"`
	LimitAmount     decimal.Decimal `json:"limitAmount"`
	Spent           decimal.Decimal `json:"spent"`
	ProgressPercent decimal.Decimal `json:"progressPercent"`
	OverBudget      bool            `json:"overBudget"`
}

var hundred = decimal.NewFromInt(100)

// MatchBudgets joins budget rows against per-category expense totals keyed by
// category ID. Rows with a non-positive limit are excluded. ProgressPercent is
// not clamped; callers label >= 100 as over budget.
func MatchBudgets(budgets []Budget, spentByCategoryID map[string]decimal.Decimal) []BudgetProgress {
	out := make([]BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		if !b.LimitAmount.IsPositive() {
			continue
		}
		spent := spentByCategoryID[b.CategoryID]
		percent := spent.Div(b.LimitAmount).Mul(hundred).Round(2)
		out = append(out, BudgetProgress{
			BudgetID:        b.BudgetID,
			CategoryID:      b.CategoryID,
			CategoryName:    b.CategoryName,
			LimitAmount:     b.LimitAmount,
			Spent:           spent,
			ProgressPercent: percent,
			OverBudget:      percent.GreaterThanOrEqual(hundred),
		})
	}
	return out
}

// NormalizeMonth truncates t to the first of its month at midnight UTC.
func NormalizeMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
