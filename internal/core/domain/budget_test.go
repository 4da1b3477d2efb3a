package domain_test

import (
	"testing"
	"time"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func budget(categoryID string, limit float64) domain.Budget {
	return domain.Budget{
		BudgetID:    "b-" + categoryID,
		CategoryID:  categoryID,
		LimitAmount: decimal.NewFromFloat(limit),
		Month:       domain.NormalizeMonth(date(2025, time.June, 1)),
	}
}

func TestMatchBudgets_EmptyInput(t *testing.T) {
	assert.Empty(t, domain.MatchBudgets(nil, map[string]decimal.Decimal{"cat": decimal.NewFromInt(50)}))
}

func TestMatchBudgets_NonPositiveLimitsExcluded(t *testing.T) {
	budgets := []domain.Budget{
		budget("food", 0),
		budget("rent", -10),
	}

	assert.Empty(t, domain.MatchBudgets(budgets, map[string]decimal.Decimal{"food": decimal.NewFromInt(50)}))
}

func TestMatchBudgets_ProgressAndOverBudget(t *testing.T) {
	budgets := []domain.Budget{
		budget("food", 100),
		budget("transport", 200),
		budget("fun", 80),
	}
	spent := map[string]decimal.Decimal{
		"food":      decimal.NewFromInt(150), // over, percent stays unclamped
		"transport": decimal.NewFromInt(200), // exactly at the limit counts as over
	}

	rows := domain.MatchBudgets(budgets, spent)

	require.Len(t, rows, 3)

	assert.True(t, decimal.NewFromInt(150).Equal(rows[0].ProgressPercent))
	assert.True(t, rows[0].OverBudget)

	assert.True(t, decimal.NewFromInt(100).Equal(rows[1].ProgressPercent))
	assert.True(t, rows[1].OverBudget)

	// No spending recorded for "fun" at all.
	assert.True(t, rows[2].Spent.IsZero())
	assert.True(t, rows[2].ProgressPercent.IsZero())
	assert.False(t, rows[2].OverBudget)
}

func TestNormalizeMonth(t *testing.T) {
	got := domain.NormalizeMonth(time.Date(2025, time.June, 19, 17, 30, 12, 0, time.FixedZone("X", 3600)))
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), got)
}
