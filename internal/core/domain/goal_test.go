package domain_test

import (
	"testing"
	"time"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidPeriodType(t *testing.T) {
	tests := []struct {
		name     string
		period   domain.GoalPeriod
		goalType domain.GoalType
		want     bool
	}{
		{"monthly saving", domain.GoalPeriodMonthly, domain.GoalSaving, true},
		{"yearly investment", domain.GoalPeriodYearly, domain.GoalInvestment, true},
		{"monthly need spending", domain.GoalPeriodMonthly, domain.GoalNeedSpending, true},
		{"yearly want spending", domain.GoalPeriodYearly, domain.GoalWantSpending, true},
		{"long term pair", domain.GoalPeriodLongTerm, domain.GoalLongTerm, true},
		{"long term period with saving type", domain.GoalPeriodLongTerm, domain.GoalSaving, false},
		{"monthly period with long term type", domain.GoalPeriodMonthly, domain.GoalLongTerm, false},
		{"unknown period", domain.GoalPeriod("WEEKLY"), domain.GoalSaving, false},
		{"unknown type", domain.GoalPeriodMonthly, domain.GoalType("HOARDING"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ValidPeriodType(tt.period, tt.goalType))
		})
	}
}

func TestEvaluateGoal_MonthlySaving(t *testing.T) {
	ref := date(2025, time.June, 20)
	txns := []domain.Transaction{
		txn(domain.TransactionIncome, 2000),
		txn(domain.TransactionExpense, 500),
		txn(domain.TransactionInvestment, 300),
		// Previous month, must not count.
		txn(domain.TransactionIncome, 9999, withDate(date(2025, time.May, 20))),
	}
	goal := domain.Goal{Period: domain.GoalPeriodMonthly, GoalType: domain.GoalSaving}

	got := domain.EvaluateGoal(goal, txns, ref)

	assert.True(t, decimal.NewFromInt(1200).Equal(got))
}

func TestEvaluateGoal_YearlyInvestment(t *testing.T) {
	ref := date(2025, time.December, 1)
	txns := []domain.Transaction{
		txn(domain.TransactionInvestment, 300, withDate(date(2025, time.January, 2))),
		txn(domain.TransactionInvestment, 200, withDate(date(2025, time.August, 2))),
		txn(domain.TransactionInvestment, 100, withDate(date(2024, time.August, 2))),
	}
	goal := domain.Goal{Period: domain.GoalPeriodYearly, GoalType: domain.GoalInvestment}

	assert.True(t, decimal.NewFromInt(500).Equal(domain.EvaluateGoal(goal, txns, ref)))
}

func TestEvaluateGoal_SpendingTypes(t *testing.T) {
	ref := date(2025, time.June, 20)
	txns := []domain.Transaction{
		txn(domain.TransactionExpense, 350, withClassification(domain.ClassificationNeed)),
		txn(domain.TransactionExpense, 125, withClassification(domain.ClassificationWant)),
		txn(domain.TransactionExpense, 60),
	}

	need := domain.Goal{Period: domain.GoalPeriodMonthly, GoalType: domain.GoalNeedSpending}
	want := domain.Goal{Period: domain.GoalPeriodMonthly, GoalType: domain.GoalWantSpending}

	assert.True(t, decimal.NewFromInt(350).Equal(domain.EvaluateGoal(need, txns, ref)))
	assert.True(t, decimal.NewFromInt(125).Equal(domain.EvaluateGoal(want, txns, ref)))
}

func TestEvaluateGoal_LongTermUsesStoredAmount(t *testing.T) {
	goal := domain.Goal{
		Period:        domain.GoalPeriodLongTerm,
		GoalType:      domain.GoalLongTerm,
		CurrentAmount: decimal.NewFromInt(7500),
	}
	// Transactions are irrelevant for long-term goals.
	txns := []domain.Transaction{txn(domain.TransactionIncome, 100000)}

	assert.True(t, decimal.NewFromInt(7500).Equal(domain.EvaluateGoal(goal, txns, time.Now())))
}
