package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalPeriod is the recurrence of a savings goal.
type GoalPeriod string

const (
	GoalPeriodMonthly  GoalPeriod = "MONTHLY"
	GoalPeriodYearly   GoalPeriod = "YEARLY"
	GoalPeriodLongTerm GoalPeriod = "LONG_TERM"
)

// GoalType selects which transactions feed a recurring goal's current amount.
type GoalType string

const (
	GoalSaving       GoalType = "SAVING"
	GoalInvestment   GoalType = "INVESTMENT"
	GoalNeedSpending GoalType = "NEED_SPENDING"
	GoalWantSpending GoalType = "WANT_SPENDING"
	GoalLongTerm     GoalType = "LONG_TERM"
)

// Goal is a target amount tracked either as a recurring computed figure or a
// long-term manually updated one.
//
// Cross-field rule: Period == LONG_TERM if and only if Type == LONG_TERM.
// CurrentAmount is authoritative only for long-term goals; recurring goals
// recompute it on every read.
type Goal struct {
	GoalID        string          `json:"goalID"`
	UserID        string          `json:"userID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Period        GoalPeriod      `json:"period"`
	GoalType      GoalType        `json:"goalType"`
	TargetDate    *time.Time      `json:"targetDate,omitempty"`
	AuditFields
}

// ValidPeriodType reports whether the period/type combination is allowed.
func ValidPeriodType(period GoalPeriod, goalType GoalType) bool {
	if period == GoalPeriodLongTerm || goalType == GoalLongTerm {
		return period == GoalPeriodLongTerm && goalType == GoalLongTerm
	}
	switch period {
	case GoalPeriodMonthly, GoalPeriodYearly:
	default:
		return false
	}
	switch goalType {
	case GoalSaving, GoalInvestment, GoalNeedSpending, GoalWantSpending:
		return true
	}
	return false
}

// EvaluateGoal returns the goal's current amount. Long-term goals report the
// stored figure; recurring goals reduce the transaction set over the calendar
// window containing ref.
func EvaluateGoal(goal Goal, txns []Transaction, ref time.Time) decimal.Decimal {
	if goal.Period == GoalPeriodLongTerm {
		return goal.CurrentAmount
	}

	var window DateRange
	switch goal.Period {
	case GoalPeriodYearly:
		window = YearRange(ref)
	default:
		window = MonthRange(ref)
	}

	summary := SummarizeTransactions(txns, window)
	switch goal.GoalType {
	case GoalSaving:
		return summary.Savings
	case GoalInvestment:
		return summary.TotalInvestment
	case GoalNeedSpending:
		return summary.NeedsTotal
	case GoalWantSpending:
		return summary.WantsTotal
	}
	return decimal.Zero
}
