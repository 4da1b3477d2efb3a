package dto

import (
	"time"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a goal. The period/type
// pairing is cross-validated in the service (LONG_TERM pairs only with
// LONG_TERM).
type CreateGoalRequest struct {
	Name          string           `json:"name" binding:"required,max=100"`
	TargetAmount  decimal.Decimal  `json:"targetAmount" binding:"required"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"` // long-term goals only
	Period        string           `json:"period" binding:"required,oneof=MONTHLY YEARLY LONG_TERM"`
	GoalType      string           `json:"goalType" binding:"required,oneof=SAVING INVESTMENT NEED_SPENDING WANT_SPENDING LONG_TERM"`
	TargetDate    *time.Time       `json:"targetDate"`
}

// UpdateGoalRequest updates a goal. CurrentAmount is only applied to
// long-term goals; recurring goals recompute it on read.
type UpdateGoalRequest struct {
	Name          *string          `json:"name" binding:"omitempty,max=100"`
	TargetAmount  *decimal.Decimal `json:"targetAmount"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
	TargetDate    *time.Time       `json:"targetDate"`
}

// ListGoalsParams defines query parameters for goal reads.
type ListGoalsParams struct {
	// ReferenceDate anchors the recurring-goal window; defaults to now (UTC).
	ReferenceDate *time.Time `form:"referenceDate" time_format:"2006-01-02"`
}

// GoalResponse defines the data returned for a goal, with CurrentAmount
// already evaluated.
type GoalResponse struct {
	GoalID          string          `json:"goalID"`
	Name            string          `json:"name"`
	TargetAmount    decimal.Decimal `json:"targetAmount"`
	CurrentAmount   decimal.Decimal `json:"currentAmount"`
	ProgressPercent decimal.Decimal `json:"progressPercent"`
	Period          string          `json:"period"`
	GoalType        string          `json:"goalType"`
	TargetDate      *time.Time      `json:"targetDate,omitempty"`
}

var dtoHundred = decimal.NewFromInt(100)

// ToGoalResponse converts an evaluated domain.Goal to GoalResponse.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	progress := decimal.Zero
	if g.TargetAmount.IsPositive() {
		progress = g.CurrentAmount.Div(g.TargetAmount).Mul(dtoHundred).Round(2)
	}
	return GoalResponse{
		GoalID:          g.GoalID,
		Name:            g.Name,
		TargetAmount:    g.TargetAmount,
		CurrentAmount:   g.CurrentAmount,
		ProgressPercent: progress,
		Period:          string(g.Period),
		GoalType:        string(g.GoalType),
		TargetDate:      g.TargetDate,
	}
}

// ListGoalsResponse wraps the list of goals.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToListGoalsResponse converts a slice of evaluated goals to DTOs.
func ToListGoalsResponse(goals []domain.Goal) ListGoalsResponse {
	res := make([]GoalResponse, len(goals))
	for i, g := range goals {
		res[i] = ToGoalResponse(&g)
	}
	return ListGoalsResponse{Goals: res}
}
