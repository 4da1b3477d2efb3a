package services

import (
	"context"
	"time"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	"github.com/pfdash/pfdash_backend/internal/dto"
)

// GoalSvcFacade defines operations over the user's goals. Read operations
// return goals with CurrentAmount already evaluated against the reference
// date (recurring goals recompute, long-term goals report the stored field).
type GoalSvcFacade interface {
	// CreateGoal creates a goal after validating the period/type pairing.
	CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error)

	// GetGoalByID retrieves and evaluates one of the user's goals.
	GetGoalByID(ctx context.Context, userID, goalID string, ref time.Time) (*domain.Goal, error)

	// ListGoals retrieves and evaluates all of the user's goals.
	ListGoals(ctx context.Context, userID string, ref time.Time) ([]domain.Goal, error)

	// UpdateGoal updates a goal; the stored current amount only moves for
	// long-term goals. The response is evaluated like the read operations.
	UpdateGoal(ctx context.Context, userID, goalID string, req dto.UpdateGoalRequest, ref time.Time) (*domain.Goal, error)

	// DeleteGoal removes a goal.
	DeleteGoal(ctx context.Context, userID, goalID string) error
}
