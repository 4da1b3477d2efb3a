package repositories

import (
	"context"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
)

// GoalReader defines read operations for goal data.
type GoalReader interface {
	// FindGoalByID retrieves a specific goal owned by userID.
	FindGoalByID(ctx context.Context, userID, goalID string) (*domain.Goal, error)

	// FindGoalsByUser retrieves all goals owned by the user.
	FindGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error)
}

// GoalWriter defines write operations for goal data.
type GoalWriter interface {
	// SaveGoal persists a new goal.
	SaveGoal(ctx context.Context, goal domain.Goal) error

	// UpdateGoal updates an existing goal.
	UpdateGoal(ctx context.Context, goal domain.Goal) error

	// DeleteGoal removes a goal owned by userID.
	DeleteGoal(ctx context.Context, userID, goalID string) error
}

// GoalRepositoryFacade combines all goal-related repository interfaces.
type GoalRepositoryFacade interface {
	GoalReader
	GoalWriter
}
