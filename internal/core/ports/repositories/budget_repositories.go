package repositories

import (
	"context"
	"time"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
)

// BudgetReader defines read operations for budget data.
type BudgetReader interface {
	// FindBudgetByID retrieves a specific budget owned by userID.
	FindBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error)

	// FindBudgetByCategoryAndMonth retrieves the unique budget for the
	// (category, month) pair, if any.
	FindBudgetByCategoryAndMonth(ctx context.Context, userID, categoryID string, month time.Time) (*domain.Budget, error)

	// FindBudgetsByMonth retrieves the user's budgets for a month, with
	// category names joined in.
	FindBudgetsByMonth(ctx context.Context, userID string, month time.Time) ([]domain.Budget, error)

	// FindBudgetsByUser retrieves all budgets owned by the user.
	FindBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budget data.
type BudgetWriter interface {
	// SaveBudget persists a new budget.
	SaveBudget(ctx context.Context, budget domain.Budget) error

	// UpdateBudget updates an existing budget's limit.
	UpdateBudget(ctx context.Context, budget domain.Budget) error

	// DeleteBudget removes a budget owned by userID.
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces.
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
