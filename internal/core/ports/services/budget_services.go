package services

import (
	"context"
	"time"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	"github.com/pfdash/pfdash_backend/internal/dto"
)

// BudgetSvcFacade defines operations over the user's budgets.
type BudgetSvcFacade interface {
	// CreateBudget creates a budget; (category, month) is unique per user.
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)

	// GetBudgetByID retrieves one of the user's budgets.
	GetBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error)

	// ListBudgets retrieves the user's budgets, optionally for one month.
	ListBudgets(ctx context.Context, userID string, month *time.Time) ([]domain.Budget, error)

	// UpdateBudget updates a budget's limit amount.
	UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)

	// DeleteBudget removes a budget.
	DeleteBudget(ctx context.Context, userID, budgetID string) error

	// GetBudgetProgress joins the month's budgets against actual per-category
	// spending for the same month.
	GetBudgetProgress(ctx context.Context, userID string, month time.Time) ([]domain.BudgetProgress, error)
}
