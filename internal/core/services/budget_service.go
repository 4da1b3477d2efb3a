package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pfdash/pfdash_backend/internal/apperrors"
	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portsrepo "github.com/pfdash/pfdash_backend/internal/core/ports/repositories"
	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/dto"
)

// budgetService implements the BudgetSvcFacade interface
type budgetService struct {
	BaseService
	budgetRepo      portsrepo.BudgetRepositoryFacade
	categoryRepo    portsrepo.CategoryReader
	transactionRepo portsrepo.TransactionReader
}

// NewBudgetService creates a new budget service
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, categoryRepo portsrepo.CategoryReader, transactionRepo portsrepo.TransactionReader) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if !req.LimitAmount.IsPositive() {
		return nil, fmt.Errorf("limit amount must be positive: %w", apperrors.ErrValidation)
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, userID, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", req.CategoryID, apperrors.ErrValidation)
	}
	if category.CategoryType != domain.CategoryExpense {
		return nil, fmt.Errorf("budgets apply to expense categories only: %w", apperrors.ErrValidation)
	}

	month, err := dto.ParseMonth(req.Month)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", req.Month, apperrors.ErrValidation)
	}
	month = domain.NormalizeMonth(month)

	// Lookup before write gives a clean duplicate error; the unique
	// constraint still backstops races.
	if _, err := s.budgetRepo.FindBudgetByCategoryAndMonth(ctx, userID, req.CategoryID, month); err == nil {
		return nil, apperrors.ErrDuplicate
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID:     uuid.NewString(),
		UserID:       userID,
		CategoryID:   req.CategoryID,
		CategoryName: category.Name,
		LimitAmount:  req.LimitAmount,
		Month:        month,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget",
			slog.String("category_id", req.CategoryID),
			slog.String("month", req.Month))
		return nil, err
	}

	return &budget, nil
}

func (s *budgetService) GetBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	return s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
}

func (s *budgetService) ListBudgets(ctx context.Context, userID string, month *time.Time) ([]domain.Budget, error) {
	if month != nil {
		return s.budgetRepo.FindBudgetsByMonth(ctx, userID, *month)
	}
	return s.budgetRepo.FindBudgetsByUser(ctx, userID)
}

func (s *budgetService) UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	if !req.LimitAmount.IsPositive() {
		return nil, fmt.Errorf("limit amount must be positive: %w", apperrors.ErrValidation)
	}

	budget, err := s.budgetRepo.FindBudgetByID(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	budget.LimitAmount = req.LimitAmount
	budget.LastUpdatedAt = time.Now()
	budget.LastUpdatedBy = userID

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget", slog.String("budget_id", budgetID))
		return nil, err
	}
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	if err := s.budgetRepo.DeleteBudget(ctx, userID, budgetID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.String("budget_id", budgetID))
		return err
	}
	return nil
}

// GetBudgetProgress joins the month's budgets against actual per-category
// expense totals over the same calendar month.
func (s *budgetService) GetBudgetProgress(ctx context.Context, userID string, month time.Time) ([]domain.BudgetProgress, error) {
	window := domain.MonthRange(month)

	budgets, err := s.budgetRepo.FindBudgetsByMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return []domain.BudgetProgress{}, nil
	}

	txns, err := s.transactionRepo.FindTransactionsInWindow(ctx, userID, window)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for budget progress")
		return nil, err
	}

	spent := domain.ExpenseByCategoryID(txns, window)
	return domain.MatchBudgets(budgets, spent), nil
}
