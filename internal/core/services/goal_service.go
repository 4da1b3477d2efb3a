package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pfdash/pfdash_backend/internal/apperrors"
	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portsrepo "github.com/pfdash/pfdash_backend/internal/core/ports/repositories"
	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/dto"
)

// goalService implements the GoalSvcFacade interface. Reads hand back goals
// with CurrentAmount evaluated against the caller's reference date.
type goalService struct {
	BaseService
	goalRepo        portsrepo.GoalRepositoryFacade
	transactionRepo portsrepo.TransactionReader
}

// NewGoalService creates a new goal service
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade, transactionRepo portsrepo.TransactionReader) portssvc.GoalSvcFacade {
	return &goalService{
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
	}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, userID string, req dto.CreateGoalRequest) (*domain.Goal, error) {
	period := domain.GoalPeriod(req.Period)
	goalType := domain.GoalType(req.GoalType)
	if !domain.ValidPeriodType(period, goalType) {
		return nil, fmt.Errorf("period %s cannot pair with type %s: %w", period, goalType, apperrors.ErrValidation)
	}
	if !req.TargetAmount.IsPositive() {
		return nil, fmt.Errorf("target amount must be positive: %w", apperrors.ErrValidation)
	}

	currentAmount := decimal.Zero
	if period == domain.GoalPeriodLongTerm && req.CurrentAmount != nil {
		currentAmount = *req.CurrentAmount
	}

	now := time.Now()
	goal := domain.Goal{
		GoalID:        uuid.NewString(),
		UserID:        userID,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: currentAmount,
		Period:        period,
		GoalType:      goalType,
		TargetDate:    req.TargetDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal", slog.String("name", req.Name))
		return nil, err
	}

	return &goal, nil
}

// evaluate fills CurrentAmount for recurring goals from the transactions in
// the calendar window containing ref. Long-term goals keep the stored field.
func (s *goalService) evaluate(ctx context.Context, userID string, goals []domain.Goal, ref time.Time) ([]domain.Goal, error) {
	needsTxns := false
	for _, g := range goals {
		if g.Period != domain.GoalPeriodLongTerm {
			needsTxns = true
			break
		}
	}
	if !needsTxns {
		return goals, nil
	}

	// The yearly window covers every monthly one, so a single fetch serves
	// all recurring goals.
	txns, err := s.transactionRepo.FindTransactionsInWindow(ctx, userID, domain.YearRange(ref))
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for goal evaluation")
		return nil, err
	}

	for i := range goals {
		goals[i].CurrentAmount = domain.EvaluateGoal(goals[i], txns, ref)
	}
	return goals, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, userID, goalID string, ref time.Time) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	evaluated, err := s.evaluate(ctx, userID, []domain.Goal{*goal}, ref)
	if err != nil {
		return nil, err
	}
	return &evaluated[0], nil
}

func (s *goalService) ListGoals(ctx context.Context, userID string, ref time.Time) ([]domain.Goal, error) {
	goals, err := s.goalRepo.FindGoalsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.evaluate(ctx, userID, goals, ref)
}

func (s *goalService) UpdateGoal(ctx context.Context, userID, goalID string, req dto.UpdateGoalRequest, ref time.Time) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.TargetAmount != nil {
		if !req.TargetAmount.IsPositive() {
			return nil, fmt.Errorf("target amount must be positive: %w", apperrors.ErrValidation)
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		// Only long-term goals carry a manually tracked amount.
		if goal.Period != domain.GoalPeriodLongTerm {
			return nil, fmt.Errorf("current amount is computed for recurring goals: %w", apperrors.ErrValidation)
		}
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.TargetDate != nil {
		goal.TargetDate = req.TargetDate
	}
	goal.LastUpdatedAt = time.Now()
	goal.LastUpdatedBy = userID

	if err := s.goalRepo.UpdateGoal(ctx, *goal); err != nil {
		s.LogError(ctx, err, "Failed to update goal", slog.String("goal_id", goalID))
		return nil, err
	}

	// Responses carry the evaluated amount just like the read operations.
	evaluated, err := s.evaluate(ctx, userID, []domain.Goal{*goal}, ref)
	if err != nil {
		return nil, err
	}
	return &evaluated[0], nil
}

func (s *goalService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	if err := s.goalRepo.DeleteGoal(ctx, userID, goalID); err != nil {
		s.LogError(ctx, err, "Failed to delete goal", slog.String("goal_id", goalID))
		return err
	}
	return nil
}
