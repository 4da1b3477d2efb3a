package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pfdash/pfdash_backend/internal/apperrors"
	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/core/services"
	"github.com/pfdash/pfdash_backend/internal/dto"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo   *MockBudgetRepository
	mockCategoryRepo *MockCategoryRepository
	mockTxnRepo      *MockTransactionRepository
	service          portssvc.BudgetSvcFacade
	userID           string
	categoryID       string
	month            time.Time
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewBudgetService(suite.mockBudgetRepo, suite.mockCategoryRepo, suite.mockTxnRepo)
	suite.userID = uuid.NewString()
	suite.categoryID = uuid.NewString()
	suite.month = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
}

func (suite *BudgetServiceTestSuite) expenseCategory() *domain.Category {
	return &domain.Category{
		CategoryID:   suite.categoryID,
		UserID:       suite.userID,
		Name:         "Food",
		CategoryType: domain.CategoryExpense,
	}
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_Success() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		CategoryID:  suite.categoryID,
		LimitAmount: decimal.NewFromInt(500),
		Month:       "2025-03",
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, suite.categoryID).
		Return(suite.expenseCategory(), nil).Once()
	suite.mockBudgetRepo.On("FindBudgetByCategoryAndMonth", ctx, suite.userID, suite.categoryID, suite.month).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.MatchedBy(func(b domain.Budget) bool {
		return b.Month.Equal(suite.month) && b.CategoryID == suite.categoryID
	})).Return(nil).Once()

	created, err := suite.service.CreateBudget(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(created.BudgetID)
	suite.Equal("Food", created.CategoryName)
	suite.Equal(suite.month, created.Month)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_DuplicateMonth() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		CategoryID:  suite.categoryID,
		LimitAmount: decimal.NewFromInt(500),
		Month:       "2025-03",
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, suite.categoryID).
		Return(suite.expenseCategory(), nil).Once()
	suite.mockBudgetRepo.On("FindBudgetByCategoryAndMonth", ctx, suite.userID, suite.categoryID, suite.month).
		Return(&domain.Budget{BudgetID: uuid.NewString()}, nil).Once()

	created, err := suite.service.CreateBudget(ctx, suite.userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(created)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_NonExpenseCategory() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		CategoryID:  suite.categoryID,
		LimitAmount: decimal.NewFromInt(500),
		Month:       "2025-03",
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, suite.categoryID).
		Return(&domain.Category{CategoryID: suite.categoryID, CategoryType: domain.CategoryIncome}, nil).Once()

	created, err := suite.service.CreateBudget(ctx, suite.userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_NonPositiveLimit() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		CategoryID:  suite.categoryID,
		LimitAmount: decimal.Zero,
		Month:       "2025-03",
	}

	created, err := suite.service.CreateBudget(ctx, suite.userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
}

func (suite *BudgetServiceTestSuite) TestGetBudgetProgress() {
	ctx := context.Background()
	otherCategoryID := uuid.NewString()
	budgets := []domain.Budget{
		{BudgetID: uuid.NewString(), CategoryID: suite.categoryID, CategoryName: "Food", LimitAmount: decimal.NewFromInt(200), Month: suite.month},
		{BudgetID: uuid.NewString(), CategoryID: otherCategoryID, CategoryName: "Transport", LimitAmount: decimal.NewFromInt(100), Month: suite.month},
	}
	txns := []domain.Transaction{
		{Type: domain.TransactionExpense, Amount: decimal.NewFromInt(300), CategoryID: suite.categoryID, Date: suite.month.AddDate(0, 0, 5)},
		{Type: domain.TransactionExpense, Amount: decimal.NewFromInt(40), CategoryID: otherCategoryID, Date: suite.month.AddDate(0, 0, 9)},
	}

	suite.mockBudgetRepo.On("FindBudgetsByMonth", ctx, suite.userID, suite.month).Return(budgets, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsInWindow", ctx, suite.userID, domain.MonthRange(suite.month)).
		Return(txns, nil).Once()

	rows, err := suite.service.GetBudgetProgress(ctx, suite.userID, suite.month)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.True(rows[0].OverBudget)
	suite.True(rows[0].ProgressPercent.Equal(decimal.NewFromInt(150)))
	suite.False(rows[1].OverBudget)
	suite.True(rows[1].Spent.Equal(decimal.NewFromInt(40)))
}

func (suite *BudgetServiceTestSuite) TestGetBudgetProgress_NoBudgets() {
	ctx := context.Background()

	suite.mockBudgetRepo.On("FindBudgetsByMonth", ctx, suite.userID, suite.month).
		Return([]domain.Budget{}, nil).Once()

	rows, err := suite.service.GetBudgetProgress(ctx, suite.userID, suite.month)

	suite.Require().NoError(err)
	suite.Empty(rows)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionsInWindow", mock.Anything, mock.Anything, mock.Anything)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
