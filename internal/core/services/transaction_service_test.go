package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/pfdash/pfdash_backend/internal/apperrors"
	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portsrepo "github.com/pfdash/pfdash_backend/internal/core/ports/repositories"
	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/core/services"
	"github.com/pfdash/pfdash_backend/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockAccountRepo  *MockAccountRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.TransactionSvcFacade
	userID           string
	accountID        string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockAccountRepo, suite.mockCategoryRepo)
	suite.userID = uuid.NewString()
	suite.accountID = uuid.NewString()
}

func (suite *TransactionServiceTestSuite) expectAccount(accountID string) {
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.userID, accountID).
		Return(&domain.Account{AccountID: accountID, UserID: suite.userID}, nil)
}

func strPtr(s string) *string { return &s }

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ExpenseWithCategory() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		AccountID:      suite.accountID,
		Date:           time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Description:    "Groceries",
		Amount:         decimal.NewFromInt(80),
		Type:           string(domain.TransactionExpense),
		CategoryID:     &categoryID,
		Classification: strPtr(string(domain.ClassificationNeed)),
	}

	suite.expectAccount(suite.accountID)
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, categoryID).
		Return(&domain.Category{CategoryID: categoryID, CategoryType: domain.CategoryExpense}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	created, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(created.TransactionID)
	suite.Equal(domain.ClassificationNeed, created.Classification)
	suite.True(created.Amount.Equal(decimal.NewFromInt(80)))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: suite.accountID,
		Date:      time.Now(),
		Amount:    decimal.NewFromInt(-25),
		Type:      string(domain.TransactionExpense),
	}

	created, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ClassificationRejectedForIncome() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID:      suite.accountID,
		Date:           time.Now(),
		Amount:         decimal.NewFromInt(3000),
		Type:           string(domain.TransactionIncome),
		Classification: strPtr(string(domain.ClassificationWant)),
	}

	suite.expectAccount(suite.accountID)

	created, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_TransferRequiresCounterAccount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: suite.accountID,
		Date:      time.Now(),
		Amount:    decimal.NewFromInt(400),
		Type:      string(domain.TransactionTransfer),
	}

	suite.expectAccount(suite.accountID)

	created, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_TransferToSelfRejected() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID:        suite.accountID,
		Date:             time.Now(),
		Amount:           decimal.NewFromInt(400),
		Type:             string(domain.TransactionTransfer),
		CounterAccountID: &suite.accountID,
	}

	suite.expectAccount(suite.accountID)

	created, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Transfer() {
	ctx := context.Background()
	counterID := uuid.NewString()
	categoryID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		AccountID:        suite.accountID,
		Date:             time.Now(),
		Amount:           decimal.NewFromInt(400),
		Type:             string(domain.TransactionTransfer),
		CategoryID:       &categoryID, // ignored on transfers
		CounterAccountID: &counterID,
	}

	suite.expectAccount(suite.accountID)
	suite.expectAccount(counterID)
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.CategoryID == "" && txn.CounterAccountID == counterID
	})).Return(nil).Once()

	created, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(counterID, created.CounterAccountID)
	suite.Empty(created.CategoryID)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CategoryTypeMismatch() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		AccountID:  suite.accountID,
		Date:       time.Now(),
		Amount:     decimal.NewFromInt(100),
		Type:       string(domain.TransactionExpense),
		CategoryID: &categoryID,
	}

	suite.expectAccount(suite.accountID)
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, suite.userID, categoryID).
		Return(&domain.Category{CategoryID: categoryID, CategoryType: domain.CategoryIncome}, nil).Once()

	created, err := suite.service.CreateTransaction(ctx, suite.userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
}

func (suite *TransactionServiceTestSuite) TestExportTransactionsCSV() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{
			Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			Type:         domain.TransactionExpense,
			Amount:       decimal.NewFromInt(80),
			CategoryName: "Food",
			Description:  "Groceries",
		},
	}

	suite.mockTxnRepo.On("ListTransactions", ctx, suite.userID, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		// The export lifts the pagination cap.
		return f.Limit > 500 && f.Offset == 0
	})).Return(txns, nil).Once()

	data, err := suite.service.ExportTransactionsCSV(ctx, suite.userID, dto.ListTransactionsParams{Limit: 50})

	suite.Require().NoError(err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	suite.Require().Len(lines, 2)
	suite.Equal("date,type,amount,category,description,classification", lines[0])
	suite.Contains(lines[1], "2025-03-10")
	suite.Contains(lines[1], "Food")
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_PreservesCreationAudit() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	createdAt := time.Date(2024, 11, 1, 10, 0, 0, 0, time.UTC)
	existing := &domain.Transaction{
		TransactionID: transactionID,
		AccountID:     suite.accountID,
		UserID:        suite.userID,
		Amount:        decimal.NewFromInt(10),
		Type:          domain.TransactionExpense,
		AuditFields:   domain.AuditFields{CreatedAt: createdAt, CreatedBy: suite.userID},
	}
	req := dto.UpdateTransactionRequest{
		AccountID: suite.accountID,
		Date:      time.Now(),
		Amount:    decimal.NewFromInt(25),
		Type:      string(domain.TransactionExpense),
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, suite.userID, transactionID).Return(existing, nil).Once()
	suite.expectAccount(suite.accountID)
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.TransactionID == transactionID && txn.CreatedAt.Equal(createdAt)
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, suite.userID, transactionID, req)

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(decimal.NewFromInt(25)))
	suite.Equal(createdAt, updated.CreatedAt)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
