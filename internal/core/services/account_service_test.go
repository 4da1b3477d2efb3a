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

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockTxnRepo      *MockTransactionRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.AccountSvcFacade
	userID           string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewAccountService(
		suite.mockAccountRepo,
		suite.mockTxnRepo,
		services.WithCurrencyRepository(suite.mockCurrencyRepo),
	)
	suite.userID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:         "Everyday Checking",
		AccountType:  string(domain.AccountChecking),
		CurrencyCode: "USD",
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").
		Return(&domain.Currency{CurrencyCode: "USD"}, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.AccountID)
	suite.Equal(suite.userID, created.UserID)
	suite.Equal(domain.AccountChecking, created.AccountType)
	suite.True(created.InitialBalance.IsZero())
	suite.Equal(suite.userID, created.CreatedBy)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownCurrency() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:         "Offshore",
		AccountType:  string(domain.AccountSavings),
		CurrencyCode: "XXX",
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").
		Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateAccount(ctx, suite.userID, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetAccountBalance_CheckingAddsNet() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.Account{
		AccountID:      accountID,
		UserID:         suite.userID,
		AccountType:    domain.AccountChecking,
		InitialBalance: decimal.NewFromInt(100),
	}
	txns := []domain.Transaction{
		{AccountID: accountID, Type: domain.TransactionIncome, Amount: decimal.NewFromInt(500)},
		{AccountID: accountID, Type: domain.TransactionExpense, Amount: decimal.NewFromInt(120)},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, accountID).Return(account, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsTouchingAccount", ctx, suite.userID, accountID).Return(txns, nil).Once()

	balance, err := suite.service.GetAccountBalance(ctx, suite.userID, accountID)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(480)), "got %s", balance)
}

func (suite *AccountServiceTestSuite) TestGetAccountBalance_CreditReportsAmountOwed() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.Account{
		AccountID:      accountID,
		UserID:         suite.userID,
		AccountType:    domain.AccountCredit,
		InitialBalance: decimal.NewFromInt(50),
	}
	txns := []domain.Transaction{
		{AccountID: accountID, Type: domain.TransactionExpense, Amount: decimal.NewFromInt(200)},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.userID, accountID).Return(account, nil).Once()
	suite.mockTxnRepo.On("FindTransactionsTouchingAccount", ctx, suite.userID, accountID).Return(txns, nil).Once()

	balance, err := suite.service.GetAccountBalance(ctx, suite.userID, accountID)

	suite.Require().NoError(err)
	// Spending on a credit card grows the amount owed.
	suite.True(balance.Equal(decimal.NewFromInt(250)), "got %s", balance)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Cascades() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("DeleteAccountWithTransactions", ctx, suite.userID, accountID).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.userID, accountID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("DeleteAccountWithTransactions", ctx, suite.userID, accountID).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteAccount(ctx, suite.userID, accountID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
