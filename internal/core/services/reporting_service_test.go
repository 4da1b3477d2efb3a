package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo *MockTransactionRepository
	service     portssvc.ReportingSvcFacade
	userID      string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewReportingService(suite.mockTxnRepo)
	suite.userID = uuid.NewString()
}

func (suite *ReportingServiceTestSuite) TestSummary() {
	ctx := context.Background()
	window := domain.MonthRange(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	txns := []domain.Transaction{
		{Type: domain.TransactionIncome, Amount: decimal.NewFromInt(5000), Date: window.From},
		{Type: domain.TransactionExpense, Amount: decimal.NewFromInt(150), CategoryName: "Food", Date: window.From.AddDate(0, 0, 3)},
		{Type: domain.TransactionInvestment, Amount: decimal.NewFromInt(1000), Date: window.From.AddDate(0, 0, 5)},
		{Type: domain.TransactionTransfer, Amount: decimal.NewFromInt(700), Date: window.From.AddDate(0, 0, 6)},
	}

	suite.mockTxnRepo.On("FindTransactionsInWindow", ctx, suite.userID, window).Return(txns, nil).Once()

	summary, err := suite.service.Summary(ctx, suite.userID, window)

	suite.Require().NoError(err)
	suite.True(summary.TotalIncome.Equal(decimal.NewFromInt(5000)))
	suite.True(summary.TotalExpense.Equal(decimal.NewFromInt(150)))
	suite.True(summary.Savings.Equal(decimal.NewFromInt(3850)))
	// Transfers count toward activity but never the totals.
	suite.Equal(4, summary.TransactionCount)
}

func (suite *ReportingServiceTestSuite) TestMonthlyBreakdown() {
	ctx := context.Background()
	year := 2025
	window := domain.YearRange(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	txns := []domain.Transaction{
		{Type: domain.TransactionIncome, Amount: decimal.NewFromInt(3000), Date: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)},
		{Type: domain.TransactionExpense, Amount: decimal.NewFromInt(800), Date: time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)},
	}

	suite.mockTxnRepo.On("FindTransactionsInWindow", ctx, suite.userID, window).Return(txns, nil).Once()

	rows, err := suite.service.MonthlyBreakdown(ctx, suite.userID, year)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 12)
	suite.True(rows[1].Savings.Equal(decimal.NewFromInt(2200)), "february got %s", rows[1].Savings)
	suite.True(rows[0].Savings.IsZero())
	suite.True(rows[11].Savings.IsZero())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
