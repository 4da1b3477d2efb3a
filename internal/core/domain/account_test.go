package domain_test

import (
	"testing"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountBalance_Checking(t *testing.T) {
	acct := domain.Account{
		AccountID:      "acc-1",
		AccountType:    domain.AccountChecking,
		InitialBalance: decimal.NewFromInt(100),
	}
	txns := []domain.Transaction{
		{AccountID: "acc-1", Type: domain.TransactionIncome, Amount: decimal.NewFromInt(500)},
		{AccountID: "acc-1", Type: domain.TransactionExpense, Amount: decimal.NewFromInt(120)},
		{AccountID: "acc-1", Type: domain.TransactionInvestment, Amount: decimal.NewFromInt(80)},
		{AccountID: "other", Type: domain.TransactionIncome, Amount: decimal.NewFromInt(999)},
	}

	// 100 + 500 - 120 - 80
	assert.True(t, decimal.NewFromInt(400).Equal(domain.AccountBalance(acct, txns)))
}

func TestAccountBalance_CreditInversion(t *testing.T) {
	card := domain.Account{
		AccountID:      "card-1",
		AccountType:    domain.AccountCredit,
		InitialBalance: decimal.NewFromInt(50),
	}
	txns := []domain.Transaction{
		{AccountID: "card-1", Type: domain.TransactionExpense, Amount: decimal.NewFromInt(200)},
	}

	// Spending on a credit card grows the amount owed: 50 - (-200).
	assert.True(t, decimal.NewFromInt(250).Equal(domain.AccountBalance(card, txns)))
}

func TestAccountBalance_TransferMovesBetweenAccounts(t *testing.T) {
	src := domain.Account{AccountID: "src", AccountType: domain.AccountChecking, InitialBalance: decimal.NewFromInt(1000)}
	dst := domain.Account{AccountID: "dst", AccountType: domain.AccountSavings, InitialBalance: decimal.Zero}
	txns := []domain.Transaction{
		{AccountID: "src", CounterAccountID: "dst", Type: domain.TransactionTransfer, Amount: decimal.NewFromInt(300)},
	}

	assert.True(t, decimal.NewFromInt(700).Equal(domain.AccountBalance(src, txns)))
	assert.True(t, decimal.NewFromInt(300).Equal(domain.AccountBalance(dst, txns)))
}

func TestSignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(42)

	assert.True(t, amount.Equal(domain.Transaction{Type: domain.TransactionIncome, Amount: amount}.SignedAmount()))
	assert.True(t, amount.Neg().Equal(domain.Transaction{Type: domain.TransactionExpense, Amount: amount}.SignedAmount()))
	assert.True(t, amount.Neg().Equal(domain.Transaction{Type: domain.TransactionInvestment, Amount: amount}.SignedAmount()))
	assert.True(t, amount.Neg().Equal(domain.Transaction{Type: domain.TransactionTransfer, Amount: amount}.SignedAmount()))
}
