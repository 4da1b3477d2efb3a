package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies a money container on the dashboard.
type AccountType string

const (
	AccountChecking   AccountType = "CHECKING"
	AccountSavings    AccountType = "SAVINGS"
	AccountInvestment AccountType = "INVESTMENT"
	AccountCredit     AccountType = "CREDIT"
	AccountOther      AccountType = "OTHER"
)

// Account represents a named money container. Its displayed balance is always
// derived from transactions; InitialBalance is only the starting offset.
type Account struct {
	AccountID      string          `json:"accountID"`
	UserID         string          `json:"userID"`
	Name           string          `json:"name"`
	AccountType    AccountType     `json:"accountType"`
	CurrencyCode   string          `json:"currencyCode"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Description    string          `json:"description"`
	AuditFields
}

// AccountBalance derives the current balance of acct from the transactions
// touching it. This is the single place the credit-card inversion lives: for a
// credit account the balance is the amount owed, so outflows grow it.
func AccountBalance(acct Account, txns []Transaction) decimal.Decimal {
	net := decimal.Zero
	for _, txn := range txns {
		if txn.AccountID == acct.AccountID {
			net = net.Add(txn.SignedAmount())
		}
		if txn.CounterAccountID == acct.AccountID && txn.Type == TransactionTransfer {
			net = net.Add(txn.Amount)
		}
	}
	if acct.AccountType == AccountCredit {
		return acct.InitialBalance.Sub(net)
	}
	return acct.InitialBalance.Add(net)
}
