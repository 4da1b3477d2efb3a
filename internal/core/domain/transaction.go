package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies the direction a transaction moves money.
type TransactionType string

const (
	TransactionIncome     TransactionType = "INCOME"
	TransactionExpense    TransactionType = "EXPENSE"
	TransactionInvestment TransactionType = "INVESTMENT"
	TransactionTransfer   TransactionType = "TRANSFER"
)

// Classification is the needs/wants split applied to expense transactions.
type Classification string

const (
	ClassificationNeed Classification = "NEED"
	ClassificationWant Classification = "WANT"
)

// Transaction is a single dated money movement tied to one account.
//
// Amount is always an unsigned magnitude; the sign is derived from Type at
// every consumption point via SignedAmount. The write boundary rejects
// non-positive amounts so no signed value ever reaches storage.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	UserID        string          `json:"userID"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // unsigned magnitude
	Type          TransactionType `json:"type"`

	// CategoryID references a category by stable identifier; empty means
	// uncategorized. CategoryName is joined in at read time for display.
	CategoryID   string `json:"categoryID,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`

	// Classification is set only for expense transactions.
	Classification Classification `json:"classification,omitempty"`

	// CounterAccountID is the receiving account of a transfer; empty otherwise.
	CounterAccountID string `json:"counterAccountID,omitempty"`

	AuditFields
}

// SignedAmount returns the movement from the owning account's perspective.
// Income flows in, everything else flows out.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// ValidTransactionType reports whether s is a known transaction type.
func ValidTransactionType(s TransactionType) bool {
	switch s {
	case TransactionIncome, TransactionExpense, TransactionInvestment, TransactionTransfer:
		return true
	}
	return false
}
