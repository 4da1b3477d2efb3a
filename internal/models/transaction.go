package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persisted representation of a transaction row. Amount is
// always an unsigned magnitude; nullable columns use pointers.
type Transaction struct {
	TransactionID    string          `db:"transaction_id"`
	AccountID        string          `db:"account_id"`
	UserID           string          `db:"user_id"`
	Date             time.Time       `db:"transaction_date"`
	Description      string          `db:"description"`
	Amount           decimal.Decimal `db:"amount"`
	TransactionType  string          `db:"transaction_type"`
	CategoryID       *string         `db:"category_id"`
	Classification   *string         `db:"classification"`
	CounterAccountID *string         `db:"counter_account_id"`
	AuditFields
}
