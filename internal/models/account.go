package models

import "github.com/shopspring/decimal"

// Account is the persisted representation of an account row.
type Account struct {
	AccountID      string          `db:"account_id"`
	UserID         string          `db:"user_id"`
	Name           string          `db:"name"`
	AccountType    string          `db:"account_type"`
	CurrencyCode   string          `db:"currency_code"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	Description    string          `db:"description"`
	AuditFields
}
