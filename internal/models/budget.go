package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the persisted representation of a budget row. Month is stored as
// a DATE normalized to the first of the month.
type Budget struct {
	BudgetID    string          `db:"budget_id"`
	UserID      string          `db:"user_id"`
	CategoryID  string          `db:"category_id"`
	LimitAmount decimal.Decimal `db:"limit_amount"`
	Month       time.Time       `db:"month"`
	AuditFields
}
