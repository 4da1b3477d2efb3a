package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is the persisted representation of a goal row. CurrentAmount is only
// authoritative for long-term goals.
type Goal struct {
	GoalID        string          `db:"goal_id"`
	UserID        string          `db:"user_id"`
	Name          string          `db:"name"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Period        string          `db:"period"`
	GoalType      string          `db:"goal_type"`
	TargetDate    *time.Time      `db:"target_date"`
	AuditFields
}
