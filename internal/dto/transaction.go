package dto

import (
	"time"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount must be a positive magnitude; direction comes from Type.
type CreateTransactionRequest struct {
	AccountID        string          `json:"accountID" binding:"required"`
	Date             time.Time       `json:"date" binding:"required"`
	Description      string          `json:"description" binding:"max=500"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	Type             string          `json:"type" binding:"required,oneof=INCOME EXPENSE INVESTMENT TRANSFER"`
	CategoryID       *string         `json:"categoryID"`
	Classification   *string         `json:"classification" binding:"omitempty,oneof=NEED WANT"`
	CounterAccountID *string         `json:"counterAccountID"` // transfers only
}

// UpdateTransactionRequest rewrites an existing transaction. The edit dialog
// always submits the full document, matching the create shape.
type UpdateTransactionRequest struct {
	AccountID        string          `json:"accountID" binding:"required"`
	Date             time.Time       `json:"date" binding:"required"`
	Description      string          `json:"description" binding:"max=500"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	Type             string          `json:"type" binding:"required,oneof=INCOME EXPENSE INVESTMENT TRANSFER"`
	CategoryID       *string         `json:"categoryID"`
	Classification   *string         `json:"classification" binding:"omitempty,oneof=NEED WANT"`
	CounterAccountID *string         `json:"counterAccountID"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	AccountID  string     `form:"accountID"`
	CategoryID string     `form:"categoryID"`
	Type       string     `form:"type" binding:"omitempty,oneof=INCOME EXPENSE INVESTMENT TRANSFER"`
	From       *time.Time `form:"from" time_format:"2006-01-02"`
	To         *time.Time `form:"to" time_format:"2006-01-02"`
	Limit      int        `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	Offset     int        `form:"offset,default=0" binding:"omitempty,min=0"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID    string          `json:"transactionID"`
	AccountID        string          `json:"accountID"`
	Date             time.Time       `json:"date"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	Type             string          `json:"type"`
	CategoryID       string          `json:"categoryID,omitempty"`
	CategoryName     string          `json:"categoryName,omitempty"`
	Classification   string          `json:"classification,omitempty"`
	CounterAccountID string          `json:"counterAccountID,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:    t.TransactionID,
		AccountID:        t.AccountID,
		Date:             t.Date,
		Description:      t.Description,
		Amount:           t.Amount,
		Type:             string(t.Type),
		CategoryID:       t.CategoryID,
		CategoryName:     t.CategoryName,
		Classification:   string(t.Classification),
		CounterAccountID: t.CounterAccountID,
		CreatedAt:        t.CreatedAt,
		LastUpdatedAt:    t.LastUpdatedAt,
	}
}

// ToListTransactionsResponse converts a slice of transactions to DTOs.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(&t)
	}
	return ListTransactionsResponse{Transactions: res}
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
