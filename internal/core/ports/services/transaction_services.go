package services

import (
	"context"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	"github.com/pfdash/pfdash_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves one of the user's transactions.
	GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the user's transactions matching the params,
	// newest first.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error)

	// ExportTransactionsCSV renders the filtered transaction set as CSV bytes
	// (date, type, amount, category, description, classification).
	ExportTransactionsCSV(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]byte, error)
}

// TransactionWriterSvc defines write operations for transactions. This is the
// single write boundary that enforces the unsigned-magnitude convention.
type TransactionWriterSvc interface {
	// CreateTransaction creates a new transaction.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction rewrites an existing transaction.
	UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionSvcFacade combines the transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
