package repositories

import (
	"context"
	"time"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
)

// TransactionFilter narrows a transaction listing. Zero values leave the
// corresponding dimension unfiltered.
type TransactionFilter struct {
	AccountID  string
	CategoryID string
	Type       domain.TransactionType
	From       time.Time
	To         time.Time
	Limit      int
	Offset     int
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction owned by userID.
	FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the user's transactions matching the filter,
	// newest first, with category names joined in.
	ListTransactions(ctx context.Context, userID string, filter TransactionFilter) ([]domain.Transaction, error)

	// FindTransactionsTouchingAccount retrieves every transaction that moves
	// money into or out of the account, for balance derivation.
	FindTransactionsTouchingAccount(ctx context.Context, userID, accountID string) ([]domain.Transaction, error)

	// FindTransactionsInWindow retrieves every transaction of the user dated
	// inside the window, unpaginated, for aggregation.
	FindTransactionsInWindow(ctx context.Context, userID string, window domain.DateRange) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction rewrites an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction owned by userID.
	DeleteTransaction(ctx context.Context, userID, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
