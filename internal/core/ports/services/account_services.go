package services

import (
	"context"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	"github.com/pfdash/pfdash_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for accounts.
type AccountReaderSvc interface {
	// GetAccountByID retrieves one of the user's accounts.
	GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all of the user's accounts.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)

	// GetAccountBalance derives the account's current balance from its
	// transactions (credit accounts report the amount owed).
	GetAccountBalance(ctx context.Context, userID, accountID string) (decimal.Decimal, error)
}

// AccountWriterSvc defines write operations for accounts.
type AccountWriterSvc interface {
	// CreateAccount creates a new account for the user.
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount updates an account's details.
	UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes the account and cascades to its transactions in
	// one database transaction.
	DeleteAccount(ctx context.Context, userID, accountID string) error
}

// AccountSvcFacade combines the account service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}

// CurrencySvcFacade defines operations over the currency reference data.
type CurrencySvcFacade interface {
	// GetCurrencyByCode retrieves a currency by ISO code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all seeded currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
