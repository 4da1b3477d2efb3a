package dto

import (
	"time"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string           `json:"name" binding:"required,max=100"`
	AccountType    string           `json:"accountType" binding:"required,oneof=CHECKING SAVINGS INVESTMENT CREDIT OTHER"`
	CurrencyCode   string           `json:"currencyCode" binding:"required,len=3,uppercase"`
	InitialBalance *decimal.Decimal `json:"initialBalance"` // optional, defaults to zero
	Description    string           `json:"description"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	Name           *string          `json:"name"`
	Description    *string          `json:"description"`
	InitialBalance *decimal.Decimal `json:"initialBalance"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	AccountType    string          `json:"accountType"`
	CurrencyCode   string          `json:"currencyCode"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Description    string          `json:"description"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		AccountType:    string(acc.AccountType),
		CurrencyCode:   acc.CurrencyCode,
		InitialBalance: acc.InitialBalance,
		Description:    acc.Description,
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// AccountBalanceResponse defines the data returned for a balance query.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}
