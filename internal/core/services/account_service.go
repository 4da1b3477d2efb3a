package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pfdash/pfdash_backend/internal/apperrors"
	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portsrepo "github.com/pfdash/pfdash_backend/internal/core/ports/repositories"
	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/dto"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionReader
	currencyRepo    portsrepo.CurrencyReader
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithCurrencyRepository adds the currency repository dependency used to
// validate currency codes on create.
func WithCurrencyRepository(repo portsrepo.CurrencyReader) AccountServiceOption {
	return func(s *accountService) {
		s.currencyRepo = repo
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, transactionRepo portsrepo.TransactionReader, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	if s.currencyRepo != nil {
		if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.LogInfo(ctx, "Rejected account with unknown currency",
					slog.String("currency_code", req.CurrencyCode))
				return nil, apperrors.ErrValidation
			}
			return nil, fmt.Errorf("failed to validate currency: %w", err)
		}
	}

	initialBalance := decimal.Zero
	if req.InitialBalance != nil {
		initialBalance = *req.InitialBalance
	}

	now := time.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		UserID:         userID,
		Name:           req.Name,
		AccountType:    domain.AccountType(req.AccountType),
		CurrencyCode:   req.CurrencyCode,
		InitialBalance: initialBalance,
		Description:    req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("account_type", string(account.AccountType)))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, userID, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	return s.accountRepo.FindAccountsByUser(ctx, userID)
}

// GetAccountBalance derives the balance from every transaction touching the
// account. Credit accounts report the amount owed.
func (s *accountService) GetAccountBalance(ctx context.Context, userID, accountID string) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	txns, err := s.transactionRepo.FindTransactionsTouchingAccount(ctx, userID, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for balance",
			slog.String("account_id", accountID))
		return decimal.Zero, err
	}

	return domain.AccountBalance(*account, txns), nil
}

func (s *accountService) UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.InitialBalance != nil {
		account.InitialBalance = *req.InitialBalance
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

// DeleteAccount removes the account and all transactions touching it in one
// database transaction, so a partial failure never strands orphan rows.
func (s *accountService) DeleteAccount(ctx context.Context, userID, accountID string) error {
	if err := s.accountRepo.DeleteAccountWithTransactions(ctx, userID, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}

// currencyService implements the CurrencySvcFacade interface
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	return s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.currencyRepo.ListCurrencies(ctx)
}
