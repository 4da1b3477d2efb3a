package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pfdash/pfdash_backend/internal/apperrors"
	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portsrepo "github.com/pfdash/pfdash_backend/internal/core/ports/repositories"
	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/dto"
	"github.com/pfdash/pfdash_backend/internal/utils/export"
)

// transactionService implements the TransactionSvcFacade interface. It is the
// single write boundary for transactions: amounts enter as positive
// magnitudes or not at all.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountReader
	categoryRepo    portsrepo.CategoryReader
}

// NewTransactionService creates a new transaction service
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader, categoryRepo portsrepo.CategoryReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// categoryTypeFor maps a transaction type to the category type allowed to
// label it. Transfers take no category.
func categoryTypeFor(txnType domain.TransactionType) (domain.CategoryType, bool) {
	switch txnType {
	case domain.TransactionIncome:
		return domain.CategoryIncome, true
	case domain.TransactionExpense:
		return domain.CategoryExpense, true
	case domain.TransactionInvestment:
		return domain.CategoryInvestment, true
	}
	return "", false
}

// validate applies every cross-field rule shared by create and update.
func (s *transactionService) validate(ctx context.Context, userID string, txn *domain.Transaction) error {
	if !txn.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}
	if !domain.ValidTransactionType(txn.Type) {
		return fmt.Errorf("unknown transaction type %q: %w", txn.Type, apperrors.ErrValidation)
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, userID, txn.AccountID); err != nil {
		return fmt.Errorf("account %s: %w", txn.AccountID, apperrors.ErrValidation)
	}

	if txn.Type != domain.TransactionExpense && txn.Classification != "" {
		return fmt.Errorf("classification only applies to expense transactions: %w", apperrors.ErrValidation)
	}

	if txn.Type == domain.TransactionTransfer {
		txn.CategoryID = ""
		if txn.CounterAccountID == "" {
			return fmt.Errorf("transfer requires a counter account: %w", apperrors.ErrValidation)
		}
		if txn.CounterAccountID == txn.AccountID {
			return fmt.Errorf("transfer counter account must differ: %w", apperrors.ErrValidation)
		}
		if _, err := s.accountRepo.FindAccountByID(ctx, userID, txn.CounterAccountID); err != nil {
			return fmt.Errorf("counter account %s: %w", txn.CounterAccountID, apperrors.ErrValidation)
		}
		return nil
	}

	txn.CounterAccountID = ""
	if txn.CategoryID != "" {
		category, err := s.categoryRepo.FindCategoryByID(ctx, userID, txn.CategoryID)
		if err != nil {
			return fmt.Errorf("category %s: %w", txn.CategoryID, apperrors.ErrValidation)
		}
		wantType, _ := categoryTypeFor(txn.Type)
		if category.CategoryType != wantType {
			return fmt.Errorf("category type %s does not match transaction type %s: %w",
				category.CategoryType, txn.Type, apperrors.ErrValidation)
		}
	}
	return nil
}

func fromTransactionRequest(userID string, req dto.CreateTransactionRequest) domain.Transaction {
	txn := domain.Transaction{
		AccountID:   req.AccountID,
		UserID:      userID,
		Date:        req.Date.UTC(),
		Description: req.Description,
		Amount:      req.Amount,
		Type:        domain.TransactionType(req.Type),
	}
	if req.CategoryID != nil {
		txn.CategoryID = *req.CategoryID
	}
	if req.Classification != nil {
		txn.Classification = domain.Classification(*req.Classification)
	}
	if req.CounterAccountID != nil {
		txn.CounterAccountID = *req.CounterAccountID
	}
	return txn
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txn := fromTransactionRequest(userID, req)
	if err := s.validate(ctx, userID, &txn); err != nil {
		s.LogInfo(ctx, "Rejected transaction", slog.String("reason", err.Error()))
		return nil, err
	}

	now := time.Now()
	txn.TransactionID = uuid.NewString()
	txn.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("account_id", txn.AccountID))
		return nil, err
	}

	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
}

func toTransactionFilter(params dto.ListTransactionsParams) portsrepo.TransactionFilter {
	filter := portsrepo.TransactionFilter{
		AccountID:  params.AccountID,
		CategoryID: params.CategoryID,
		Type:       domain.TransactionType(params.Type),
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	if params.From != nil {
		filter.From = params.From.UTC()
	}
	if params.To != nil {
		// Dates arrive day-granular; make the To day inclusive.
		filter.To = params.To.UTC().AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return filter
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	return s.transactionRepo.ListTransactions(ctx, userID, toTransactionFilter(params))
}

// ExportTransactionsCSV renders the filtered transaction set as CSV. The
// pagination cap is lifted so the export covers the whole filter match.
func (s *transactionService) ExportTransactionsCSV(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]byte, error) {
	filter := toTransactionFilter(params)
	filter.Limit = exportRowCap
	filter.Offset = 0

	txns, err := s.transactionRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	return export.TransactionsCSV(txns)
}

// exportRowCap bounds a single CSV export.
const exportRowCap = 100000

func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.transactionRepo.FindTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	txn := fromTransactionRequest(userID, dto.CreateTransactionRequest(req))
	if err := s.validate(ctx, userID, &txn); err != nil {
		s.LogInfo(ctx, "Rejected transaction update", slog.String("reason", err.Error()))
		return nil, err
	}

	txn.TransactionID = existing.TransactionID
	txn.AuditFields = existing.AuditFields
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = userID

	if err := s.transactionRepo.UpdateTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}

	return &txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, userID, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}
	return nil
}
