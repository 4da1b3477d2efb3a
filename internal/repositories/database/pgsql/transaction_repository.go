package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pfdash/pfdash_backend/internal/apperrors"
	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portsrepo "github.com/pfdash/pfdash_backend/internal/core/ports/repositories"
	"github.com/pfdash/pfdash_backend/internal/models"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID:   d.TransactionID,
		AccountID:       d.AccountID,
		UserID:          d.UserID,
		Date:            d.Date,
		Description:     d.Description,
		Amount:          d.Amount,
		TransactionType: string(d.Type),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.CategoryID != "" {
		m.CategoryID = &d.CategoryID
	}
	if d.Classification != "" {
		c := string(d.Classification)
		m.Classification = &c
	}
	if d.CounterAccountID != "" {
		m.CounterAccountID = &d.CounterAccountID
	}
	return m
}

func toDomainTransaction(m models.Transaction, categoryName *string) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		UserID:        m.UserID,
		Date:          m.Date,
		Description:   m.Description,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.TransactionType),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.CategoryID != nil {
		d.CategoryID = *m.CategoryID
	}
	if categoryName != nil {
		d.CategoryName = *categoryName
	}
	if m.Classification != nil {
		d.Classification = domain.Classification(*m.Classification)
	}
	if m.CounterAccountID != nil {
		d.CounterAccountID = *m.CounterAccountID
	}
	return d
}

// Transaction reads join the category name in so listings and the CSV export
// never need a second round trip.
const transactionSelect = `
	SELECT t.transaction_id, t.account_id, t.user_id, t.transaction_date, t.description,
		t.amount, t.transaction_type, t.category_id, t.classification, t.counter_account_id,
		t.created_at, t.created_by, t.last_updated_at, t.last_updated_by,
		c.name AS category_name
	FROM transactions t
	LEFT JOIN categories c ON c.category_id = t.category_id`

func scanTransaction(row pgx.Row) (models.Transaction, *string, error) {
	var m models.Transaction
	var categoryName *string
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.UserID,
		&m.Date,
		&m.Description,
		&m.Amount,
		&m.TransactionType,
		&m.CategoryID,
		&m.Classification,
		&m.CounterAccountID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&categoryName,
	)
	return m, categoryName, err
}

func (r *PgxTransactionRepository) collectTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, categoryName, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m, categoryName))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
        INSERT INTO transactions (transaction_id, account_id, user_id, transaction_date, description,
            amount, transaction_type, category_id, classification, counter_account_id,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.AccountID, m.UserID, m.Date, m.Description,
		m.Amount, m.TransactionType, m.CategoryID, m.Classification, m.CounterAccountID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return apperrors.ErrDuplicate
			}
			if pgErr.Code == "23503" { // FK violation, bad account or category reference
				return apperrors.ErrValidation
			}
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	query := transactionSelect + ` WHERE t.transaction_id = $1 AND t.user_id = $2;`
	m, categoryName, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d := toDomainTransaction(m, categoryName)
	return &d, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(transactionSelect)
	sb.WriteString(` WHERE t.user_id = $1`)
	args := []any{userID}

	addClause := func(clause string, value any) {
		args = append(args, value)
		sb.WriteString(" AND " + clause + " $" + strconv.Itoa(len(args)))
	}

	if filter.AccountID != "" {
		addClause("t.account_id =", filter.AccountID)
	}
	if filter.CategoryID != "" {
		addClause("t.category_id =", filter.CategoryID)
	}
	if filter.Type != "" {
		addClause("t.transaction_type =", string(filter.Type))
	}
	if !filter.From.IsZero() {
		addClause("t.transaction_date >=", filter.From)
	}
	if !filter.To.IsZero() {
		addClause("t.transaction_date <=", filter.To)
	}

	sb.WriteString(` ORDER BY t.transaction_date DESC, t.created_at DESC`)

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	sb.WriteString(` LIMIT $` + strconv.Itoa(len(args)))

	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		sb.WriteString(` OFFSET $` + strconv.Itoa(len(args)))
	}
	sb.WriteString(";")

	return r.collectTransactions(ctx, sb.String(), args...)
}

func (r *PgxTransactionRepository) FindTransactionsInWindow(ctx context.Context, userID string, window domain.DateRange) ([]domain.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(transactionSelect)
	sb.WriteString(` WHERE t.user_id = $1`)
	args := []any{userID}

	if !window.From.IsZero() {
		args = append(args, window.From)
		sb.WriteString(` AND t.transaction_date >= $` + strconv.Itoa(len(args)))
	}
	if !window.To.IsZero() {
		args = append(args, window.To)
		sb.WriteString(` AND t.transaction_date <= $` + strconv.Itoa(len(args)))
	}
	sb.WriteString(` ORDER BY t.transaction_date ASC;`)

	return r.collectTransactions(ctx, sb.String(), args...)
}

func (r *PgxTransactionRepository) FindTransactionsTouchingAccount(ctx context.Context, userID, accountID string) ([]domain.Transaction, error) {
	query := transactionSelect + `
	WHERE t.user_id = $1 AND (t.account_id = $2 OR t.counter_account_id = $2)
	ORDER BY t.transaction_date ASC;`
	return r.collectTransactions(ctx, query, userID, accountID)
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := toModelTransaction(txn)
	query := `
        UPDATE transactions
        SET account_id = $3, transaction_date = $4, description = $5, amount = $6,
            transaction_type = $7, category_id = $8, classification = $9,
            counter_account_id = $10, last_updated_at = $11, last_updated_by = $12
        WHERE transaction_id = $1 AND user_id = $2;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.UserID, m.AccountID, m.Date, m.Description, m.Amount,
		m.TransactionType, m.CategoryID, m.Classification,
		m.CounterAccountID, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrValidation
		}
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1 AND user_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
