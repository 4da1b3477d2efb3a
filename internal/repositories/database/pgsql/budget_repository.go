package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pfdash/pfdash_backend/internal/apperrors"
	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portsrepo "github.com/pfdash/pfdash_backend/internal/core/ports/repositories"
	"github.com/pfdash/pfdash_backend/internal/models"
)

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(db *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

func toModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:    d.BudgetID,
		UserID:      d.UserID,
		CategoryID:  d.CategoryID,
		LimitAmount: d.LimitAmount,
		Month:       domain.NormalizeMonth(d.Month),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainBudget(m models.Budget, categoryName string) domain.Budget {
	return domain.Budget{
		BudgetID:     m.BudgetID,
		UserID:       m.UserID,
		CategoryID:   m.CategoryID,
		CategoryName: categoryName,
		LimitAmount:  m.LimitAmount,
		Month:        domain.NormalizeMonth(m.Month),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const budgetSelect = `
	SELECT b.budget_id, b.user_id, b.category_id, b.limit_amount, b.month,
		b.created_at, b.created_by, b.last_updated_at, b.last_updated_by,
		c.name AS category_name
	FROM budgets b
	JOIN categories c ON c.category_id = b.category_id`

func scanBudget(row pgx.Row) (models.Budget, string, error) {
	var m models.Budget
	var categoryName string
	err := row.Scan(
		&m.BudgetID,
		&m.UserID,
		&m.CategoryID,
		&m.LimitAmount,
		&m.Month,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&categoryName,
	)
	return m, categoryName, err
}

func (r *PgxBudgetRepository) collectBudgets(ctx context.Context, query string, args ...any) ([]domain.Budget, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		m, categoryName, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget row: %w", err)
		}
		budgets = append(budgets, toDomainBudget(m, categoryName))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", rows.Err())
	}
	return budgets, nil
}

func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := toModelBudget(budget)
	query := `
        INSERT INTO budgets (budget_id, user_id, category_id, limit_amount, month,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.BudgetID, m.UserID, m.CategoryID, m.LimitAmount, m.Month,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // one budget per (user, category, month)
				return apperrors.ErrDuplicate
			}
			if pgErr.Code == "23503" {
				return apperrors.ErrValidation
			}
		}
		return fmt.Errorf("failed to save budget: %w", err)
	}
	return nil
}

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	query := budgetSelect + ` WHERE b.budget_id = $1 AND b.user_id = $2;`
	m, categoryName, err := scanBudget(r.Pool.QueryRow(ctx, query, budgetID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget by ID %s: %w", budgetID, err)
	}

	d := toDomainBudget(m, categoryName)
	return &d, nil
}

func (r *PgxBudgetRepository) FindBudgetByCategoryAndMonth(ctx context.Context, userID, categoryID string, month time.Time) (*domain.Budget, error) {
	query := budgetSelect + ` WHERE b.user_id = $1 AND b.category_id = $2 AND b.month = $3;`
	m, categoryName, err := scanBudget(r.Pool.QueryRow(ctx, query, userID, categoryID, domain.NormalizeMonth(month)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget for category %s: %w", categoryID, err)
	}

	d := toDomainBudget(m, categoryName)
	return &d, nil
}

func (r *PgxBudgetRepository) FindBudgetsByMonth(ctx context.Context, userID string, month time.Time) ([]domain.Budget, error) {
	query := budgetSelect + ` WHERE b.user_id = $1 AND b.month = $2 ORDER BY c.name ASC;`
	return r.collectBudgets(ctx, query, userID, domain.NormalizeMonth(month))
}

func (r *PgxBudgetRepository) FindBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error) {
	query := budgetSelect + ` WHERE b.user_id = $1 ORDER BY b.month DESC, c.name ASC;`
	return r.collectBudgets(ctx, query, userID)
}

func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	m := toModelBudget(budget)
	query := `
        UPDATE budgets
        SET limit_amount = $3, last_updated_at = $4, last_updated_by = $5
        WHERE budget_id = $1 AND user_id = $2;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.BudgetID, m.UserID, m.LimitAmount, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget %s: %w", budget.BudgetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	query := `DELETE FROM budgets WHERE budget_id = $1 AND user_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, budgetID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", budgetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
