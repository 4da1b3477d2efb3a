package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pfdash/pfdash_backend/internal/apperrors"
	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portsrepo "github.com/pfdash/pfdash_backend/internal/core/ports/repositories"
	"github.com/pfdash/pfdash_backend/internal/models"
)

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(db *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

func toModelGoal(d domain.Goal) models.Goal {
	return models.Goal{
		GoalID:        d.GoalID,
		UserID:        d.UserID,
		Name:          d.Name,
		TargetAmount:  d.TargetAmount,
		CurrentAmount: d.CurrentAmount,
		Period:        string(d.Period),
		GoalType:      string(d.GoalType),
		TargetDate:    d.TargetDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		GoalID:        m.GoalID,
		UserID:        m.UserID,
		Name:          m.Name,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Period:        domain.GoalPeriod(m.Period),
		GoalType:      domain.GoalType(m.GoalType),
		TargetDate:    m.TargetDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const goalColumns = `goal_id, user_id, name, target_amount, current_amount,
		period, goal_type, target_date, created_at, created_by, last_updated_at, last_updated_by`

func scanGoal(row pgx.Row) (models.Goal, error) {
	var m models.Goal
	err := row.Scan(
		&m.GoalID,
		&m.UserID,
		&m.Name,
		&m.TargetAmount,
		&m.CurrentAmount,
		&m.Period,
		&m.GoalType,
		&m.TargetDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	m := toModelGoal(goal)
	query := `
        INSERT INTO goals (goal_id, user_id, name, target_amount, current_amount,
            period, goal_type, target_date, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.GoalID, m.UserID, m.Name, m.TargetAmount, m.CurrentAmount,
		m.Period, m.GoalType, m.TargetDate, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	return nil
}

func (r *PgxGoalRepository) FindGoalByID(ctx context.Context, userID, goalID string) (*domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE goal_id = $1 AND user_id = $2;`
	m, err := scanGoal(r.Pool.QueryRow(ctx, query, goalID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal by ID %s: %w", goalID, err)
	}

	d := toDomainGoal(m)
	return &d, nil
}

func (r *PgxGoalRepository) FindGoalsByUser(ctx context.Context, userID string) ([]domain.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	goals := []domain.Goal{}
	for rows.Next() {
		m, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, toDomainGoal(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", rows.Err())
	}
	return goals, nil
}

func (r *PgxGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	m := toModelGoal(goal)
	query := `
        UPDATE goals
        SET name = $3, target_amount = $4, current_amount = $5, period = $6,
            goal_type = $7, target_date = $8, last_updated_at = $9, last_updated_by = $10
        WHERE goal_id = $1 AND user_id = $2;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.GoalID, m.UserID, m.Name, m.TargetAmount, m.CurrentAmount, m.Period,
		m.GoalType, m.TargetDate, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal %s: %w", goal.GoalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxGoalRepository) DeleteGoal(ctx context.Context, userID, goalID string) error {
	query := `DELETE FROM goals WHERE goal_id = $1 AND user_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, goalID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
