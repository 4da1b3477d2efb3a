package services

import (
	"context"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
)

// ReportingSvcFacade defines read-only aggregation over the user's
// transactions. All windows are explicit; nothing here reads the clock.
type ReportingSvcFacade interface {
	// Summary aggregates the user's transactions within the window.
	Summary(ctx context.Context, userID string, window domain.DateRange) (*domain.Summary, error)

	// MonthlyBreakdown produces one summary row per calendar month of year.
	MonthlyBreakdown(ctx context.Context, userID string, year int) ([]domain.MonthlySummary, error)
}
