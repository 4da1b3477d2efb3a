package services

import (
	"context"
	"time"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portsrepo "github.com/pfdash/pfdash_backend/internal/core/ports/repositories"
	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
)

// reportingService implements the ReportingSvcFacade interface. Aggregation
// itself is pure; this layer only fetches the transaction set for the window.
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service
func NewReportingService(transactionRepo portsrepo.TransactionReader) portssvc.ReportingSvcFacade {
	return &reportingService{transactionRepo: transactionRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) Summary(ctx context.Context, userID string, window domain.DateRange) (*domain.Summary, error) {
	txns, err := s.transactionRepo.FindTransactionsInWindow(ctx, userID, window)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for summary")
		return nil, err
	}

	summary := domain.SummarizeTransactions(txns, window)
	return &summary, nil
}

func (s *reportingService) MonthlyBreakdown(ctx context.Context, userID string, year int) ([]domain.MonthlySummary, error) {
	window := domain.YearRange(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	txns, err := s.transactionRepo.FindTransactionsInWindow(ctx, userID, window)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for monthly breakdown")
		return nil, err
	}

	return domain.SummarizeByMonth(txns, year), nil
}
