package services

import (
	"context"
	"log"
	"time"

	portsrepo "github.com/pfdash/pfdash_backend/internal/core/ports/repositories"
	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)

	container.User = NewUserService(cfg, repos.UserRepo,
		WithCategorySeeder(container.Category),
	)

	container.Account = NewAccountService(repos.AccountRepo, repos.TransactionRepo,
		WithCurrencyRepository(repos.CurrencyRepo),
	)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.CategoryRepo, repos.TransactionRepo)
	container.Goal = NewGoalService(repos.GoalRepo, repos.TransactionRepo)
	container.Reporting = NewReportingService(repos.TransactionRepo)

	// A failed model client leaves the insight flows on their static
	// fallbacks; nothing else depends on it.
	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	generator, err := NewGeminiGenerator(initCtx, cfg.GeminiModel)
	if err != nil {
		log.Printf("Warning: Gemini client unavailable, insight endpoints will serve fallbacks: %v", err)
		generator = nil
	}
	container.Insight = NewInsightService(generator, repos.TransactionRepo, cfg.InsightTimeout)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
