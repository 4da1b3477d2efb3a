package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User        UserSvcFacade
	Account     AccountSvcFacade
	Transaction TransactionSvcFacade
	Category    CategorySvcFacade
	Budget      BudgetSvcFacade
	Goal        GoalSvcFacade
	Reporting   ReportingSvcFacade
	Insight     InsightSvcFacade
	Currency    CurrencySvcFacade

	TokenService       TokenSvcFacade
	GoogleOAuthHandler GoogleOAuthHandlerSvcFacade
}
