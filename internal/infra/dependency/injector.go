// Package dependency wires repositories, use cases and controllers together.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/usecase/budget"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

// Injector holds the wired application graph.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	SeedUseCase *category.SeedCategoriesUseCase
}

// Option customizes the injector.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces the clock used to pick the dashboard's default month.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// NewInjector builds every dependency on top of an open database. The rate
// limit store is passed in so callers choose between memory and Redis.
func NewInjector(
	cfg *config.Config,
	db *gorm.DB,
	healthChecker func() bool,
	limitStore middleware.RateLimitStore,
	opts ...Option,
) *Injector {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)

	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	seedCategoriesUseCase := category.NewSeedCategoriesUseCase(createCategoryUseCase)

	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, categoryRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	upsertBudgetUseCase := budget.NewUpsertBudgetUseCase(budgetRepo, categoryRepo)

	getDashboardUseCase := dashboard.NewGetDashboardUseCase(transactionRepo, categoryRepo, budgetRepo, dashboard.Options{
		MonthScopedSpending: cfg.Dashboard.MonthScopedSpending,
		RecentCount:         cfg.Dashboard.RecentTransactions,
		Now:                 o.now,
	})

	if healthChecker == nil {
		healthChecker = func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}
	}
	healthController := controller.NewHealthController(healthChecker)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		upsertBudgetUseCase,
	)

	dashboardController := controller.NewDashboardController(getDashboardUseCase)

	if limitStore == nil {
		limitStore = middleware.NewMemoryRateLimitStore()
	}
	rateLimiter := middleware.NewRateLimiterWithConfig(limitStore, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)

	r := router.NewRouter(
		healthController,
		categoryController,
		transactionController,
		budgetController,
		dashboardController,
		rateLimiter,
		cfg.Server.AllowedOrigins,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		SeedUseCase: seedCategoriesUseCase,
	}
}
