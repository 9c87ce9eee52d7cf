// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/fundflow/backend/config"
	"github.com/fundflow/backend/internal/application/usecase/auth"
	"github.com/fundflow/backend/internal/application/usecase/budget"
	"github.com/fundflow/backend/internal/application/usecase/category"
	"github.com/fundflow/backend/internal/application/usecase/goal"
	"github.com/fundflow/backend/internal/application/usecase/notification"
	"github.com/fundflow/backend/internal/application/usecase/report"
	"github.com/fundflow/backend/internal/application/usecase/transaction"
	"github.com/fundflow/backend/internal/infra/server/router"
	"github.com/fundflow/backend/internal/integration/adapters"
	"github.com/fundflow/backend/internal/integration/email"
	"github.com/fundflow/backend/internal/integration/email/templates"
	"github.com/fundflow/backend/internal/integration/entrypoint/controller"
	"github.com/fundflow/backend/internal/integration/entrypoint/middleware"
	"github.com/fundflow/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	notificationRepo := persistence.NewNotificationRepository(db)
	reportRepo := persistence.NewReportRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Adapters and services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	converter := adapters.NewCurrencyConverter(cfg.Currency, redisClient)
	pdfRenderer := adapters.NewPDFClient(cfg.PDF)
	insightService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)

	emailService := email.NewService(emailQueueRepo)
	notifier := adapters.NewNotifier(notificationRepo, userRepo, emailService, cfg.Currency.BaseCurrency)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}
	emailSender := email.NewResendClient(cfg.Email)
	workerCfg := email.DefaultWorkerConfig()
	if cfg.Email.PollInterval > 0 {
		workerCfg.PollInterval = cfg.Email.PollInterval
	}
	if cfg.Email.BatchSize > 0 {
		workerCfg.BatchSize = cfg.Email.BatchSize
	}
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, workerCfg)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	fundGoalUseCase := goal.NewFundGoalUseCase(goalRepo, converter, notifier)
	goalStatsUseCase := goal.NewGetGoalStatsUseCase(goalRepo)

	// Budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo, converter)
	getBudgetUseCase := budget.NewGetBudgetUseCase(budgetRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	recommendationsUseCase := budget.NewGetRecommendationsUseCase(budgetRepo, transactionRepo, notifier)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, converter)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Report use cases
	trendsUseCase := report.NewGetTrendsUseCase(transactionRepo, converter)
	summaryUseCase := report.NewGetSummaryUseCase(transactionRepo, converter)
	goalProgressUseCase := report.NewGetGoalProgressUseCase(goalRepo)
	insightsUseCase := report.NewGetInsightsUseCase(transactionRepo, converter, insightService)
	exportUseCase := report.NewExportReportUseCase(trendsUseCase, summaryUseCase, goalProgressUseCase, userRepo, pdfRenderer)
	saveReportUseCase := report.NewSaveReportUseCase(reportRepo)
	reportHistoryUseCase := report.NewGetReportHistoryUseCase(reportRepo)

	// Notification use cases
	listNotificationsUseCase := notification.NewListNotificationsUseCase(notificationRepo)
	markNotificationReadUseCase := notification.NewMarkNotificationReadUseCase(notificationRepo)
	deleteNotificationUseCase := notification.NewDeleteNotificationUseCase(notificationRepo)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		fundGoalUseCase,
		goalStatsUseCase,
	)

	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		getBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		listBudgetsUseCase,
		recommendationsUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	reportController := controller.NewReportController(
		trendsUseCase,
		summaryUseCase,
		goalProgressUseCase,
		insightsUseCase,
		exportUseCase,
		saveReportUseCase,
		reportHistoryUseCase,
	)

	notificationController := controller.NewNotificationController(
		listNotificationsUseCase,
		markNotificationReadUseCase,
		deleteNotificationUseCase,
	)

	// Middleware. Higher rate limits in test environments to keep suites
	// from tripping the limiter.
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		goalController,
		budgetController,
		transactionController,
		categoryController,
		reportController,
		notificationController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
