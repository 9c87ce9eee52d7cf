// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/fundflow/backend/internal/integration/entrypoint/controller"
	"github.com/fundflow/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	goalController         *controller.GoalController
	budgetController       *controller.BudgetController
	transactionController  *controller.TransactionController
	categoryController     *controller.CategoryController
	reportController       *controller.ReportController
	notificationController *controller.NotificationController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	goalController *controller.GoalController,
	budgetController *controller.BudgetController,
	transactionController *controller.TransactionController,
	categoryController *controller.CategoryController,
	reportController *controller.ReportController,
	notificationController *controller.NotificationController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		goalController:         goalController,
		budgetController:       budgetController,
		transactionController:  transactionController,
		categoryController:     categoryController,
		reportController:       reportController,
		notificationController: notificationController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.GET("/stats", r.goalController.Stats)
				goals.GET("/:id", r.goalController.Get)
				goals.PATCH("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
				goals.PATCH("/:id/fund", r.goalController.Fund)
			}
		}

		if r.budgetController != nil && r.authMiddleware != nil {
			budget := v1.Group("/budget")
			budget.Use(r.authMiddleware.Authenticate())
			{
				budget.POST("", r.budgetController.Create)
				budget.GET("/:id", r.budgetController.Get)
				budget.PATCH("/:id", r.budgetController.Update)
				budget.DELETE("/:id", r.budgetController.Delete)
			}

			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.GET("", r.budgetController.List)
				budgets.GET("/filter", r.budgetController.Filter)
				budgets.GET("/recommendations", r.budgetController.Recommendations)
			}
		}

		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("/trends", r.reportController.Trends)
				reports.GET("/filter", r.reportController.Filter)
				reports.GET("/goal", r.reportController.Goal)
				reports.GET("/insights", r.reportController.Insights)
				reports.GET("/history", r.reportController.History)
			}
		}

		if r.notificationController != nil && r.authMiddleware != nil {
			notifications := v1.Group("/notifications")
			notifications.Use(r.authMiddleware.Authenticate())
			{
				notifications.GET("", r.notificationController.List)
				notifications.PATCH("/:id/read", r.notificationController.MarkRead)
				notifications.DELETE("/:id", r.notificationController.Delete)
			}
		}
	}
}
