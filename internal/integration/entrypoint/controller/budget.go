package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fundflow/backend/internal/application/usecase/budget"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
	"github.com/fundflow/backend/internal/integration/entrypoint/dto"
	"github.com/fundflow/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	createUseCase          *budget.CreateBudgetUseCase
	getUseCase             *budget.GetBudgetUseCase
	updateUseCase          *budget.UpdateBudgetUseCase
	deleteUseCase          *budget.DeleteBudgetUseCase
	listUseCase            *budget.ListBudgetsUseCase
	recommendationsUseCase *budget.GetRecommendationsUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	createUseCase *budget.CreateBudgetUseCase,
	getUseCase *budget.GetBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	recommendationsUseCase *budget.GetRecommendationsUseCase,
) *BudgetController {
	return &BudgetController{
		createUseCase:          createUseCase,
		getUseCase:             getUseCase,
		updateUseCase:          updateUseCase,
		deleteUseCase:          deleteUseCase,
		listUseCase:            listUseCase,
		recommendationsUseCase: recommendationsUseCase,
	}
}

// Create handles POST /budget requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Msg:   "Invalid request body: " + err.Error(),
			Error: string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		UserID:   userID,
		Category: req.Category,
		Amount:   req.Amount,
		Duration: entity.BudgetDuration(req.Duration),
		Currency: req.Currency,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Budget created successfully",
		Data: dto.ToBudgetResponse(output.Budget),
	})
}

// Get handles GET /budget/:id requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	budgetID, ok := parseIDParam(ctx, "Invalid budget ID format")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{
		UserID:   userID,
		BudgetID: budgetID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Budget retrieved successfully",
		Data: dto.ToBudgetResponse(output.Budget),
	})
}

// Update handles PATCH /budget/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	budgetID, ok := parseIDParam(ctx, "Invalid budget ID format")
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Msg: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := budget.UpdateBudgetInput{
		UserID:   userID,
		BudgetID: budgetID,
		Amount:   req.Amount,
	}

	if req.Duration != nil {
		duration := entity.BudgetDuration(*req.Duration)
		input.Duration = &duration
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Budget updated successfully",
		Data: dto.ToBudgetResponse(output.Budget),
	})
}

// Delete handles DELETE /budget/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	budgetID, ok := parseIDParam(ctx, "Invalid budget ID format")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		UserID:   userID,
		BudgetID: budgetID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg: "Budget deleted successfully",
	})
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{UserID: userID})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Budgets retrieved successfully",
		Data: dto.ToBudgetListResponse(output.Budgets),
	})
}

// Filter handles GET /budgets/filter requests. Category and duration are
// passed as query parameters.
func (c *BudgetController) Filter(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var filter entity.BudgetFilter
	if category := ctx.Query("category"); category != "" {
		filter.Category = &category
	}
	if durationStr := ctx.Query("duration"); durationStr != "" {
		duration := entity.BudgetDuration(durationStr)
		filter.Duration = &duration
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		UserID: userID,
		Filter: filter,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Budgets retrieved successfully",
		Data: dto.ToBudgetListResponse(output.Budgets),
	})
}

// Recommendations handles GET /budgets/recommendations requests.
func (c *BudgetController) Recommendations(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.recommendationsUseCase.Execute(ctx.Request.Context(), budget.GetRecommendationsInput{UserID: userID})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Budget recommendations retrieved successfully",
		Data: dto.ToRecommendationListResponse(output.Recommendations),
	})
}

// handleBudgetError maps budget errors to HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(c.statusCodeForBudgetError(budgetErr.Code), dto.ErrorResponse{
			Msg:   budgetErr.Message,
			Error: string(budgetErr.Code),
		})
		return
	}

	var currencyErr *domainerror.CurrencyError
	if errors.As(err, &currencyErr) {
		ctx.JSON(statusCodeForCurrencyError(currencyErr.Code), dto.ErrorResponse{
			Msg:   currencyErr.Message,
			Error: string(currencyErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Msg: "An internal error occurred",
	})
}

// statusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) statusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound, domainerror.ErrCodeNoBudgetsFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBudgetAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidBudgetCategory,
		domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeInvalidBudgetDuration,
		domainerror.ErrCodeMissingBudgetFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
