// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fundflow/backend/internal/application/usecase/goal"
	domainerror "github.com/fundflow/backend/internal/domain/error"
	"github.com/fundflow/backend/internal/integration/entrypoint/dto"
	"github.com/fundflow/backend/internal/integration/entrypoint/middleware"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase   *goal.ListGoalsUseCase
	createUseCase *goal.CreateGoalUseCase
	getUseCase    *goal.GetGoalUseCase
	updateUseCase *goal.UpdateGoalUseCase
	deleteUseCase *goal.DeleteGoalUseCase
	fundUseCase   *goal.FundGoalUseCase
	statsUseCase  *goal.GetGoalStatsUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	fundUseCase *goal.FundGoalUseCase,
	statsUseCase *goal.GetGoalStatsUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		fundUseCase:   fundUseCase,
		statsUseCase:  statsUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{UserID: userID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	if len(output.Goals) == 0 {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Msg:   "No goals found",
			Error: string(domainerror.ErrCodeNoGoalsFound),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Goals retrieved successfully",
		Data: dto.ToGoalListResponse(output.Goals),
	})
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Msg:   "Invalid request body: " + err.Error(),
			Error: string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	input := goal.CreateGoalInput{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
	}

	if req.Deadline != nil {
		deadline, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Msg:   "Invalid deadline format, expected YYYY-MM-DD",
				Error: string(domainerror.ErrCodeMissingGoalFields),
			})
			return
		}
		input.Deadline = &deadline
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Goal created successfully",
		Data: dto.ToGoalResponse(output.Goal),
	})
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, ok := parseIDParam(ctx, "Invalid goal ID format")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Goal retrieved successfully",
		Data: dto.ToGoalResponse(output.Goal),
	})
}

// Update handles PATCH /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, ok := parseIDParam(ctx, "Invalid goal ID format")
	if !ok {
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Msg: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := goal.UpdateGoalInput{
		GoalID:       goalID,
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
	}

	if req.Deadline != nil {
		deadline, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Msg: "Invalid deadline format, expected YYYY-MM-DD",
			})
			return
		}
		input.Deadline = &deadline
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Goal updated successfully",
		Data: dto.ToGoalResponse(output.Goal),
	})
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, ok := parseIDParam(ctx, "Invalid goal ID format")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg: "Goal deleted successfully",
	})
}

// Fund handles PATCH /goals/:id/fund requests. Funds are drawn from the
// user's Savings Goal.
func (c *GoalController) Fund(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, ok := parseIDParam(ctx, "Invalid goal ID format")
	if !ok {
		return
	}

	var req dto.FundGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Msg:   "Invalid request body: " + err.Error(),
			Error: string(domainerror.ErrCodeInvalidFundAmount),
		})
		return
	}

	output, err := c.fundUseCase.Execute(ctx.Request.Context(), goal.FundGoalInput{
		UserID:        userID,
		TargetGoalID:  goalID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		TransferToken: req.TransferToken,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Goal funded successfully",
		Data: dto.ToFundGoalResponse(output),
	})
}

// Stats handles GET /goals/stats requests.
func (c *GoalController) Stats(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), goal.GetGoalStatsInput{UserID: userID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Goal statistics retrieved successfully",
		Data: dto.ToGoalStatsResponse(output.Stats),
	})
}

// handleGoalError maps goal errors to HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		response := dto.ErrorResponse{
			Msg:   goalErr.Message,
			Error: string(goalErr.Code),
		}
		var fundsErr *domainerror.InsufficientFundsError
		if errors.As(err, &fundsErr) {
			response.Data = dto.InsufficientFundsDetail{
				SavingsGoalCurrentAmount: fundsErr.SavingsGoalCurrentAmount,
				RequestedAmount:          fundsErr.RequestedAmount,
				BaseCurrency:             fundsErr.BaseCurrency,
			}
		}
		ctx.JSON(c.statusCodeForGoalError(goalErr.Code), response)
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

// statusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) statusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound,
		domainerror.ErrCodeNoGoalsFound,
		domainerror.ErrCodeSavingsGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSavingsGoalExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidGoalName,
		domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidFundAmount,
		domainerror.ErrCodePastDeadline,
		domainerror.ErrCodeMissingGoalFields,
		domainerror.ErrCodeInsufficientFunds:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
