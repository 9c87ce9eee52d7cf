package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fundflow/backend/internal/application/usecase/transaction"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
	"github.com/fundflow/backend/internal/integration/entrypoint/dto"
	"github.com/fundflow/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Msg:   "Invalid request body: " + err.Error(),
			Error: string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:   userID,
		Type:     entity.TransactionType(req.Type),
		Amount:   req.Amount,
		Currency: req.Currency,
		Category: req.Category,
		Tags:     req.Tags,
		Notes:    req.Notes,
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Msg:   "Invalid date format, expected YYYY-MM-DD",
				Error: string(domainerror.ErrCodeMissingTransactionFields),
			})
			return
		}
		input.Date = date
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Transaction created successfully",
		Data: dto.ToTransactionResponse(output.Transaction),
	})
}

// List handles GET /transactions requests. Type, category, tag, and date
// range are passed as query parameters.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var filter entity.TransactionFilter
	if typeStr := ctx.Query("type"); typeStr != "" {
		transactionType := entity.TransactionType(typeStr)
		filter.Type = &transactionType
	}
	if category := ctx.Query("category"); category != "" {
		filter.Category = &category
	}
	if tag := ctx.Query("tag"); tag != "" {
		filter.Tag = &tag
	}
	if startStr := ctx.Query("startDate"); startStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Msg: "Invalid startDate format, expected YYYY-MM-DD",
			})
			return
		}
		filter.StartDate = &start
	}
	if endStr := ctx.Query("endDate"); endStr != "" {
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Msg: "Invalid endDate format, expected YYYY-MM-DD",
			})
			return
		}
		filter.EndDate = &end
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		UserID: userID,
		Filter: filter,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Transactions retrieved successfully",
		Data: dto.ToTransactionListResponse(output.Transactions),
	})
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, ok := parseIDParam(ctx, "Invalid transaction ID format")
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Msg: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
		Amount:        req.Amount,
		Category:      req.Category,
		Tags:          req.Tags,
		Notes:         req.Notes,
	}

	if req.Type != nil {
		transactionType := entity.TransactionType(*req.Type)
		input.Type = &transactionType
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Msg: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Transaction updated successfully",
		Data: dto.ToTransactionResponse(output.Transaction),
	})
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	transactionID, ok := parseIDParam(ctx, "Invalid transaction ID format")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg: "Transaction deleted successfully",
	})
}

// handleTransactionError maps transaction errors to HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		ctx.JSON(c.statusCodeForTransactionError(transactionErr.Code), dto.ErrorResponse{
			Msg:   transactionErr.Message,
			Error: string(transactionErr.Code),
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

// statusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) statusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeInvalidTransactionCategory,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
