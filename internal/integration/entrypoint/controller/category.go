package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fundflow/backend/internal/application/usecase/category"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
	"github.com/fundflow/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category registry endpoints. The registry is
// global, so no owner scoping applies.
type CategoryController struct {
	createUseCase *category.CreateCategoryUseCase
	listUseCase   *category.ListCategoriesUseCase
	updateUseCase *category.UpdateCategoryUseCase
	deleteUseCase *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	createUseCase *category.CreateCategoryUseCase,
	listUseCase *category.ListCategoriesUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Msg:   "Invalid request body: " + err.Error(),
			Error: string(domainerror.ErrCodeInvalidCategoryName),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		Name: req.Name,
		Type: entity.CategoryType(req.Type),
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Category created successfully",
		Data: dto.ToCategoryResponse(output.Category),
	})
}

// List handles GET /categories requests. Pass activeOnly=true to exclude
// deactivated entries.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{
		ActiveOnly: ctx.Query("activeOnly") == "true",
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Categories retrieved successfully",
		Data: dto.ToCategoryListResponse(output.Categories),
	})
}

// Update handles PATCH /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	categoryID, ok := parseIDParam(ctx, "Invalid category ID format")
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Msg: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		CategoryID: categoryID,
		Name:       req.Name,
		Active:     req.Active,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg:  "Category updated successfully",
		Data: dto.ToCategoryResponse(output.Category),
	})
}

// Delete handles DELETE /categories/:id requests. Categories referenced by
// existing records cannot be removed; deactivate them instead.
func (c *CategoryController) Delete(ctx *gin.Context) {
	categoryID, ok := parseIDParam(ctx, "Invalid category ID format")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		CategoryID: categoryID,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Msg: "Category deleted successfully",
	})
}

// handleCategoryError maps category errors to HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var categoryErr *domainerror.CategoryError
	if errors.As(err, &categoryErr) {
		ctx.JSON(c.statusCodeForCategoryError(categoryErr.Code), dto.ErrorResponse{
			Msg:   categoryErr.Message,
			Error: string(categoryErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Msg: "An internal error occurred",
	})
}

// statusCodeForCategoryError maps category error codes to HTTP status codes.
func (c *CategoryController) statusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryAlreadyExists, domainerror.ErrCodeCategoryInUse:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidCategoryName, domainerror.ErrCodeInvalidCategoryType:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
