// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for a transaction update. Nil
// fields are left unchanged.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Type          *entity.TransactionType
	Amount        *decimal.Decimal
	Category      *string
	Date          *time.Time
	Tags          *[]string
	Notes         *string
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"Transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if input.Type != nil {
		if *input.Type != entity.TransactionTypeIncome && *input.Type != entity.TransactionTypeExpense {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"type must be income or expense",
				domainerror.ErrInvalidTransactionType,
			)
		}
		transaction.Type = *input.Type
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		transaction.Amount = *input.Amount
	}

	if input.Category != nil {
		registered, err := uc.categoryRepo.FindByName(ctx, *input.Category)
		if err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, domainerror.NewTransactionError(
					domainerror.ErrCodeInvalidTransactionCategory,
					"Invalid category",
					domainerror.ErrInvalidTransactionCategory,
				)
			}
			return nil, fmt.Errorf("failed to look up category: %w", err)
		}
		if !registered.Active {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionCategory,
				"Invalid category",
				domainerror.ErrInvalidTransactionCategory,
			)
		}
		transaction.Category = registered.Name
	}

	if input.Date != nil {
		transaction.Date = *input.Date
	}
	if input.Tags != nil {
		transaction.Tags = *input.Tags
	}
	if input.Notes != nil {
		transaction.Notes = *input.Notes
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
