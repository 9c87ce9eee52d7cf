// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID   uuid.UUID
	Type     entity.TransactionType
	Amount   decimal.Decimal
	Currency string
	Category string
	Date     time.Time
	Tags     []string
	Notes    string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic. Amounts are
// normalized to the base currency before they are stored.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	converter       adapter.CurrencyConverter
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	converter adapter.CurrencyConverter,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		converter:       converter,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Type != entity.TransactionTypeIncome && input.Type != entity.TransactionTypeExpense {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be income or expense",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"category is required",
			domainerror.ErrInvalidTransactionCategory,
		)
	}

	registered, err := uc.categoryRepo.FindByName(ctx, category)
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

	amount := input.Amount
	currency := input.Currency
	if currency != "" && currency != uc.converter.BaseCurrency() {
		amount, err = uc.converter.ToBase(ctx, input.Amount, currency)
		if err != nil {
			return nil, err
		}
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Type,
		amount,
		registered.Name,
		date,
		input.Tags,
		input.Notes,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}
