// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

// FundGoalInput represents the input for funding a goal from the Savings Goal.
type FundGoalInput struct {
	UserID       uuid.UUID
	TargetGoalID uuid.UUID
	Amount       decimal.Decimal
	Currency     string
	// TransferToken is an optional client-supplied idempotency key. Retrying
	// a request with the same token replays the recorded transfer instead of
	// moving funds twice.
	TransferToken *string
}

// FundGoalOutput represents the output of a funding transfer.
type FundGoalOutput struct {
	SavingsGoal     *entity.Goal
	TargetGoal      *entity.Goal
	ConvertedAmount decimal.Decimal
	BaseCurrency    string
	Replayed        bool
}

// FundGoalUseCase enforces the funding/transfer invariant between the user's
// Savings Goal and a target goal. Both goal updates and the transfer record
// are committed in a single database transaction.
type FundGoalUseCase struct {
	goalRepo  adapter.GoalRepository
	converter adapter.CurrencyConverter
	notifier  adapter.Notifier
}

// NewFundGoalUseCase creates a new FundGoalUseCase instance.
func NewFundGoalUseCase(
	goalRepo adapter.GoalRepository,
	converter adapter.CurrencyConverter,
	notifier adapter.Notifier,
) *FundGoalUseCase {
	return &FundGoalUseCase{
		goalRepo:  goalRepo,
		converter: converter,
		notifier:  notifier,
	}
}

// Execute performs the funding transfer.
func (uc *FundGoalUseCase) Execute(ctx context.Context, input FundGoalInput) (*FundGoalOutput, error) {
	// Validate amount
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidFundAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidFundAmount,
		)
	}

	// Idempotent replay: a transfer with this token already went through.
	if input.TransferToken != nil && *input.TransferToken != "" {
		recorded, err := uc.goalRepo.FindTransferByToken(ctx, input.UserID, *input.TransferToken)
		if err != nil {
			return nil, fmt.Errorf("failed to look up transfer token: %w", err)
		}
		if recorded != nil {
			return uc.replay(ctx, input.UserID, recorded)
		}
	}

	// Convert the requested amount to the base currency
	converted, err := uc.converter.ToBase(ctx, input.Amount, input.Currency)
	if err != nil {
		return nil, err
	}

	// Load the user's Savings Goal
	savings, err := uc.goalRepo.FindSavingsGoal(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSavingsGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeSavingsGoalNotFound,
				"Savings Goal not found",
				domainerror.ErrSavingsGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find savings goal: %w", err)
	}

	// The Savings Goal must cover the converted amount
	if converted.GreaterThan(savings.CurrentAmount) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInsufficientFunds,
			"Insufficient funds in Savings Goal",
			&domainerror.InsufficientFundsError{
				SavingsGoalCurrentAmount: savings.CurrentAmount,
				RequestedAmount:          converted,
				BaseCurrency:             uc.converter.BaseCurrency(),
			},
		)
	}

	// Load the target goal, scoped to the owner
	target, err := uc.goalRepo.FindByID(ctx, input.TargetGoalID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"Goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find target goal: %w", err)
	}

	if target.ID == savings.ID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"Goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	// Apply the transfer: credit the target (capped at its target amount),
	// debit the savings goal (floored at zero).
	wasCompleted := target.IsCompleted()
	target.Credit(converted)
	savings.Debit(converted)

	now := time.Now().UTC()
	target.UpdatedAt = now
	savings.UpdatedAt = now

	transfer := entity.NewGoalTransfer(
		input.UserID,
		input.TransferToken,
		savings.ID,
		target.ID,
		converted,
		uc.converter.BaseCurrency(),
	)

	// Both writes plus the transfer record commit atomically; a failure on
	// either side rolls the whole transfer back.
	if err := uc.goalRepo.Transfer(ctx, transfer, savings, target); err != nil {
		return nil, fmt.Errorf("failed to persist transfer: %w", err)
	}

	// Fire the completion notification outside the transaction; delivery is
	// best effort and must not undo a committed transfer.
	if !wasCompleted && target.IsCompleted() && uc.notifier != nil {
		if err := uc.notifier.NotifyGoalCompleted(ctx, input.UserID, target); err != nil {
			slog.Error("Failed to send goal completion notification",
				"goal_id", target.ID,
				"user_id", input.UserID,
				"error", err,
			)
		}
	}

	return &FundGoalOutput{
		SavingsGoal:     savings,
		TargetGoal:      target,
		ConvertedAmount: converted,
		BaseCurrency:    uc.converter.BaseCurrency(),
	}, nil
}

// replay returns the current state of both goals for an already-recorded
// transfer without moving funds again.
func (uc *FundGoalUseCase) replay(ctx context.Context, userID uuid.UUID, recorded *entity.GoalTransfer) (*FundGoalOutput, error) {
	savings, err := uc.goalRepo.FindByID(ctx, recorded.SourceGoalID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load savings goal for replay: %w", err)
	}
	target, err := uc.goalRepo.FindByID(ctx, recorded.TargetGoalID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load target goal for replay: %w", err)
	}

	return &FundGoalOutput{
		SavingsGoal:     savings,
		TargetGoal:      target,
		ConvertedAmount: recorded.Amount,
		BaseCurrency:    recorded.Currency,
		Replayed:        true,
	}, nil
}
