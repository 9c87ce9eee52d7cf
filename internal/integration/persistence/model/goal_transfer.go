// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/domain/entity"
)

// GoalTransferModel represents the goal_transfers table in the database. The
// token column carries the client idempotency key and is unique per user.
type GoalTransferModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_goal_transfers_user_token"`
	Token        *string         `gorm:"type:varchar(255);uniqueIndex:idx_goal_transfers_user_token"`
	SourceGoalID uuid.UUID       `gorm:"type:uuid;not null"`
	TargetGoalID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency     string          `gorm:"type:varchar(3);not null"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalTransferModel.
func (GoalTransferModel) TableName() string {
	return "goal_transfers"
}

// ToEntity converts a GoalTransferModel to a domain GoalTransfer entity.
func (m *GoalTransferModel) ToEntity() *entity.GoalTransfer {
	return &entity.GoalTransfer{
		ID:           m.ID,
		UserID:       m.UserID,
		Token:        m.Token,
		SourceGoalID: m.SourceGoalID,
		TargetGoalID: m.TargetGoalID,
		Amount:       m.Amount,
		Currency:     m.Currency,
		CreatedAt:    m.CreatedAt,
	}
}

// GoalTransferFromEntity creates a GoalTransferModel from a domain GoalTransfer entity.
func GoalTransferFromEntity(transfer *entity.GoalTransfer) *GoalTransferModel {
	return &GoalTransferModel{
		ID:           transfer.ID,
		UserID:       transfer.UserID,
		Token:        transfer.Token,
		SourceGoalID: transfer.SourceGoalID,
		TargetGoalID: transfer.TargetGoalID,
		Amount:       transfer.Amount,
		Currency:     transfer.Currency,
		CreatedAt:    transfer.CreatedAt,
	}
}
