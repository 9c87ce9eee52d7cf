// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fundflow/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type      string          `gorm:"type:varchar(10);not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category  string          `gorm:"type:varchar(255);not null;index"`
	Date      time.Time       `gorm:"not null;index"`
	Tags      pq.StringArray  `gorm:"type:text[]"`
	Notes     string          `gorm:"type:text"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
	DeletedAt gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Transaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      entity.TransactionType(m.Type),
		Amount:    m.Amount,
		Category:  m.Category,
		Date:      m.Date,
		Tags:      []string(m.Tags),
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var deletedAt gorm.DeletedAt
	if transaction.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *transaction.DeletedAt, Valid: true}
	}

	return &TransactionModel{
		ID:        transaction.ID,
		UserID:    transaction.UserID,
		Type:      string(transaction.Type),
		Amount:    transaction.Amount,
		Category:  transaction.Category,
		Date:      transaction.Date,
		Tags:      pq.StringArray(transaction.Tags),
		Notes:     transaction.Notes,
		CreatedAt: transaction.CreatedAt,
		UpdatedAt: transaction.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
