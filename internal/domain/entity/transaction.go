// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a financial transaction in the FundFlow system.
// Amounts are positive and stored in the base currency; the type field
// distinguishes income from expense.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      TransactionType
	Amount    decimal.Decimal
	Category  string
	Date      time.Time
	Tags      []string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	category string,
	date time.Time,
	tags []string,
	notes string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      transactionType,
		Amount:    amount,
		Category:  category,
		Date:      date,
		Tags:      tags,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsExpense reports whether the transaction is an expense.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// TransactionFilter narrows transaction queries.
type TransactionFilter struct {
	Type      *TransactionType
	Category  *string
	Tag       *string
	StartDate *time.Time
	EndDate   *time.Time
}
