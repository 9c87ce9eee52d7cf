// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// Category represents an entry in the global category registry. Transactions
// and budgets reference categories by name; inactive categories are kept for
// historical records but rejected for new budgets and transactions.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewCategory creates a new active Category entity.
func NewCategory(name string, categoryType CategoryType) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultCategories returns the categories seeded into a fresh registry.
func DefaultCategories() []*Category {
	defaults := []struct {
		name string
		typ  CategoryType
	}{
		{"Salary", CategoryTypeIncome},
		{"Freelance", CategoryTypeIncome},
		{"Investments", CategoryTypeIncome},
		{"Food", CategoryTypeExpense},
		{"Transport", CategoryTypeExpense},
		{"Housing", CategoryTypeExpense},
		{"Utilities", CategoryTypeExpense},
		{"Entertainment", CategoryTypeExpense},
		{"Health", CategoryTypeExpense},
		{"Education", CategoryTypeExpense},
	}

	categories := make([]*Category, len(defaults))
	for i, d := range defaults {
		categories[i] = NewCategory(d.name, d.typ)
	}
	return categories
}
