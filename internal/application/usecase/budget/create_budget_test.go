// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo(names ...string) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
	for _, name := range names {
		repo.categories[name] = entity.NewCategory(name, entity.CategoryTypeExpense)
	}
	return repo
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.Name] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindByName(_ context.Context, name string) (*entity.Category, error) {
	c, ok := r.categories[name]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepo) FindAll(_ context.Context, activeOnly bool) ([]*entity.Category, error) {
	var categories []*entity.Category
	for _, c := range r.categories {
		if activeOnly && !c.Active {
			continue
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.categories[category.Name] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for name, c := range r.categories {
		if c.ID == id {
			delete(r.categories, name)
			return nil
		}
	}
	return domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) Seed(_ context.Context, categories []*entity.Category) error {
	for _, c := range categories {
		if _, ok := r.categories[c.Name]; !ok {
			r.categories[c.Name] = c
		}
	}
	return nil
}

type fixedConverter struct{}

func (fixedConverter) ToBase(_ context.Context, amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	if currency == "USD" {
		return amount.Mul(decimal.NewFromInt(300)), nil
	}
	return amount, nil
}

func (fixedConverter) FromBase(_ context.Context, amount decimal.Decimal, _ string) (decimal.Decimal, error) {
	return amount, nil
}

func (fixedConverter) BaseCurrency() string { return "LKR" }

func TestCreateBudget(t *testing.T) {
	userID := uuid.New()

	t.Run("creates budget in base currency", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		uc := NewCreateBudgetUseCase(repo, newFakeCategoryRepo("Food"), fixedConverter{})

		out, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:   userID,
			Category: "Food",
			Amount:   decimal.NewFromInt(1000),
			Duration: entity.BudgetDurationMonthly,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Budget.Currency != "LKR" {
			t.Errorf("expected LKR, got %s", out.Budget.Currency)
		}
		if !out.Budget.Amount.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected amount 1000, got %s", out.Budget.Amount)
		}
	})

	t.Run("normalizes foreign currency amount", func(t *testing.T) {
		uc := NewCreateBudgetUseCase(newFakeBudgetRepo(), newFakeCategoryRepo("Food"), fixedConverter{})

		out, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:   userID,
			Category: "Food",
			Amount:   decimal.NewFromInt(10),
			Duration: entity.BudgetDurationMonthly,
			Currency: "USD",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Budget.Amount.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("expected 3000 LKR, got %s", out.Budget.Amount)
		}
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		uc := NewCreateBudgetUseCase(newFakeBudgetRepo(), newFakeCategoryRepo("Food"), fixedConverter{})

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:   userID,
			Category: "Yachts",
			Amount:   decimal.NewFromInt(1000),
			Duration: entity.BudgetDurationMonthly,
		})

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) || budgetErr.Code != domainerror.ErrCodeInvalidBudgetCategory {
			t.Fatalf("expected invalid category error, got %v", err)
		}
	})

	t.Run("rejects inactive category", func(t *testing.T) {
		categories := newFakeCategoryRepo("Food")
		categories.categories["Food"].Active = false
		uc := NewCreateBudgetUseCase(newFakeBudgetRepo(), categories, fixedConverter{})

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:   userID,
			Category: "Food",
			Amount:   decimal.NewFromInt(1000),
			Duration: entity.BudgetDurationMonthly,
		})

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) || budgetErr.Code != domainerror.ErrCodeInvalidBudgetCategory {
			t.Fatalf("expected invalid category error, got %v", err)
		}
	})

	t.Run("rejects duplicate budget for category", func(t *testing.T) {
		existing := entity.NewBudget(userID, "Food", decimal.NewFromInt(500), entity.BudgetDurationMonthly, "LKR")
		uc := NewCreateBudgetUseCase(newFakeBudgetRepo(existing), newFakeCategoryRepo("Food"), fixedConverter{})

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:   userID,
			Category: "Food",
			Amount:   decimal.NewFromInt(1000),
			Duration: entity.BudgetDurationMonthly,
		})

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) || budgetErr.Code != domainerror.ErrCodeBudgetAlreadyExists {
			t.Fatalf("expected conflict error, got %v", err)
		}
	})

	t.Run("rejects invalid duration", func(t *testing.T) {
		uc := NewCreateBudgetUseCase(newFakeBudgetRepo(), newFakeCategoryRepo("Food"), fixedConverter{})

		_, err := uc.Execute(context.Background(), CreateBudgetInput{
			UserID:   userID,
			Category: "Food",
			Amount:   decimal.NewFromInt(1000),
			Duration: entity.BudgetDuration("fortnightly"),
		})

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) || budgetErr.Code != domainerror.ErrCodeInvalidBudgetDuration {
			t.Fatalf("expected invalid duration error, got %v", err)
		}
	})
}

var _ adapter.CategoryRepository = (*fakeCategoryRepo)(nil)
var _ adapter.CurrencyConverter = (fixedConverter{})
