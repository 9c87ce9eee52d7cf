// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fundflow/backend/internal/application/adapter"
	"github.com/fundflow/backend/internal/domain/entity"
	domainerror "github.com/fundflow/backend/internal/domain/error"
)

type fakeBudgetRepo struct {
	budgets map[uuid.UUID]*entity.Budget
}

func newFakeBudgetRepo(budgets ...*entity.Budget) *fakeBudgetRepo {
	repo := &fakeBudgetRepo{budgets: make(map[uuid.UUID]*entity.Budget)}
	for _, b := range budgets {
		copied := *b
		repo.budgets[b.ID] = &copied
	}
	return repo
}

func (r *fakeBudgetRepo) Create(_ context.Context, budget *entity.Budget) error {
	copied := *budget
	r.budgets[budget.ID] = &copied
	return nil
}

func (r *fakeBudgetRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Budget, error) {
	b, ok := r.budgets[id]
	if !ok || b.UserID != userID {
		return nil, domainerror.ErrBudgetNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBudgetRepo) FindByUserID(_ context.Context, userID uuid.UUID, filter entity.BudgetFilter) ([]*entity.Budget, error) {
	var budgets []*entity.Budget
	for _, b := range r.budgets {
		if b.UserID != userID {
			continue
		}
		if filter.Category != nil && b.Category != *filter.Category {
			continue
		}
		if filter.Duration != nil && b.Duration != *filter.Duration {
			continue
		}
		copied := *b
		budgets = append(budgets, &copied)
	}
	return budgets, nil
}

func (r *fakeBudgetRepo) ExistsByUserAndCategory(_ context.Context, userID uuid.UUID, category string) (bool, error) {
	for _, b := range r.budgets {
		if b.UserID == userID && b.Category == category {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBudgetRepo) Update(_ context.Context, budget *entity.Budget) error {
	copied := *budget
	r.budgets[budget.ID] = &copied
	return nil
}

func (r *fakeBudgetRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	b, ok := r.budgets[id]
	if !ok || b.UserID != userID {
		return domainerror.ErrBudgetNotFound
	}
	delete(r.budgets, id)
	return nil
}

// fakeSpendRepo implements only the spend summing the recommendations need.
type fakeSpendRepo struct {
	spentByCategory map[string]decimal.Decimal
	windows         map[string][2]time.Time
}

func newFakeSpendRepo() *fakeSpendRepo {
	return &fakeSpendRepo{
		spentByCategory: make(map[string]decimal.Decimal),
		windows:         make(map[string][2]time.Time),
	}
}

func (r *fakeSpendRepo) Create(_ context.Context, _ *entity.Transaction) error { return nil }

func (r *fakeSpendRepo) FindByID(_ context.Context, _, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeSpendRepo) FindByUserID(_ context.Context, _ uuid.UUID, _ entity.TransactionFilter) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeSpendRepo) Update(_ context.Context, _ *entity.Transaction) error { return nil }

func (r *fakeSpendRepo) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

func (r *fakeSpendRepo) SumExpensesByCategory(_ context.Context, _ uuid.UUID, category string, startDate, endDate time.Time) (decimal.Decimal, error) {
	r.windows[category] = [2]time.Time{startDate, endDate}
	spent, ok := r.spentByCategory[category]
	if !ok {
		return decimal.Zero, nil
	}
	return spent, nil
}

type recordingNotifier struct {
	exceeded []string
}

func (n *recordingNotifier) NotifyGoalCompleted(_ context.Context, _ uuid.UUID, _ *entity.Goal) error {
	return nil
}

func (n *recordingNotifier) NotifyBudgetExceeded(_ context.Context, _ uuid.UUID, budget *entity.Budget, _ decimal.Decimal) error {
	n.exceeded = append(n.exceeded, budget.Category)
	return nil
}

func TestGetRecommendations(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		budget         int64
		spent          int64
		wantPercentage int
		wantAdvice     string
		wantAlert      bool
	}{
		{"on track", 1000, 300, 30, "on track", false},
		{"ninety percent nearing limit", 1000, 900, 90, "nearing", false},
		{"at the limit", 1000, 1000, 100, "exceeded", true},
		{"over the limit", 1000, 1500, 150, "exceeded", true},
		{"nothing spent", 1000, 0, 0, "on track", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := entity.NewBudget(userID, "Food", decimal.NewFromInt(tt.budget), entity.BudgetDurationMonthly, "LKR")
			spendRepo := newFakeSpendRepo()
			spendRepo.spentByCategory["Food"] = decimal.NewFromInt(tt.spent)
			notifier := &recordingNotifier{}
			uc := NewGetRecommendationsUseCase(newFakeBudgetRepo(b), spendRepo, notifier)

			out, err := uc.Execute(context.Background(), GetRecommendationsInput{UserID: userID})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.Recommendations) != 1 {
				t.Fatalf("expected 1 recommendation, got %d", len(out.Recommendations))
			}

			rec := out.Recommendations[0]
			if rec.Percentage != tt.wantPercentage {
				t.Errorf("expected percentage %d, got %d", tt.wantPercentage, rec.Percentage)
			}
			if !strings.Contains(rec.Advice, tt.wantAdvice) {
				t.Errorf("expected advice containing %q, got %q", tt.wantAdvice, rec.Advice)
			}
			if tt.wantAlert && len(notifier.exceeded) != 1 {
				t.Error("expected a budget exceeded notification")
			}
			if !tt.wantAlert && len(notifier.exceeded) != 0 {
				t.Errorf("unexpected budget exceeded notification: %v", notifier.exceeded)
			}
		})
	}
}

func TestGetRecommendations_NoBudgets(t *testing.T) {
	uc := NewGetRecommendationsUseCase(newFakeBudgetRepo(), newFakeSpendRepo(), &recordingNotifier{})

	_, err := uc.Execute(context.Background(), GetRecommendationsInput{UserID: uuid.New()})

	var budgetErr *domainerror.BudgetError
	if !errors.As(err, &budgetErr) || budgetErr.Code != domainerror.ErrCodeNoBudgetsFound {
		t.Fatalf("expected no budgets found error, got %v", err)
	}
}

func TestGetRecommendations_UsesDurationWindow(t *testing.T) {
	userID := uuid.New()
	weekly := entity.NewBudget(userID, "Transport", decimal.NewFromInt(500), entity.BudgetDurationWeekly, "LKR")
	spendRepo := newFakeSpendRepo()
	uc := NewGetRecommendationsUseCase(newFakeBudgetRepo(weekly), spendRepo, &recordingNotifier{})
	// Wednesday 2026-08-26; the ISO week runs Monday 24th through Sunday 30th.
	uc.now = func() time.Time {
		return time.Date(2026, time.August, 26, 15, 0, 0, 0, time.UTC)
	}

	if _, err := uc.Execute(context.Background(), GetRecommendationsInput{UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	window, ok := spendRepo.windows["Transport"]
	if !ok {
		t.Fatal("expected spending to be summed for Transport")
	}
	wantStart := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC)
	if !window[0].Equal(wantStart) || !window[1].Equal(wantEnd) {
		t.Errorf("expected window [%s, %s), got [%s, %s)", wantStart, wantEnd, window[0], window[1])
	}
}

var _ adapter.BudgetRepository = (*fakeBudgetRepo)(nil)
var _ adapter.TransactionRepository = (*fakeSpendRepo)(nil)
var _ adapter.Notifier = (*recordingNotifier)(nil)
