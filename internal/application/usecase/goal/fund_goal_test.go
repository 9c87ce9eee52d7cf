// Package goal contains goal-related use cases.
package goal

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

// fakeGoalRepo is an in-memory GoalRepository for use case tests. Reads return
// copies so that use case mutations only reach the store through Transfer or
// Update.
type fakeGoalRepo struct {
	goals        map[uuid.UUID]*entity.Goal
	transfers    map[string]*entity.GoalTransfer
	transferErr  error
	transferCnt  int
}

func newFakeGoalRepo(goals ...*entity.Goal) *fakeGoalRepo {
	repo := &fakeGoalRepo{
		goals:     make(map[uuid.UUID]*entity.Goal),
		transfers: make(map[string]*entity.GoalTransfer),
	}
	for _, g := range goals {
		copied := *g
		repo.goals[g.ID] = &copied
	}
	return repo
}

func (r *fakeGoalRepo) Create(_ context.Context, goal *entity.Goal) error {
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Goal, error) {
	g, ok := r.goals[id]
	if !ok || g.UserID != userID {
		return nil, domainerror.ErrGoalNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *fakeGoalRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goals []*entity.Goal
	for _, g := range r.goals {
		if g.UserID == userID {
			copied := *g
			goals = append(goals, &copied)
		}
	}
	return goals, nil
}

func (r *fakeGoalRepo) FindSavingsGoal(_ context.Context, userID uuid.UUID) (*entity.Goal, error) {
	for _, g := range r.goals {
		if g.UserID == userID && g.IsSavingsGoal() {
			copied := *g
			return &copied, nil
		}
	}
	return nil, domainerror.ErrSavingsGoalNotFound
}

func (r *fakeGoalRepo) Update(_ context.Context, goal *entity.Goal) error {
	copied := *goal
	r.goals[goal.ID] = &copied
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	g, ok := r.goals[id]
	if !ok || g.UserID != userID {
		return domainerror.ErrGoalNotFound
	}
	delete(r.goals, id)
	return nil
}

func (r *fakeGoalRepo) ExistsByUserAndName(_ context.Context, userID uuid.UUID, name string) (bool, error) {
	for _, g := range r.goals {
		if g.UserID == userID && g.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeGoalRepo) Transfer(_ context.Context, transfer *entity.GoalTransfer, savings, target *entity.Goal) error {
	r.transferCnt++
	if r.transferErr != nil {
		return r.transferErr
	}
	savingsCopy := *savings
	targetCopy := *target
	r.goals[savings.ID] = &savingsCopy
	r.goals[target.ID] = &targetCopy
	if transfer.Token != nil {
		r.transfers[*transfer.Token] = transfer
	}
	return nil
}

func (r *fakeGoalRepo) FindTransferByToken(_ context.Context, userID uuid.UUID, token string) (*entity.GoalTransfer, error) {
	t, ok := r.transfers[token]
	if !ok || t.UserID != userID {
		return nil, nil
	}
	return t, nil
}

// fakeConverter converts via a static rate table with LKR as base.
type fakeConverter struct {
	rates map[string]decimal.Decimal // units of base per unit of currency
}

func newFakeConverter() *fakeConverter {
	return &fakeConverter{
		rates: map[string]decimal.Decimal{
			"LKR": decimal.NewFromInt(1),
			"USD": decimal.NewFromInt(300),
		},
	}
}

func (c *fakeConverter) ToBase(_ context.Context, amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	rate, ok := c.rates[currency]
	if !ok {
		return decimal.Zero, domainerror.ErrUnsupportedCurrency
	}
	return amount.Mul(rate), nil
}

func (c *fakeConverter) FromBase(_ context.Context, amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	rate, ok := c.rates[currency]
	if !ok {
		return decimal.Zero, domainerror.ErrUnsupportedCurrency
	}
	return amount.Div(rate), nil
}

func (c *fakeConverter) BaseCurrency() string {
	return "LKR"
}

// fakeNotifier records goal completion notifications.
type fakeNotifier struct {
	completed []uuid.UUID
}

func (n *fakeNotifier) NotifyGoalCompleted(_ context.Context, _ uuid.UUID, goal *entity.Goal) error {
	n.completed = append(n.completed, goal.ID)
	return nil
}

func (n *fakeNotifier) NotifyBudgetExceeded(_ context.Context, _ uuid.UUID, _ *entity.Budget, _ decimal.Decimal) error {
	return nil
}

func newSavingsGoal(userID uuid.UUID, current int64) *entity.Goal {
	g := entity.NewGoal(userID, entity.SavingsGoalName, decimal.NewFromInt(100000), nil)
	g.CurrentAmount = decimal.NewFromInt(current)
	g.SyncStatus()
	return g
}

func newTargetGoal(userID uuid.UUID, name string, current, target int64) *entity.Goal {
	g := entity.NewGoal(userID, name, decimal.NewFromInt(target), nil)
	g.CurrentAmount = decimal.NewFromInt(current)
	g.SyncStatus()
	return g
}

func TestFundGoal_Success(t *testing.T) {
	userID := uuid.New()
	savings := newSavingsGoal(userID, 500)
	target := newTargetGoal(userID, "New Laptop", 0, 1000)
	repo := newFakeGoalRepo(savings, target)
	uc := NewFundGoalUseCase(repo, newFakeConverter(), &fakeNotifier{})

	out, err := uc.Execute(context.Background(), FundGoalInput{
		UserID:       userID,
		TargetGoalID: target.ID,
		Amount:       decimal.NewFromInt(100),
		Currency:     "LKR",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.SavingsGoal.CurrentAmount.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected savings 400, got %s", out.SavingsGoal.CurrentAmount)
	}
	if !out.TargetGoal.CurrentAmount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected target 100, got %s", out.TargetGoal.CurrentAmount)
	}
	if !out.ConvertedAmount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected converted 100, got %s", out.ConvertedAmount)
	}
	if out.BaseCurrency != "LKR" {
		t.Errorf("expected base currency LKR, got %s", out.BaseCurrency)
	}

	// Conservation: the sum across both goals is unchanged.
	total := out.SavingsGoal.CurrentAmount.Add(out.TargetGoal.CurrentAmount)
	if !total.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected conserved total 500, got %s", total)
	}

	// The store reflects the committed transfer.
	stored, _ := repo.FindByID(context.Background(), target.ID, userID)
	if !stored.CurrentAmount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected stored target 100, got %s", stored.CurrentAmount)
	}
}

func TestFundGoal_CurrencyConversion(t *testing.T) {
	userID := uuid.New()
	savings := newSavingsGoal(userID, 1000)
	target := newTargetGoal(userID, "Vacation", 0, 5000)
	repo := newFakeGoalRepo(savings, target)
	uc := NewFundGoalUseCase(repo, newFakeConverter(), &fakeNotifier{})

	out, err := uc.Execute(context.Background(), FundGoalInput{
		UserID:       userID,
		TargetGoalID: target.ID,
		Amount:       decimal.NewFromInt(2),
		Currency:     "USD",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.ConvertedAmount.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected converted 600 LKR, got %s", out.ConvertedAmount)
	}
	if !out.SavingsGoal.CurrentAmount.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected savings 400, got %s", out.SavingsGoal.CurrentAmount)
	}
	if !out.TargetGoal.CurrentAmount.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected target 600, got %s", out.TargetGoal.CurrentAmount)
	}
}

func TestFundGoal_InvalidAmount(t *testing.T) {
	userID := uuid.New()
	savings := newSavingsGoal(userID, 500)
	target := newTargetGoal(userID, "New Laptop", 0, 1000)
	repo := newFakeGoalRepo(savings, target)
	uc := NewFundGoalUseCase(repo, newFakeConverter(), &fakeNotifier{})

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
		_, err := uc.Execute(context.Background(), FundGoalInput{
			UserID:       userID,
			TargetGoalID: target.ID,
			Amount:       amount,
			Currency:     "LKR",
		})

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeInvalidFundAmount {
			t.Errorf("amount %s: expected invalid fund amount error, got %v", amount, err)
		}
	}
	if repo.transferCnt != 0 {
		t.Errorf("expected no transfer attempts, got %d", repo.transferCnt)
	}
}

func TestFundGoal_InsufficientFunds(t *testing.T) {
	userID := uuid.New()
	savings := newSavingsGoal(userID, 500)
	target := newTargetGoal(userID, "New Laptop", 0, 1000)
	repo := newFakeGoalRepo(savings, target)
	uc := NewFundGoalUseCase(repo, newFakeConverter(), &fakeNotifier{})

	_, err := uc.Execute(context.Background(), FundGoalInput{
		UserID:       userID,
		TargetGoalID: target.ID,
		Amount:       decimal.NewFromInt(600),
		Currency:     "LKR",
	})

	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeInsufficientFunds {
		t.Fatalf("expected insufficient funds error, got %v", err)
	}
	if goalErr.Message != "Insufficient funds in Savings Goal" {
		t.Errorf("unexpected message: %q", goalErr.Message)
	}

	var detail *domainerror.InsufficientFundsError
	if !errors.As(err, &detail) {
		t.Fatal("expected InsufficientFundsError detail")
	}
	if !detail.SavingsGoalCurrentAmount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected available 500, got %s", detail.SavingsGoalCurrentAmount)
	}
	if !detail.RequestedAmount.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected requested 600, got %s", detail.RequestedAmount)
	}
	if detail.BaseCurrency != "LKR" {
		t.Errorf("expected base currency LKR, got %s", detail.BaseCurrency)
	}

	// Both goals unchanged: no partial write.
	storedSavings, _ := repo.FindByID(context.Background(), savings.ID, userID)
	storedTarget, _ := repo.FindByID(context.Background(), target.ID, userID)
	if !storedSavings.CurrentAmount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected savings unchanged at 500, got %s", storedSavings.CurrentAmount)
	}
	if !storedTarget.CurrentAmount.Equal(decimal.Zero) {
		t.Errorf("expected target unchanged at 0, got %s", storedTarget.CurrentAmount)
	}
}

func TestFundGoal_SavingsGoalMissing(t *testing.T) {
	userID := uuid.New()
	target := newTargetGoal(userID, "New Laptop", 0, 1000)
	repo := newFakeGoalRepo(target)
	uc := NewFundGoalUseCase(repo, newFakeConverter(), &fakeNotifier{})

	_, err := uc.Execute(context.Background(), FundGoalInput{
		UserID:       userID,
		TargetGoalID: target.ID,
		Amount:       decimal.NewFromInt(100),
		Currency:     "LKR",
	})

	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeSavingsGoalNotFound {
		t.Fatalf("expected savings goal not found error, got %v", err)
	}
}

func TestFundGoal_TargetNotFound(t *testing.T) {
	userID := uuid.New()
	savings := newSavingsGoal(userID, 500)
	repo := newFakeGoalRepo(savings)
	uc := NewFundGoalUseCase(repo, newFakeConverter(), &fakeNotifier{})

	t.Run("nonexistent goal", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), FundGoalInput{
			UserID:       userID,
			TargetGoalID: uuid.New(),
			Amount:       decimal.NewFromInt(100),
			Currency:     "LKR",
		})

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNotFound {
			t.Fatalf("expected goal not found error, got %v", err)
		}
	})

	t.Run("goal owned by another user", func(t *testing.T) {
		foreign := newTargetGoal(uuid.New(), "Foreign", 0, 1000)
		repo.goals[foreign.ID] = foreign

		_, err := uc.Execute(context.Background(), FundGoalInput{
			UserID:       userID,
			TargetGoalID: foreign.ID,
			Amount:       decimal.NewFromInt(100),
			Currency:     "LKR",
		})

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNotFound {
			t.Fatalf("expected goal not found error, got %v", err)
		}
	})

	t.Run("savings goal as target", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), FundGoalInput{
			UserID:       userID,
			TargetGoalID: savings.ID,
			Amount:       decimal.NewFromInt(100),
			Currency:     "LKR",
		})

		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNotFound {
			t.Fatalf("expected goal not found error, got %v", err)
		}
	})
}

func TestFundGoal_CompletesTarget(t *testing.T) {
	userID := uuid.New()
	savings := newSavingsGoal(userID, 500)
	target := newTargetGoal(userID, "New Laptop", 900, 1000)
	repo := newFakeGoalRepo(savings, target)
	notifier := &fakeNotifier{}
	uc := NewFundGoalUseCase(repo, newFakeConverter(), notifier)

	out, err := uc.Execute(context.Background(), FundGoalInput{
		UserID:       userID,
		TargetGoalID: target.ID,
		Amount:       decimal.NewFromInt(200),
		Currency:     "LKR",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Credit is capped at the target amount; the goal completes.
	if !out.TargetGoal.CurrentAmount.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected target capped at 1000, got %s", out.TargetGoal.CurrentAmount)
	}
	if out.TargetGoal.Status != entity.GoalStatusCompleted {
		t.Errorf("expected Completed, got %s", out.TargetGoal.Status)
	}
	if !out.SavingsGoal.CurrentAmount.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected savings 300, got %s", out.SavingsGoal.CurrentAmount)
	}
	if len(notifier.completed) != 1 || notifier.completed[0] != target.ID {
		t.Errorf("expected one completion notification for target, got %v", notifier.completed)
	}
}

func TestFundGoal_SavingsDrainedToZero(t *testing.T) {
	userID := uuid.New()
	savings := newSavingsGoal(userID, 300)
	target := newTargetGoal(userID, "New Laptop", 0, 1000)
	repo := newFakeGoalRepo(savings, target)
	uc := NewFundGoalUseCase(repo, newFakeConverter(), &fakeNotifier{})

	out, err := uc.Execute(context.Background(), FundGoalInput{
		UserID:       userID,
		TargetGoalID: target.ID,
		Amount:       decimal.NewFromInt(300),
		Currency:     "LKR",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.SavingsGoal.CurrentAmount.Equal(decimal.Zero) {
		t.Errorf("expected savings 0, got %s", out.SavingsGoal.CurrentAmount)
	}
	if out.SavingsGoal.Status != entity.GoalStatusInProgress {
		t.Errorf("expected savings In Progress, got %s", out.SavingsGoal.Status)
	}
}

func TestFundGoal_IdempotentReplay(t *testing.T) {
	userID := uuid.New()
	savings := newSavingsGoal(userID, 500)
	target := newTargetGoal(userID, "New Laptop", 0, 1000)
	repo := newFakeGoalRepo(savings, target)
	uc := NewFundGoalUseCase(repo, newFakeConverter(), &fakeNotifier{})

	token := "transfer-abc123"
	input := FundGoalInput{
		UserID:        userID,
		TargetGoalID:  target.ID,
		Amount:        decimal.NewFromInt(100),
		Currency:      "LKR",
		TransferToken: &token,
	}

	first, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error on first transfer: %v", err)
	}
	if first.Replayed {
		t.Error("first transfer should not be a replay")
	}

	second, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
	if !second.Replayed {
		t.Error("retry with the same token should be a replay")
	}

	// Funds moved exactly once.
	if !second.SavingsGoal.CurrentAmount.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected savings 400 after replay, got %s", second.SavingsGoal.CurrentAmount)
	}
	if !second.TargetGoal.CurrentAmount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected target 100 after replay, got %s", second.TargetGoal.CurrentAmount)
	}
	if repo.transferCnt != 1 {
		t.Errorf("expected exactly one transfer commit, got %d", repo.transferCnt)
	}
}

func TestFundGoal_TransferFailureLeavesStoreUnchanged(t *testing.T) {
	userID := uuid.New()
	savings := newSavingsGoal(userID, 500)
	target := newTargetGoal(userID, "New Laptop", 0, 1000)
	repo := newFakeGoalRepo(savings, target)
	repo.transferErr = errors.New("connection reset")
	uc := NewFundGoalUseCase(repo, newFakeConverter(), &fakeNotifier{})

	_, err := uc.Execute(context.Background(), FundGoalInput{
		UserID:       userID,
		TargetGoalID: target.ID,
		Amount:       decimal.NewFromInt(100),
		Currency:     "LKR",
	})
	if err == nil {
		t.Fatal("expected error when transfer fails")
	}

	storedSavings, _ := repo.FindByID(context.Background(), savings.ID, userID)
	storedTarget, _ := repo.FindByID(context.Background(), target.ID, userID)
	if !storedSavings.CurrentAmount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected savings unchanged at 500, got %s", storedSavings.CurrentAmount)
	}
	if !storedTarget.CurrentAmount.Equal(decimal.Zero) {
		t.Errorf("expected target unchanged at 0, got %s", storedTarget.CurrentAmount)
	}
}

var _ adapter.GoalRepository = (*fakeGoalRepo)(nil)
var _ adapter.CurrencyConverter = (*fakeConverter)(nil)
var _ adapter.Notifier = (*fakeNotifier)(nil)
