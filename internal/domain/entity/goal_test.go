package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newTestGoal(name string, target, current int64) *Goal {
	g := NewGoal(uuid.New(), name, decimal.NewFromInt(target), nil)
	g.CurrentAmount = decimal.NewFromInt(current)
	g.SyncStatus()
	return g
}

func TestGoalCredit(t *testing.T) {
	tests := []struct {
		name          string
		target        int64
		current       int64
		credit        int64
		wantApplied   int64
		wantCurrent   int64
		wantCompleted bool
	}{
		{
			name:        "partial credit",
			target:      1000,
			current:     200,
			credit:      300,
			wantApplied: 300,
			wantCurrent: 500,
		},
		{
			name:          "credit reaching the target exactly",
			target:        1000,
			current:       700,
			credit:        300,
			wantApplied:   300,
			wantCurrent:   1000,
			wantCompleted: true,
		},
		{
			name:          "credit capped at the target",
			target:        1000,
			current:       900,
			credit:        500,
			wantApplied:   100,
			wantCurrent:   1000,
			wantCompleted: true,
		},
		{
			name:          "credit into an already full goal applies nothing",
			target:        1000,
			current:       1000,
			credit:        250,
			wantApplied:   0,
			wantCurrent:   1000,
			wantCompleted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGoal("Vacation", tt.target, tt.current)

			applied := g.Credit(decimal.NewFromInt(tt.credit))

			if !applied.Equal(decimal.NewFromInt(tt.wantApplied)) {
				t.Errorf("applied = %s, want %d", applied, tt.wantApplied)
			}
			if !g.CurrentAmount.Equal(decimal.NewFromInt(tt.wantCurrent)) {
				t.Errorf("CurrentAmount = %s, want %d", g.CurrentAmount, tt.wantCurrent)
			}
			if g.IsCompleted() != tt.wantCompleted {
				t.Errorf("IsCompleted() = %v, want %v", g.IsCompleted(), tt.wantCompleted)
			}
		})
	}
}

func TestGoalDebit(t *testing.T) {
	tests := []struct {
		name        string
		target      int64
		current     int64
		debit       int64
		wantApplied int64
		wantCurrent int64
	}{
		{
			name:        "partial debit",
			target:      1000,
			current:     500,
			debit:       200,
			wantApplied: 200,
			wantCurrent: 300,
		},
		{
			name:        "debit floored at zero",
			target:      1000,
			current:     150,
			debit:       400,
			wantApplied: 150,
			wantCurrent: 0,
		},
		{
			name:        "debit from an empty goal applies nothing",
			target:      1000,
			current:     0,
			debit:       100,
			wantApplied: 0,
			wantCurrent: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGoal("Vacation", tt.target, tt.current)

			applied := g.Debit(decimal.NewFromInt(tt.debit))

			if !applied.Equal(decimal.NewFromInt(tt.wantApplied)) {
				t.Errorf("applied = %s, want %d", applied, tt.wantApplied)
			}
			if !g.CurrentAmount.Equal(decimal.NewFromInt(tt.wantCurrent)) {
				t.Errorf("CurrentAmount = %s, want %d", g.CurrentAmount, tt.wantCurrent)
			}
		})
	}
}

func TestGoalDebitReopensCompletedGoal(t *testing.T) {
	g := newTestGoal("Vacation", 1000, 1000)
	if !g.IsCompleted() {
		t.Fatalf("expected goal to start completed")
	}

	g.Debit(decimal.NewFromInt(100))

	if g.Status != GoalStatusInProgress {
		t.Errorf("Status = %q, want %q", g.Status, GoalStatusInProgress)
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name    string
		target  int64
		current int64
		want    int
	}{
		{name: "empty goal", target: 1000, current: 0, want: 0},
		{name: "quarter done", target: 20000, current: 5000, want: 25},
		{name: "rounds to nearest integer", target: 3000, current: 1000, want: 33},
		{name: "complete", target: 1000, current: 1000, want: 100},
		{name: "zero target", target: 0, current: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGoal("Vacation", tt.target, tt.current)
			if got := g.Progress(); got != tt.want {
				t.Errorf("Progress() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGoalIsSavingsGoal(t *testing.T) {
	savings := NewGoal(uuid.New(), SavingsGoalName, decimal.NewFromInt(100000), nil)
	if !savings.IsSavingsGoal() {
		t.Errorf("goal named %q should be the savings goal", SavingsGoalName)
	}

	regular := NewGoal(uuid.New(), "Vacation", decimal.NewFromInt(100000), nil)
	if regular.IsSavingsGoal() {
		t.Errorf("goal named %q should not be the savings goal", regular.Name)
	}
}

func TestNewGoalDefaults(t *testing.T) {
	userID := uuid.New()
	g := NewGoal(userID, "Vacation", decimal.NewFromInt(5000), nil)

	if g.UserID != userID {
		t.Errorf("UserID = %s, want %s", g.UserID, userID)
	}
	if !g.CurrentAmount.IsZero() {
		t.Errorf("CurrentAmount = %s, want 0", g.CurrentAmount)
	}
	if g.Status != GoalStatusInProgress {
		t.Errorf("Status = %q, want %q", g.Status, GoalStatusInProgress)
	}
}
