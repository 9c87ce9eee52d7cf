package templates

import (
	"strings"
	"testing"
)

func TestRenderGoalCompleted(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	data := GoalCompletedData{
		UserName:     "Alice",
		GoalName:     "Emergency Fund",
		TargetAmount: "50000",
		BaseCurrency: "LKR",
	}

	html, text, err := renderer.Render("goal_completed", data)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{"Alice", "Emergency Fund", "50000", "LKR"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML output missing %q", want)
		}
		if !strings.Contains(text, want) {
			t.Errorf("text output missing %q", want)
		}
	}
}

func TestRenderBudgetExceeded(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	data := BudgetExceededData{
		UserName:     "Bob",
		Category:     "Food",
		BudgetAmount: "1000",
		SpentAmount:  "1250",
		BaseCurrency: "LKR",
	}

	html, text, err := renderer.Render("budget_exceeded", data)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{"Bob", "Food", "1000", "1250"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML output missing %q", want)
		}
		if !strings.Contains(text, want) {
			t.Errorf("text output missing %q", want)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	if _, err := renderer.RenderHTML("does_not_exist", nil); err == nil {
		t.Error("expected an error for an unknown template")
	}
}
