// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/fundflow/backend/internal/application/adapter"
)

// GeminiService implements the InsightService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// GenerateInsights asks the model for short spending observations over the
// aggregated summary.
func (s *GeminiService) GenerateInsights(ctx context.Context, summary adapter.SpendingSummary) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.4)

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(summary)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", err
	}
	return text, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(summary adapter.SpendingSummary) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance assistant. Given a user's aggregated financial data, write 3 to 5 short, practical observations about their spending with concrete suggestions for improvement.

RULES:
- Plain sentences, one observation per line, no markdown
- Be specific: reference the actual amounts and categories provided
- Never recommend financial products or investments
- Keep the whole response under 120 words

FINANCIAL DATA:
`)

	sb.WriteString(fmt.Sprintf("- Total income: %s %s\n", summary.TotalIncome.StringFixed(2), summary.BaseCurrency))
	sb.WriteString(fmt.Sprintf("- Total expenses: %s %s\n", summary.TotalExpense.StringFixed(2), summary.BaseCurrency))
	sb.WriteString(fmt.Sprintf("- Net balance: %s %s\n", summary.NetBalance.StringFixed(2), summary.BaseCurrency))

	sb.WriteString("\nEXPENSES BY CATEGORY:\n")
	categories := make([]string, 0, len(summary.ByCategory))
	for name := range summary.ByCategory {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	for _, name := range categories {
		sb.WriteString(fmt.Sprintf("- %s: %s %s\n", name, summary.ByCategory[name].StringFixed(2), summary.BaseCurrency))
	}
	if len(categories) == 0 {
		sb.WriteString("(no expenses recorded)\n")
	}

	return sb.String()
}

// extractText pulls the plain text out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}
	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return strings.TrimSpace(textContent), nil
}

var _ adapter.InsightService = (*GeminiService)(nil)
