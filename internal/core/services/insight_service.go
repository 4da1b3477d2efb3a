package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portsrepo "github.com/pfdash/pfdash_backend/internal/core/ports/repositories"
	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/dto"
)

// ContentGenerator abstracts the generative model call so the insight flows
// can be tested without network access.
type ContentGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// geminiGenerator calls the Gemini API. The client reads GEMINI_API_KEY from
// the environment.
type geminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a ContentGenerator backed by the Gemini API.
func NewGeminiGenerator(ctx context.Context, model string) (ContentGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &geminiGenerator{client: client, model: model}, nil
}

func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// cleanModelJSON strips Markdown code fences the model sometimes adds despite
// being told not to.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}

// insightService implements the InsightSvcFacade interface. Every flow
// degrades to a static fallback payload when the model is unavailable or
// returns something unusable; callers never see an error.
type insightService struct {
	BaseService
	generator       ContentGenerator
	transactionRepo portsrepo.TransactionReader
	timeout         time.Duration
}

// NewInsightService creates a new insight service. A nil generator is valid
// and makes every flow return its fallback immediately.
func NewInsightService(generator ContentGenerator, transactionRepo portsrepo.TransactionReader, timeout time.Duration) portssvc.InsightSvcFacade {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &insightService{
		generator:       generator,
		transactionRepo: transactionRepo,
		timeout:         timeout,
	}
}

var _ portssvc.InsightSvcFacade = (*insightService)(nil)

const fallbackInsights = "We could not generate personalized insights right now. " +
	"As a rule of thumb, keep essential spending near 50% of income, " +
	"limit discretionary spending to 30%, and direct the remaining 20% to savings and investments."

var fallbackBudgetSuggestions = []dto.BudgetSuggestion{
	{Category: "Food", Amount: "15% of monthly income", Rationale: "Groceries and dining typically fit within 15% of income."},
	{Category: "Housing", Amount: "30% of monthly income", Rationale: "Keeping housing at or below 30% of income is a common guideline."},
	{Category: "Transport", Amount: "10% of monthly income", Rationale: "Commuting and vehicle costs usually stay manageable at 10%."},
}

const fallbackTransactionOverview = "We could not analyze your recent transactions right now. " +
	"Review your largest expenses this month and check that recurring charges are still expected."

func (s *insightService) generate(ctx context.Context, prompt string) (string, error) {
	if s.generator == nil {
		return "", fmt.Errorf("no content generator configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return s.generator.GenerateText(ctx, prompt)
}

func (s *insightService) GeneratePersonalizedInsights(ctx context.Context, userID string, req dto.PersonalizedInsightsRequest) dto.PersonalizedInsightsResponse {
	goals := "none stated"
	if len(req.FinancialGoals) > 0 {
		goals = strings.Join(req.FinancialGoals, "; ")
	}

	prompt := fmt.Sprintf(
		"You are a personal finance assistant. Based on the following snapshot, "+
			"write 3 to 5 short, concrete, actionable insights for the user. "+
			"Use plain text with one insight per line. Do not use Markdown.\n\n"+
			"Income: %s\nSpending patterns: %s\nFinancial goals: %s\n",
		req.Income, req.SpendingPatterns, goals)

	text, err := s.generate(ctx, prompt)
	if err != nil {
		s.LogError(ctx, err, "Personalized insights fell back to static payload")
		return dto.PersonalizedInsightsResponse{Insights: fallbackInsights, Fallback: true}
	}

	return dto.PersonalizedInsightsResponse{Insights: strings.TrimSpace(text)}
}

func (s *insightService) GenerateBudgetSuggestions(ctx context.Context, userID string, ref time.Time) dto.BudgetSuggestionsResponse {
	fallback := dto.BudgetSuggestionsResponse{Suggestions: fallbackBudgetSuggestions, Fallback: true}

	window := domain.MonthRange(ref)
	txns, err := s.transactionRepo.FindTransactionsInWindow(ctx, userID, window)
	if err != nil {
		s.LogError(ctx, err, "Budget suggestions fell back to static payload")
		return fallback
	}

	summary := domain.SummarizeTransactions(txns, window)
	snapshot, err := json.Marshal(map[string]any{
		"totalIncome":        summary.TotalIncome,
		"totalExpense":       summary.TotalExpense,
		"spendingByCategory": summary.SpendingByCategory,
	})
	if err != nil {
		s.LogError(ctx, err, "Budget suggestions fell back to static payload")
		return fallback
	}

	prompt := fmt.Sprintf(
		"You are a personal finance assistant. Given this month's spending snapshot as JSON, "+
			"suggest a monthly budget amount for each spending category.\n\n%s\n\n"+
			"Respond with ONLY a raw JSON array of objects with keys "+
			"\"category\", \"amount\" and \"rationale\", all strings. "+
			"Do NOT wrap the response in code fences. "+
			"Output must begin with \"[\" and end with \"]\".\n",
		string(snapshot))

	text, err := s.generate(ctx, prompt)
	if err != nil {
		s.LogError(ctx, err, "Budget suggestions fell back to static payload")
		return fallback
	}

	var suggestions []dto.BudgetSuggestion
	if err := json.Unmarshal([]byte(cleanModelJSON(text)), &suggestions); err != nil || len(suggestions) == 0 {
		s.LogInfo(ctx, "Budget suggestions response was not valid JSON, using fallback")
		return fallback
	}

	return dto.BudgetSuggestionsResponse{Suggestions: suggestions}
}

func (s *insightService) GenerateTransactionSummary(ctx context.Context, userID string, ref time.Time) dto.TransactionSummaryResponse {
	fallback := dto.TransactionSummaryResponse{Overview: fallbackTransactionOverview, Fallback: true}

	window := domain.MonthRange(ref)
	txns, err := s.transactionRepo.FindTransactionsInWindow(ctx, userID, window)
	if err != nil {
		s.LogError(ctx, err, "Transaction summary fell back to static payload")
		return fallback
	}

	type promptTxn struct {
		Date        string `json:"date"`
		Type        string `json:"type"`
		Amount      string `json:"amount"`
		Category    string `json:"category,omitempty"`
		Description string `json:"description,omitempty"`
	}
	rows := make([]promptTxn, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, promptTxn{
			Date:        t.Date.Format("2006-01-02"),
			Type:        string(t.Type),
			Amount:      t.Amount.String(),
			Category:    t.CategoryName,
			Description: t.Description,
		})
	}
	snapshot, err := json.Marshal(rows)
	if err != nil {
		s.LogError(ctx, err, "Transaction summary fell back to static payload")
		return fallback
	}

	prompt := fmt.Sprintf(
		"You are a personal finance assistant. Review this month's transactions given as JSON "+
			"and summarize the activity.\n\n%s\n\n"+
			"Respond with ONLY a raw JSON object with keys "+
			"\"overview\" (string), \"unusualTransactions\" (array of strings) and "+
			"\"recommendations\" (array of strings). "+
			"Do NOT wrap the response in code fences. "+
			"Output must begin with \"{\" and end with \"}\".\n",
		string(snapshot))

	text, err := s.generate(ctx, prompt)
	if err != nil {
		s.LogError(ctx, err, "Transaction summary fell back to static payload")
		return fallback
	}

	var parsed dto.TransactionSummaryResponse
	if err := json.Unmarshal([]byte(cleanModelJSON(text)), &parsed); err != nil || parsed.Overview == "" {
		s.LogInfo(ctx, "Transaction summary response was not valid JSON, using fallback")
		return fallback
	}
	parsed.Fallback = false

	return parsed
}
