package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/finsight_dashboard/internal/apperrors"
	"github.com/SscSPs/finsight_dashboard/internal/core/analysis"
	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	"github.com/SscSPs/finsight_dashboard/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/finsight_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finsight_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finsight_dashboard/internal/utils"
	"github.com/google/uuid"
)

// Reply texts used when the AI service cannot answer.
const (
	ChatNotInitializedReply = "AI service is not initialized. Please ensure your API key is set."
	ChatEmptyReply          = "I couldn't analyze that right now. Try asking differently."
	ChatErrorReply          = "I encountered an error connecting to the financial brain. Please try again."
)

const (
	defaultChatModel         = "gemini-3-pro-preview"
	defaultInsightModel      = "gemini-3-flash-preview"
	defaultInsightSampleSize = 50
)

const assistantPersona = `You are FinSight AI, an expert, empathetic, and explainable financial assistant.
Your goal is to help users understand their spending, save money, and reduce financial anxiety.
Analyze the provided transaction data.
When answering:
1. Be concise but insightful.
2. Avoid jargon. Explain financial terms simply.
3. If you spot a risk (e.g., high burn rate, low savings), suggest a gentle, actionable fix.
4. Format key numbers in bold.
5. Maintain a professional, supportive ("Coach") tone.`

const insightPromptTemplate = `Analyze these transactions: [%s]

Daily spend statistics: %s

Provide exactly 3 short, punchy insights in JSON format.
Schema:
[
  {
    "title": "Short Headline",
    "description": "Explanation of finding",
    "type": "warning" | "success" | "prediction",
    "actionable": "One clear advice"
  }
]

Focus on:
1. Unusually high spending categories.
2. Subscription patterns.
3. Positive reinforcement if savings look good.
Return ONLY raw JSON.`

var (
	noKeyInsight = domain.AIInsight{
		ID:          "mock1",
		Title:       "Demo Insight",
		Description: "This is a placeholder because no API Key was detected.",
		Type:        domain.InsightNeutral,
		Actionable:  "Add your API Key to .env",
	}
	unavailableInsight = domain.AIInsight{
		ID:          "err1",
		Title:       "Analysis Unavailable",
		Description: "Could not contact the AI service right now.",
		Type:        domain.InsightNeutral,
	}
)

// InsightService runs the assistant chat and insight generation against the
// language model gateway. Without a gateway it answers with fixed fallbacks.
type InsightService struct {
	BaseService
	model           gateways.LanguageModel
	transactionRepo portsrepo.TransactionReader
	chatModel       string
	insightModel    string
	sampleSize      int
	now             func() time.Time

	mu                sync.Mutex
	systemInstruction string
	session           int
	turns             []domain.ChatMessage
	transcript        []domain.ChatMessage
}

// InsightServiceOption is a functional option for configuring the insight service
type InsightServiceOption func(*InsightService)

// WithLanguageModel sets the AI gateway. A nil model keeps fallback mode.
func WithLanguageModel(model gateways.LanguageModel) InsightServiceOption {
	return func(s *InsightService) {
		s.model = model
	}
}

// WithModelNames overrides the chat and insight model names. Empty values are ignored.
func WithModelNames(chatModel, insightModel string) InsightServiceOption {
	return func(s *InsightService) {
		if chatModel != "" {
			s.chatModel = chatModel
		}
		if insightModel != "" {
			s.insightModel = insightModel
		}
	}
}

// WithInsightSampleSize caps how many transactions are sent for insight generation.
func WithInsightSampleSize(n int) InsightServiceOption {
	return func(s *InsightService) {
		if n > 0 {
			s.sampleSize = n
		}
	}
}

// WithChatClock overrides the time source used to stamp chat messages.
func WithChatClock(now func() time.Time) InsightServiceOption {
	return func(s *InsightService) {
		s.now = now
	}
}

// NewInsightService creates a new insight service with the provided options
func NewInsightService(repo portsrepo.TransactionReader, options ...InsightServiceOption) *InsightService {
	svc := &InsightService{
		transactionRepo: repo,
		chatModel:       defaultChatModel,
		insightModel:    defaultInsightModel,
		sampleSize:      defaultInsightSampleSize,
		now:             func() time.Time { return time.Now().UTC() },
		turns:           []domain.ChatMessage{},
		transcript:      []domain.ChatMessage{},
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure InsightService implements the InsightSvcFacade interface
var _ portssvc.InsightSvcFacade = (*InsightService)(nil)

// InitializeChat starts a new conversation grounded on transactions.
func (s *InsightService) InitializeChat(ctx context.Context, transactions []domain.Transaction) {
	if s.model == nil {
		s.LogWarn(ctx, "AI API key missing, chat will answer with fallback text")
		return
	}

	contextPrompt := "Here is the user's transaction history for the current period:\n" +
		analysis.ChatContext(transactions) +
		"\n\nUse this data to answer their questions."

	s.mu.Lock()
	defer s.mu.Unlock()
	s.systemInstruction = assistantPersona + "\n" + contextPrompt
	s.session++
	s.turns = []domain.ChatMessage{}
	s.transcript = []domain.ChatMessage{}

	s.LogInfo(ctx, "Chat session initialized", slog.Int("transaction_count", len(transactions)))
}

// OnLedgerLoaded re-grounds the chat on the newly loaded dataset.
func (s *InsightService) OnLedgerLoaded(ctx context.Context, transactions []domain.Transaction) {
	s.InitializeChat(ctx, transactions)
}

// SendMessage records the user message and returns the assistant reply.
// The model is called without holding the session lock. A reply that arrives
// after the ledger was reloaded is returned but not recorded.
func (s *InsightService) SendMessage(ctx context.Context, message string) (*domain.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", apperrors.ErrValidation)
	}

	s.mu.Lock()
	userMsg := s.newMessage(domain.RoleUser, message)
	s.transcript = append(s.transcript, userMsg)
	session := s.session
	req := gateways.GenerateRequest{
		Model:             s.chatModel,
		SystemInstruction: s.systemInstruction,
		History:           append([]domain.ChatMessage(nil), s.turns...),
		Prompt:            userMsg.Text,
	}
	s.mu.Unlock()

	replyText, answered := s.reply(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	reply := s.newMessage(domain.RoleModel, replyText)
	if session != s.session {
		s.LogWarn(ctx, "Chat session reset while waiting for the model, reply not recorded")
		return &reply, nil
	}
	if answered {
		s.turns = append(s.turns, userMsg, reply)
	}
	s.transcript = append(s.transcript, reply)
	return &reply, nil
}

// reply asks the model and maps failures to fallback text. The bool reports
// whether the model answered, so only real exchanges become history.
func (s *InsightService) reply(ctx context.Context, req gateways.GenerateRequest) (string, bool) {
	if s.model == nil || req.SystemInstruction == "" {
		return ChatNotInitializedReply, false
	}

	text, err := s.model.Generate(ctx, req)
	if err != nil {
		s.LogError(ctx, err, "Chat request failed", slog.String("model", req.Model))
		return ChatErrorReply, false
	}
	if strings.TrimSpace(text) == "" {
		s.LogWarn(ctx, "Chat model returned no text", slog.String("model", req.Model))
		return ChatEmptyReply, false
	}
	return text, true
}

// ListMessages returns the transcript, oldest first.
func (s *InsightService) ListMessages(_ context.Context) ([]domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out, nil
}

func (s *InsightService) newMessage(role domain.ChatRole, text string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: s.now(),
	}
}

// GenerateInsights asks the model for three insight cards about the ledger.
func (s *InsightService) GenerateInsights(ctx context.Context) ([]domain.AIInsight, error) {
	if s.model == nil {
		return []domain.AIInsight{noKeyInsight}, nil
	}

	transactions, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve transactions for insights")
		return nil, fmt.Errorf("failed to retrieve transactions for insights: %w", err)
	}

	stats := analysis.DailySpendStats(analysis.DailySpend(transactions))
	prompt := fmt.Sprintf(insightPromptTemplate,
		analysis.InsightDigest(transactions, s.sampleSize),
		describeStats(stats))

	text, err := s.model.Generate(ctx, gateways.GenerateRequest{
		Model:        s.insightModel,
		Prompt:       prompt,
		JSONResponse: true,
	})
	if err != nil {
		s.LogError(ctx, err, "Insight generation failed", slog.String("model", s.insightModel))
		return []domain.AIInsight{unavailableInsight}, nil
	}
	if strings.TrimSpace(text) == "" {
		return []domain.AIInsight{}, nil
	}

	insights, err := parseInsights(text)
	if err != nil {
		s.LogError(ctx, err, "Insight response was not valid JSON", slog.String("model", s.insightModel))
		return []domain.AIInsight{unavailableInsight}, nil
	}

	s.LogInfo(ctx, "Insights generated", slog.Int("insight_count", len(insights)))
	return insights, nil
}

type insightPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Actionable  string `json:"actionable"`
}

func parseInsights(raw string) ([]domain.AIInsight, error) {
	var payload []insightPayload
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &payload); err != nil {
		return nil, fmt.Errorf("unmarshal insights: %w", err)
	}
	if payload == nil {
		return nil, errors.New("insights payload is null")
	}

	insights := make([]domain.AIInsight, len(payload))
	for i, p := range payload {
		insights[i] = domain.AIInsight{
			ID:          fmt.Sprintf("gen-%d", i),
			Title:       p.Title,
			Description: p.Description,
			Type:        domain.InsightType(p.Type).Normalize(),
			Actionable:  p.Actionable,
		}
	}
	return insights, nil
}

// cleanModelJSON strips markdown fences and any text around the top-level JSON array.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Handle ```json ... ``` or ``` ... ``` wrappers.
	if strings.HasPrefix(s, "```") {
		idx := strings.Index(s, "\n")
		if idx == -1 {
			return s
		}
		s = strings.TrimSpace(s[idx+1:])
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "["); start != -1 {
		if end := strings.LastIndex(s, "]"); end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}

func describeStats(stats domain.SpendStats) string {
	desc := fmt.Sprintf("mean $%s per day, standard deviation $%s", utils.FormatMoney(stats.MeanDaily), utils.FormatMoney(stats.StdDevDaily))
	if len(stats.SpikeDays) == 0 {
		return desc + ", no spike days"
	}
	spikes := make([]string, len(stats.SpikeDays))
	for i, d := range stats.SpikeDays {
		spikes[i] = fmt.Sprintf("%s ($%s)", d.Date, utils.FormatMoney(d.Amount))
	}
	return desc + ", spike days: " + strings.Join(spikes, ", ")
}
