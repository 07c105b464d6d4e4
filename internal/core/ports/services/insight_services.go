package services

import (
	"context"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
)

// ChatSvc defines the conversational assistant operations
type ChatSvc interface {
	// InitializeChat starts a new conversation grounded on transactions.
	InitializeChat(ctx context.Context, transactions []domain.Transaction)

	// SendMessage sends a user message and returns the assistant reply. Failures
	// of the AI service are reported as fallback reply text, not as errors.
	SendMessage(ctx context.Context, message string) (*domain.ChatMessage, error)

	// ListMessages returns the conversation transcript, oldest first.
	ListMessages(ctx context.Context) ([]domain.ChatMessage, error)
}

// InsightGeneratorSvc produces short findings about the current ledger
type InsightGeneratorSvc interface {
	// GenerateInsights asks the AI service for insight cards. It always returns
	// a usable list; failures yield a single neutral placeholder card.
	GenerateInsights(ctx context.Context) ([]domain.AIInsight, error)
}

// InsightSvcFacade combines all AI-backed service interfaces
type InsightSvcFacade interface {
	ChatSvc
	InsightGeneratorSvc
	LedgerLoadListener
}
