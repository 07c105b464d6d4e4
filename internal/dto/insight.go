package dto

import (
	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
)

// ChatRequest carries one user message for the assistant.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the assistant reply to a ChatRequest.
type ChatResponse struct {
	Reply domain.ChatMessage `json:"reply"`
}

// ChatHistoryResponse is the conversation transcript, oldest first.
type ChatHistoryResponse struct {
	Messages []domain.ChatMessage `json:"messages"`
}

// InsightsResponse lists the generated insight cards.
type InsightsResponse struct {
	Insights []domain.AIInsight `json:"insights"`
}
