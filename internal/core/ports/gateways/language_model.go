package gateways

import (
	"context"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
)

// GenerateRequest is a single call to a hosted language model.
type GenerateRequest struct {
	// Model is the provider model name, e.g. "gemini-3-flash-preview".
	Model string
	// SystemInstruction is sent as the system turn when non-empty.
	SystemInstruction string
	// History holds earlier turns of a conversation, oldest first.
	History []domain.ChatMessage
	// Prompt is the new user turn.
	Prompt string
	// JSONResponse asks the model to answer with application/json.
	JSONResponse bool
}

// LanguageModel is the outbound port to the AI service.
type LanguageModel interface {
	// Generate returns the text of the model reply. An empty string with a nil
	// error means the model answered without text.
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
