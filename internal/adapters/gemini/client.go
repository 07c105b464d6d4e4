// Package gemini implements the language model gateway on top of the Google GenAI SDK.
package gemini

import (
	"context"
	"fmt"

	"github.com/SscSPs/finsight_dashboard/internal/apperrors"
	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
	"github.com/SscSPs/finsight_dashboard/internal/core/ports/gateways"
	"google.golang.org/genai"
)

const jsonMIMEType = "application/json"

// Client sends generate requests to the Gemini API.
type Client struct {
	client *genai.Client
}

// Ensure Client implements gateways.LanguageModel
var _ gateways.LanguageModel = (*Client)(nil)

// NewClient creates a Gemini API client authenticated with apiKey.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: api key is empty: %w", apperrors.ErrAIUnavailable)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create genai client: %w", err)
	}
	return &Client{client: client}, nil
}

// Generate sends the conversation in req and returns the reply text.
func (c *Client) Generate(ctx context.Context, req gateways.GenerateRequest) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, req.Model, toContents(req.History, req.Prompt), toConfig(req))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return resp.Text(), nil
}

func toConfig(req gateways.GenerateRequest) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemInstruction}},
		}
	}
	if req.JSONResponse {
		config.ResponseMIMEType = jsonMIMEType
	}
	return config
}

func toContents(history []domain.ChatMessage, prompt string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, &genai.Content{
			Role:  toRole(m.Role),
			Parts: []*genai.Part{{Text: m.Text}},
		})
	}
	return append(contents, &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	})
}

func toRole(role domain.ChatRole) string {
	if role == domain.RoleModel {
		return "model"
	}
	return "user"
}
