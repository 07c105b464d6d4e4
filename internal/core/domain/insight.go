package domain

import "time"

// InsightType classifies an AI insight card.
type InsightType string

const (
	InsightWarning    InsightType = "warning"
	InsightSuccess    InsightType = "success"
	InsightNeutral    InsightType = "neutral"
	InsightPrediction InsightType = "prediction"
)

// Normalize maps unknown insight types to neutral.
func (t InsightType) Normalize() InsightType {
	switch t {
	case InsightWarning, InsightSuccess, InsightNeutral, InsightPrediction:
		return t
	}
	return InsightNeutral
}

// AIInsight is a short finding produced by the language model.
type AIInsight struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        InsightType `json:"type"`
	Actionable  string      `json:"actionable,omitempty"`
}

// ChatRole identifies the author of a chat turn.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// CategorySuggestion proposes a new category for a transaction based on similar rows.
type CategorySuggestion struct {
	TransactionID     string   `json:"transactionId"`
	CurrentCategory   Category `json:"currentCategory"`
	SuggestedCategory Category `json:"suggestedCategory"`
	MatchedID         string   `json:"matchedId"`
	Similarity        float64  `json:"similarity"`
}
