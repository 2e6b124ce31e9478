package ports

import (
	"context"

	"github.com/legalease/legalease-api/internal/core/domain"
)

const (
	// ResponseSourceAI marks replies produced by the generative backend.
	ResponseSourceAI = "ai"
	// ResponseSourceFallback marks replies composed from curated content.
	ResponseSourceFallback = "fallback"
)

// ChatInput is the DTO passed from the transport layer to ChatService.
type ChatInput struct {
	UserID       int64
	Message      string
	Language     string
	SessionToken string // empty = start a new session
}

// ChatResult is the reply envelope. Its shape is identical whether the
// answer came from the assistant or from the curated fallback.
type ChatResult struct {
	Response        string
	SessionToken    string
	Source          string
	Model           string
	LegalCategories []string
	Advocates       []domain.Advocate
	Specialization  string
	ProcessingTime  float64
}

// ChatService answers legal questions and persists the exchange.
type ChatService interface {
	Chat(ctx context.Context, in ChatInput) (*ChatResult, error)
	History(ctx context.Context, userID int64, sessionToken string, limit int) ([]*domain.ChatMessage, error)
}
