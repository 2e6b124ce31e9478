package ports

import (
	"context"

	"github.com/legalease/legalease-api/internal/core/domain"
)

// ChatRepository handles session and message persistence.
type ChatRepository interface {
	FindSessionByToken(ctx context.Context, token string, userID int64) (*domain.ChatSession, error)
	CreateSession(ctx context.Context, session *domain.ChatSession) (*domain.ChatSession, error)
	// AppendExchange atomically stores the user message and the assistant
	// reply, bumps the session's message counter, and writes an activity
	// log entry.
	AppendExchange(ctx context.Context, session *domain.ChatSession, userMsg, reply *domain.ChatMessage, activity string) error
	ListMessages(ctx context.Context, sessionID int64, limit int) ([]*domain.ChatMessage, error)
}
