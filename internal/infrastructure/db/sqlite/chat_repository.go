package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/legalease/legalease-api/internal/core/domain"
)

// ChatRepository is the SQLite implementation of ports.ChatRepository.
type ChatRepository struct {
	store *Store
}

func NewChatRepository(store *Store) *ChatRepository {
	return &ChatRepository{store: store}
}

func (r *ChatRepository) FindSessionByToken(ctx context.Context, token string, userID int64) (*domain.ChatSession, error) {
	var session domain.ChatSession
	err := r.store.db.GetContext(ctx, &session,
		`SELECT id, token, user_id, session_title, session_type, language, total_messages,
		 is_active, created_at, updated_at
		 FROM chat_sessions WHERE token = ? AND user_id = ? AND is_active = 1`,
		token, userID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &session, nil
}

func (r *ChatRepository) CreateSession(ctx context.Context, session *domain.ChatSession) (*domain.ChatSession, error) {
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now
	session.IsActive = true

	res, err := r.store.db.ExecContext(ctx,
		`INSERT INTO chat_sessions (token, user_id, session_title, session_type, language,
		 total_messages, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, 0, 1, ?, ?)`,
		session.Token, session.UserID, session.SessionTitle, session.SessionType,
		session.Language, session.CreatedAt, session.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("session id: %w", err)
	}
	session.ID = id
	return session, nil
}

func (r *ChatRepository) AppendExchange(ctx context.Context, session *domain.ChatSession, userMsg, reply *domain.ChatMessage, activity string) error {
	now := time.Now().UTC()
	return r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, msg := range []*domain.ChatMessage{userMsg, reply} {
			msg.SessionID = session.ID
			msg.CreatedAt = now
			res, err := tx.ExecContext(ctx,
				`INSERT INTO chat_messages (session_id, user_id, message, sender_type, ai_model,
				 response_time, language, legal_categories, created_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				msg.SessionID, msg.UserID, msg.Message, msg.SenderType, msg.AIModel,
				msg.ResponseTime, msg.Language, msg.LegalCategories, msg.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("insert message: %w", err)
			}
			if msg.ID, err = res.LastInsertId(); err != nil {
				return fmt.Errorf("message id: %w", err)
			}
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE chat_sessions SET total_messages = total_messages + 2, updated_at = ? WHERE id = ?`,
			now, session.ID,
		); err != nil {
			return fmt.Errorf("bump session: %w", err)
		}
		session.TotalMessages += 2
		session.UpdatedAt = now

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO user_activity (user_id, activity_type, activity_description, created_at)
			 VALUES (?, 'chat', ?, ?)`,
			session.UserID, activity, now,
		); err != nil {
			return fmt.Errorf("insert activity: %w", err)
		}
		return nil
	})
}

func (r *ChatRepository) ListMessages(ctx context.Context, sessionID int64, limit int) ([]*domain.ChatMessage, error) {
	messages := []*domain.ChatMessage{}
	err := r.store.db.SelectContext(ctx, &messages,
		`SELECT id, session_id, user_id, message, sender_type, ai_model, response_time,
		 language, legal_categories, created_at
		 FROM chat_messages WHERE session_id = ? ORDER BY id LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}
