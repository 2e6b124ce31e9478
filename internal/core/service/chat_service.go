package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/legalease/legalease-api/internal/ai"
	"github.com/legalease/legalease-api/internal/core/domain"
	"github.com/legalease/legalease-api/internal/core/knowledge"
	"github.com/legalease/legalease-api/internal/core/ports"
	"github.com/legalease/legalease-api/internal/pkg/config"
)

const (
	recommendLimit  = 3
	sessionTitleLen = 50
	historyLimit    = 100
)

// ChatService answers legal questions, recommends advocates, and persists
// every exchange.
type ChatService struct {
	chats     ports.ChatRepository
	advocates ports.AdvocateRepository
	assistant ports.Assistant
	logger    zerolog.Logger
}

func NewChatService(chats ports.ChatRepository, advocates ports.AdvocateRepository, assistant ports.Assistant, logger zerolog.Logger) *ChatService {
	return &ChatService{chats: chats, advocates: advocates, assistant: assistant, logger: logger}
}

// Chat runs the full pipeline: resolve the session, try the assistant, fall
// back to curated guidance on any failure, attach advocate recommendations,
// and store the exchange. Anonymous callers (UserID zero) get the same reply
// but nothing is persisted and no session token is issued. The result shape
// is identical on both paths.
func (s *ChatService) Chat(ctx context.Context, in ports.ChatInput) (*ports.ChatResult, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, domain.ErrInvalidInput
	}

	language := in.Language
	if language == "" {
		language = "en"
	}
	if !config.IsSupportedLanguage(language) {
		return nil, domain.ErrUnsupportedLanguage
	}

	start := time.Now()

	var session *domain.ChatSession
	if in.UserID != 0 {
		var err error
		session, err = s.resolveSession(ctx, in, message, language)
		if err != nil {
			return nil, err
		}
	}

	categories := knowledge.ExtractCategories(message)

	response, source, model := s.respond(ctx, message, language)

	specialization, advocates := s.recommend(ctx, message)

	elapsed := time.Since(start).Seconds()

	result := &ports.ChatResult{
		Response:        response,
		Source:          source,
		Model:           model,
		LegalCategories: categories,
		Advocates:       advocates,
		Specialization:  specialization,
		ProcessingTime:  elapsed,
	}
	if session == nil {
		return result, nil
	}

	now := time.Now().UTC()
	userMsg := &domain.ChatMessage{
		SessionID:  session.ID,
		UserID:     in.UserID,
		Message:    message,
		SenderType: domain.SenderUser,
		Language:   language,
		CreatedAt:  now,
	}
	reply := &domain.ChatMessage{
		SessionID:       session.ID,
		UserID:          in.UserID,
		Message:         response,
		SenderType:      domain.SenderAssistant,
		AIModel:         model,
		ResponseTime:    elapsed,
		Language:        language,
		LegalCategories: strings.Join(categories, ","),
		CreatedAt:       now,
	}

	if err := s.chats.AppendExchange(ctx, session, userMsg, reply, "Asked a legal question"); err != nil {
		s.logger.Error().Err(err).Str("session", session.Token).Msg("failed to persist chat exchange")
		return nil, err
	}

	result.SessionToken = session.Token
	return result, nil
}

func (s *ChatService) History(ctx context.Context, userID int64, sessionToken string, limit int) ([]*domain.ChatMessage, error) {
	if limit <= 0 || limit > historyLimit {
		limit = historyLimit
	}
	session, err := s.chats.FindSessionByToken(ctx, sessionToken, userID)
	if err != nil {
		return nil, err
	}
	return s.chats.ListMessages(ctx, session.ID, limit)
}

func (s *ChatService) resolveSession(ctx context.Context, in ports.ChatInput, message, language string) (*domain.ChatSession, error) {
	if in.SessionToken != "" {
		return s.chats.FindSessionByToken(ctx, in.SessionToken, in.UserID)
	}

	title := message
	if runes := []rune(title); len(runes) > sessionTitleLen {
		title = string(runes[:sessionTitleLen])
	}
	now := time.Now().UTC()
	return s.chats.CreateSession(ctx, &domain.ChatSession{
		Token:        uuid.NewString(),
		UserID:       in.UserID,
		SessionTitle: title,
		SessionType:  "general",
		Language:     language,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// respond tries the assistant first. Any failure, including an unconfigured
// assistant, switches to the curated composer.
func (s *ChatService) respond(ctx context.Context, message, language string) (response, source, model string) {
	text, err := s.assistant.Generate(ctx, message, ai.ChatSystemInstruction(language))
	if err != nil {
		s.logger.Warn().Err(err).Msg("assistant unavailable, using curated guidance")
		return knowledge.Compose(message), ports.ResponseSourceFallback, ""
	}
	return text, ports.ResponseSourceAI, s.assistant.Model()
}

// recommend attaches advocates to the reply. Lookup failures degrade to an
// empty list, they never fail the chat.
func (s *ChatService) recommend(ctx context.Context, message string) (string, []domain.Advocate) {
	specialization := knowledge.DetectSpecialization(message)

	var (
		advocates []domain.Advocate
		err       error
	)
	if specialization == knowledge.GeneralSpecialization {
		advocates, err = s.advocates.FindTopRated(ctx, recommendLimit)
	} else {
		advocates, err = s.advocates.FindBySpecialization(ctx, specialization, recommendLimit)
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("specialization", specialization).Msg("advocate recommendation failed")
		return specialization, nil
	}
	return specialization, advocates
}
