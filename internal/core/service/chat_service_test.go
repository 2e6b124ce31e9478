package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/legalease/legalease-api/internal/core/domain"
	"github.com/legalease/legalease-api/internal/core/knowledge"
	"github.com/legalease/legalease-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubAssistant struct {
	text       string
	err        error
	lastPrompt string
}

func (a *stubAssistant) Generate(_ context.Context, prompt, _ string) (string, error) {
	a.lastPrompt = prompt
	if a.err != nil {
		return "", a.err
	}
	return a.text, nil
}

func (a *stubAssistant) Model() string { return "gemini-test" }

type stubChatRepo struct {
	sessions  map[string]*domain.ChatSession
	messages  []*domain.ChatMessage
	activity  []string
	nextID    int64
	appendErr error
}

func newStubChatRepo() *stubChatRepo {
	return &stubChatRepo{sessions: make(map[string]*domain.ChatSession), nextID: 1}
}

func (r *stubChatRepo) FindSessionByToken(_ context.Context, token string, userID int64) (*domain.ChatSession, error) {
	s, ok := r.sessions[token]
	if !ok || s.UserID != userID {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func (r *stubChatRepo) CreateSession(_ context.Context, s *domain.ChatSession) (*domain.ChatSession, error) {
	s.ID = r.nextID
	r.nextID++
	r.sessions[s.Token] = s
	return s, nil
}

func (r *stubChatRepo) AppendExchange(_ context.Context, s *domain.ChatSession, userMsg, reply *domain.ChatMessage, activity string) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.messages = append(r.messages, userMsg, reply)
	r.activity = append(r.activity, activity)
	s.TotalMessages += 2
	return nil
}

func (r *stubChatRepo) ListMessages(_ context.Context, sessionID int64, limit int) ([]*domain.ChatMessage, error) {
	var out []*domain.ChatMessage
	for _, m := range r.messages {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type stubAdvocateRepo struct {
	bySpec   map[string][]domain.Advocate
	topRated []domain.Advocate
	lastSpec string
	err      error
}

func (r *stubAdvocateRepo) List(_ context.Context, _ ports.ListAdvocatesFilter) ([]domain.Advocate, int64, error) {
	return r.topRated, int64(len(r.topRated)), r.err
}

func (r *stubAdvocateRepo) FindBySpecialization(_ context.Context, spec string, limit int) ([]domain.Advocate, error) {
	r.lastSpec = spec
	if r.err != nil {
		return nil, r.err
	}
	advocates := r.bySpec[spec]
	if len(advocates) > limit {
		advocates = advocates[:limit]
	}
	return advocates, nil
}

func (r *stubAdvocateRepo) FindTopRated(_ context.Context, limit int) ([]domain.Advocate, error) {
	r.lastSpec = knowledge.GeneralSpecialization
	if r.err != nil {
		return nil, r.err
	}
	advocates := r.topRated
	if len(advocates) > limit {
		advocates = advocates[:limit]
	}
	return advocates, nil
}

func (r *stubAdvocateRepo) FindByUserID(_ context.Context, userID int64) (*domain.Advocate, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, list := range [][]domain.Advocate{r.topRated} {
		for i := range list {
			if list[i].UserID == userID {
				return &list[i], nil
			}
		}
	}
	for _, list := range r.bySpec {
		for i := range list {
			if list[i].UserID == userID {
				return &list[i], nil
			}
		}
	}
	return nil, domain.ErrAdvocateNotFound
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func newChatService(chats *stubChatRepo, advocates *stubAdvocateRepo, assistant *stubAssistant) *ChatService {
	return NewChatService(chats, advocates, assistant, zerolog.Nop())
}

func TestChatAssistantPath(t *testing.T) {
	chats := newStubChatRepo()
	advocates := &stubAdvocateRepo{bySpec: map[string][]domain.Advocate{
		"criminal": {{UserID: 7, FullName: "Adv. Meena Nair", Rating: 4.8}},
	}}
	assistant := &stubAssistant{text: "Under Section 379 IPC, report the theft at the nearest police station."}
	svc := newChatService(chats, advocates, assistant)

	res, err := svc.Chat(context.Background(), ports.ChatInput{UserID: 1, Message: "My phone was stolen"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if res.Source != ports.ResponseSourceAI {
		t.Errorf("source = %q, want ai", res.Source)
	}
	if res.Response != assistant.text {
		t.Errorf("response = %q", res.Response)
	}
	if res.Model != "gemini-test" {
		t.Errorf("model = %q", res.Model)
	}
	if res.SessionToken == "" {
		t.Error("expected new session token")
	}
	if res.Specialization != "criminal" {
		t.Errorf("specialization = %q, want criminal", res.Specialization)
	}
	if len(res.Advocates) != 1 || res.Advocates[0].FullName != "Adv. Meena Nair" {
		t.Errorf("advocates = %v", res.Advocates)
	}
	if len(chats.messages) != 2 {
		t.Fatalf("persisted %d messages, want 2", len(chats.messages))
	}
	if chats.messages[1].AIModel != "gemini-test" {
		t.Errorf("stored model = %q", chats.messages[1].AIModel)
	}
	if !strings.Contains(chats.messages[1].LegalCategories, "Criminal Law") {
		t.Errorf("stored categories = %q", chats.messages[1].LegalCategories)
	}
}

func TestChatSessionTitleTruncatesOnRunes(t *testing.T) {
	chats := newStubChatRepo()
	advocates := &stubAdvocateRepo{bySpec: map[string][]domain.Advocate{}}
	assistant := &stubAssistant{text: "reply"}
	svc := newChatService(chats, advocates, assistant)

	message := strings.Repeat("कानूनी सलाह चाहिए ", 10)
	res, err := svc.Chat(context.Background(), ports.ChatInput{UserID: 1, Message: message})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	session := chats.sessions[res.SessionToken]
	if session == nil {
		t.Fatal("expected session created")
	}
	if !utf8.ValidString(session.SessionTitle) {
		t.Errorf("session title is not valid UTF-8: %q", session.SessionTitle)
	}
	if got := len([]rune(session.SessionTitle)); got != sessionTitleLen {
		t.Errorf("title length = %d runes, want %d", got, sessionTitleLen)
	}
}

func TestChatAnonymousIsNotPersisted(t *testing.T) {
	chats := newStubChatRepo()
	advocates := &stubAdvocateRepo{bySpec: map[string][]domain.Advocate{}}
	assistant := &stubAssistant{text: "General guidance on consumer complaints."}
	svc := newChatService(chats, advocates, assistant)

	res, err := svc.Chat(context.Background(), ports.ChatInput{Message: "Defective product refund"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if res.SessionToken != "" {
		t.Errorf("session token = %q, want empty for anonymous caller", res.SessionToken)
	}
	if res.Response != assistant.text {
		t.Errorf("response = %q", res.Response)
	}
	if len(chats.sessions) != 0 || len(chats.messages) != 0 {
		t.Errorf("persisted %d sessions and %d messages, want none", len(chats.sessions), len(chats.messages))
	}
}

func TestChatFallbackPath(t *testing.T) {
	chats := newStubChatRepo()
	advocates := &stubAdvocateRepo{bySpec: map[string][]domain.Advocate{}}
	assistant := &stubAssistant{err: errors.New("quota exceeded")}
	svc := newChatService(chats, advocates, assistant)

	msg := "My mobile phone was stolen from the bus"
	res, err := svc.Chat(context.Background(), ports.ChatInput{UserID: 1, Message: msg})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if res.Source != ports.ResponseSourceFallback {
		t.Errorf("source = %q, want fallback", res.Source)
	}
	if res.Response != knowledge.Compose(msg) {
		t.Error("fallback response should equal the curated composition")
	}
	if res.Model != "" {
		t.Errorf("model = %q, want empty on fallback", res.Model)
	}
	// The envelope keeps the same shape on both paths.
	if res.SessionToken == "" || len(res.LegalCategories) == 0 {
		t.Error("fallback result missing envelope fields")
	}
	if len(chats.messages) != 2 {
		t.Errorf("persisted %d messages, want 2", len(chats.messages))
	}
}

func TestChatValidation(t *testing.T) {
	svc := newChatService(newStubChatRepo(), &stubAdvocateRepo{}, &stubAssistant{text: "ok"})

	if _, err := svc.Chat(context.Background(), ports.ChatInput{UserID: 1, Message: "   "}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("blank message error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Chat(context.Background(), ports.ChatInput{UserID: 1, Message: "hi", Language: "xx"}); !errors.Is(err, domain.ErrUnsupportedLanguage) {
		t.Errorf("bad language error = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestChatSessionContinuity(t *testing.T) {
	chats := newStubChatRepo()
	svc := newChatService(chats, &stubAdvocateRepo{}, &stubAssistant{text: "ok"})

	first, err := svc.Chat(context.Background(), ports.ChatInput{UserID: 1, Message: "question one"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	second, err := svc.Chat(context.Background(), ports.ChatInput{
		UserID: 1, Message: "question two", SessionToken: first.SessionToken,
	})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if second.SessionToken != first.SessionToken {
		t.Error("expected the same session token")
	}
	if got := chats.sessions[first.SessionToken].TotalMessages; got != 4 {
		t.Errorf("session message count = %d, want 4", got)
	}

	t.Run("foreign session token rejected", func(t *testing.T) {
		_, err := svc.Chat(context.Background(), ports.ChatInput{
			UserID: 2, Message: "hello", SessionToken: first.SessionToken,
		})
		if !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("error = %v, want ErrSessionNotFound", err)
		}
	})
}

func TestChatRecommendationFailureDoesNotFailChat(t *testing.T) {
	chats := newStubChatRepo()
	advocates := &stubAdvocateRepo{err: errors.New("db down")}
	svc := newChatService(chats, advocates, &stubAssistant{text: "ok"})

	res, err := svc.Chat(context.Background(), ports.ChatInput{UserID: 1, Message: "divorce advice"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if len(res.Advocates) != 0 {
		t.Errorf("advocates = %v, want none", res.Advocates)
	}
}

func TestChatPersistenceFailure(t *testing.T) {
	chats := newStubChatRepo()
	chats.appendErr = errors.New("disk full")
	svc := newChatService(chats, &stubAdvocateRepo{}, &stubAssistant{text: "ok"})

	if _, err := svc.Chat(context.Background(), ports.ChatInput{UserID: 1, Message: "hello"}); err == nil {
		t.Fatal("expected persistence error surfaced")
	}
}

func TestChatHistory(t *testing.T) {
	chats := newStubChatRepo()
	svc := newChatService(chats, &stubAdvocateRepo{}, &stubAssistant{text: "ok"})

	res, err := svc.Chat(context.Background(), ports.ChatInput{UserID: 1, Message: "first question"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	msgs, err := svc.History(context.Background(), 1, res.SessionToken, 0)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("history length = %d, want 2", len(msgs))
	}
	if msgs[0].SenderType != domain.SenderUser || msgs[1].SenderType != domain.SenderAssistant {
		t.Error("expected user message followed by assistant reply")
	}

	if _, err := svc.History(context.Background(), 2, res.SessionToken, 0); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("foreign history error = %v, want ErrSessionNotFound", err)
	}
}
