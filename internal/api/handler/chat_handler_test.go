package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/legalease/legalease-api/internal/core/domain"
	"github.com/legalease/legalease-api/internal/core/ports"
)

type stubChatService struct {
	chatFn    func(ctx context.Context, in ports.ChatInput) (*ports.ChatResult, error)
	historyFn func(ctx context.Context, userID int64, sessionToken string, limit int) ([]*domain.ChatMessage, error)
}

func (s *stubChatService) Chat(ctx context.Context, in ports.ChatInput) (*ports.ChatResult, error) {
	return s.chatFn(ctx, in)
}

func (s *stubChatService) History(ctx context.Context, userID int64, sessionToken string, limit int) ([]*domain.ChatMessage, error) {
	return s.historyFn(ctx, userID, sessionToken, limit)
}

func authContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID int64, role string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	c.Set("role", role)
	return c
}

func TestChatHandler_Chat_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubChatService{
		chatFn: func(ctx context.Context, in ports.ChatInput) (*ports.ChatResult, error) {
			if in.UserID != 42 || in.Message != "How do I file an FIR?" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.ChatResult{
				Response:        "Visit the nearest police station.",
				SessionToken:    "tok-1",
				Source:          ports.ResponseSourceFallback,
				LegalCategories: []string{"criminal"},
				Advocates:       []domain.Advocate{{UserID: 7, FullName: "Ananya Krishnan"}},
				Specialization:  "Criminal Law",
				ProcessingTime:  0.01,
			}, nil
		},
	}
	handler := NewChatHandler(stub)

	body := strings.NewReader(`{"message":"How do I file an FIR?"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authContext(e, req, rec, 42, "client")

	if err := handler.Chat(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["session_token"] != "tok-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	advocates, ok := resp["recommended_advocates"].([]any)
	if !ok || len(advocates) != 1 {
		t.Fatalf("expected one recommended advocate, got %+v", resp["recommended_advocates"])
	}
	for _, key := range []string{"source", "model"} {
		if _, present := resp[key]; present {
			t.Errorf("response exposes %q; the answering backend must not be visible", key)
		}
	}
}

func TestChatHandler_Chat_Anonymous(t *testing.T) {
	e := newTestEcho()
	stub := &stubChatService{
		chatFn: func(ctx context.Context, in ports.ChatInput) (*ports.ChatResult, error) {
			if in.UserID != 0 {
				t.Fatalf("expected anonymous caller, got user %d", in.UserID)
			}
			return &ports.ChatResult{
				Response: "General guidance.",
				Source:   ports.ResponseSourceFallback,
			}, nil
		},
	}
	handler := NewChatHandler(stub)

	body := strings.NewReader(`{"message":"What are my rights?"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Chat(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["session_token"] != "" {
		t.Fatalf("expected no session token for anonymous chat, got %v", resp["session_token"])
	}
}

func TestChatHandler_Chat_RejectsEmptyMessage(t *testing.T) {
	e := newTestEcho()
	handler := NewChatHandler(&stubChatService{
		chatFn: func(ctx context.Context, in ports.ChatInput) (*ports.ChatResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"message":""}`)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authContext(e, req, rec, 42, "client")

	err := handler.Chat(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("got %v, want 400", err)
	}
}

func TestChatHandler_History(t *testing.T) {
	e := newTestEcho()
	stub := &stubChatService{
		historyFn: func(ctx context.Context, userID int64, sessionToken string, limit int) ([]*domain.ChatMessage, error) {
			if userID != 42 || sessionToken != "tok-1" || limit != 5 {
				t.Fatalf("unexpected args: %d %s %d", userID, sessionToken, limit)
			}
			return []*domain.ChatMessage{{ID: 1, SenderType: domain.SenderUser, Message: "hi"}}, nil
		},
	}
	handler := NewChatHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history/tok-1?limit=5", nil)
	rec := httptest.NewRecorder()
	c := authContext(e, req, rec, 42, "client")
	c.SetParamNames("token")
	c.SetParamValues("tok-1")

	if err := handler.History(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	messages, ok := resp["messages"].([]any)
	if !ok || len(messages) != 1 {
		t.Fatalf("expected one message, got %+v", resp["messages"])
	}
}

func TestChatHandler_History_SessionNotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubChatService{
		historyFn: func(ctx context.Context, userID int64, sessionToken string, limit int) ([]*domain.ChatMessage, error) {
			return nil, domain.ErrSessionNotFound
		},
	}
	handler := NewChatHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history/missing", nil)
	rec := httptest.NewRecorder()
	c := authContext(e, req, rec, 42, "client")
	c.SetParamNames("token")
	c.SetParamValues("missing")

	if err := handler.History(c); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("got %v, want ErrSessionNotFound", err)
	}
}
