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

type stubAppointmentService struct {
	bookFn   func(ctx context.Context, in ports.BookAppointmentInput) (*domain.Appointment, error)
	listFn   func(ctx context.Context, userID int64) ([]*domain.Appointment, error)
	getFn    func(ctx context.Context, reference string, userID int64) (*domain.Appointment, error)
	cancelFn func(ctx context.Context, reference string, userID int64) error
}

func (s *stubAppointmentService) Book(ctx context.Context, in ports.BookAppointmentInput) (*domain.Appointment, error) {
	return s.bookFn(ctx, in)
}

func (s *stubAppointmentService) ListForUser(ctx context.Context, userID int64) ([]*domain.Appointment, error) {
	return s.listFn(ctx, userID)
}

func (s *stubAppointmentService) Get(ctx context.Context, reference string, userID int64) (*domain.Appointment, error) {
	return s.getFn(ctx, reference, userID)
}

func (s *stubAppointmentService) Cancel(ctx context.Context, reference string, userID int64) error {
	return s.cancelFn(ctx, reference, userID)
}

func TestAppointmentHandler_Book_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAppointmentService{
		bookFn: func(ctx context.Context, in ports.BookAppointmentInput) (*domain.Appointment, error) {
			if in.ClientID != 42 || in.AdvocateID != 7 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Appointment{
				ID:               1,
				Reference:        "APT-7A8B9C2D",
				ClientID:         in.ClientID,
				AdvocateID:       in.AdvocateID,
				ConsultationMode: "video",
				ConsultationFee:  1500,
				Status:           domain.AppointmentScheduled,
			}, nil
		},
	}
	handler := NewAppointmentHandler(stub)

	body := strings.NewReader(`{"advocate_id":7,"scheduled_at":"2026-09-05T10:00:00Z","duration_minutes":30,"consultation_mode":"video"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authContext(e, req, rec, 42, "client")

	if err := handler.Book(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	appt, ok := resp["appointment"].(map[string]any)
	if !ok || appt["reference"] != "APT-7A8B9C2D" {
		t.Fatalf("unexpected appointment payload: %+v", resp["appointment"])
	}
	if appt["consultation_fee"] != float64(1500) {
		t.Fatalf("consultation_fee = %v, want 1500", appt["consultation_fee"])
	}
}

func TestAppointmentHandler_Book_RejectsMissingAdvocate(t *testing.T) {
	e := newTestEcho()
	handler := NewAppointmentHandler(&stubAppointmentService{
		bookFn: func(ctx context.Context, in ports.BookAppointmentInput) (*domain.Appointment, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"scheduled_at":"2026-09-05T10:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authContext(e, req, rec, 42, "client")

	err := handler.Book(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("got %v, want 400", err)
	}
}

func TestAppointmentHandler_Book_SlotUnavailable(t *testing.T) {
	e := newTestEcho()
	handler := NewAppointmentHandler(&stubAppointmentService{
		bookFn: func(ctx context.Context, in ports.BookAppointmentInput) (*domain.Appointment, error) {
			return nil, domain.ErrSlotUnavailable
		},
	})

	body := strings.NewReader(`{"advocate_id":7,"scheduled_at":"2026-09-05T10:00:00Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/appointments", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authContext(e, req, rec, 42, "client")

	if err := handler.Book(c); !errors.Is(err, domain.ErrSlotUnavailable) {
		t.Fatalf("got %v, want ErrSlotUnavailable", err)
	}
}

func TestAppointmentHandler_Cancel(t *testing.T) {
	e := newTestEcho()
	cancelled := false
	handler := NewAppointmentHandler(&stubAppointmentService{
		cancelFn: func(ctx context.Context, reference string, userID int64) error {
			if reference != "APT-7A8B9C2D" || userID != 42 {
				t.Fatalf("unexpected args: %s %d", reference, userID)
			}
			cancelled = true
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/appointments/APT-7A8B9C2D/cancel", nil)
	rec := httptest.NewRecorder()
	c := authContext(e, req, rec, 42, "client")
	c.SetParamNames("reference")
	c.SetParamValues("APT-7A8B9C2D")

	if err := handler.Cancel(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || !cancelled {
		t.Fatalf("expected 200 and cancel call, got %d %v", rec.Code, cancelled)
	}
}
